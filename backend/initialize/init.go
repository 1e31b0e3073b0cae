package initialize

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"edurev/backend/app/controllers"
	"edurev/backend/app/db"
	jwtutil "edurev/backend/app/jwt"
	"edurev/backend/app/middleware"
	"edurev/backend/app/repo"
	"edurev/backend/app/services"
	"edurev/backend/config"
	"edurev/backend/global"
	"edurev/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg        config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	Router     http.Handler
	Users      *services.UserService
	Sessions   *services.SessionService
	Assistant  *services.AssistantService
	Summarizer *services.SummarizerService
}

// Deps lets callers (tests, tools) supply already-open stores instead of the configured ones.
type Deps struct {
	DB        *gorm.DB
	Sessions  services.SessionStore
	Generator services.Generator
}

func Build(cfg config.Config) (*App, error) {
	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	// Sessions live in Redis; an open deployment runs without it.
	if !cfg.Auth.RequireSession {
		global.Logger.Warn().Msg("sessions disabled: profile routes are open and login issues no token")
		app, err := BuildWith(cfg, Deps{DB: gdb})
		if err != nil {
			_ = db.Close(gdb)
			return nil, err
		}
		return app, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = db.Close(gdb)
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	app, err := BuildWith(cfg, Deps{DB: gdb, Sessions: repo.NewSessionRepository(rdb)})
	if err != nil {
		_ = db.Close(gdb)
		_ = rdb.Close()
		return nil, err
	}
	app.Redis = rdb
	return app, nil
}

func BuildWith(cfg config.Config, deps Deps) (*App, error) {
	if cfg.Auth.RequireSession && deps.Sessions == nil {
		return nil, errors.New("session store required when sessions are enforced")
	}
	warnInsecureDefaults(cfg)

	// Migrate
	if err := db.Migrate(deps.DB); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	gen := deps.Generator
	if gen == nil {
		gen = services.NewGeminiGenerator(cfg.Summarizer.Endpoint, cfg.Summarizer.Model, cfg.Summarizer.APIKey, cfg.Summarizer.Timeout)
	}

	// Services
	userRepo := repo.NewUserRepository(deps.DB)
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	userSvc := services.NewUserService(userRepo, services.NewBcryptHasher(cfg.Auth.BcryptCost))
	var sessionSvc *services.SessionService
	if deps.Sessions != nil {
		sessionSvc = services.NewSessionService(deps.Sessions, signer)
	}
	assistantSvc := services.NewAssistantService(cfg.Assistant.URL, cfg.Assistant.Timeout)
	summarizerSvc := services.NewSummarizerService(cfg.Summarizer.SourcePath, gen)

	// Controllers
	gdb := deps.DB
	ctrls := router.Controllers{
		HTTP:       controllers.NewHTTPController(func(ctx context.Context) error { return db.Ping(ctx, gdb) }),
		Auth:       controllers.NewAuthController(userSvc, sessionSvc),
		Users:      controllers.NewUserController(userSvc),
		Assistant:  controllers.NewAssistantController(assistantSvc),
		Summarizer: controllers.NewSummarizerController(summarizerSvc),
	}
	mw := &middleware.Auth{Enforce: cfg.Auth.RequireSession}
	if sessionSvc != nil {
		mw.Sessions = sessionSvc
	}

	// Router
	var h http.Handler = router.NewRouter(ctrls, mw)
	h = middleware.CORS(cfg.CORSOrigin, h)
	// Wrap with logging middleware
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: deps.DB, Router: h, Users: userSvc, Sessions: sessionSvc, Assistant: assistantSvc, Summarizer: summarizerSvc}, nil
}

func warnInsecureDefaults(cfg config.Config) {
	if cfg.JWT.Secret == config.DevJWTSecret {
		global.Logger.Warn().Msg("jwt secret is the built-in development value; set backend.jwt.secret")
	}
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, db.Close(a.DB))
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}
