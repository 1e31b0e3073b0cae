package db

import (
	"context"
	"fmt"

	"edurev/backend/app/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string
}

func Connect(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)}
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), gcfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.User{})
}

func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
