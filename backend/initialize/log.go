package initialize

import (
	"io"
	"os"

	"edurev/backend/config"
	"edurev/backend/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// basic zerolog setup: console writer to stdout
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}

// InitLogger points the process logger at the configured file (stdout when empty)
// and applies the configured level.
func InitLogger(cfg config.Log) (io.Closer, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if cfg.Path != "" {
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w, closer = file, file
	}
	global.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: cfg.Path != ""})
	SetLogLevel(cfg.Level)
	return closer, nil
}

// SetLogLevel falls back to info for unknown names.
func SetLogLevel(name string) {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
