package main

import (
	"flag"
	"os"

	"edurev/cmd/console/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	baseURL := flag.String("api", "http://127.0.0.1:5000", "Base URL of the edurev backend")
	timeout := flag.Duration("timeout", ui.DefaultTimeout, "Per-request timeout, keep above the backend summarizer timeout")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	p := tea.NewProgram(ui.NewRootModel(ui.NewClientWithTimeout(*baseURL, *timeout)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal().Err(err).Msg("console")
	}
}
