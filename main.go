package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/app"
	"github.com/llehouerou/slider/internal/config"
	"github.com/llehouerou/slider/internal/errmsg"
	"github.com/llehouerou/slider/internal/icons"
	"github.com/llehouerou/slider/internal/state"
)

// debugEnv names the environment variable holding the debug log path.
const debugEnv = "SLIDER_DEBUG"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The TUI owns the terminal: logs go to a file or nowhere.
	if path := os.Getenv(debugEnv); path != "" {
		f, err := tea.LogToFile(path, "slider")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if err := cfg.Validate(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigValidate, err))
	}
	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			log.Print(errmsg.Format(errmsg.OpStateSave, err))
		}
	}()
	stateMgr.SetSaveDebounce(cfg.GetTiming().SaveDebounce)

	m, err := app.New(cfg, stateMgr)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
