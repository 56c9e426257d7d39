package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/rs/zerolog"
)

type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Processor *service.Processor
	RunID     string
}

// NewApp validates cfg and wires the logger and processor for one replay run.
// Logs go to logOut so stdout stays reserved for balances.
func NewApp(cfg *config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.NewString()
	log := logger.New(logOut, cfg.Log.Level, cfg.Log.Format, constants.AppName).
		With().
		Str("run_id", runID).
		Logger()

	return &App{
		Config:    cfg,
		Logger:    log,
		Processor: service.NewProcessor(log),
		RunID:     runID,
	}, nil
}

// AppDataDir is where the optional config.yaml is looked up.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
