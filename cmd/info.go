package cmd

import (
	"io"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
	out io.Writer
}

func NewInfoCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the effective configuration and where it was loaded from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg,
				out: out,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	appDir, err := app.AppDataDir()
	if err != nil {
		appDir = "Unknown"
	}

	return views.RenderSystemInfo(r.out, views.SystemInfoItem{
		ConfigPath:   configPath,
		AppDataDir:   appDir,
		LogLevel:     r.cfg.Log.Level,
		LogFormat:    r.cfg.Log.Format,
		Delimiter:    r.cfg.Input.Delimiter,
		OutputFormat: r.cfg.Output.Format,
	})
}
