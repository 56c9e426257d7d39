package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/csvio"
	"github.com/hance08/tally/internal/ui/views"
)

type replayRunner struct {
	cfg    *config.Config
	path   string
	out    io.Writer
	logOut io.Writer
}

func (r *replayRunner) Run() error {
	application, err := app.NewApp(r.cfg, r.logOut)
	if err != nil {
		return err
	}

	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	delimiter, err := r.cfg.DelimiterRune()
	if err != nil {
		return err
	}

	application.Logger.Debug().Str("file", r.path).Msg("replaying transactions")

	registry, err := application.Processor.Run(csvio.NewReader(bufio.NewReader(file), delimiter))
	if err != nil {
		return fmt.Errorf("replay of %s aborted: %w", r.path, err)
	}

	accounts := registry.Snapshot()
	if r.cfg.Output.Format == constants.FormatTable {
		return views.NewBalanceListView(r.out).Render(accounts)
	}

	return csvio.NewWriter(r.out).WriteAccounts(accounts)
}
