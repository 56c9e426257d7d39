package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() {
	rootCmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

type rootFlags struct {
	ConfigFile string
}

// NewRootCmd builds the tally command tree. Balances are written to out,
// logs and usage to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}
	cfg := config.NewDefault()
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "tally <file>",
		Short: "tally replays a CSV transaction log and prints client balances",
		Long: `tally replays a CSV transaction log and prints client balances.

The input file holds deposits, withdrawals, disputes, resolutions and
chargebacks, one per row, under a "type,client,tx,amount" header. The final
state of every client account is written to stdout as CSV.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, flags.ConfigFile, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &replayRunner{
				cfg:    cfg,
				path:   args[0],
				out:    out,
				logOut: errOut,
			}
			return runner.Run()
		},
	}

	rootCmd.SetOut(errOut)
	rootCmd.SetErr(errOut)

	defaults := config.NewDefault()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "set the config file path")
	pf.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error, disabled)")
	pf.String("log-format", defaults.Log.Format, "log format (json, console)")

	f := rootCmd.Flags()
	f.StringP("delimiter", "d", defaults.Input.Delimiter, "input field delimiter")
	f.StringP("format", "f", defaults.Output.Format, "output format (csv, table)")

	_ = v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = v.BindPFlag("input.delimiter", f.Lookup("delimiter"))
	_ = v.BindPFlag("output.format", f.Lookup("format"))

	rootCmd.AddCommand(NewInfoCmd(cfg, out))

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string, cfg *config.Config) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return nil
}
