package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/pcomb/config"
)

const version = "0.1.0"

// app carries state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	configPath string
	verbosity  int
	logFile    string

	cfg *config.Config
	log commonlog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "pcomb",
		Short:         "Parse and check datum files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFileName, "path to the TOML configuration file")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newEbnfCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = a.verbosity
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = a.logFile
	}

	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())
	a.cfg = cfg
	a.log = commonlog.GetLogger("pcomb.cli")
	a.log.Debugf("config %s: %+v", a.configPath, *cfg)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
