package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/judgekit/config"
	"github.com/katalvlaran/judgekit/logging"
)

type rootOptions struct {
	configPath string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "judgekit",
		Short: "Run online-judge problem solutions",
		Long: `judgekit solves UVa online-judge problems. Each solver reads the
problem's input format and writes the judge's expected output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	f.StringVar(&opts.logFile, "log-file", "", "write diagnostics to this rotated file instead of stderr")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")

	cmd.AddCommand(newRunCmd(), newListCmd())
	return cmd
}

// setup loads the configuration file, lets flags given on the command line
// override it, and installs the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	c, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		c.Log.Logfile = o.logFile
	}
	if cmd.Flags().Changed("verbose") {
		c.Log.Verbose = o.verbose
	}
	c.Log.SetLogger()
	if o.configPath != "" {
		logging.Debugf("loaded configuration from %s\n", o.configPath)
	}
	return nil
}
