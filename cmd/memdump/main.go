package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/memory/handle"
)

var (
	flagConfig  string
	flagVerbose bool
	cfg         = DefaultConfig()
)

var cmdMain = &cobra.Command{
	Use:           "memdump",
	Short:         "Inspect and patch files through bounds-checked memory views",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagVerbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			handle.SetLogger(l)
		}
		if flagConfig != "" {
			c, err := LoadConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = c
		}
		return nil
	},
}

func init() {
	cmdMain.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML config file")
	cmdMain.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log handle activity to stderr")
	cmdMain.AddCommand(cmdDump, cmdView, cmdFill)
}

func main() {
	err := cmdMain.Execute()
	// Anything still registered here was never released by a command.
	if cerr := handle.DefaultRegistry().Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
