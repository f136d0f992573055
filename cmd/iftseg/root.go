package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newRootCommand builds the command tree. Flags are read from the command
// line first, then from IFTSEG_ environment variables.
func newRootCommand() *cobra.Command {
	viper.SetEnvPrefix("IFTSEG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root := &cobra.Command{
		Use:          "iftseg",
		Short:        "Image Foresting Transform segmentation and clustering",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.Bool(verboseFlag, false, "log engine runs at debug level")
	flags.Int(workersFlag, 0, "workers for the parallel image scans; 0 uses GOMAXPROCS")

	root.AddCommand(
		newSegmentCommand(),
		newWatershedCommand(),
		newClusterCommand(),
		newMSFCommand(),
	)

	return root
}

// newLogger returns a development logger at debug level when verbose is
// set, a production logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
