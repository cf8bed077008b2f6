package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ihorchekh/sonic-utilities/cmd/clear"
	"github.com/ihorchekh/sonic-utilities/cmd/save"
	"github.com/ihorchekh/sonic-utilities/cmd/show"
	"github.com/ihorchekh/sonic-utilities/cmd/version"
	"github.com/ihorchekh/sonic-utilities/internal/flog"
)

var rootCmd = &cobra.Command{
	Use:   "tunnelstat",
	Short: "Per-tunnel traffic counters from the counters database.",
	Long:  `tunnelstat reports received and transmitted bytes, packets and rates for every tunnel on the switch, and can diff the counters against a previously saved baseline.`,
}

var verbose bool

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	cobra.OnInitialize(func() {
		flog.SetDebug(verbose)
	})

	rootCmd.AddCommand(show.Cmd)
	rootCmd.AddCommand(save.Cmd)
	rootCmd.AddCommand(clear.Cmd)
	rootCmd.AddCommand(version.Cmd)

	if err := rootCmd.Execute(); err != nil {
		flog.Errorf("%v", err)
		os.Exit(1)
	}
}
