package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is stamped via -ldflags at release build time.
var Version = "dev"

var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tunnelstat version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tunnelstat %s (%s/%s, %s)\n", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
