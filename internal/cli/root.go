package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "plasticbusters",
	Short: "Plastic Busters monitoring site",
	Long: `plasticbusters serves the Plastic Busters site: collection-site map,
analytics dashboard with per-session measurement entry, and the plastic and
fungus technical sheets.

Configuration is read from PB_* environment variables.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
