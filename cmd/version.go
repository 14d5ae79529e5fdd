package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todolabs/rocketd/internal/ui"
)

// Build metadata, overridden at release time via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersionString renders the version banner
func GetVersionString() string {
	return fmt.Sprintf("%s %s\n%s %s\n%s %s",
		ui.StyleBold.Render("rocketd"), Version,
		ui.StyleDim.Render("commit:"), GitCommit,
		ui.StyleDim.Render("built:"), BuildDate)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(GetVersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
