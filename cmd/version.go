package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yanivps/green-invoice/greeninvoice"
)

// BuildInfo is the release metadata stamped in at link time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var build = BuildInfo{Version: "dev", Commit: "none", Date: "unknown"}

// SetVersion records build information and reports the version in the User-Agent
func SetVersion(info BuildInfo) {
	build = info
	greeninvoice.Version = info.Version
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfig: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "greeninvoice %s (commit %s, built %s, %s/%s)\n",
			build.Version, build.Commit, build.Date, runtime.GOOS, runtime.GOARCH)
	},
}
