package cli

import (
	"encoding/json"
	"fmt"
	goruntime "runtime"

	"github.com/hossam-labs/hossam-react-app/internal/branding"
	"github.com/spf13/cobra"
)

var (
	showVersion  bool
	versionShort bool
	versionJSON  bool
)

// buildInfo is the --version --json document.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		GoVersion: goruntime.Version(),
		Platform:  goruntime.GOOS + "/" + goruntime.GOARCH,
	}
}

func runVersion(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	info := currentBuild()

	switch {
	case versionShort:
		fmt.Fprintln(out, info.Version)
	case versionJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		fmt.Fprintf(out, "%s %s\n  commit:   %s\n  built:    %s\n  platform: %s (%s)\n",
			branding.CLIName(), info.Version, info.Commit, info.Date, info.Platform, info.GoVersion)
	}
	return nil
}
