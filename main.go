package main

import (
	"os"

	"github.com/hossam-labs/hossam-react-app/internal/cli"
	"github.com/hossam-labs/hossam-react-app/internal/logger"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		logger.Error("\n[Error] %s\n", err)
		os.Exit(1)
	}
}
