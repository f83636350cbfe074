package main

import (
	"github.com/yanivps/green-invoice/cmd"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(cmd.BuildInfo{Version: version, Commit: commit, Date: date})
	cmd.Execute()
}
