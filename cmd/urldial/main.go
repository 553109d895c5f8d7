package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urldial/urldial/cliout"
	"github.com/urldial/urldial/version"
)

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildCommit=abc123 -X main.buildDate=2024-01-01"
var (
	buildVersion = "0.0.0-dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func main() {
	info := version.New("urldial")
	info.Version = buildVersion
	info.GitCommit = buildCommit
	info.BuildDate = buildDate

	rootCmd := newRootCommand(info)
	if err := rootCmd.Execute(); err != nil {
		if cliout.IsJSON() {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			cliout.Error("%v", err)
		}

		var usage usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
