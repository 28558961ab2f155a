package main

import (
	"os"

	"github.com/trebuchet-org/crowdtank-deploy/internal/cli"
	"github.com/trebuchet-org/crowdtank-deploy/internal/config"
)

// Set by the linker
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)
	os.Exit(cli.Execute())
}
