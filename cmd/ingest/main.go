package main

import (
	"os"

	"github.com/gtif-cerulean/dmi-ice-charts/cmd/ingest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
