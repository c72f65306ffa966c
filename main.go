package main

import (
	"flag"
	"os"

	"fjournal/internal/cli"
	"fjournal/internal/config"
	"fjournal/internal/logs"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.StringVar(configFlag, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	// Best effort: log to the config dir; commands work without it.
	if logDir, err := config.Dir(); err == nil {
		_ = logs.Initialize(logDir)
	}
	defer logs.Close()

	os.Exit(cli.Run(flag.Args(), *configFlag))
}
