package cli

import (
	"flag"
	"fmt"
	"os"

	"fjournal/internal/config"
	"fjournal/internal/tui/initprompt"
)

func runInit(args []string, configFile string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	pathFlag := fs.String("path", "", "Default journal path (skips the prompt)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	journalPath := *pathFlag
	if journalPath == "" {
		entered, err := initprompt.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		journalPath = entered
	}

	configPath := configFile
	if configPath == "" {
		p, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not determine config path: %v\n", err)
			return 1
		}
		configPath = p
	}

	cfg := &config.Config{DefaultPath: config.ExpandPath(journalPath)}
	if err := config.Write(cfg, configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Created config at: %s\n", configPath)
	return 0
}
