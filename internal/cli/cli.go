package cli

import (
	"fmt"
	"os"
)

// Run executes the CLI with the given arguments. configFile is the --config
// override, "" when unset. Returns the process exit code.
func Run(args []string, configFile string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "new", "n":
		return runNew(cmdArgs, configFile)
	case "get", "g":
		return runGet(cmdArgs, configFile)
	case "init":
		return runInit(cmdArgs, configFile)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println(`file-journal - dated markdown journal entries

Usage: file-journal [flags] <command> [arguments]

Commands:
  new, n      Create a new journal entry
              file-journal new "standup.md" "Discussed the rollout plan"
              file-journal new --tags work,meetings "standup.md" "..."

  get, g      List journal entries
              file-journal get                 # today's entries
              file-journal get --day 17 --month 2 --year 2026
              file-journal get --month 2       # whole month
              file-journal get --year 2026     # whole year
              file-journal get --week          # Monday through Sunday
              file-journal get --format content
              file-journal get --search rollout
              file-journal get --tag work

  init        Write the config file interactively

  help        Show this help message

Flags:
  --config <file>   Config file (default ~/.config/file-journal/config.toml)

Both new and get accept --path to override the configured journal root.`)
}
