package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"fjournal/internal/config"
	"fjournal/internal/journal"
	"fjournal/internal/logs"
)

func runNew(args []string, configFile string) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	pathFlag := fs.String("path", "", "Override the journal root")
	tagsFlag := fs.String("tags", "", "Comma-separated frontmatter tags")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: entry title required")
		fmt.Fprintln(os.Stderr, `Usage: file-journal new "title.md" "note text"`)
		return 1
	}

	title := fs.Arg(0)
	body := strings.Join(fs.Args()[1:], " ")

	cfg, loadErr := config.Load(configFile)
	root, err := config.JournalRoot(*pathFlag, cfg, loadErr)
	if err != nil {
		// new falls back to the working directory when nothing is configured.
		root, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	path, err := journal.Create(root, title, body, parseTags(*tagsFlag), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logs.Logger.Printf("created entry %s", path)
	fmt.Printf("Created journal entry: %s\n", path)
	return 0
}

func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
