package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"fjournal/internal/config"
	"fjournal/internal/journal"
	"fjournal/internal/logs"
)

var (
	pathHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	ruleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runGet(args []string, configFile string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	day := fs.Int("day", 0, "Day of month (1-31)")
	month := fs.Int("month", 0, "Month (1-12)")
	year := fs.Int("year", 0, "Year (e.g. 2026)")
	week := fs.Bool("week", false, "Entries for the current week (Monday-Sunday)")
	format := fs.String("format", "paths", "Output format: paths, content, or json")
	search := fs.String("search", "", "Fuzzy-match entry titles")
	tag := fs.String("tag", "", "Keep only entries with this frontmatter tag")
	pathFlag := fs.String("path", "", "Override the journal root")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	switch *format {
	case "paths", "content", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want paths, content, or json)\n", *format)
		return 1
	}

	cfg, loadErr := config.Load(configFile)
	root, err := config.JournalRoot(*pathFlag, cfg, loadErr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sel := journal.Selector{Day: *day, Month: *month, Year: *year, Week: *week}

	paths, err := journal.Find(root, sel, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *tag != "" || *search != "" {
		paths, err = filterEntries(paths, *tag, *search)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	logs.Logger.Printf("get matched %d entries under %s", len(paths), root)

	switch *format {
	case "json":
		return printJSON(paths)
	case "content":
		return printContent(paths)
	default:
		for _, p := range paths {
			fmt.Println(p)
		}
		return 0
	}
}

// filterEntries loads each entry and keeps those matching the tag and the
// fuzzy title search, preserving chronological order.
func filterEntries(paths []string, tag, search string) ([]string, error) {
	var entries []journal.Entry
	for _, p := range paths {
		entry, err := journal.ReadEntry(p)
		if err != nil {
			return nil, err
		}
		if tag != "" && !entry.HasTag(tag) {
			continue
		}
		entries = append(entries, entry)
	}

	if search == "" {
		kept := make([]string, len(entries))
		for i, e := range entries {
			kept[i] = e.Path
		}
		return kept, nil
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	matched := make(map[int]bool)
	for _, m := range fuzzy.Find(search, titles) {
		matched[m.Index] = true
	}

	var kept []string
	for i, e := range entries {
		if matched[i] {
			kept = append(kept, e.Path)
		}
	}
	return kept, nil
}

func printJSON(paths []string) int {
	if paths == nil {
		paths = []string{}
	}

	data, err := json.Marshal(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println(string(data))
	return 0
}

func printContent(paths []string) int {
	exit := 0
	for _, p := range paths {
		fmt.Println(pathHeaderStyle.Render(p))
		fmt.Println(ruleStyle.Render(strings.Repeat("-", 40)))

		content, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", p, err)
			exit = 1
			continue
		}
		fmt.Println(string(content))
	}
	return exit
}
