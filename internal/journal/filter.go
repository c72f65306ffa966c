package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Selector narrows which entries Find returns. Zero fields are unset:
// with nothing set, Find matches today's entries exactly. Week overrides
// Day and selects Monday through Sunday of the current week.
type Selector struct {
	Day   int
	Month int
	Year  int
	Week  bool
}

// Validate checks selector ranges before any filesystem access.
func (s Selector) Validate() error {
	if s.Day != 0 && (s.Day < 1 || s.Day > 31) {
		return fmt.Errorf("day must be between 1 and 31, got %d", s.Day)
	}
	if s.Month != 0 && (s.Month < 1 || s.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12, got %d", s.Month)
	}
	if s.Week && s.Day != 0 {
		return fmt.Errorf("--week cannot be combined with --day")
	}
	return nil
}

// Find returns the paths of entries under root matching the selector,
// sorted chronologically (year, then month, then filename). Directories
// that don't exist contribute zero matches. now supplies the defaults for
// unset selector fields.
func Find(root string, sel Selector, now time.Time) ([]string, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	if sel.Week {
		return findWeek(root, now)
	}

	year := sel.Year
	if year == 0 {
		year = now.Year()
	}
	month := sel.Month
	if month == 0 {
		month = int(now.Month())
	}

	yearDir := filepath.Join(root, fmt.Sprintf("%04d", year))
	monthDir := filepath.Join(yearDir, fmt.Sprintf("%02d", month))

	var entries []string

	switch {
	case sel.Day != 0:
		found, err := collectDay(monthDir, sel.Day)
		if err != nil {
			return nil, err
		}
		entries = found

	case sel.Month != 0:
		found, err := collectMonth(monthDir)
		if err != nil {
			return nil, err
		}
		entries = found

	case sel.Year != 0:
		for m := 1; m <= 12; m++ {
			found, err := collectMonth(filepath.Join(yearDir, fmt.Sprintf("%02d", m)))
			if err != nil {
				return nil, err
			}
			entries = append(entries, found...)
		}

	default:
		// No selectors: today's entries.
		found, err := collectDay(monthDir, now.Day())
		if err != nil {
			return nil, err
		}
		entries = found
	}

	sort.Strings(entries)
	return entries, nil
}

// findWeek collects entries for Monday through Sunday of the week
// containing now, spanning month and year boundaries as needed.
func findWeek(root string, now time.Time) ([]string, error) {
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	monday := now.AddDate(0, 0, -offset)

	var entries []string
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		monthDir := filepath.Join(root, day.Format("2006"), day.Format("01"))
		found, err := collectDay(monthDir, day.Day())
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	sort.Strings(entries)
	return entries, nil
}

// collectDay returns the .md files in dir whose names begin with the
// zero-padded day followed by "-".
func collectDay(dir string, day int) ([]string, error) {
	prefix := fmt.Sprintf("%02d-", day)

	files, err := readEntryDir(dir)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, name := range files {
		if strings.HasPrefix(name, prefix) {
			matched = append(matched, filepath.Join(dir, name))
		}
	}
	return matched, nil
}

// collectMonth returns all .md files in dir.
func collectMonth(dir string) ([]string, error) {
	files, err := readEntryDir(dir)
	if err != nil {
		return nil, err
	}

	var matched []string
	for _, name := range files {
		matched = append(matched, filepath.Join(dir, name))
	}
	return matched, nil
}

// readEntryDir lists the .md filenames in dir. A missing directory is not
// an error; other read failures are surfaced.
func readEntryDir(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(de.Name()), ".md") {
			names = append(names, de.Name())
		}
	}
	return names, nil
}
