package journal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is one journal note read back from disk.
type Entry struct {
	Path  string
	Title string    // H1 from the body, or derived from the filename
	Tags  []string  // from frontmatter, empty when absent
	Date  time.Time // from the Date: DD-MM-YYYY line, zero when absent
	Body  string    // content with frontmatter stripped
}

var dateLinePattern = regexp.MustCompile(`(?m)^Date: (\d{2}-\d{2}-\d{4})$`)

// ReadEntry loads and parses a single entry file.
func ReadEntry(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("reading %s: %w", path, err)
	}

	tags, body := parseFrontmatter(content)

	title := extractTitle(body)
	if title == "" {
		title = titleFromFilename(filepath.Base(path))
	}

	var date time.Time
	if m := dateLinePattern.FindStringSubmatch(body); m != nil {
		if parsed, err := time.Parse(dateLineFormat, m[1]); err == nil {
			date = parsed
		}
	}

	return Entry{
		Path:  path,
		Title: title,
		Tags:  tags,
		Date:  date,
		Body:  body,
	}, nil
}

// HasTag reports whether the entry's frontmatter tags contain tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// parseFrontmatter extracts the YAML frontmatter tags from content and
// returns them with the remaining body. Content without frontmatter, or
// with frontmatter that doesn't parse, comes back unchanged.
func parseFrontmatter(content []byte) ([]string, string) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return []string{}, string(content)
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return []string{}, string(content)
	}

	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	var frontmatter struct {
		Tags []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(fmBytes, &frontmatter); err != nil {
		return []string{}, string(content)
	}

	tags := frontmatter.Tags
	if tags == nil {
		tags = []string{}
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))
	return tags, string(bytes.TrimLeft(body, "\n"))
}

// titleFromFilename derives a readable title from an entry filename,
// stripping the dd-HHMMSS- prefix and the .md extension.
// "17-081503-niet-lekker-geslapen.md" -> "niet lekker geslapen"
func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")

	if loc := filenamePrefixPattern.FindStringIndex(name); loc != nil {
		name = name[loc[1]:]
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.TrimSpace(name)

	if name == "" {
		return "Untitled"
	}
	return name
}

var filenamePrefixPattern = regexp.MustCompile(`^\d{2}-\d{6}-`)
