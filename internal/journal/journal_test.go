package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreate_WritesTemplate(t *testing.T) {
	root := t.TempDir()
	at := time.Date(2026, 2, 17, 8, 15, 3, 0, time.UTC)

	path, err := Create(root, "meeting.md", "Discussed the rollout plan", nil, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(root, "2026", "02", "17-081503-meeting.md")
	if path != want {
		t.Errorf("expected %q, got %q", want, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	expected := "# meeting\n\nDate: 17-02-2026\n\nDiscussed the rollout plan\n"
	if string(content) != expected {
		t.Errorf("unexpected content:\n%s", content)
	}
}

func TestCreate_RequiresMarkdownTitle(t *testing.T) {
	root := t.TempDir()

	_, err := Create(root, "meeting", "body", nil, time.Now())
	if err != ErrBadTitle {
		t.Errorf("expected ErrBadTitle, got %v", err)
	}
}

func TestCreate_FailsOnCollision(t *testing.T) {
	root := t.TempDir()
	at := time.Date(2026, 2, 17, 8, 15, 3, 0, time.UTC)

	if _, err := Create(root, "meeting.md", "first", nil, at); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := Create(root, "meeting.md", "second", nil, at)
	if err == nil {
		t.Fatal("expected error for same-second collision")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}

	// The original file is untouched.
	content, _ := os.ReadFile(filepath.Join(root, "2026", "02", "17-081503-meeting.md"))
	if !strings.Contains(string(content), "first") {
		t.Error("existing entry was overwritten")
	}
}

func TestCreate_SecondEntrySameDay(t *testing.T) {
	root := t.TempDir()

	if _, err := Create(root, "morning.md", "a", nil, time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// Month dir already exists; this must not fail.
	if _, err := Create(root, "evening.md", "b", nil, time.Date(2026, 2, 17, 20, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("second create: %v", err)
	}
}

func TestCreate_WithTags(t *testing.T) {
	root := t.TempDir()
	at := time.Date(2026, 2, 17, 8, 15, 3, 0, time.UTC)

	path, err := Create(root, "standup.md", "Sprint notes", []string{"work", "meetings"}, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, err := ReadEntry(path)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}

	if !entry.HasTag("work") || !entry.HasTag("meetings") {
		t.Errorf("expected tags, got %v", entry.Tags)
	}
	if entry.HasTag("personal") {
		t.Error("unexpected tag match")
	}
	if entry.Title != "standup" {
		t.Errorf("expected title from heading, got %q", entry.Title)
	}
}

func TestRoundTrip_NewThenGet(t *testing.T) {
	root := t.TempDir()
	at := time.Date(2026, 2, 17, 8, 15, 3, 0, time.UTC)

	path, err := Create(root, "meeting.md", "Round trip body", nil, at)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := Find(root, Selector{Day: 17, Month: 2, Year: 2026}, at)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if len(found) != 1 || found[0] != path {
		t.Fatalf("expected [%s], got %v", path, found)
	}

	entry, err := ReadEntry(found[0])
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}

	// Filename day and embedded date denote the same calendar day.
	if entry.Date.Year() != 2026 || entry.Date.Month() != time.February || entry.Date.Day() != 17 {
		t.Errorf("embedded date mismatch: %v", entry.Date)
	}
}
