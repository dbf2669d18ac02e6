package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/storage"
)

func sampleRuns() []storage.Run {
	at := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	return []storage.Run{
		{ID: 2, Outcome: "won", BlocksDestroyed: 45, LivesLeft: 2, Duration: 95 * time.Second, Difficulty: "hard", Source: "ssh", CreatedAt: at},
		{ID: 1, Outcome: "lost", BlocksDestroyed: 7, Duration: 4 * time.Second, Difficulty: "easy", Source: "local", CreatedAt: at},
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{4 * time.Second, "0:04"},
		{95 * time.Second, "1:35"},
		{61*time.Minute + 500*time.Millisecond, "61:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}

func TestHistoryRows(t *testing.T) {
	rows := historyRows(sampleRuns())
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	want := []string{"2", "won", "45", "2", "1:35", "hard", "ssh", "Mar 14 09:26"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("column %d = %q, expected %q", i, cell, want[i])
		}
	}
	if len(rows[0]) != len(historyColumns) {
		t.Errorf("row has %d cells for %d columns", len(rows[0]), len(historyColumns))
	}
}

func TestFormatRuns(t *testing.T) {
	if got := FormatRuns(nil, nil); got != "No runs recorded yet.\n" {
		t.Errorf("FormatRuns(nil) = %q", got)
	}

	out := FormatRuns(sampleRuns(), &storage.Summary{Runs: 2, Wins: 1, TotalBlocks: 52, MostBlocks: 45})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, expected summary, blank, header and 2 runs:\n%s", len(lines), out)
	}
	if lines[0] != "2 runs, 1 won, 52 blocks destroyed, best 45" {
		t.Errorf("summary line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "2     won        45") {
		t.Errorf("first run line = %q", lines[3])
	}
	if !strings.Contains(lines[4], "2026-03-14 09:26") {
		t.Errorf("second run line = %q", lines[4])
	}
}

func TestHistoryModel(t *testing.T) {
	m := NewHistoryModel(sampleRuns(), &storage.Summary{Runs: 2, Wins: 1}, 100, 30)

	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") {
		t.Error("view is missing its title")
	}
	if !strings.Contains(view, "hard") {
		t.Error("view is missing the run table")
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("a quitting browser renders nothing")
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	m := NewHistoryModel(nil, nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("expected the empty-ledger message")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := next.(HistoryModel).width; got != 120 {
		t.Errorf("width = %d, expected 120", got)
	}
}
