package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/hrkit/leavechat/internal/engine"
)

func TestMonthCalendar(t *testing.T) {
	// August 2025 starts on a Friday.
	cal := monthCalendar(time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC))

	lines := strings.Split(cal, "\n")
	if lines[0] != "August 2025" {
		t.Errorf("header = %q, want August 2025", lines[0])
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Errorf("weekday row = %q", lines[1])
	}
	if lines[2] != "             1  2  3" {
		t.Errorf("first week = %q", lines[2])
	}
	if !strings.Contains(cal, "25 26 27 28 29 30 31") {
		t.Errorf("missing final week in:\n%s", cal)
	}
}

func TestMonthCalendar_MondayStart(t *testing.T) {
	// September 2025 starts on a Monday: no leading gap.
	cal := monthCalendar(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	lines := strings.Split(cal, "\n")
	if lines[2] != " 1  2  3  4  5  6  7" {
		t.Errorf("first week = %q", lines[2])
	}
}

func TestAppendResponseShowCalendar(t *testing.T) {
	m := chatModel{theme: defaultTheme}

	m.appendResponse(&engine.Response{Message: "Pick your dates.", ShowCalendar: true})

	joined := strings.Join(m.lines, "\n")
	if !strings.Contains(joined, "Mo Tu We Th Fr Sa Su") {
		t.Error("calendar grid missing from transcript")
	}

	// Without the flag no calendar is rendered.
	m = chatModel{theme: defaultTheme}
	m.appendResponse(&engine.Response{Message: "All done."})
	if strings.Contains(strings.Join(m.lines, "\n"), "Mo Tu We") {
		t.Error("calendar rendered without ShowCalendar")
	}
}
