package engine

import (
	"testing"

	"github.com/hrkit/leavechat/internal/models"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "full name", message: "My name is John Smith", want: "John Smith"},
		{name: "extra words", message: "Priya Sharma from accounts", want: "Priya Sharma"},
		{name: "single word", message: "I'm John", want: ""},
		{name: "lowercase", message: "john smith here", want: ""},
		{name: "short tokens skipped", message: "It is Jo Li and Maria Garcia", want: "Maria Garcia"},
		{name: "empty", message: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractName(tt.message); got != tt.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractEmployeeID(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"my id is EMP001", "EMP001"},
		{"E123 here", "E123"},
		{"ID4567", "ID4567"},
		{"it's 001", "001"},
		{"no id at all", ""},
		{"too short 12", ""},
	}

	for _, tt := range tests {
		if got := ExtractEmployeeID(tt.message); got != tt.want {
			t.Errorf("ExtractEmployeeID(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractLeaveType(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I'm feeling sick", models.LeaveSick},
		{"casual day off", models.LeaveCasual},
		{"earned leave please", models.LeaveEarned},
		{"annual vacation", models.LeaveEarned},
		{"no type here", ""},

		// Sick is checked before casual before earned.
		{"sick or casual, whichever", models.LeaveSick},
		{"casual or earned", models.LeaveCasual},
	}

	for _, tt := range tests {
		if got := ExtractLeaveType(tt.message); got != tt.want {
			t.Errorf("ExtractLeaveType(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestExtractDays(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"3 days please", 3},
		{"I need 30 days", 30},
		{"just 1", 1},
		{"no numbers", 0},
		{"0 days", 0},

		// Out of range is a miss, forcing a re-prompt.
		{"35 days", 0},
		{"100 days", 0},
	}

	for _, tt := range tests {
		if got := ExtractDays(tt.message); got != tt.want {
			t.Errorf("ExtractDays(%q) = %d, want %d", tt.message, got, tt.want)
		}
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		message string
		want    Sentiment
	}{
		{"thanks, that's great!", SentimentPositive},
		{"this is urgent, I have a problem", SentimentNegative},
		{"I need some leave", SentimentNeutral},
		{"", SentimentNeutral},

		// "sick" counts as a negative cue even as a leave type.
		{"I need sick leave", SentimentNegative},
		// One from each list ties back to neutral.
		{"please help, this is urgent", SentimentNeutral},
	}

	for _, tt := range tests {
		if got := AnalyzeSentiment(tt.message); got != tt.want {
			t.Errorf("AnalyzeSentiment(%q) = %s, want %s", tt.message, got, tt.want)
		}
	}
}
