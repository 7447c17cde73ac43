package engine

import "testing"

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{name: "balance question", message: "What's my leave balance?", want: IntentBalance},
		{name: "days left", message: "how many days do I have left?", want: IntentBalance},
		{name: "apply", message: "I want to apply for leave", want: IntentApply},
		{name: "need leave", message: "need leave next week", want: IntentApply},
		{name: "leave type phrase", message: "I need 5 days sick leave", want: IntentApply},
		{name: "team stats", message: "Show team statistics", want: IntentTeam},
		{name: "search", message: "Find John Smith", want: IntentSearch},
		{name: "help", message: "what can you do?", want: IntentHelp},
		{name: "cancel", message: "never mind, forget it", want: IntentCancel},
		{name: "greeting", message: "good morning", want: IntentGreeting},
		{name: "gibberish", message: "qwertyuiop", want: IntentUnknown},
		{name: "empty", message: "", want: IntentUnknown},

		// Declaration order is priority: task intents beat the greeting.
		{name: "greeting plus task", message: "hi, I need leave", want: IntentApply},
		{name: "balance beats apply", message: "check my leave balance before I apply", want: IntentBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIntent(tt.message); got != tt.want {
				t.Errorf("DetectIntent(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}
