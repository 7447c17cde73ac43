// Package engine implements the conversational core of leavechat: a keyword
// intent classifier, heuristic entity extractors, and the multi-turn dialogue
// state machine that collects and submits leave applications.
package engine

import "strings"

// Intent is a coarse category of user purpose selected by keyword matching.
type Intent string

const (
	IntentBalance  Intent = "balance"
	IntentApply    Intent = "apply"
	IntentTeam     Intent = "team"
	IntentSearch   Intent = "search"
	IntentHelp     Intent = "help"
	IntentCancel   Intent = "cancel"
	IntentGreeting Intent = "greeting"
	IntentUnknown  Intent = "unknown"
)

// intentRule associates an intent with its trigger phrases. Rules are
// evaluated in declaration order and the first hit wins, so the slice order
// encodes priority: task intents come before the generic greeting so that
// "hi, I need leave" classifies as apply.
type intentRule struct {
	intent   Intent
	keywords []string
}

var intentRules = []intentRule{
	{IntentBalance, []string{
		"balance", "remaining", "how many days", "days left", "available",
		"check", "status", "quota", "entitlement", "allowance",
	}},
	{IntentApply, []string{
		"apply", "request", "take leave", "need leave", "want leave",
		"book leave", "schedule leave", "planning leave", "going on leave",
		"sick leave", "casual leave", "earned leave", "annual leave",
	}},
	{IntentTeam, []string{
		"team", "statistics", "overview", "dashboard", "stats",
		"department", "group", "colleagues", "everyone",
	}},
	{IntentSearch, []string{
		"find", "search", "lookup", "locate", "who is", "contact",
		"employee", "staff", "person", "colleague",
	}},
	{IntentHelp, []string{
		"help", "what can you do", "commands", "options", "features",
		"assistance", "support", "guide", "how to",
	}},
	{IntentCancel, []string{
		"cancel", "stop", "abort", "quit", "exit", "never mind",
		"forget it", "start over",
	}},
	{IntentGreeting, []string{
		"hello", "hi", "hey", "good morning", "good afternoon",
		"good evening", "greetings",
	}},
}

// DetectIntent classifies a raw message into exactly one intent. Matching is
// lower-cased substring containment; messages matching nothing are unknown.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
