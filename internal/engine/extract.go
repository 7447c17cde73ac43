package engine

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hrkit/leavechat/internal/models"
)

// Requested day counts above this are treated as an extraction miss and
// re-prompted rather than silently accepted.
const maxLeaveDays = 30

var (
	// Employee IDs like EMP001, E001, ID123 or bare 3+ digit runs.
	employeeIDPattern = regexp.MustCompile(`(?i)(?:EMP|E|ID)?\d{3,}`)

	numberPattern = regexp.MustCompile(`\d+`)

	alphabeticToken = regexp.MustCompile(`^[A-Za-z]+$`)
)

// ExtractName scans whitespace-delimited tokens for capitalized alphabetic
// words longer than two characters and joins the first two into a name.
// Returns "" when fewer than two qualify. Single-word names and lowercase
// prefixes are a known miss.
func ExtractName(message string) string {
	var candidates []string
	for _, word := range strings.Fields(message) {
		if len(word) <= 2 || !alphabeticToken.MatchString(word) {
			continue
		}
		if !unicode.IsUpper(rune(word[0])) {
			continue
		}
		candidates = append(candidates, word)
		if len(candidates) == 2 {
			return strings.Join(candidates, " ")
		}
	}
	return ""
}

// ExtractEmployeeID returns the first employee-ID-shaped token in the
// message, or "".
func ExtractEmployeeID(message string) string {
	return employeeIDPattern.FindString(message)
}

// ExtractLeaveType maps leave-type keywords to their canonical labels.
// Sick is checked before casual before earned; the first hit wins.
func ExtractLeaveType(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "sick"):
		return models.LeaveSick
	case strings.Contains(lower, "casual"):
		return models.LeaveCasual
	case strings.Contains(lower, "earned"), strings.Contains(lower, "annual"):
		return models.LeaveEarned
	default:
		return ""
	}
}

// ExtractDays returns the first integer in the message when it falls in
// (0, maxLeaveDays], otherwise 0. An out-of-range first number is a miss
// even if a later number would qualify.
func ExtractDays(message string) int {
	match := numberPattern.FindString(message)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil || n <= 0 || n > maxLeaveDays {
		return 0
	}
	return n
}
