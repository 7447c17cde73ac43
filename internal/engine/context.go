package engine

import (
	"time"

	"github.com/hrkit/leavechat/internal/models"
)

// State is the conversation phase: the current position in the multi-turn
// pipeline, gating which field is being collected.
type State string

const (
	StateInitial             State = "initial"
	StateWaitingName         State = "waiting_for_name"
	StateWaitingLeaveType    State = "waiting_for_leave_type"
	StateWaitingDays         State = "waiting_for_days"
	StateWaitingDates        State = "waiting_for_dates"
	StateWaitingReason       State = "waiting_for_reason"
	StateWaitingConfirmation State = "waiting_for_confirmation"
)

// historyLimit bounds the retained raw utterances; the oldest is discarded
// once the limit is exceeded.
const historyLimit = 10

// Context is the per-session conversation state, owned exclusively by one
// Engine and mutated in place across turns.
type Context struct {
	Employee         *models.Employee
	State            State
	PendingLeaveType string
	PendingDays      int
	PendingStartDate string
	PendingEndDate   string
	PendingReason    string
	History          []string
	Sentiment        Sentiment
	LastInteraction  time.Time
}

func newContext() Context {
	return Context{
		State:     StateInitial,
		Sentiment: SentimentNeutral,
	}
}

// recordTurn appends the raw utterance to the bounded history and recomputes
// the per-turn sentiment. Sentiment is per-message, not cumulative.
func (c *Context) recordTurn(message string, now time.Time) {
	c.History = append(c.History, message)
	if len(c.History) > historyLimit {
		c.History = c.History[len(c.History)-historyLimit:]
	}
	c.Sentiment = AnalyzeSentiment(message)
	c.LastInteraction = now
}

// reset returns the context to its initial values, dropping the employee,
// every pending field, and the history.
func (c *Context) reset() {
	*c = newContext()
}

// readyToSubmit reports whether every field a submission needs is present.
func (c *Context) readyToSubmit() bool {
	return c.Employee != nil &&
		c.PendingLeaveType != "" &&
		c.PendingDays > 0 &&
		c.PendingStartDate != "" &&
		c.PendingReason != ""
}
