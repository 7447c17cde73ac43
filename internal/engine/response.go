package engine

// Status tags a response with the outcome of a submission attempt.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Variant hints how the display layer should render an action.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantOutline   Variant = "outline"
	VariantSecondary Variant = "secondary"
)

// CommandKind discriminates the tagged Command variants.
type CommandKind string

const (
	CmdSetIntent     CommandKind = "set_intent"
	CmdSetLeaveType  CommandKind = "set_leave_type"
	CmdOpenCalendar  CommandKind = "open_calendar"
	CmdConfirmSubmit CommandKind = "confirm_submit"
	CmdCancel        CommandKind = "cancel"
)

// Command is the serializable message an action button sends back into the
// state machine via Engine.Dispatch. Using explicit commands instead of
// captured callbacks keeps the action set inspectable and testable.
type Command struct {
	Kind      CommandKind `json:"kind"`
	Intent    Intent      `json:"intent,omitempty"`
	LeaveType string      `json:"leave_type,omitempty"`
}

// SetIntent re-enters the engine as if the user had expressed the intent.
func SetIntent(intent Intent) Command {
	return Command{Kind: CmdSetIntent, Intent: intent}
}

// SetLeaveType fills the pending leave type and advances to day collection.
func SetLeaveType(leaveType string) Command {
	return Command{Kind: CmdSetLeaveType, LeaveType: leaveType}
}

// OpenCalendar asks the display layer to present a date picker.
func OpenCalendar() Command {
	return Command{Kind: CmdOpenCalendar}
}

// ConfirmSubmit accepts the pending application and triggers submission.
func ConfirmSubmit() Command {
	return Command{Kind: CmdConfirmSubmit}
}

// Cancel abandons the conversation and resets the context.
func Cancel() Command {
	return Command{Kind: CmdCancel}
}

// Action is a clickable follow-up offered with a response.
type Action struct {
	Label   string
	Variant Variant
	Command Command
}

// Response is the engine's output contract for one turn: a message for the
// display layer to render verbatim, plus optional actions, a submission
// status tag, a date-picker request, and contextual suggestion chips.
type Response struct {
	Message      string
	Actions      []Action
	Status       Status
	ShowCalendar bool
	Suggestions  []string
}
