package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrkit/leavechat/internal/models"
)

// Directory is the employee lookup and balance collaborator.
type Directory interface {
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindByName(ctx context.Context, name string) (*models.Employee, error)
	Search(ctx context.Context, query string) ([]models.Employee, error)
	Suggest(ctx context.Context, query string, limit int) ([]models.Employee, error)
	Balance(emp *models.Employee, leaveType string) int
	TeamStats(ctx context.Context) (models.TeamStats, error)
}

// Submitter is the leave application submission collaborator.
type Submitter interface {
	Validate(ctx context.Context, emp *models.Employee, leaveType string, days int) (models.Validation, error)
	Submit(ctx context.Context, req models.LeaveRequest) (models.SubmissionResult, error)
}

// Engine is the per-session dialogue state machine. One Engine owns one
// Context; sessions must not share an instance. Turns are sequential: a
// turn's context mutations complete before the next turn starts, so the
// hosting display layer must not interleave Respond/Dispatch calls.
type Engine struct {
	dir    Directory
	sub    Submitter
	logger *slog.Logger
	now    func() time.Time
	conv   Context
}

// New creates an engine for a fresh conversation.
func New(dir Directory, sub Submitter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		dir:    dir,
		sub:    sub,
		logger: logger,
		now:    time.Now,
		conv:   newContext(),
	}
}

// Context returns a snapshot of the conversation state for inspection.
func (e *Engine) Context() Context {
	return e.conv
}

// Reset clears the conversation and returns the opening greeting.
func (e *Engine) Reset() *Response {
	return e.handleGreeting()
}

// Respond runs one turn: classify the message, extract entities, advance the
// state machine, and produce the next response. Extraction misses are never
// errors; they surface as re-prompts in the returned response.
func (e *Engine) Respond(ctx context.Context, message string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.conv.recordTurn(message, e.now())
	intent := DetectIntent(message)
	e.logger.Debug("chat turn",
		"intent", intent,
		"state", e.conv.State,
		"sentiment", e.conv.Sentiment,
	)

	switch intent {
	case IntentGreeting:
		return e.handleGreeting(), nil
	case IntentBalance:
		return e.handleBalance(ctx, message), nil
	case IntentApply:
		return e.handleApply(ctx, message), nil
	case IntentTeam:
		return e.handleTeam(ctx), nil
	case IntentSearch:
		return e.handleSearch(ctx, message), nil
	case IntentHelp:
		return e.handleHelp(), nil
	case IntentCancel:
		return e.handleCancel(), nil
	default:
		return e.handleFallback(ctx, message), nil
	}
}

// Dispatch runs an action-button command through the state machine. Every
// command resolves to a full Response, synchronous or not, so the display
// layer has a single uniform contract.
func (e *Engine) Dispatch(ctx context.Context, cmd Command) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.Debug("dispatch command", "kind", cmd.Kind, "state", e.conv.State)

	switch cmd.Kind {
	case CmdSetIntent:
		e.conv.State = StateInitial
		switch cmd.Intent {
		case IntentBalance:
			return e.handleBalance(ctx, ""), nil
		case IntentApply:
			return e.handleApply(ctx, ""), nil
		case IntentTeam:
			return e.handleTeam(ctx), nil
		case IntentSearch:
			return e.handleSearch(ctx, ""), nil
		case IntentHelp:
			return e.handleHelp(), nil
		default:
			return e.handleGreeting(), nil
		}

	case CmdSetLeaveType:
		// A leave type without an identity would let the pipeline run to a
		// summary it cannot build. Capture the type, ask for the employee.
		if e.conv.Employee == nil {
			e.conv.PendingLeaveType = cmd.LeaveType
			e.conv.State = StateWaitingName
			return &Response{
				Message: fmt.Sprintf("Got it, %s. Please provide your Employee ID or full name first:", cmd.LeaveType),
			}, nil
		}
		e.conv.PendingLeaveType = cmd.LeaveType
		e.conv.State = StateWaitingDays
		return &Response{
			Message: fmt.Sprintf("Great! %s selected. How many days would you like to apply for?", cmd.LeaveType),
		}, nil

	case CmdOpenCalendar:
		return e.calendarResponse(), nil

	case CmdConfirmSubmit:
		return e.submit(ctx), nil

	case CmdCancel:
		return e.handleGreeting(), nil

	default:
		return nil, fmt.Errorf("unknown command kind %q", cmd.Kind)
	}
}

// resolveEmployee is the best-effort identity cascade: ID extraction and
// lookup, then name extraction and lookup, then a fuzzy search over the
// whole message. Ambiguous matches are not disambiguated; the first hit
// wins.
func (e *Engine) resolveEmployee(ctx context.Context, message string) *models.Employee {
	if message == "" {
		return nil
	}

	if id := ExtractEmployeeID(message); id != "" {
		if emp, err := e.dir.FindByID(ctx, id); err == nil {
			return emp
		}
	}

	if name := ExtractName(message); name != "" {
		if emp, err := e.dir.FindByName(ctx, name); err == nil {
			return emp
		}
	}

	results, err := e.dir.Search(ctx, message)
	if err != nil {
		e.logger.Warn("employee search failed", "error", err)
		return nil
	}
	if len(results) > 0 {
		return &results[0]
	}
	return nil
}

// submit is the terminal action of the apply path: guard, validate against
// the balance, then hand off to the submission collaborator. Validation and
// collaborator failures are surfaced with retry actions and leave the
// context intact so the user can adjust and resubmit; only success clears
// the conversation.
func (e *Engine) submit(ctx context.Context) *Response {
	if !e.conv.readyToSubmit() {
		// Should be unreachable with correct transitions; fail safely.
		return e.missingInfo()
	}

	emp := e.conv.Employee
	emergency := e.conv.Sentiment == SentimentNegative

	validation, err := e.sub.Validate(ctx, emp, e.conv.PendingLeaveType, e.conv.PendingDays)
	if err != nil {
		e.logger.Error("balance validation failed", "employee", emp.ID, "error", err)
		return e.systemFailure()
	}
	if !validation.Valid {
		return &Response{
			Message: fmt.Sprintf("❌ Application failed: %s\n\nPlease check your leave balance and try again.", validation.Message),
			Status:  StatusRejected,
			Actions: []Action{
				{Label: "Check Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
				{Label: "Apply Again", Variant: VariantDefault, Command: SetIntent(IntentApply)},
			},
		}
	}

	result, err := e.sub.Submit(ctx, models.LeaveRequest{
		Employee:  emp,
		LeaveType: e.conv.PendingLeaveType,
		Days:      e.conv.PendingDays,
		StartDate: e.conv.PendingStartDate,
		EndDate:   e.conv.PendingEndDate,
		Reason:    e.conv.PendingReason,
		Emergency: emergency,
	})
	if err != nil {
		e.logger.Error("leave submission failed", "employee", emp.ID, "error", err)
		return e.systemFailure()
	}
	if !result.Success {
		return &Response{
			Message: fmt.Sprintf("❌ Application failed: %s\n\nPlease check your leave balance and try again.", result.Message),
			Status:  StatusRejected,
			Actions: []Action{
				{Label: "Check Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
				{Label: "Apply Again", Variant: VariantDefault, Command: SetIntent(IntentApply)},
			},
		}
	}

	header := "✅ Hey! Your leave application was submitted successfully!"
	statusLine := "Pending Approval"
	if emergency {
		header = "✅ Emergency leave request submitted!"
		statusLine = "Priority Pending"
	}

	message := fmt.Sprintf("%s\n\n"+
		"• Application ID - %s\n"+
		"• Type - %s\n"+
		"• Duration - %d Days\n"+
		"• Status - %s\n\n"+
		"Your manager will review this request. You'll be notified when it's processed!",
		header, result.Application.ID, e.conv.PendingLeaveType, e.conv.PendingDays, statusLine)

	e.conv.reset()
	return &Response{Message: message, Status: StatusPending}
}

func (e *Engine) missingInfo() *Response {
	return &Response{
		Message: "I need more information to process your leave request. Please provide your name, leave type, and number of days.",
	}
}

func (e *Engine) systemFailure() *Response {
	return &Response{
		Message: "❌ System error occurred. Please try again or contact IT support if the problem persists.",
		Status:  StatusRejected,
		Actions: []Action{
			{Label: "Retry Application", Variant: VariantDefault, Command: SetIntent(IntentApply)},
			{Label: "Check Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
		},
	}
}
