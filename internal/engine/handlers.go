package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hrkit/leavechat/internal/models"
)

var searchBoilerplate = regexp.MustCompile(`(?i)find|search|lookup|who is|contact`)

// handleGreeting clears the context and opens a fresh conversation.
// Greetings always reset: "hi" mid-flow means the user started over.
func (e *Engine) handleGreeting() *Response {
	e.conv.reset()
	return &Response{
		Message: timeGreeting(e.now()) + " I can help you check leave balances, apply for leave, view team stats, or find employees. What do you need?",
		Actions: []Action{
			{Label: "Check Balance", Variant: VariantDefault, Command: SetIntent(IntentBalance)},
			{Label: "Apply for Leave", Variant: VariantOutline, Command: SetIntent(IntentApply)},
			{Label: "Search Employees", Variant: VariantOutline, Command: SetIntent(IntentSearch)},
		},
	}
}

func (e *Engine) handleCancel() *Response {
	e.conv.reset()
	return &Response{
		Message: "Okay, I've reset our conversation. What would you like to do?",
		Actions: []Action{
			{Label: "Check Balance", Variant: VariantDefault, Command: SetIntent(IntentBalance)},
			{Label: "Apply for Leave", Variant: VariantOutline, Command: SetIntent(IntentApply)},
		},
	}
}

func (e *Engine) handleBalance(ctx context.Context, message string) *Response {
	if e.conv.Employee == nil {
		if emp := e.resolveEmployee(ctx, message); emp != nil {
			e.conv.Employee = emp
			return e.balanceResponse(emp)
		}

		e.conv.State = StateWaitingName
		return &Response{
			Message: "I'd be happy to check your leave balance! Please provide your Employee ID or full name:",
		}
	}

	return e.balanceResponse(e.conv.Employee)
}

func (e *Engine) balanceResponse(emp *models.Employee) *Response {
	sick := e.dir.Balance(emp, models.LeaveSick)
	casual := e.dir.Balance(emp, models.LeaveCasual)
	earned := e.dir.Balance(emp, models.LeaveEarned)

	alert := ""
	if sick < 3 {
		alert = "\n⚠️ Your sick leave is running low!"
	}

	return &Response{
		Message: fmt.Sprintf("Hey %s! Your leave balances are:\n\n"+
			"• Sick Leave - %d Days\n"+
			"• Casual Leave - %d Days\n"+
			"• Earned Leave - %d Days\n\n"+
			"Total: %d days available%s",
			emp.FirstName(), sick, casual, earned, sick+casual+earned, alert),
		Actions: []Action{
			{Label: "Apply for Leave", Variant: VariantDefault, Command: SetIntent(IntentApply)},
			{Label: "View Team Stats", Variant: VariantOutline, Command: SetIntent(IntentTeam)},
		},
	}
}

// handleApply drives the field-collection pipeline: employee, leave type,
// day count, dates, reason, confirmation. Each call checks fields
// top-to-bottom and stops at the first missing one, so fields captured
// proactively (a date range or leave type mentioned early) skip their
// questions on the next pass.
func (e *Engine) handleApply(ctx context.Context, message string) *Response {
	if e.conv.Employee == nil {
		if emp := e.resolveEmployee(ctx, message); emp != nil {
			e.conv.Employee = emp
		}

		if e.conv.Employee == nil {
			e.conv.State = StateWaitingName
			if e.conv.Sentiment == SentimentNegative {
				return &Response{
					Message: "I understand this is urgent! Let me help you apply for emergency leave quickly. Please provide your Employee ID or full name:",
				}
			}
			return &Response{
				Message: "I'll help you apply for leave. Please provide your Employee ID or full name:",
			}
		}
	}

	// Proactive date capture: a range given before the dates question sets
	// both bounds and the day count in one go.
	if dates := ExtractDates(message, e.now()); dates.Start != "" && e.conv.PendingStartDate == "" {
		e.conv.PendingStartDate = dates.Start
		if dates.End != "" && dates.End != dates.Start {
			e.conv.PendingEndDate = dates.End
			e.conv.PendingDays = LeaveDays(dates.Start, dates.End)
		}
	}

	if e.conv.PendingLeaveType == "" {
		if extracted := ExtractLeaveType(message); extracted != "" {
			e.conv.PendingLeaveType = extracted
		} else {
			e.conv.State = StateWaitingLeaveType
			return &Response{
				Message: fmt.Sprintf("Hi %s! What type of leave would you like to apply for?", e.conv.Employee.FirstName()),
				Actions: leaveTypeActions(),
			}
		}
	}

	if e.conv.PendingDays == 0 {
		if extracted := ExtractDays(message); extracted > 0 {
			e.conv.PendingDays = extracted
		} else {
			e.conv.State = StateWaitingDays
			return &Response{
				Message: fmt.Sprintf("How many days of %s would you like to apply for?", e.conv.PendingLeaveType),
			}
		}
	}

	if e.conv.PendingStartDate == "" {
		e.conv.State = StateWaitingDates
		return &Response{
			Message: fmt.Sprintf("When would you like to start your %d-day %s?\n\n"+
				"Please enter dates in numbers only:\n"+
				"• Start date (DD/MM/YYYY): Example - 15/08/2025\n"+
				"• Or date range: 15/08/2025 to 18/08/2025",
				e.conv.PendingDays, e.conv.PendingLeaveType),
			Actions: []Action{
				{Label: "📅 Open Calendar", Variant: VariantOutline, Command: OpenCalendar()},
			},
		}
	}

	if e.conv.PendingReason == "" {
		e.conv.State = StateWaitingReason
		return &Response{
			Message: fmt.Sprintf("Please provide a reason for your %s:", e.conv.PendingLeaveType),
		}
	}

	if e.conv.State != StateWaitingConfirmation {
		return e.confirmation()
	}

	return e.submit(ctx)
}

// confirmation emits the structured summary and moves to the confirmation
// phase. Only the apply pipeline calls this, and only with all fields set.
func (e *Engine) confirmation() *Response {
	// The summary needs an identity. Pending fields can exist without one
	// when state was built through fallbacks, so check before dereferencing.
	if e.conv.Employee == nil {
		return e.missingInfo()
	}

	e.conv.State = StateWaitingConfirmation

	start := e.conv.PendingStartDate
	if start == "" {
		start = "Not specified"
	}
	end := e.conv.PendingEndDate
	if end == "" {
		end = start
	}
	reason := e.conv.PendingReason
	if reason == "" {
		reason = "No reason provided"
	}

	return &Response{
		Message: fmt.Sprintf("Hey! Please confirm your leave request:\n\n"+
			"• Employee - %s\n"+
			"• Type - %s\n"+
			"• Duration - %d Days\n"+
			"• Start Date - %s\n"+
			"• End Date - %s\n"+
			"• Reason - %s\n\n"+
			"Ready to submit?",
			e.conv.Employee.Name, e.conv.PendingLeaveType, e.conv.PendingDays, start, end, reason),
		Actions: []Action{
			{Label: "Yes, Submit", Variant: VariantDefault, Command: ConfirmSubmit()},
			{Label: "Cancel", Variant: VariantOutline, Command: Cancel()},
		},
	}
}

// handleTeam is stateless: it reads aggregates and mutates nothing.
func (e *Engine) handleTeam(ctx context.Context) *Response {
	stats, err := e.dir.TeamStats(ctx)
	if err != nil {
		e.logger.Warn("team stats lookup failed", "error", err)
		return &Response{
			Message: "Sorry, I couldn't load team statistics right now. Please try again.",
			Actions: []Action{
				{Label: "Try Again", Variant: VariantDefault, Command: SetIntent(IntentTeam)},
			},
		}
	}

	health := "✅ Team has healthy leave balance"
	if stats.AvgSickLeave < 5 {
		health = "⚠️ Some team members are low on sick leave"
	}

	return &Response{
		Message: fmt.Sprintf("Hey! Here are your team statistics:\n\n"+
			"• Total Employees - %d people\n\n"+
			"Average leave balances:\n"+
			"• Sick Leave - %.1f Days\n"+
			"• Casual Leave - %.1f Days\n"+
			"• Earned Leave - %.1f Days\n\n"+
			"%s",
			stats.TotalEmployees, stats.AvgSickLeave, stats.AvgCasualLeave, stats.AvgEarnedLeave, health),
		Actions: []Action{
			{Label: "Search Employee", Variant: VariantOutline, Command: SetIntent(IntentSearch)},
			{Label: "Apply for Leave", Variant: VariantDefault, Command: SetIntent(IntentApply)},
		},
	}
}

func (e *Engine) handleSearch(ctx context.Context, message string) *Response {
	term := strings.TrimSpace(searchBoilerplate.ReplaceAllString(message, ""))
	if term == "" {
		return &Response{
			Message: "Who are you looking for? You can search by name, email, or department.",
		}
	}

	results, err := e.dir.Search(ctx, term)
	if err != nil {
		e.logger.Warn("employee search failed", "query", term, "error", err)
		results = nil
	}

	if len(results) == 0 {
		return &Response{
			Message: fmt.Sprintf("No results found for %q. Try checking the spelling or using partial names.", term),
			Actions: []Action{
				{Label: "New Search", Variant: VariantDefault, Command: SetIntent(IntentSearch)},
				{Label: "Check My Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
			},
		}
	}

	var lines []string
	for i, emp := range results {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("• %s - %s, %d Days Leave Available", emp.Name, emp.Email, emp.TotalLeave()))
	}
	more := ""
	if len(results) > 3 {
		more = fmt.Sprintf("\n\n*Showing top 3 of %d results*", len(results))
	}

	return &Response{
		Message: fmt.Sprintf("Hey! Found %d employee(s):\n\n%s%s", len(results), strings.Join(lines, "\n"), more),
		Actions: []Action{
			{Label: "Search Again", Variant: VariantOutline, Command: SetIntent(IntentSearch)},
			{Label: "Check Leave Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
			{Label: "Apply for Leave", Variant: VariantDefault, Command: SetIntent(IntentApply)},
		},
	}
}

func (e *Engine) handleHelp() *Response {
	return &Response{
		Message: "Hey! I can help you with:\n\n" +
			"• Check Leave Balance - \"What's my balance?\"\n" +
			"• Apply for Leave - \"I need 3 days sick leave\"\n" +
			"• Team Statistics - \"Show team stats\"\n" +
			"• Find Employees - \"Find John Smith\"\n\n" +
			"Just ask naturally - I understand!",
		Actions: []Action{
			{Label: "Check My Balance", Variant: VariantDefault, Command: SetIntent(IntentBalance)},
			{Label: "Apply for Leave", Variant: VariantOutline, Command: SetIntent(IntentApply)},
			{Label: "Team Stats", Variant: VariantOutline, Command: SetIntent(IntentTeam)},
			{Label: "Search People", Variant: VariantOutline, Command: SetIntent(IntentSearch)},
		},
	}
}

// handleFallback covers input that matched no intent. While a waiting_for_*
// phase holds, the matching extractor gets one more try before a clarifying
// re-prompt; the phase is sticky until satisfied or cancelled.
func (e *Engine) handleFallback(ctx context.Context, message string) *Response {
	switch e.conv.State {
	case StateWaitingName:
		return e.fallbackName(ctx, message)
	case StateWaitingLeaveType:
		return e.fallbackLeaveType(message)
	case StateWaitingDays:
		return e.fallbackDays(message)
	case StateWaitingDates:
		return e.fallbackDates(message)
	case StateWaitingReason:
		return e.fallbackReason(message)
	case StateWaitingConfirmation:
		if resp := e.fallbackConfirmation(ctx, message); resp != nil {
			return resp
		}
	}

	var suggestions []string
	if e.shouldSuggest() {
		suggestions = e.contextualSuggestions()
	}

	opening := "I'm not sure I understand. Here's what I can help with:"
	if e.conv.Sentiment == SentimentNegative {
		opening = "I sense this might be urgent! Let me help you quickly."
	}

	return &Response{
		Message: opening + "\n\n" +
			"• \"Check my leave balance\"\n" +
			"• \"I need 2 days sick leave\"\n" +
			"• \"Show team statistics\"\n" +
			"• \"Find John Smith\"",
		Actions: []Action{
			{Label: "Check Balance", Variant: VariantDefault, Command: SetIntent(IntentBalance)},
			{Label: "Apply for Leave", Variant: VariantOutline, Command: SetIntent(IntentApply)},
			{Label: "Get Help", Variant: VariantOutline, Command: SetIntent(IntentHelp)},
		},
		Suggestions: suggestions,
	}
}

func (e *Engine) fallbackName(ctx context.Context, message string) *Response {
	if emp := e.resolveEmployee(ctx, message); emp != nil {
		e.conv.Employee = emp
		e.conv.State = StateInitial
		return e.balanceResponse(emp)
	}

	suggestions, err := e.dir.Suggest(ctx, message, 3)
	if err != nil {
		e.logger.Warn("suggestion lookup failed", "error", err)
	}
	if len(suggestions) > 0 {
		var lines []string
		for i, emp := range suggestions {
			lines = append(lines, fmt.Sprintf("%d. %s (ID: %s)", i+1, emp.Name, emp.ID))
		}
		return &Response{
			Message: fmt.Sprintf("Couldn't find %q. Did you mean one of these?\n\n%s\n\nPlease provide your Employee ID or full name.",
				message, strings.Join(lines, "\n")),
		}
	}

	return &Response{
		Message: fmt.Sprintf("Employee %q not found. Please provide a valid Employee ID (e.g., EMP001) or full name (e.g., John Smith).", message),
	}
}

func (e *Engine) fallbackLeaveType(message string) *Response {
	if leaveType := ExtractLeaveType(message); leaveType != "" {
		e.conv.PendingLeaveType = leaveType
		e.conv.State = StateWaitingDays
		return &Response{
			Message: fmt.Sprintf("Great! %s selected. How many days would you like to apply for?", leaveType),
		}
	}

	return &Response{
		Message: "Please choose a valid leave type:",
		Actions: leaveTypeActions(),
	}
}

func (e *Engine) fallbackDays(message string) *Response {
	if days := ExtractDays(message); days > 0 {
		e.conv.PendingDays = days
		e.conv.State = StateWaitingDates
		return &Response{
			Message: fmt.Sprintf("Perfect! %d days of %s confirmed. When would you like to start? (e.g., \"20/12/2025\", \"tomorrow\")",
				days, e.conv.PendingLeaveType),
		}
	}

	return &Response{
		Message: "Please specify how many days you'd like to apply for (e.g., \"3 days\").",
	}
}

func (e *Engine) fallbackDates(message string) *Response {
	dates := ExtractDates(message, e.now())
	if dates.Start == "" {
		return &Response{
			Message: "Please provide a valid date in DD/MM/YYYY format.\n\n" +
				"Examples:\n" +
				"• Single date: 15/08/2025\n" +
				"• Date range: 15/08/2025 to 18/08/2025",
			Actions: []Action{
				{Label: "📅 Open Calendar", Variant: VariantOutline, Command: OpenCalendar()},
			},
		}
	}

	e.conv.PendingStartDate = dates.Start
	e.conv.PendingEndDate = dates.End
	if e.conv.PendingEndDate == "" {
		e.conv.PendingEndDate = dates.Start
	}

	if e.conv.PendingReason == "" {
		e.conv.State = StateWaitingReason
		return &Response{
			Message: fmt.Sprintf("Great! I've got your dates: %s.\n\nNow, please provide a reason for your %s:",
				formatRange(dates), e.conv.PendingLeaveType),
		}
	}

	return e.confirmation()
}

func (e *Engine) fallbackReason(message string) *Response {
	reason := strings.TrimSpace(message)
	if reason == "" {
		return &Response{
			Message: fmt.Sprintf("Please provide a reason for your %s:", e.conv.PendingLeaveType),
		}
	}

	e.conv.PendingReason = reason
	return e.confirmation()
}

// fallbackConfirmation interprets yes/no answers in the confirmation phase.
// Returns nil for anything else so the generic fallback can take over.
func (e *Engine) fallbackConfirmation(ctx context.Context, message string) *Response {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "yes") || strings.Contains(lower, "confirm") || strings.Contains(lower, "submit") {
		return e.submit(ctx)
	}

	if strings.Contains(lower, "no") || strings.Contains(lower, "cancel") {
		e.conv.reset()
		return &Response{
			Message: "Leave application cancelled. What would you like to do instead?",
			Actions: []Action{
				{Label: "New Application", Variant: VariantDefault, Command: SetIntent(IntentApply)},
				{Label: "Check Balance", Variant: VariantOutline, Command: SetIntent(IntentBalance)},
			},
		}
	}

	return nil
}

func (e *Engine) calendarResponse() *Response {
	return &Response{
		Message: "📅 Calendar\n\n" +
			"Please select your dates using the calendar below, or type them manually in DD/MM/YYYY format:\n\n" +
			"Examples:\n" +
			"• Single day: 15/08/2025\n" +
			"• Date range: 15/08/2025 to 18/08/2025",
		ShowCalendar: true,
	}
}

func (e *Engine) shouldSuggest() bool {
	return len(e.conv.History) > 2 && e.conv.Sentiment != SentimentNegative
}

// contextualSuggestions builds up to three follow-up hints from the bounded
// history. Heuristic only; never used for generation.
func (e *Engine) contextualSuggestions() []string {
	var suggestions []string

	if e.conv.Employee != nil {
		suggestions = append(suggestions,
			fmt.Sprintf("Check %s's balance", e.conv.Employee.Name),
			"Apply for leave")
	}

	for _, msg := range e.conv.History {
		if strings.Contains(strings.ToLower(msg), "team") {
			suggestions = append(suggestions, "Show team statistics")
			break
		}
	}

	suggestions = append(suggestions, "Search employees", "Get help")
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func leaveTypeActions() []Action {
	return []Action{
		{Label: "Sick Leave", Variant: VariantOutline, Command: SetLeaveType(models.LeaveSick)},
		{Label: "Casual Leave", Variant: VariantOutline, Command: SetLeaveType(models.LeaveCasual)},
		{Label: "Earned Leave", Variant: VariantOutline, Command: SetLeaveType(models.LeaveEarned)},
	}
}

func timeGreeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good morning!"
	case hour < 17:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}
