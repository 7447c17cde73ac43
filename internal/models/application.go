package models

import "time"

// ApplicationStatus is the lifecycle state of a submitted leave application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusApproved ApplicationStatus = "Approved"
	StatusRejected ApplicationStatus = "Rejected"
)

// LeaveRequest carries the fields the dialogue engine assembles before
// handing off to the submission service. Dates use the DD/MM/YYYY format
// produced by the date extractor; EndDate and Reason may be empty.
type LeaveRequest struct {
	Employee  *Employee
	LeaveType string
	Days      int
	StartDate string
	EndDate   string
	Reason    string
	Emergency bool
}

// LeaveApplication is the persisted record created from a LeaveRequest.
type LeaveApplication struct {
	ID            string            `json:"application_id"`
	EmployeeID    string            `json:"employee_id"`
	EmployeeName  string            `json:"employee_name"`
	LeaveType     string            `json:"leave_type"`
	Days          int               `json:"days"`
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	Reason        string            `json:"reason,omitempty"`
	Emergency     bool              `json:"emergency"`
	Status        ApplicationStatus `json:"status"`
	BalanceBefore int               `json:"balance_before"`
	SubmittedAt   time.Time         `json:"submitted_at"`
}

// Validation is the result of checking a requested day count against the
// employee's remaining balance for the chosen leave type.
type Validation struct {
	Valid     bool
	Available int
	Message   string
}

// SubmissionResult reports the outcome of a submission attempt.
// Application is nil unless Success is true.
type SubmissionResult struct {
	Success     bool
	Application *LeaveApplication
	Message     string
}
