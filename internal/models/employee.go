// Package models defines the domain types shared by the leavechat engine
// and its collaborators.
package models

import "strings"

// Canonical leave type labels as accepted from chat input and stored on
// applications.
const (
	LeaveSick   = "sick leave"
	LeaveCasual = "casual leave"
	LeaveEarned = "earned leave"
)

// Employee is a directory record with its three independent leave balances.
// Balances are decremented by the approval workflow, not by the chat engine.
type Employee struct {
	ID          string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	SickLeave   int    `json:"sick_leave"`
	CasualLeave int    `json:"casual_leave"`
	EarnedLeave int    `json:"earned_leave"`
}

// FirstName returns the first whitespace-delimited part of the employee name.
func (e *Employee) FirstName() string {
	parts := strings.Fields(e.Name)
	if len(parts) == 0 {
		return e.Name
	}
	return parts[0]
}

// TotalLeave is the sum of all three balances.
func (e *Employee) TotalLeave() int {
	return e.SickLeave + e.CasualLeave + e.EarnedLeave
}

// TeamStats aggregates leave balances across the whole directory.
// Averages are rounded to one decimal place.
type TeamStats struct {
	TotalEmployees int     `json:"total_employees"`
	AvgSickLeave   float64 `json:"avg_sick_leave"`
	AvgCasualLeave float64 `json:"avg_casual_leave"`
	AvgEarnedLeave float64 `json:"avg_earned_leave"`
}
