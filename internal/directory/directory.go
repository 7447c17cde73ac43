// Package directory implements the employee lookup and balance collaborator:
// a read-only, CSV-backed store with exact, partial, and fuzzy lookups plus
// team-wide aggregates.
package directory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/hrkit/leavechat/internal/models"
)

// Sentinel errors for directory lookups.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotFound indicates no employee matched the lookup.
	ErrNotFound = errors.New("employee not found")
)

// maxSuggestDistance bounds how far a levenshtein match may be from the
// query before it stops being a useful "did you mean" suggestion.
const maxSuggestDistance = 5

// Store holds the loaded employee records. It is safe for concurrent reads;
// the record set is replaced wholesale by Load/SetEmployees, never mutated.
type Store struct {
	mu        sync.RWMutex
	employees []models.Employee
}

// NewStore creates an empty store. Call LoadFile or SetEmployees before use.
func NewStore() *Store {
	return &Store{}
}

// SetEmployees replaces the record set. Intended for tests and seeding.
func (s *Store) SetEmployees(employees []models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append([]models.Employee(nil), employees...)
}

// Count returns the number of loaded employees.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// All returns a copy of every employee record.
func (s *Store) All(ctx context.Context) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Employee(nil), s.employees...), nil
}

// FindByID looks up an employee by ID. Matching is case-insensitive; a
// bare-digit query (e.g. "001") also matches an ID carrying a prefix
// (e.g. "EMP001").
func (s *Store) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	want := strings.ToUpper(strings.TrimSpace(id))
	if want == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.employees {
		have := strings.ToUpper(s.employees[i].ID)
		if have == want || strings.HasSuffix(have, want) {
			emp := s.employees[i]
			return &emp, nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// FindByName returns the first employee whose name contains the query,
// case-insensitively.
func (s *Store) FindByName(ctx context.Context, name string) (*models.Employee, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.employees {
		if strings.Contains(strings.ToLower(s.employees[i].Name), want) {
			emp := s.employees[i]
			return &emp, nil
		}
	}
	return nil, fmt.Errorf("%w: name %q", ErrNotFound, name)
}

// FindByEmail returns the first employee whose email contains the query.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	want := strings.ToLower(strings.TrimSpace(email))
	if want == "" {
		return nil, fmt.Errorf("%w: empty email", ErrNotFound)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.employees {
		if strings.Contains(strings.ToLower(s.employees[i].Email), want) {
			emp := s.employees[i]
			return &emp, nil
		}
	}
	return nil, fmt.Errorf("%w: email %q", ErrNotFound, email)
}

// Search returns every employee whose name or email contains the query.
func (s *Store) Search(ctx context.Context, query string) ([]models.Employee, error) {
	want := strings.ToLower(strings.TrimSpace(query))
	if want == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []models.Employee
	for _, emp := range s.employees {
		if strings.Contains(strings.ToLower(emp.Name), want) ||
			strings.Contains(strings.ToLower(emp.Email), want) {
			results = append(results, emp)
		}
	}
	return results, nil
}

// Suggest returns up to limit near matches for a query that found nothing
// exact: substring hits first, then levenshtein-ranked names within
// maxSuggestDistance.
func (s *Store) Suggest(ctx context.Context, query string, limit int) ([]models.Employee, error) {
	if limit <= 0 {
		return nil, nil
	}

	results, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) >= limit {
		return results[:limit], nil
	}

	want := strings.ToLower(strings.TrimSpace(query))
	if want == "" {
		return results, nil
	}

	type scored struct {
		emp  models.Employee
		dist int
	}

	seen := make(map[string]bool, len(results))
	for _, emp := range results {
		seen[emp.ID] = true
	}

	s.mu.RLock()
	var near []scored
	for _, emp := range s.employees {
		if seen[emp.ID] {
			continue
		}
		dist := levenshtein.ComputeDistance(want, strings.ToLower(emp.Name))
		if d := levenshtein.ComputeDistance(want, strings.ToLower(emp.ID)); d < dist {
			dist = d
		}
		if dist <= maxSuggestDistance {
			near = append(near, scored{emp: emp, dist: dist})
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	for _, sc := range near {
		if len(results) >= limit {
			break
		}
		results = append(results, sc.emp)
	}
	return results, nil
}

// Balance returns the remaining balance for a leave type. Unknown leave
// types have a zero balance.
func (s *Store) Balance(emp *models.Employee, leaveType string) int {
	switch strings.ToLower(strings.TrimSpace(leaveType)) {
	case "sick", models.LeaveSick:
		return emp.SickLeave
	case "casual", models.LeaveCasual:
		return emp.CasualLeave
	case "earned", models.LeaveEarned, "annual", "annual leave":
		return emp.EarnedLeave
	default:
		return 0
	}
}

// Validate checks a requested day count against the remaining balance.
// The request is never auto-adjusted; the caller decides what to do with
// an invalid result.
func (s *Store) Validate(emp *models.Employee, leaveType string, days int) models.Validation {
	available := s.Balance(emp, leaveType)

	if days <= 0 {
		return models.Validation{
			Available: available,
			Message:   "Please specify a valid number of days (greater than 0).",
		}
	}

	if days > available {
		return models.Validation{
			Available: available,
			Message: fmt.Sprintf("You only have %d days of %s remaining. Please adjust your request.",
				available, leaveType),
		}
	}

	return models.Validation{
		Valid:     true,
		Available: available,
		Message: fmt.Sprintf("Your request for %d days of %s is valid. You will have %d days remaining.",
			days, leaveType, available-days),
	}
}

// TeamStats aggregates balances over the whole directory, with averages
// rounded to one decimal place.
func (s *Store) TeamStats(ctx context.Context) (models.TeamStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.employees) == 0 {
		return models.TeamStats{}, nil
	}

	var sick, casual, earned int
	for _, emp := range s.employees {
		sick += emp.SickLeave
		casual += emp.CasualLeave
		earned += emp.EarnedLeave
	}

	n := float64(len(s.employees))
	round1 := func(v float64) float64 { return math.Round(v*10) / 10 }

	return models.TeamStats{
		TotalEmployees: len(s.employees),
		AvgSickLeave:   round1(float64(sick) / n),
		AvgCasualLeave: round1(float64(casual) / n),
		AvgEarnedLeave: round1(float64(earned) / n),
	}, nil
}
