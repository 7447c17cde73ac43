package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hrkit/leavechat/internal/directory"
	"github.com/hrkit/leavechat/internal/models"
)

// dateLayout is the DD/MM/YYYY format used on the chat boundary.
const dateLayout = "02/01/2006"

// Service validates and persists leave applications.
type Service struct {
	dir   *directory.Store
	store *Store
	now   func() time.Time
}

// NewService creates a submission service backed by the given directory and
// application store.
func NewService(dir *directory.Store, store *Store) *Service {
	return &Service{
		dir:   dir,
		store: store,
		now:   time.Now,
	}
}

// Validate checks the requested day count against the employee's remaining
// balance for the leave type. Delegates to the directory, which owns the
// balance fields.
func (s *Service) Validate(ctx context.Context, emp *models.Employee, leaveType string, days int) (models.Validation, error) {
	return s.dir.Validate(emp, leaveType, days), nil
}

// Submit validates the request and, when valid, persists a new application
// in Pending status. An insufficient balance is reported in the result, not
// as an error; errors are reserved for storage failures.
func (s *Service) Submit(ctx context.Context, req models.LeaveRequest) (models.SubmissionResult, error) {
	if req.Employee == nil {
		return models.SubmissionResult{Message: "No employee on the request."}, nil
	}

	validation := s.dir.Validate(req.Employee, req.LeaveType, req.Days)
	if !validation.Valid {
		return models.SubmissionResult{Message: validation.Message}, nil
	}

	start := req.StartDate
	if start == "" {
		start = s.now().Format(dateLayout)
	}
	end := req.EndDate
	if end == "" {
		end = start
	}

	app := models.LeaveApplication{
		ID:            newApplicationID(),
		EmployeeID:    req.Employee.ID,
		EmployeeName:  req.Employee.Name,
		LeaveType:     req.LeaveType,
		Days:          req.Days,
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		Emergency:     req.Emergency,
		Status:        models.StatusPending,
		BalanceBefore: validation.Available,
		SubmittedAt:   s.now(),
	}

	if err := s.store.Append(app); err != nil {
		return models.SubmissionResult{}, fmt.Errorf("store application: %w", err)
	}

	slog.Info("leave application submitted",
		"application", app.ID,
		"employee", app.EmployeeID,
		"type", app.LeaveType,
		"days", app.Days,
		"emergency", app.Emergency,
	)

	return models.SubmissionResult{
		Success:     true,
		Application: &app,
		Message:     validation.Message,
	}, nil
}

// List returns all persisted applications.
func (s *Service) List(ctx context.Context) ([]models.LeaveApplication, error) {
	return s.store.List()
}

// newApplicationID builds a short human-readable application ID from a UUID.
func newApplicationID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "LA-" + strings.ToUpper(raw[:8])
}
