package leave

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hrkit/leavechat/internal/directory"
	"github.com/hrkit/leavechat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) (*Service, *models.Employee) {
	t.Helper()

	emp := models.Employee{
		ID: "EMP001", Name: "John Smith", Email: "john@example.com",
		SickLeave: 2, CasualLeave: 5, EarnedLeave: 10,
	}

	dir := directory.NewStore()
	dir.SetEmployees([]models.Employee{emp})

	store := NewStore(filepath.Join(t.TempDir(), "applications.json"))
	svc := NewService(dir, store)
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC) }
	return svc, &emp
}

func TestSubmit(t *testing.T) {
	svc, emp := testService(t)
	ctx := context.Background()

	result, err := svc.Submit(ctx, models.LeaveRequest{
		Employee:  emp,
		LeaveType: models.LeaveCasual,
		Days:      3,
		StartDate: "15/08/2025",
		EndDate:   "17/08/2025",
		Reason:    "family visit",
	})
	require.NoError(t, err)
	require.True(t, result.Success, "submission should succeed: %s", result.Message)
	require.NotNil(t, result.Application)

	app := result.Application
	assert.True(t, strings.HasPrefix(app.ID, "LA-"), "application ID %q should have LA- prefix", app.ID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, 5, app.BalanceBefore)
	assert.Equal(t, "15/08/2025", app.StartDate)
	assert.Equal(t, "17/08/2025", app.EndDate)
	assert.False(t, app.Emergency)

	// Round-trips through the JSON store.
	apps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
}

func TestSubmit_InsufficientBalance(t *testing.T) {
	svc, emp := testService(t)

	result, err := svc.Submit(context.Background(), models.LeaveRequest{
		Employee:  emp,
		LeaveType: models.LeaveSick,
		Days:      5,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Application)
	assert.Contains(t, result.Message, "only have 2 days")

	apps, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps, "rejected request must not be persisted")
}

func TestSubmit_DefaultsDates(t *testing.T) {
	svc, emp := testService(t)

	result, err := svc.Submit(context.Background(), models.LeaveRequest{
		Employee:  emp,
		LeaveType: models.LeaveEarned,
		Days:      1,
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "01/08/2025", result.Application.StartDate)
	assert.Equal(t, result.Application.StartDate, result.Application.EndDate)
}

func TestValidate(t *testing.T) {
	svc, emp := testService(t)

	v, err := svc.Validate(context.Background(), emp, models.LeaveSick, 5)
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, 2, v.Available)
}
