package directory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hrkit/leavechat/internal/models"
)

const sampleCSV = `Employee_ID,Name,Email,Sick_Leave,Casual_Leave,Earned_Leave
EMP001,John Smith,john.smith@example.com,2,5,10
EMP002,Priya Sharma,priya.sharma@example.com,8,4,12
EMP003,Maria Garcia,maria.garcia@example.com,6,6,6
`

func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	if err := s.Load(strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	s := loadedStore(t)

	if got := s.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}

	emp, err := s.FindByID(context.Background(), "EMP001")
	if err != nil {
		t.Fatalf("FindByID(EMP001) error = %v", err)
	}
	if emp.Name != "John Smith" || emp.SickLeave != 2 || emp.CasualLeave != 5 || emp.EarnedLeave != 10 {
		t.Errorf("FindByID(EMP001) = %+v", emp)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	s := NewStore()
	err := s.Load(strings.NewReader("Employee_ID,Name\nEMP001,John Smith\n"))
	if err == nil {
		t.Fatal("Load() with missing columns should fail")
	}
}

func TestLoad_MalformedCounts(t *testing.T) {
	csv := "Employee_ID,Name,Email,Sick_Leave,Casual_Leave,Earned_Leave\n" +
		"EMP009,Jane Doe,jane@example.com,abc,-3,7\n"
	s := NewStore()
	if err := s.Load(strings.NewReader(csv)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	emp, err := s.FindByID(context.Background(), "EMP009")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if emp.SickLeave != 0 || emp.CasualLeave != 0 || emp.EarnedLeave != 7 {
		t.Errorf("malformed counts parsed as %+v, want 0/0/7", emp)
	}
}

func TestFindByID(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantID  string
		wantErr bool
	}{
		{name: "exact", id: "EMP002", wantID: "EMP002"},
		{name: "case insensitive", id: "emp002", wantID: "EMP002"},
		{name: "bare digits", id: "003", wantID: "EMP003"},
		{name: "unknown", id: "EMP999", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp, err := s.FindByID(ctx, tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("FindByID(%q) error = %v, want ErrNotFound", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindByID(%q) error = %v", tt.id, err)
			}
			if emp.ID != tt.wantID {
				t.Errorf("FindByID(%q) = %s, want %s", tt.id, emp.ID, tt.wantID)
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	emp, err := s.FindByName(ctx, "priya")
	if err != nil {
		t.Fatalf("FindByName(priya) error = %v", err)
	}
	if emp.ID != "EMP002" {
		t.Errorf("FindByName(priya) = %s, want EMP002", emp.ID)
	}

	if _, err := s.FindByName(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByName(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	s := loadedStore(t)
	ctx := context.Background()

	results, err := s.Search(ctx, "example.com")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Search(example.com) = %d results, want 3", len(results))
	}

	results, err = s.Search(ctx, "garcia")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != "EMP003" {
		t.Errorf("Search(garcia) = %+v, want EMP003 only", results)
	}
}

func TestSuggest_NearMiss(t *testing.T) {
	s := loadedStore(t)

	// Misspelled name: no substring hit, levenshtein should still find it.
	results, err := s.Suggest(context.Background(), "john smyth", 3)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(results) == 0 || results[0].ID != "EMP001" {
		t.Errorf("Suggest(john smyth) = %+v, want EMP001 first", results)
	}
}

func TestBalance(t *testing.T) {
	s := loadedStore(t)
	emp := &models.Employee{SickLeave: 2, CasualLeave: 5, EarnedLeave: 10}

	tests := []struct {
		leaveType string
		want      int
	}{
		{models.LeaveSick, 2},
		{"sick", 2},
		{models.LeaveCasual, 5},
		{models.LeaveEarned, 10},
		{"annual", 10},
		{"parental leave", 0},
	}

	for _, tt := range tests {
		if got := s.Balance(emp, tt.leaveType); got != tt.want {
			t.Errorf("Balance(%q) = %d, want %d", tt.leaveType, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	s := loadedStore(t)
	emp := &models.Employee{Name: "John Smith", SickLeave: 2}

	v := s.Validate(emp, models.LeaveSick, 5)
	if v.Valid {
		t.Error("Validate(5 > 2) should be invalid")
	}
	if v.Available != 2 {
		t.Errorf("Validate() available = %d, want 2", v.Available)
	}

	v = s.Validate(emp, models.LeaveSick, 2)
	if !v.Valid {
		t.Errorf("Validate(2 <= 2) should be valid, got %q", v.Message)
	}

	v = s.Validate(emp, models.LeaveSick, 0)
	if v.Valid {
		t.Error("Validate(0) should be invalid")
	}
}

func TestTeamStats(t *testing.T) {
	s := loadedStore(t)

	stats, err := s.TeamStats(context.Background())
	if err != nil {
		t.Fatalf("TeamStats() error = %v", err)
	}
	if stats.TotalEmployees != 3 {
		t.Errorf("TotalEmployees = %d, want 3", stats.TotalEmployees)
	}
	// (2+8+6)/3 = 5.3, (5+4+6)/3 = 5.0, (10+12+6)/3 = 9.3
	if stats.AvgSickLeave != 5.3 || stats.AvgCasualLeave != 5.0 || stats.AvgEarnedLeave != 9.3 {
		t.Errorf("averages = %.1f/%.1f/%.1f, want 5.3/5.0/9.3",
			stats.AvgSickLeave, stats.AvgCasualLeave, stats.AvgEarnedLeave)
	}
}

func TestTeamStats_Empty(t *testing.T) {
	s := NewStore()
	stats, err := s.TeamStats(context.Background())
	if err != nil {
		t.Fatalf("TeamStats() error = %v", err)
	}
	if stats.TotalEmployees != 0 {
		t.Errorf("TotalEmployees = %d, want 0", stats.TotalEmployees)
	}
}
