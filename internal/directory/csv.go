package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hrkit/leavechat/internal/models"
)

// Expected header columns. Order in the file does not matter; lookup is by
// header name.
const (
	colID     = "Employee_ID"
	colName   = "Name"
	colEmail  = "Email"
	colSick   = "Sick_Leave"
	colCasual = "Casual_Leave"
	colEarned = "Earned_Leave"
)

// LoadFile reads the employee CSV at path and replaces the store contents.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open employee data: %w", err)
	}
	defer f.Close()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Load parses employee records from CSV with a header row. Malformed leave
// counts are read as zero rather than failing the whole file.
func (s *Store) Load(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colID, colName, colEmail, colSick, colCasual, colEarned} {
		if _, ok := idx[required]; !ok {
			return fmt.Errorf("missing column %q", required)
		}
	}

	var employees []models.Employee
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		field := func(col string) string {
			i := idx[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		emp := models.Employee{
			ID:          field(colID),
			Name:        field(colName),
			Email:       field(colEmail),
			SickLeave:   parseCount(field(colSick)),
			CasualLeave: parseCount(field(colCasual)),
			EarnedLeave: parseCount(field(colEarned)),
		}
		if emp.ID == "" && emp.Name == "" {
			continue
		}
		employees = append(employees, emp)
	}

	s.mu.Lock()
	s.employees = employees
	s.mu.Unlock()
	return nil
}

// parseCount mirrors the lenient numeric handling of the data file's
// producers: anything unparseable or negative counts as zero.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
