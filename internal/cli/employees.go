package cli

import (
	"context"
	"fmt"

	"github.com/hrkit/leavechat/internal/models"
	"github.com/spf13/cobra"
)

var employeesCmd = &cobra.Command{
	Use:   "employees [query]",
	Short: "List or search employees",
	Long: `List employees from the directory, optionally filtered by a search
query over names and email addresses.

Examples:
  leavechat employees
  leavechat employees sharma
  leavechat employees -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmployees,
}

func runEmployees(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var (
		employees []models.Employee
		err       error
	)
	if len(args) == 1 {
		employees, err = dirStore.Search(ctx, args[0])
	} else {
		employees, err = dirStore.All(ctx)
	}
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}

	if len(employees) == 0 {
		fmt.Println("No employees found.")
		return nil
	}

	fmt.Printf("Employees (%d):\n\n", len(employees))
	for _, emp := range employees {
		fmt.Printf("- %s [%s] %s\n", emp.Name, emp.ID, emp.Email)
		if verbose {
			fmt.Printf("  Sick: %d, Casual: %d, Earned: %d (total %d days)\n",
				emp.SickLeave, emp.CasualLeave, emp.EarnedLeave, emp.TotalLeave())
		}
	}

	return nil
}
