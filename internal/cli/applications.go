package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List submitted leave applications",
	Long: `List leave applications submitted through the assistant, newest last.

Examples:
  leavechat applications
  leavechat applications -v`,
	RunE: runApplications,
}

func runApplications(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	apps, err := leaveSvc.List(ctx)
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	if len(apps) == 0 {
		fmt.Println("No applications found.")
		return nil
	}

	fmt.Printf("Applications (%d):\n\n", len(apps))
	for _, app := range apps {
		emergencyMark := ""
		if app.Emergency {
			emergencyMark = " [emergency]"
		}
		fmt.Printf("- %s %s: %d days %s, %s to %s [%s]%s\n",
			app.ID, app.EmployeeName, app.Days, app.LeaveType,
			app.StartDate, app.EndDate, app.Status, emergencyMark)
		if verbose {
			fmt.Printf("  Submitted: %s, Balance before: %d\n",
				app.SubmittedAt.Format("02/01/2006 15:04"), app.BalanceBefore)
			if app.Reason != "" {
				fmt.Printf("  Reason: %s\n", app.Reason)
			}
		}
	}

	return nil
}
