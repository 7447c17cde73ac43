package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show team leave statistics",
	Long: `Show aggregate leave statistics across all employees: headcount and
average remaining balance per leave type.

Examples:
  leavechat stats`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	stats, err := dirStore.TeamStats(ctx)
	if err != nil {
		return fmt.Errorf("team stats: %w", err)
	}

	fmt.Printf("Team statistics\n")
	fmt.Printf("═══════════════════════════════════════\n")
	fmt.Printf("Employees: %d\n\n", stats.TotalEmployees)
	fmt.Printf("Average remaining balance:\n")
	fmt.Printf("  Sick Leave:   %.1f days\n", stats.AvgSickLeave)
	fmt.Printf("  Casual Leave: %.1f days\n", stats.AvgCasualLeave)
	fmt.Printf("  Earned Leave: %.1f days\n", stats.AvgEarnedLeave)

	return nil
}
