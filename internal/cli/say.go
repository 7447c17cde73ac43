package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sayCmd = &cobra.Command{
	Use:   "say <message>...",
	Short: "Send one message and print the reply",
	Long: `Send a single message to the assistant and print the reply.

Each invocation is a fresh conversation, so multi-turn flows like applying
for leave need 'leavechat chat' instead. Useful for scripting and quick
lookups.

Examples:
  leavechat say "What's EMP001's leave balance?"
  leavechat say show team statistics
  leavechat say find John Smith`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func runSay(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	ctx := context.Background()

	resp, err := newEngine().Respond(ctx, message)
	if err != nil {
		return fmt.Errorf("chat turn: %w", err)
	}

	fmt.Println(resp.Message)

	if len(resp.Actions) > 0 {
		fmt.Println()
		for _, action := range resp.Actions {
			fmt.Printf("- %s\n", action.Label)
		}
	}
	if len(resp.Suggestions) > 0 {
		fmt.Printf("\nTry: %s\n", strings.Join(resp.Suggestions, " · "))
	}

	return nil
}
