package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [skill-id]",
	Short: "Erase practice history",
	Long:  "Erases sessions, attempts, and fact-mastery data. With a skill ID only that skill is reset; without one everything is.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var skillID string
		if len(args) == 1 {
			sk, err := skills.Get(args[0])
			if err != nil {
				return err
			}
			skillID = sk.ID
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			target := "ALL practice history"
			if skillID != "" {
				target = fmt.Sprintf("practice history for %q", skillID)
			}
			fmt.Printf("This will erase %s. Continue? [y/N] ", target)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if skillID != "" {
			if err := st.ResetSkill(ctx, skillID); err != nil {
				return err
			}
		} else {
			if err := st.ResetAll(ctx); err != nil {
				return err
			}
		}

		fmt.Println("Done.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
