package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/fluency"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [skill-id]",
	Short: "Show practice statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		list := skills.All()
		if len(args) == 1 {
			sk, err := skills.Get(args[0])
			if err != nil {
				return err
			}
			list = []skills.Skill{sk}
		}

		ctx := cmd.Context()
		for _, sk := range list {
			prog, err := st.Progress().SkillProgress(ctx, sk.ID)
			if err != nil {
				return fmt.Errorf("load progress for %s: %w", sk.ID, err)
			}
			if prog.SessionsCompleted == 0 {
				fmt.Printf("%s: not started\n", sk.Name)
				continue
			}

			status := fluency.Classify(fluency.Input{
				SessionsCompleted: prog.SessionsCompleted,
				Accuracy:          prog.Accuracy(),
				AvgResponseTimeMs: float64(prog.AvgResponseMs),
				MaxDifficulty:     prog.MaxDifficulty,
				TopTierSessions:   prog.TopTierSessions,
				ProblemType:       sk.ProblemType,
			})
			trend := fluency.Trend(prog.RecentVisualLevels)

			fmt.Printf("%s\n", sk.Name)
			fmt.Printf("  Sessions:       %d\n", prog.SessionsCompleted)
			fmt.Printf("  Accuracy:       %.0f%% (%d/%d)\n", prog.Accuracy()*100, prog.TotalCorrect, prog.TotalProblems)
			fmt.Printf("  Avg response:   %.1fs\n", float64(prog.AvgResponseMs)/1000)
			fmt.Printf("  Max difficulty: %d\n", prog.MaxDifficulty)
			fmt.Printf("  Fluency:        %s\n", status.Label())
			fmt.Printf("  Visual support: %s\n", trend)
			if !prog.LastPracticed.IsZero() {
				fmt.Printf("  Last practiced: %s\n", prog.LastPracticed.Format("2006-01-02"))
			}
			fmt.Println()
		}
		return nil
	},
}
