package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/fluency"
	"github.com/mathspiral/mathspiral/internal/skills"
	"github.com/mathspiral/mathspiral/internal/store"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List skills with fluency status",
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

		ctx := cmd.Context()
		for _, d := range skills.AllDomains() {
			fmt.Println(skills.DomainDisplayName(d))
			for _, sk := range skills.ByDomain(d) {
				prog, err := st.Progress().SkillProgress(ctx, sk.ID)
				if err != nil {
					return fmt.Errorf("load progress for %s: %w", sk.ID, err)
				}
				status := fluency.Classify(fluency.Input{
					SessionsCompleted: prog.SessionsCompleted,
					Accuracy:          prog.Accuracy(),
					AvgResponseTimeMs: float64(prog.AvgResponseMs),
					MaxDifficulty:     prog.MaxDifficulty,
					TopTierSessions:   prog.TopTierSessions,
					ProblemType:       sk.ProblemType,
				})
				fmt.Printf("  %-28s %-24s %s\n", sk.ID, sk.Name, status.Label())
			}
			fmt.Println()
		}
		return nil
	},
}
