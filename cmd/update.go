package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update [version]",
	Short: "Update mathspiral to the latest release",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := &selfupdate.UpdateInput{CurrentVersion: version}
		if len(args) == 1 {
			input.TargetVersion = args[0]
		}

		checker := selfupdate.NewChecker()
		err := checker.Update(cmd.Context(), input, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already up to date.")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return errors.New("development builds cannot self-update; install a release build")
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
