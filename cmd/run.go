package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/app"
	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/store"
)

// runApp opens the store, wires the session service, and launches the
// TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen := problemgen.New(time.Now().UnixNano())
	svc := session.NewService(st.Sessions(), st.Progress(), st.Facts(), gen)

	return app.Run(svc, st.Progress())
}
