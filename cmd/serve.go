package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mathspiral/mathspiral/internal/problemgen"
	"github.com/mathspiral/mathspiral/internal/server"
	"github.com/mathspiral/mathspiral/internal/session"
	"github.com/mathspiral/mathspiral/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the practice API server",
	Long:  "Serves the practice engine over HTTP for dashboard or web frontends.",
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

		gen := problemgen.New(time.Now().UnixNano())
		svc := session.NewService(st.Sessions(), st.Progress(), st.Facts(), gen)
		handler := server.NewHandler(svc, st.Progress())

		addr, _ := cmd.Flags().GetString("addr")
		srv := &http.Server{
			Addr:         addr,
			Handler:      server.NewRouter(handler),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		fmt.Println("Listening on", addr)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
