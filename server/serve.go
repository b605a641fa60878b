//go:build !js
// +build !js

package main

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simukka/valentine/logging"
)

//go:embed index.html
var indexHTML []byte

func newServeCmd() *cobra.Command {
	var (
		port      int
		staticDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the card page",
		Long: `Serve the embedded index.html at / and every other path from the static
directory, where the compiled card script (valentine.js) is expected.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := logging.FromEnv()
			defer log.Sync()

			addr := fmt.Sprintf(":%d", port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           newHandler(staticDir, log),
				ReadHeaderTimeout: 10 * time.Second,
			}
			log.Infow("Card server starting", "url", "http://localhost"+addr, "static", staticDir)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP server port")
	cmd.Flags().StringVar(&staticDir, "static", ".", "Directory to serve static files from")
	return cmd
}

// newHandler routes the page, static files and the health check.
func newHandler(staticDir string, log *zap.SugaredLogger) http.Handler {
	files := http.FileServer(http.Dir(staticDir))

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})
	return withRequestLog(mux, log)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags each request with an X-Request-ID and logs it.
func withRequestLog(next http.Handler, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Debugw("Request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
