package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/permkit/permkit/internal/api"
)

// newServeCmd creates the serve command, exposing the computations as a
// JSON HTTP API.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve group computations over HTTP",
		Long: `Start an HTTP server exposing the computations as a JSON API.

Endpoints:
  GET  /healthz      liveness probe
  POST /v1/order     degree, order, and base of a group
  POST /v1/orbit     orbit of a point
  POST /v1/member    membership test for a permutation
  POST /v1/elements  full element listing (bounded by group order)

Requests carry generators in cycle notation:

  {"generators": ["(1 2)", "(2 3)"], "point": 1}`,
		Example: `  permkit serve
  permkit serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			srv := &http.Server{
				Addr:              addr,
				Handler:           api.NewRouter(logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("Listening on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			case <-cmd.Context().Done():
				logger.Info("Shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	return cmd
}
