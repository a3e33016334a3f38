package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/fixture"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var (
		addr    string
		shape   string
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve-fixtures",
		Short: "Serve the sample pet API for local development",
		Long: `Serve the sample dataset over the same endpoints as the real API.

--shape selects the listing format so clients can be tested against the
legacy content and bare-array responses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, ok := adopt.ParseShape(shape)
			if !ok {
				return fmt.Errorf("unknown --shape %q: want envelope, content or array", shape)
			}
			log, err := g.logger("info")
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			handler := fixture.NewRouter(fixture.Options{
				Shape:          s,
				AllowedOrigins: origins,
				Log:            log.Named("fixture"),
			})
			return fixture.Serve(cmd.Context(), addr, handler, log)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	flags.StringVar(&shape, "shape", string(adopt.ShapeEnvelope), "listing shape: envelope, content or array")
	flags.StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins (default any)")
	return cmd
}
