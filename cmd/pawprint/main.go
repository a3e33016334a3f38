package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/pawprint/internal/app"
	"github.com/five82/pawprint/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pawprint: %v\n", err)
		return 1
	}
	return 0
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	apiURL     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "pawprint",
		Short: "Browse adoptable pets from the terminal",
		Long: `pawprint browses the pet adoption API.

Run without a subcommand to open the interactive browser. The subcommands
print the same data for scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: g.configPath,
				APIURL:     g.apiURL,
				Verbose:    g.verbose,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ~/.config/pawprint/config.toml)")
	flags.StringVar(&g.apiURL, "api", "", "API base URL, overrides api_url")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newPetsCmd(g),
		newPetCmd(g),
		newBreedsCmd(g),
		newServeCmd(g),
		newLogsCmd(g),
	)
	return root
}

// logger returns the stderr logger used by CLI commands.
func (g *globalFlags) logger(level string) (*zap.Logger, error) {
	if g.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Console: true, Level: level})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// services loads the config and wires the catalog for a one-shot command.
func (g *globalFlags) services() (*app.Services, *zap.Logger, error) {
	cfg, err := app.LoadConfig(g.configPath, g.apiURL)
	if err != nil {
		return nil, nil, err
	}
	log, err := g.logger("warn")
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.Build(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return svc, log, nil
}
