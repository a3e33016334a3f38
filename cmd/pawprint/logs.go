package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/pawprint/internal/app"
	"github.com/five82/pawprint/internal/logtail"
)

func newLogsCmd(g *globalFlags) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the TUI log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(g.configPath, g.apiURL)
			if err != nil {
				return err
			}
			tail, err := logtail.Read(cfg.Log.File, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(tail) == 0 {
				fmt.Fprintf(out, "No log entries in %s\n", cfg.Log.File)
				return nil
			}
			for _, line := range tail {
				fmt.Fprintln(out, levelStyle(line).Render(logtail.Format(line)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines, 0 for all")
	return cmd
}

func levelStyle(line string) lipgloss.Style {
	style := lipgloss.NewStyle()
	entry, ok := logtail.Parse(line)
	if !ok {
		return style
	}
	switch strings.ToUpper(entry.Level) {
	case "DEBUG":
		return style.Foreground(faintColor)
	case "WARN":
		return style.Foreground(warnColor)
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return style.Foreground(dangerColor)
	default:
		return style
	}
}
