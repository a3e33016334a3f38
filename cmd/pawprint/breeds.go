package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
	"github.com/five82/pawprint/internal/paging"
)

type breedsFlags struct {
	search string
	page   int
	size   int
}

func newBreedsCmd(g *globalFlags) *cobra.Command {
	f := &breedsFlags{}
	cmd := &cobra.Command{
		Use:   "breeds <dog|cat>",
		Short: "List breeds of a species",
		Long: `List the breeds of a species. The API returns every breed at once;
--search and --page filter and page the list locally.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dog", "cat"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreeds(cmd, g, f, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.search, "search", "", "breed name contains")
	flags.IntVar(&f.page, "page", 1, "page number, starting at 1")
	flags.IntVar(&f.size, "size", 0, "page size (default from config)")
	return cmd
}

func runBreeds(cmd *cobra.Command, g *globalFlags, f *breedsFlags, arg string) error {
	species, ok := adopt.ParseSpecies(arg)
	if !ok {
		return fmt.Errorf("unknown species %q: want dog or cat", arg)
	}
	if f.page < 1 {
		return fmt.Errorf("invalid --page %d: pages start at 1", f.page)
	}
	if f.size < 0 {
		return fmt.Errorf("invalid --size %d", f.size)
	}

	svc, log, err := g.services()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	list, err := svc.Catalog.Breeds(cmd.Context(), species)
	if err != nil {
		return err
	}

	size := svc.Config.BreedPageSize
	if f.size > 0 {
		size = f.size
	}
	pager := paging.NewPager(size, func(b adopt.BreedData) string { return b.Name })
	pager.SetItems(list)
	pager.SetTerm(f.search)
	view := pager.View()
	if view.TotalPages > 0 && f.page > view.TotalPages {
		return fmt.Errorf("page %d out of range: %d pages", f.page, view.TotalPages)
	}
	pager.SetPage(f.page - 1)
	view = pager.View()

	out := cmd.OutOrStdout()
	if view.Total == 0 {
		if f.search != "" {
			fmt.Fprintf(out, "No breeds match %q.\n", f.search)
		} else {
			fmt.Fprintln(out, "No breeds listed.")
		}
		return nil
	}

	rows := make([][]string, len(view.Items))
	for i, b := range view.Items {
		energy := "-"
		if b.HasEnergyLevel() {
			energy = format.EnergyBar(b.EnergyLevel)
		}
		rows[i] = []string{b.Name, dash(b.Origin), energy, dash(b.Temperament)}
	}
	fmt.Fprintln(out, renderTable([]string{"BREED", "ORIGIN", "ENERGY", "TEMPERAMENT"}, rows))

	summary := fmt.Sprintf("%d breeds", pager.Len())
	if f.search != "" {
		summary = fmt.Sprintf("%d of %d breeds", view.Total, pager.Len())
	}
	fmt.Fprintln(out, pageFooter(view.TotalPages, view.Page, summary))
	return nil
}
