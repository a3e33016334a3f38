package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/pawprint/internal/adopt"
	"github.com/five82/pawprint/internal/format"
)

type petsFlags struct {
	name    string
	species string
	breed   string
	city    string
	status  string
	sort    string
	page    int
	size    int
}

func newPetsCmd(g *globalFlags) *cobra.Command {
	f := &petsFlags{}
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "List pets",
		Long: `List one page of pets from the API.

When the API cannot be reached the command prints offline sample data
and a warning on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPets(cmd, g, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "name contains")
	flags.StringVar(&f.species, "species", "", "dog or cat")
	flags.StringVar(&f.breed, "breed", "", "breed contains")
	flags.StringVar(&f.city, "city", "", "shelter city")
	flags.StringVar(&f.status, "status", "", "available, adopted or pending")
	flags.StringVar(&f.sort, "sort", "", `sort as "field,asc|desc" (default from config)`)
	flags.IntVar(&f.page, "page", 1, "page number, starting at 1")
	flags.IntVar(&f.size, "size", 0, "page size (default from config)")
	return cmd
}

// query validates the flags into a PetQuery.
func (f *petsFlags) query(defaultSort adopt.Sort, defaultSize int) (adopt.PetQuery, error) {
	q := adopt.PetQuery{
		Page: f.page - 1,
		Size: defaultSize,
		Sort: defaultSort,
		Filters: adopt.Filters{
			Name:        f.name,
			Breed:       f.breed,
			ShelterCity: f.city,
		},
	}
	if f.page < 1 {
		return q, fmt.Errorf("invalid --page %d: pages start at 1", f.page)
	}
	if f.size < 0 {
		return q, fmt.Errorf("invalid --size %d", f.size)
	}
	if f.size > 0 {
		q.Size = f.size
	}
	if f.species != "" {
		species, ok := adopt.ParseSpecies(f.species)
		if !ok {
			return q, fmt.Errorf("invalid --species %q: want dog or cat", f.species)
		}
		q.Filters.Species = string(species)
	}
	if f.status != "" {
		status, ok := adopt.ParseStatus(f.status)
		if !ok {
			return q, fmt.Errorf("invalid --status %q: want available, adopted or pending", f.status)
		}
		q.Filters.Status = string(status)
	}
	if f.sort != "" {
		sort, err := adopt.ParseSort(f.sort)
		if err != nil {
			return q, fmt.Errorf("invalid --sort: %w", err)
		}
		q.Sort = sort
	}
	return q, nil
}

func runPets(cmd *cobra.Command, g *globalFlags, f *petsFlags) error {
	svc, log, err := g.services()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	q, err := f.query(svc.Config.Sort, svc.Config.PageSize)
	if err != nil {
		return err
	}

	listing := svc.Catalog.LoadPets(cmd.Context(), q)
	if listing.Degraded {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: API unavailable (%v), showing offline sample data\n", listing.Err)
	}

	out := cmd.OutOrStdout()
	page := listing.Page
	if page.Empty() {
		if q.Filters.IsZero() {
			fmt.Fprintln(out, "No pets listed yet.")
		} else {
			fmt.Fprintln(out, "No pets match these filters.")
		}
		return nil
	}

	rows := make([][]string, len(page.Items))
	for i, p := range page.Items {
		rows[i] = []string{
			p.Name,
			format.SpeciesLabel(p.Species),
			p.Breed,
			format.Age(p),
			format.StatusLabel(p.Status),
			format.Location(p),
			p.ID,
		}
	}
	fmt.Fprintln(out, renderTable([]string{"NAME", "SPECIES", "BREED", "AGE", "STATUS", "SHELTER", "ID"}, rows))
	fmt.Fprintln(out, pageFooter(page.TotalPages, page.Number, fmt.Sprintf("%d pets", page.Total)))
	return nil
}

func newPetCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pet <id>",
		Short: "Show one pet with its breed facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPet(cmd, g, args[0])
		},
	}
}

func runPet(cmd *cobra.Command, g *globalFlags, id string) error {
	svc, log, err := g.services()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	pet, err := svc.Catalog.Pet(ctx, id)
	switch {
	case errors.Is(err, adopt.ErrNotFound):
		return fmt.Errorf("pet %s is not listed", id)
	case errors.Is(err, adopt.ErrInvalidID):
		return fmt.Errorf("%q is not a pet id", id)
	case err != nil:
		return err
	}

	listed := "-"
	if created := pet.ParsedCreatedAt(); !created.IsZero() {
		listed = created.Local().Format("2 Jan 2006")
	}
	facts := [][2]string{
		{"Name", pet.Name},
		{"Species", format.SpeciesLabel(pet.Species)},
		{"Breed", dash(pet.Breed)},
		{"Age", format.Age(pet)},
		{"Status", format.StatusLabel(pet.Status)},
		{"Shelter", format.Location(pet)},
		{"Listed", listed},
		{"ID", pet.ID},
	}

	breed, ok := svc.Catalog.BreedInfo(ctx, pet.Species, pet.Breed)
	if ok {
		facts = append(facts,
			[2]string{"Origin", dash(breed.Origin)},
			[2]string{"Temperament", dash(breed.Temperament)},
		)
		if breed.HasEnergyLevel() {
			facts = append(facts, [2]string{"Energy", format.EnergyBar(breed.EnergyLevel)})
		}
	}
	image := breed.ImageURL
	if image == "" {
		image = format.Placeholder(pet.Species)
	}
	facts = append(facts, [2]string{"Image", image})

	fmt.Fprintln(cmd.OutOrStdout(), renderFacts(facts))
	return nil
}
