package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/collegecompass/apps/di"
	"github.com/trezcool/collegecompass/core/calendar"
	"github.com/trezcool/collegecompass/core/college"
	"github.com/trezcool/collegecompass/storage/seed"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out          io.Writer
	validate     *validator.Validate
	newContainer func() (*di.Container, error)
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  validate - validate the embedded seed documents")
	fmt.Fprintln(cli.out, "  facets - list the program facet")
	fmt.Fprintln(cli.out, "  search [-q QUERY] [-program PROGRAM] [-ranking TIER] [-acceptance TIER] - search the catalog")
	fmt.Fprintln(cli.out, "  calendar -year YEAR -month MONTH - print a month grid, days with events marked with *")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	searchCmd := cli.newFlagSet("search")
	searchQuery := searchCmd.String("q", "", "Case-insensitive substring of the college name.")
	searchProgram := searchCmd.String("program", "", "Exact program name, eg. Engineering.")
	searchRanking := searchCmd.String("ranking", "", "Ranking tier: top-10, top-25 or top-50.")
	searchAcceptance := searchCmd.String("acceptance", "", "Acceptance tier: very-selective, selective or moderate.")

	calendarCmd := cli.newFlagSet("calendar")
	calendarYear := calendarCmd.Int("year", 0, "The year, eg. 2024.")
	calendarMonth := calendarCmd.Int("month", 0, "The month, 1 to 12.")

	switch args[1] {
	case "validate":
		return cli.validateSeed()
	case "facets":
		return cli.facets()
	case "search":
		if err := searchCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.search(college.Filters{
			Query:      *searchQuery,
			Program:    *searchProgram,
			Ranking:    *searchRanking,
			Acceptance: *searchAcceptance,
		})
	case "calendar":
		if err := calendarCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *calendarYear == 0 || *calendarMonth < 1 || *calendarMonth > 12 {
			calendarCmd.Usage()
			return errHelp
		}
		return cli.calendar(*calendarYear, *calendarMonth-1)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) validateSeed() error {
	ds, err := seed.Load(cli.validate)
	if err != nil {
		var serr seed.SchemaError
		if errors.As(err, &serr) {
			for _, e := range serr.Errors {
				fmt.Fprintf(cli.out, "%s: %s\n", serr.File, e)
			}
		}
		return err
	}
	fmt.Fprintf(cli.out, "seed OK: %d colleges, %d applications, %d tasks, %d events, %d documents, %d courses, %d resources\n",
		len(ds.Colleges), len(ds.Applications), len(ds.Tasks), len(ds.Events), len(ds.Documents), len(ds.Courses), len(ds.Resources))
	return nil
}

func (cli *commandLine) facets() error {
	c, err := cli.newContainer()
	if err != nil {
		return err
	}
	for _, p := range c.Colleges.Facets().Programs {
		fmt.Fprintln(cli.out, p)
	}
	return nil
}

func (cli *commandLine) search(filters college.Filters) error {
	filters.Clean()
	if err := cli.validate.Struct(filters); err != nil {
		return err
	}
	c, err := cli.newContainer()
	if err != nil {
		return err
	}
	res, err := c.Colleges.Search(filters)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACCEPTANCE\tRANK\tCATEGORY")
	for _, col := range res.Colleges {
		rank := "-"
		if r, ok := col.NationalRank(); ok {
			rank = fmt.Sprintf("#%d", r)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", col.ID, col.Name, col.Acceptance, rank, col.Category)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d result(s)\n", res.Total)
	if len(res.Suggestions) > 0 {
		fmt.Fprintf(cli.out, "did you mean: %s?\n", strings.Join(res.Suggestions, ", "))
	}
	return nil
}

func (cli *commandLine) calendar(year, month int) error {
	c, err := cli.newContainer()
	if err != nil {
		return err
	}
	grid, err := c.Calendar.Grid(year, month)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, formatGrid(grid))

	events, err := c.Calendar.Events(nil)
	if err != nil {
		return err
	}
	for _, e := range events {
		if e.Date.Year() == grid.Year && int(e.Date.Month()) == grid.Month+1 {
			fmt.Fprintf(cli.out, "%-13s %s\n", e.Date.Display(), e.Title)
		}
	}
	return nil
}

// formatGrid renders one week per line; each cell is 4 columns wide.
func formatGrid(grid calendar.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", grid.MonthName, grid.Year)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	var line strings.Builder
	for i, cell := range grid.Cells {
		switch {
		case cell == nil:
			line.WriteString("    ")
		case cell.HasEvents:
			fmt.Fprintf(&line, "%3d*", cell.Day)
		default:
			fmt.Fprintf(&line, "%3d ", cell.Day)
		}
		if i%7 == 6 || i == len(grid.Cells)-1 {
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteByte('\n')
			line.Reset()
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
