package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/praxislegal/docket/internal/cli"
	"github.com/praxislegal/docket/internal/model"
)

func holidaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the court holiday calendar",
	}

	cmd.AddCommand(holidaysListCmd())
	cmd.AddCommand(holidaysImportCmd())

	return cmd
}

func holidaysListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List court holidays for a year",
		RunE:  runHolidaysList,
	}
	cmd.Flags().Int("year", time.Now().Year(), "calendar year to list")
	return cmd
}

func runHolidaysList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	year, _ := cmd.Flags().GetInt("year")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	entries, err := store.ListHolidays(ctx, from, to)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No holidays on file for %d.", year)))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Date.Format("Mon, Jan _2 2006"), e.Name)
	}
	return nil
}

func holidaysImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import court holidays from a CSV file",
		Long: `Import court holidays from a CSV file with the columns:

  date,name

Dates use the YYYY-MM-DD format. A header row is detected and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runHolidaysImport,
	}
	return cmd
}

func runHolidaysImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	records, err := readCSV(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no holidays found in %s", args[0])
	}

	entries := make([]model.HolidayEntry, 0, len(records))
	for i, record := range records {
		if i == 0 && record[0] == "date" {
			continue
		}
		if len(record) < 2 {
			return fmt.Errorf("line %d: expected 2 columns, got %d", i+1, len(record))
		}
		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return fmt.Errorf("line %d: invalid date %q: %w", i+1, record[0], err)
		}
		entries = append(entries, model.HolidayEntry{Date: date, Name: record[1]})
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := importProgressBar(len(entries), "Importing holidays...")
	if err := store.SaveHolidays(ctx, entries); err != nil {
		return err
	}
	_ = bar.Add(len(entries))

	fmt.Println(cli.StyleSuccess(fmt.Sprintf("✓ Imported %d holidays", len(entries))))
	return nil
}
