package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/praxislegal/docket/internal/cli"
	"github.com/praxislegal/docket/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage deadline rules",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesImportCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deadline rules for a regime",
		RunE:  runRulesList,
	}
	cmd.Flags().String("regime", "civil", "regime (civil, criminal, appeal)")
	return cmd
}

func runRulesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	regimeStr, _ := cmd.Flags().GetString("regime")

	regime := model.Regime(regimeStr)
	if err := regime.Validate(); err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	rules, err := store.ListRules(ctx, regime)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No rules found. Use 'docket rules import' to load some."))
		return nil
	}

	for _, r := range rules {
		direction := "after"
		if r.Direction == model.DirectionBefore {
			direction = "before"
		}
		line := fmt.Sprintf("%-14s %3d days %-6s %-34s %s",
			r.RuleCitation, r.Days, direction, r.TriggerEvent, r.Notes)
		if r.MailAddDays > 0 {
			line += fmt.Sprintf(" (+%d by mail)", r.MailAddDays)
		}
		fmt.Println(line)
	}
	return nil
}

func rulesImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import deadline rules from a CSV file",
		Long: `Import deadline rules from a CSV file with the columns:

  regime,trigger_event,days,direction,mail_add_days,priority,rule_citation,notes

A header row is detected and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runRulesImport,
	}
	return cmd
}

func runRulesImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	records, err := readCSV(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no rules found in %s", args[0])
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := importProgressBar(len(records), "Importing rules...")

	var imported int
	for i, record := range records {
		if i == 0 && record[0] == "regime" {
			_ = bar.Add(1)
			continue
		}
		if len(record) < 7 {
			return fmt.Errorf("line %d: expected at least 7 columns, got %d", i+1, len(record))
		}

		days, err := strconv.Atoi(record[2])
		if err != nil {
			return fmt.Errorf("line %d: invalid days %q: %w", i+1, record[2], err)
		}
		mailAddDays, err := strconv.Atoi(record[4])
		if err != nil {
			return fmt.Errorf("line %d: invalid mail_add_days %q: %w", i+1, record[4], err)
		}
		priority, err := strconv.Atoi(record[5])
		if err != nil {
			return fmt.Errorf("line %d: invalid priority %q: %w", i+1, record[5], err)
		}

		rule := &model.DeadlineRule{
			Regime:       model.Regime(record[0]),
			TriggerEvent: record[1],
			Days:         days,
			Direction:    model.Direction(record[3]),
			MailAddDays:  mailAddDays,
			Priority:     priority,
			RuleCitation: record[6],
		}
		if len(record) > 7 {
			rule.Notes = record[7]
		}

		if err := store.SaveRule(ctx, rule); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		imported++
		_ = bar.Add(1)
	}

	fmt.Println(cli.StyleSuccess(fmt.Sprintf("✓ Imported %d rules", imported)))
	return nil
}

// readCSV reads all records from a CSV file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied import path
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// importProgressBar builds the shared progress bar for bulk imports.
func importProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
