package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/praxislegal/docket/internal/cli"
	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and inspect activity history",
	}

	cmd.AddCommand(logAddCmd())
	cmd.AddCommand(logListCmd())

	return cmd
}

func logAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an activity outcome for an actor",
		Example: `  docket log add --actor "Hon. Marsh" --kind judge \
    --activity-type motion_ruling --subtype "summary judgment" \
    --outcome denied --date 2025-03-14 --role defendant`,
		RunE: runLogAdd,
	}

	cmd.Flags().String("actor", "", "actor name (required)")
	cmd.Flags().String("kind", string(model.ActorKindJudge), "actor kind (judge, counsel, attorney)")
	cmd.Flags().String("activity-type", "", "activity type, e.g. motion_ruling (required)")
	cmd.Flags().String("subtype", "", "activity subtype, e.g. \"summary judgment\"")
	cmd.Flags().String("outcome", "", "observed outcome (required)")
	cmd.Flags().String("date", "", "activity date YYYY-MM-DD (required)")
	cmd.Flags().String("role", "", "party role for the outcome, e.g. plaintiff")
	cmd.Flags().String("case", "", "case number")
	cmd.Flags().String("details", "", "free-form notes")

	for _, f := range []string{"actor", "activity-type", "outcome", "date"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func runLogAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateStr, _ := cmd.Flags().GetString("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}

	actor, _ := cmd.Flags().GetString("actor")
	kind, _ := cmd.Flags().GetString("kind")
	activityType, _ := cmd.Flags().GetString("activity-type")
	subtype, _ := cmd.Flags().GetString("subtype")
	outcome, _ := cmd.Flags().GetString("outcome")
	role, _ := cmd.Flags().GetString("role")
	caseNumber, _ := cmd.Flags().GetString("case")
	details, _ := cmd.Flags().GetString("details")

	entry := &model.ActivityLogEntry{
		Date:            date,
		ActorName:       actor,
		ActorKind:       model.ActorKind(kind),
		ActivityType:    activityType,
		ActivitySubtype: subtype,
		Outcome:         outcome,
		PartyRole:       role,
		CaseNumber:      caseNumber,
		Details:         details,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	id, err := store.AppendEntry(ctx, entry)
	if err != nil {
		return err
	}

	fmt.Println(cli.StyleSuccess(fmt.Sprintf("✓ Recorded entry %d for %s", id, actor)))
	return nil
}

func logListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [actor]",
		Short: "List recorded activity, or all known actors",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLogList,
	}

	cmd.Flags().String("activity-type", "", "filter by activity type")
	cmd.Flags().String("subtype", "", "filter by activity subtype")
	cmd.Flags().Int("limit", 50, "maximum entries to show")

	return cmd
}

func runLogList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if len(args) == 0 {
		actors, err := store.ListActors(ctx)
		if err != nil {
			return err
		}
		if len(actors) == 0 {
			fmt.Println(cli.SubtleStyle.Render("No activity recorded yet. Use 'docket log add' to start."))
			return nil
		}
		fmt.Println(cli.TitleStyle.Render("Known actors"))
		for _, a := range actors {
			fmt.Printf("  %s\n", a)
		}
		return nil
	}

	activityType, _ := cmd.Flags().GetString("activity-type")
	subtype, _ := cmd.Flags().GetString("subtype")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.FetchEntries(ctx, args[0], service.EntryFilter{
		ActivityType:    activityType,
		ActivitySubtype: subtype,
		Limit:           limit,
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No activity recorded for %s.", args[0])))
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-16s %-22s → %s",
			e.Date.Format("2006-01-02"), e.ActivityType, e.ActivitySubtype, e.Outcome)
		if e.PartyRole != "" {
			line += fmt.Sprintf("  (as %s)", e.PartyRole)
		}
		if e.CaseNumber != "" {
			line += "  " + cli.SubtleStyle.Render(e.CaseNumber)
		}
		fmt.Println(line)
	}
	return nil
}
