package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/praxislegal/docket/internal/classification"
	"github.com/praxislegal/docket/internal/cli"
	"github.com/praxislegal/docket/internal/common"
)

func deadlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Compute a filing deadline",
		Long: `Resolve the procedural regime for a case type, find the governing
deadline rule for a trigger event, and compute the due date with
weekend and holiday rollover.

Example:
  docket deadline --case-type divorce --trigger-event "service of summons" \
    --trigger-date 2025-03-01 --service electronic`,
		RunE: runDeadline,
	}

	cmd.Flags().String("case-type", "", "free-text case type (e.g. divorce, dui)")
	cmd.Flags().String("trigger-event", "", "procedural event starting the clock")
	cmd.Flags().String("trigger-date", "", "trigger date, YYYY-MM-DD")
	cmd.Flags().String("service", "electronic", "service method (mail extends the count)")
	_ = cmd.MarkFlagRequired("case-type")
	_ = cmd.MarkFlagRequired("trigger-event")
	_ = cmd.MarkFlagRequired("trigger-date")

	return cmd
}

func runDeadline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	caseType, _ := cmd.Flags().GetString("case-type")
	triggerEvent, _ := cmd.Flags().GetString("trigger-event")
	triggerDateStr, _ := cmd.Flags().GetString("trigger-date")
	serviceMethod, _ := cmd.Flags().GetString("service")

	triggerDate, err := time.ParseInLocation("2006-01-02", triggerDateStr, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid trigger date %q, want YYYY-MM-DD: %w", triggerDateStr, err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	classifier, err := initClassifier(ctx, store)
	if err != nil {
		return err
	}

	result, rule, err := classifier.ComputeDeadline(ctx, classification.DeadlineRequest{
		TriggerDate:   triggerDate,
		CaseType:      caseType,
		TriggerEvent:  triggerEvent,
		ServiceMethod: serviceMethod,
	})
	if err != nil {
		var rnf *common.RuleNotFoundError
		if errors.As(err, &rnf) {
			fmt.Println(cli.StyleError(fmt.Sprintf(
				"No rule found for %q in the %s regime. Check the trigger event or add the rule with 'docket rules import'.",
				rnf.TriggerEvent, rnf.Regime)))
		}
		return err
	}

	fmt.Println(cli.RenderDeadline(result, rule))
	return nil
}
