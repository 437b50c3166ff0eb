package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/praxislegal/docket/internal/model"
)

const dateFormat = "Mon, Jan 2 2006"

// RenderDeadline formats a computed deadline for terminal display.
func RenderDeadline(result *model.DeadlineComputation, rule *model.DeadlineRule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Due date:  %s\n", BoldStyle.Render(result.DueDate.Format(dateFormat)))
	fmt.Fprintf(&b, "Citation:  %s\n", result.RuleCitation)
	if rule != nil && rule.Notes != "" {
		fmt.Fprintf(&b, "Rule:      %s\n", rule.Notes)
	}

	if result.WasExtended {
		fmt.Fprintf(&b, "Extended:  from %s (%s)\n",
			result.ExtendedFrom.Format(dateFormat), result.ExtensionReason)
	}
	if result.Degraded {
		b.WriteString(StyleWarning(fmt.Sprintf(
			"⚠ Degraded result: %s. Verify this date before relying on it.\n",
			result.DegradedReason)))
	}

	return RenderBox("Deadline", strings.TrimRight(b.String(), "\n"))
}

// RenderPredictions formats an actor's predictions for terminal display.
func RenderPredictions(actorName string, predictions []model.Prediction) string {
	if len(predictions) == 0 {
		return SubtleStyle.Render(fmt.Sprintf("No activity history for %s.", actorName))
	}

	var b strings.Builder
	for i, p := range predictions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(BoldStyle.Render(p.Summary))
		b.WriteString("\n")

		for _, o := range p.Outcomes {
			fmt.Fprintf(&b, "  %-24s %5.1f%%  (seen %d)\n", o.Outcome, o.Probability*100, o.Count)
		}
		for _, role := range sortedRoles(p.ByRole) {
			fmt.Fprintf(&b, "  %s\n", SubtleStyle.Render(p.ByRole[role].Summary))
		}
		for _, w := range p.Warnings {
			fmt.Fprintf(&b, "  %s\n", StyleWarning("⚠ "+w))
		}
	}

	return RenderBox(fmt.Sprintf("Predictions: %s", actorName), strings.TrimRight(b.String(), "\n"))
}

func sortedRoles(byRole map[string]model.RolePrediction) []string {
	roles := make([]string, 0, len(byRole))
	for role := range byRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
