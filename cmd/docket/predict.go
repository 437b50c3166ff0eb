package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/praxislegal/docket/internal/cli"
	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/prediction"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [actor]",
		Short: "Predict judge or counsel behavior from activity history",
		Long: `Compute recency-weighted, smoothed outcome probabilities from the
activity log. Predictions carry a sample size and confidence tier so
thin evidence is never displayed with false authority.

Examples:
  docket predict "Judge Fowler"
  docket predict "Judge Fowler" --activity-type motion_ruling --subtype summary_judgment
  docket predict --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPredict,
	}

	cmd.Flags().String("activity-type", "", "restrict to one activity type")
	cmd.Flags().String("subtype", "", "restrict to one activity subtype")
	cmd.Flags().Bool("all", false, "predict for every actor in the log")

	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	activityType, _ := cmd.Flags().GetString("activity-type")
	subtype, _ := cmd.Flags().GetString("subtype")
	all, _ := cmd.Flags().GetBool("all")

	if !all && len(args) == 0 {
		return fmt.Errorf("provide an actor name or --all")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	svc := prediction.NewService(store, prediction.NewWithConfig(predictionConfig()))

	if all {
		actors, err := store.ListActors(ctx)
		if err != nil {
			return fmt.Errorf("listing actors: %w", err)
		}
		byActor, err := svc.GetPredictionsForActors(ctx, actors)
		if err != nil {
			return err
		}
		for _, actor := range actors {
			fmt.Println(cli.RenderPredictions(actor, byActor[actor]))
		}
		return nil
	}

	actor := args[0]
	if activityType != "" {
		p, err := svc.GetPrediction(ctx, actor, activityType, subtype)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println(cli.StyleWarning(fmt.Sprintf(
				"No observations of %s for %s.", activityType, actor)))
			return nil
		}
		fmt.Println(cli.RenderPredictions(actor, []model.Prediction{*p}))
		return nil
	}

	predictions, err := svc.GetPredictions(ctx, actor)
	if err != nil {
		return err
	}
	fmt.Println(cli.RenderPredictions(actor, predictions))
	return nil
}

// predictionConfig overlays configured constants on the defaults. The
// statistical constants are tunable but never inferred from data.
func predictionConfig() prediction.Config {
	cfg := prediction.DefaultConfig()
	if v := viper.GetInt("prediction.recent_window_days"); v > 0 {
		cfg.RecentWindowDays = v
	}
	if v := viper.GetInt("prediction.mid_window_days"); v > 0 {
		cfg.MidWindowDays = v
	}
	if v := viper.GetFloat64("prediction.prior_strength"); v > 0 {
		cfg.PriorStrength = v
	}
	if v := viper.GetFloat64("prediction.trend_threshold"); v > 0 {
		cfg.TrendThreshold = v
	}
	return cfg
}
