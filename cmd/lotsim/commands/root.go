package commands

import (
	"fmt"

	"lotsim/internal/config"
	"lotsim/internal/logging"
	"lotsim/internal/lottery"
	"lotsim/internal/report"
	"lotsim/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	cfgPath     string
	showDetails bool
	showChart   bool
)

var rootCmd = &cobra.Command{
	Use:   "lotsim",
	Short: "Lotsim estimates ticket lottery win probabilities across sequential stages",
	Long: `Lotsim models a multi-stage concert ticket lottery analytically: given the
tour's seat pool, the core fan population and per-stage applicant ratios and
seat weights, it computes the chance of winning at each stage and the overall
chance of winning at least one seat, for any number of duplicate-win policies.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("lotsim starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		settings, targets, stages, cases := cfg.Lottery()
		engine, err := lottery.NewEngine(settings, targets, stages)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, report.RenderSettings(settings, targets))

		outcomes := lottery.RunCases(engine, cases)
		succeeded := make([]lottery.CaseResult, 0, len(outcomes))
		for _, o := range outcomes {
			if o.Err != nil {
				log.Error().Err(o.Err).Str("case", o.Case.Name).Msg("Case rejected")
				continue
			}
			fmt.Fprintf(out, "===== Simulation Case: %s =====\n", o.Case.Name)
			fmt.Fprint(out, report.RenderSummary(o.Result))
			if showDetails {
				fmt.Fprintln(out)
				fmt.Fprint(out, report.RenderDetails(o.Result))
			}
			fmt.Fprintln(out)
			succeeded = append(succeeded, o.Result)
		}

		if len(succeeded) == 0 {
			return fmt.Errorf("no simulation case produced a result")
		}

		if showChart {
			if chart := visuals.GenerateComparisonChart(succeeded); chart != "" {
				fmt.Fprintln(out, chart)
			} else {
				log.Info().Msg("Comparison chart needs at least two successful cases, skipping")
			}
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a JSON or YAML configuration file")
	rootCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "print the per-stage detail table for each case")
	rootCmd.Flags().BoolVar(&showChart, "chart", false, "emit a Mermaid chart comparing cases")
}
