package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/homecost-go/internal/calculations"
	"github.com/cloud-ru/homecost-go/internal/config"
	"github.com/cloud-ru/homecost-go/internal/logging"
	"github.com/cloud-ru/homecost-go/internal/metrics"
	"github.com/cloud-ru/homecost-go/internal/report"
	"github.com/cloud-ru/homecost-go/internal/runner"
	"github.com/cloud-ru/homecost-go/internal/tracing"
)

type rootOptions struct {
	scenario string
	simple   bool
	output   string
	plain    bool
	schedule bool
}

// NewRootCmd builds the homecost command. Without flags it runs the built-in
// extended scenario and prints the text report.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "homecost",
		Short: "Compare the cost of buying a home with renting",
		Long: "Simulate a fixed-rate mortgage with property tax, insurance, HOA and resale " +
			"against a fixed monthly rent, and report cumulative costs year by year.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "Scenario file (.toml, .yaml or .yml), overrides SCENARIO_FILE")
	cmd.Flags().BoolVar(&opts.simple, "simple", false, "Run the built-in scenario without closing costs, HOA or resale")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable the styled title and colors")
	cmd.Flags().BoolVar(&opts.schedule, "schedule", false, "Include the monthly amortization schedule (json output)")
	cmd.MarkFlagsMutuallyExclusive("scenario", "simple")

	return cmd
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", opts.output)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	tracer, shutdown, err := tracing.InitTracing(ctx, logger, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown failed")
		}
	}()

	sc, err := resolveScenario(cfg, opts)
	if err != nil {
		return err
	}

	result, err := runner.New(tracer, logger).Run(ctx, sc, runner.Options{Schedule: opts.schedule})
	if err != nil {
		return err
	}

	r := report.NewRenderer(cmd.OutOrStdout(), !opts.plain)
	if opts.output == "json" {
		err = r.JSON(result)
	} else {
		err = r.Text(result)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
	}

	return nil
}

// resolveScenario picks the scenario: --scenario, then SCENARIO_FILE, then
// the built-in fixtures.
func resolveScenario(cfg *config.Config, opts *rootOptions) (calculations.Scenario, error) {
	path := opts.scenario
	if path == "" && !opts.simple {
		path = cfg.ScenarioFile
	}
	if path != "" {
		return config.LoadScenario(path)
	}
	if opts.simple {
		return calculations.SimpleScenario(), nil
	}
	return calculations.ExtendedScenario(), nil
}
