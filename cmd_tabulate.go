package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wutcharinth/election-tally/apportion"
	"github.com/wutcharinth/election-tally/config"
	"github.com/wutcharinth/election-tally/geo"
	"github.com/wutcharinth/election-tally/party"
	"github.com/wutcharinth/election-tally/report"
	"github.com/wutcharinth/election-tally/tally"
	"github.com/wutcharinth/election-tally/workbook"
)

var (
	configPath string
	inputPath  string
	outputPath string
)

var tabulateCmd = &cobra.Command{
	Use:   "tabulate",
	Short: "Read the results workbook and write the aggregated JSON report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTabulate()
	},
}

func init() {
	tabulateCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	tabulateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input workbook path (overrides config)")
	tabulateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON path (overrides config)")
}

func runTabulate() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		cfg.Input = inputPath
	}
	if outputPath != "" {
		cfg.Output = outputPath
	}

	reader, err := workbook.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	agg := tally.NewAggregator()
	if err := reader.Each(func(row workbook.BallotRow) error {
		agg.Add(row)
		return nil
	}); err != nil {
		return fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	logger.Info("aggregated workbook",
		zap.String("input", cfg.Input),
		zap.Int("provinces", len(agg.Provinces())),
		zap.Int("parties", len(agg.National().Parties)),
		zap.Int("totalVotes", agg.National().TotalVotes),
		zap.Int("skippedRows", agg.Skipped()),
	)

	apportion.Constituency(agg.Provinces(), agg.National())
	if err := apportion.PartyList(agg.National(), cfg.PartyListSeats); err != nil {
		return err
	}

	assembler := report.NewAssembler(
		party.NewResolver(party.DefaultTable()),
		geo.NewResolver(geo.DefaultRegions(), geo.DefaultGrids()),
		cfg.Turnout,
	)
	doc := assembler.Build(agg)

	if err := report.WriteFile(doc, cfg.Output); err != nil {
		return err
	}

	logger.Info("report written", zap.String("output", cfg.Output))
	return nil
}
