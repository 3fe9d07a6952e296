package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wutcharinth/election-tally/sample"
)

var (
	generateOut       string
	generateProvinces int
	generateDistricts int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic input workbook for demos and manual testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sample.GenerateFile(generateOut, generateProvinces, generateDistricts); err != nil {
			return err
		}
		logger.Info("sample workbook written",
			zap.String("output", generateOut),
			zap.Int("provinces", generateProvinces),
			zap.Int("districts", generateDistricts),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "output", "o", "sample.xlsx", "output workbook path")
	generateCmd.Flags().IntVar(&generateProvinces, "provinces", 10, "number of provinces to generate")
	generateCmd.Flags().IntVar(&generateDistricts, "districts", 3, "districts per province")
}
