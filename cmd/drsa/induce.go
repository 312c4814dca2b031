package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roughset/drsa/dataio"
	"github.com/roughset/drsa/domlem"
	"github.com/roughset/drsa/rule"
	"github.com/roughset/drsa/ruleml"
	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

type induceFlags struct {
	threshold       float64
	measure         string
	out             string
	missingValue    string
	characteristics bool
}

func newInduceCmd() *cobra.Command {
	flags := &induceFlags{missingValue: dataio.DefaultMissingValueString}

	cmd := &cobra.Command{
		Use:   "induce <table.(json|csv)> <attrs.json>",
		Short: "Induce a minimal rule set from an object table and attribute schema.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInduce(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().Float64Var(&flags.threshold, "threshold", 0, "variable-consistency epsilon threshold (0 keeps the classical rough-set Induce)")
	cmd.Flags().StringVar(&flags.measure, "measure", "epsilon", "consistency measure to apply --threshold against")
	cmd.Flags().StringVar(&flags.out, "out", "", "RuleML output path (defaults to stdout)")
	cmd.Flags().StringVar(&flags.missingValue, "missing", dataio.DefaultMissingValueString, "missing-value sentinel used when reading CSV object rows")
	cmd.Flags().BoolVar(&flags.characteristics, "characteristics", false, "print support/strength/confidence/coverage/epsilon for each rule to stderr")

	return cmd
}

func runInduce(cmd *cobra.Command, tablePath, attrsPath string, flags *induceFlags) error {
	attrsFile, err := os.Open(attrsPath)
	if err != nil {
		return fmt.Errorf("drsa: opening %s: %w", attrsPath, err)
	}
	defer attrsFile.Close()

	attrs, err := dataio.LoadAttributes(attrsFile)
	if err != nil {
		return fmt.Errorf("drsa: loading attribute schema: %w", err)
	}

	tableFile, err := os.Open(tablePath)
	if err != nil {
		return fmt.Errorf("drsa: opening %s: %w", tablePath, err)
	}
	defer tableFile.Close()

	rowValues, err := loadObjects(tableFile, tablePath, attrs, flags.missingValue)
	if err != nil {
		return fmt.Errorf("drsa: loading object table: %w", err)
	}

	tbl, err := table.New(attrs, rowValues)
	if err != nil {
		return fmt.Errorf("drsa: building information table: %w", err)
	}

	opts := inductionOptions(flags)

	if flags.characteristics {
		rswc, err := domlem.InduceRulesWithCharacteristics(tbl, opts...)
		if err != nil {
			return fmt.Errorf("drsa: inducing rules: %w", err)
		}
		printCharacteristics(cmd, rswc)
		return writeRuleML(flags.out, rswc.RuleSet())
	}

	rs, err := domlem.Induce(tbl, opts...)
	if err != nil {
		return fmt.Errorf("drsa: inducing rules: %w", err)
	}
	return writeRuleML(flags.out, rs)
}

func inductionOptions(flags *induceFlags) []domlem.Option {
	if flags.threshold <= 0 {
		return nil
	}
	switch strings.ToLower(flags.measure) {
	case "", "epsilon":
		return []domlem.Option{domlem.WithConsistencyThreshold(flags.threshold)}
	default:
		return nil
	}
}

func writeRuleML(out string, rs rule.RuleSet) error {
	if out == "" {
		return ruleml.Encode(os.Stdout, rs)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("drsa: creating %s: %w", out, err)
	}
	defer f.Close()
	return ruleml.Encode(f, rs)
}

func printCharacteristics(cmd *cobra.Command, rswc rule.RuleSetWithCharacteristics) {
	w := cmd.ErrOrStderr()
	for i, r := range rswc.Rules() {
		_, c := rswc.At(i)
		fmt.Fprintf(w, "%s | support=%d strength=%.4f confidence=%.4f coverage=%.4f epsilon=%.4f\n",
			r.String(), c.Support, c.Strength, c.Confidence, c.CoverageFactor, c.Epsilon)
	}
}

func loadObjects(f *os.File, path string, attrs []table.Attribute, missingValue string) ([][]value.Value, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return dataio.LoadObjectsCSV(f, attrs, missingValue)
	}
	return dataio.LoadObjectsJSON(f, attrs)
}
