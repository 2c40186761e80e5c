package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

var (
	genYear   int
	genType   string
	genLabels []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the Fristen of a year",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&genYear, "year", "y", time.Now().Year(), "calendar year")
	generateCmd.Flags().StringVarP(&genType, "type", "t", "", "process type (GPKE, GELI_GAS, MABIS, KOV, WIM)")
	generateCmd.Flags().StringSliceVarP(&genLabels, "label", "l", nil, "restrict to labels, e.g. 3LWT,5WT")
	rootCmd.AddCommand(generateCmd)
}

// selectFristen runs the generator entry point matching the type and label flags.
func selectFristen(g *fristen.Generator, year int, typ string, labels []string) ([]model.Frist, error) {
	if typ != "" && len(labels) > 0 {
		return nil, fmt.Errorf("--type and --label are mutually exclusive")
	}
	if typ != "" {
		t, err := model.ParseFristenType(typ)
		if err != nil {
			return nil, err
		}
		return g.GenerateFristenForType(year, t)
	}
	if len(labels) > 0 {
		offsets := make([]fristen.LabelOffset, 0, len(labels))
		for _, l := range labels {
			spec, err := fristen.ParseLabel(l)
			if err != nil {
				return nil, err
			}
			offsets = append(offsets, fristen.LabelOffset{N: spec.N, Label: spec.Label})
		}
		return g.GenerateFristenSubset(year, offsets)
	}
	return g.GenerateAllFristen(year)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	_, svc, err := loadService()
	if err != nil {
		return err
	}
	defer svc.Close()
	list, err := selectFristen(svc.Generator, genYear, genType, genLabels)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, f := range list {
		desc := f.Description
		if desc == "" {
			if desc, err = fristen.DescribeFrist(f); err != nil && !errors.Is(err, fristen.ErrUnknownDescriptionKey) {
				return fmt.Errorf("describe %s: %w", f, err)
			}
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			f.Date.Format("2006-01-02"), model.WeekdayAbbrev(f.Date.Weekday()), f.Summary(), desc); err != nil {
			return err
		}
	}
	return tw.Flush()
}
