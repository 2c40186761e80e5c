package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

var holYear int

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List the days that are not BDEW working days besides weekends",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, svc, err := loadService()
		if err != nil {
			return err
		}
		defer svc.Close()
		hols, err := svc.Calendar.HolidaysInYear(holYear)
		if err != nil {
			return err
		}
		for _, h := range hols {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				h.Date.Format("2006-01-02"), model.WeekdayAbbrev(h.Date.Weekday()), h.Name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	holidaysCmd.Flags().IntVarP(&holYear, "year", "y", time.Now().Year(), "calendar year")
	rootCmd.AddCommand(holidaysCmd)
}
