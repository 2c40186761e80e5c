package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hochfrequenz/fristenkalender/pkg/export"
)

var (
	expYear     int
	expOut      string
	expFormat   string
	expAttendee string
	expType     string
	expLabels   []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the Fristen of a year to a file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().IntVarP(&expYear, "year", "y", time.Now().Year(), "calendar year")
	exportCmd.Flags().StringVarP(&expOut, "out", "o", "", "output file (default <output_dir>/fristenkalender_<year>.<format>)")
	exportCmd.Flags().StringVarP(&expFormat, "format", "f", "", "ics, json, csv or days (default from config)")
	exportCmd.Flags().StringVar(&expAttendee, "attendee", "", "attendee e-mail for ics exports (default from config)")
	exportCmd.Flags().StringVarP(&expType, "type", "t", "", "process type")
	exportCmd.Flags().StringSliceVarP(&expLabels, "label", "l", nil, "restrict to labels")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, svc, err := loadService()
	if err != nil {
		return err
	}
	defer svc.Close()

	format := expFormat
	if format == "" {
		format = cfg.Export.Format
	}
	attendee := expAttendee
	if attendee == "" {
		attendee = cfg.Export.Attendee
	}
	out := expOut
	if out == "" {
		ext := format
		if format == "days" {
			ext = "json"
		}
		name := fmt.Sprintf("fristenkalender_%d.%s", expYear, ext)
		if expType != "" {
			name = fmt.Sprintf("fristenkalender_%s_%d.%s", expType, expYear, ext)
		}
		out = filepath.Join(cfg.Export.OutputDir, name)
	}

	list, err := selectFristen(svc.Generator, expYear, expType, expLabels)
	if err != nil {
		return err
	}

	switch format {
	case "ics":
		err = svc.ICS.ExportCalendar(out, attendee, list)
	case "json", "csv", "days":
		err = writeFile(out, func(f *os.File) error {
			switch format {
			case "json":
				return export.WriteJSON(f, list)
			case "csv":
				return export.WriteCSV(f, list)
			}
			days, err := export.CalendarDays(expYear, list, svc.Calendar)
			if err != nil {
				return err
			}
			return export.WriteDays(f, days)
		})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d Fristen to %s\n", len(list), out)
	return err
}

func writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
