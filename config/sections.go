package config

import (
	"fmt"

	"github.com/hochfrequenz/fristenkalender/core/holiday"
	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/pkg/export"
)

// CalendarConfig selects the holiday ruleset and the years it covers.
type CalendarConfig struct {
	// HolidaysFile points to a YAML ruleset; empty selects the built-in BDEW rules.
	HolidaysFile string `json:"holidays_file"`
	MinYear      int    `json:"min_year"`
	MaxYear      int    `json:"max_year"`
}

// SetDefaults applies sane defaults.
func (c *CalendarConfig) SetDefaults() {
	if c.MinYear == 0 {
		c.MinYear = holiday.DefaultMinYear
	}
	if c.MaxYear == 0 {
		c.MaxYear = holiday.DefaultMaxYear
	}
}

// Validate checks the year range.
func (c CalendarConfig) Validate() error {
	if c.MinYear > c.MaxYear {
		return fmt.Errorf("min_year %d is after max_year %d", c.MinYear, c.MaxYear)
	}
	return nil
}

// GeneratorConfig tunes the Fristen generator.
type GeneratorConfig struct {
	Parallel bool `json:"parallel"`
}

// ExportConfig holds defaults for file exports.
type ExportConfig struct {
	Attendee  string `json:"attendee"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	ProductID string `json:"product_id"`
}

// Formats lists the supported export formats.
var Formats = []string{"ics", "json", "csv", "days"}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Format == "" {
		c.Format = "ics"
	}
	if c.ProductID == "" {
		c.ProductID = export.DefaultProductID
	}
}

// Validate checks the format.
func (c ExportConfig) Validate() error {
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q", c.Format)
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address string `json:"address"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

// NotifyConfig controls the reminder run.
type NotifyConfig struct {
	HorizonDays int      `json:"horizon_days"`
	Types       []string `json:"types"`
}

// SetDefaults applies sane defaults.
func (c *NotifyConfig) SetDefaults() {
	if c.HorizonDays == 0 {
		c.HorizonDays = 7
	}
}

// Validate checks the horizon and the process types.
func (c NotifyConfig) Validate() error {
	if c.HorizonDays < 0 {
		return fmt.Errorf("horizon_days must not be negative")
	}
	_, err := c.FristenTypes()
	return err
}

// FristenTypes parses Types.
func (c NotifyConfig) FristenTypes() ([]model.FristenType, error) {
	out := make([]model.FristenType, 0, len(c.Types))
	for _, s := range c.Types {
		t, err := model.ParseFristenType(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
