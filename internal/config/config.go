package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all tableprint configuration
type Config struct {
	Page  PageConfig
	Table TableConfig
	Font  FontConfig
	Log   LogConfig
}

// PageConfig holds page geometry settings
type PageConfig struct {
	Size        string // a3, a4, a5, letter, legal
	Orientation string // portrait, landscape
	Margins     MarginConfig
}

// MarginConfig holds page margins in points
type MarginConfig struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// TableConfig holds table layout settings
type TableConfig struct {
	TitleTemplate string
	Caption       string
	RepeatHeader  bool
	CellPadding   float64
}

// FontConfig holds font settings
type FontConfig struct {
	Family      string
	Size        float64
	HeaderStyle string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

var defaults = map[string]any{
	"page.size":           "a4",
	"page.orientation":    "portrait",
	"page.margins.top":    40.0,
	"page.margins.bottom": 40.0,
	"page.margins.left":   40.0,
	"page.margins.right":  40.0,

	"table.title_template": "Page %d",
	"table.caption":        "",
	"table.repeat_header":  true,
	"table.cell_padding":   5.0,

	"font.family":       "Helvetica",
	"font.size":         10.0,
	"font.header_style": "BI",

	"log.level":  "info",
	"log.format": "console",
	"log.output": "stderr",
}

// flagKeys maps command line flags onto configuration keys
var flagKeys = map[string]string{
	"page-size":   "page.size",
	"orientation": "page.orientation",
	"caption":     "table.caption",
	"title":       "table.title_template",
}

// Load loads configuration.
// Priority (highest to lowest):
// 1. Flags that were set on the command line
// 2. Environment variables with TABLEPRINT_ prefix (e.g. TABLEPRINT_PAGE_SIZE)
// 3. The file at path, or tableprint.toml in the working directory when path is empty
// 4. Built-in defaults
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tableprint")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TABLEPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Page: PageConfig{
			Size:        v.GetString("page.size"),
			Orientation: v.GetString("page.orientation"),
			Margins: MarginConfig{
				Top:    v.GetFloat64("page.margins.top"),
				Bottom: v.GetFloat64("page.margins.bottom"),
				Left:   v.GetFloat64("page.margins.left"),
				Right:  v.GetFloat64("page.margins.right"),
			},
		},
		Table: TableConfig{
			TitleTemplate: v.GetString("table.title_template"),
			Caption:       v.GetString("table.caption"),
			RepeatHeader:  v.GetBool("table.repeat_header"),
			CellPadding:   v.GetFloat64("table.cell_padding"),
		},
		Font: FontConfig{
			Family:      v.GetString("font.family"),
			Size:        v.GetFloat64("font.size"),
			HeaderStyle: v.GetString("font.header_style"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	m := c.Page.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return fmt.Errorf("page margins must not be negative")
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %g", c.Font.Size)
	}
	if c.Table.CellPadding < 0 {
		return fmt.Errorf("cell padding must not be negative")
	}
	return nil
}
