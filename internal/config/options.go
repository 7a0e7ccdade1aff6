package config

import (
	"fmt"

	"github.com/gompdf/tableprint/pkg/api"
)

// PrinterOptions maps the configuration onto printer options
func (c *Config) PrinterOptions() ([]api.Option, error) {
	width, height, err := api.PageSizeByName(c.Page.Size)
	if err != nil {
		return nil, err
	}
	orientation, err := api.ParseOrientation(c.Page.Orientation)
	if err != nil {
		return nil, fmt.Errorf("invalid page configuration: %w", err)
	}

	m := c.Page.Margins
	return []api.Option{
		api.WithPageSize(width, height),
		api.WithPageOrientation(orientation),
		api.WithMargins(m.Top, m.Right, m.Bottom, m.Left),
		api.WithTitleTemplate(c.Table.TitleTemplate),
		api.WithCaption(c.Table.Caption),
		api.WithRepeatHeader(c.Table.RepeatHeader),
		api.WithCellPadding(c.Table.CellPadding),
		api.WithFont(c.Font.Family, c.Font.Size),
		api.WithHeaderStyle(c.Font.HeaderStyle),
	}, nil
}
