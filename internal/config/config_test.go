package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/tableprint/pkg/api"
)

const sampleConfig = `
[page]
size = "letter"
orientation = "landscape"

[page.margins]
top = 20
bottom = 30

[table]
caption = "Anerkennungen"
repeat_header = false
title_template = "Seite %d"

[font]
family = "Times"
size = 12

[log]
level = "debug"
format = "json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tableprint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "a4", cfg.Page.Size)
	assert.Equal(t, "portrait", cfg.Page.Orientation)
	assert.Equal(t, MarginConfig{Top: 40, Bottom: 40, Left: 40, Right: 40}, cfg.Page.Margins)
	assert.Equal(t, "Page %d", cfg.Table.TitleTemplate)
	assert.True(t, cfg.Table.RepeatHeader)
	assert.Equal(t, 5.0, cfg.Table.CellPadding)
	assert.Equal(t, "Helvetica", cfg.Font.Family)
	assert.Equal(t, 10.0, cfg.Font.Size)
	assert.Equal(t, "BI", cfg.Font.HeaderStyle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, "letter", cfg.Page.Size)
	assert.Equal(t, "landscape", cfg.Page.Orientation)
	assert.Equal(t, 20.0, cfg.Page.Margins.Top)
	assert.Equal(t, 30.0, cfg.Page.Margins.Bottom)
	assert.Equal(t, 40.0, cfg.Page.Margins.Left, "unset keys keep their default")
	assert.Equal(t, "Anerkennungen", cfg.Table.Caption)
	assert.False(t, cfg.Table.RepeatHeader)
	assert.Equal(t, "Seite %d", cfg.Table.TitleTemplate)
	assert.Equal(t, "Times", cfg.Font.Family)
	assert.Equal(t, 12.0, cfg.Font.Size)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TABLEPRINT_PAGE_SIZE", "a3")
	t.Setenv("TABLEPRINT_TABLE_REPEAT_HEADER", "false")
	t.Setenv("TABLEPRINT_PAGE_MARGINS_LEFT", "15")

	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, "a3", cfg.Page.Size)
	assert.False(t, cfg.Table.RepeatHeader)
	assert.Equal(t, 15.0, cfg.Page.Margins.Left)
	assert.Equal(t, "landscape", cfg.Page.Orientation)
}

func TestLoadFlagOverrides(t *testing.T) {
	t.Setenv("TABLEPRINT_PAGE_SIZE", "a3")

	flags := pflag.NewFlagSet("tableprint", pflag.ContinueOnError)
	flags.String("page-size", "", "")
	flags.String("caption", "", "")
	flags.String("title", "", "")
	require.NoError(t, flags.Parse([]string{"--page-size", "legal", "--caption", "Transfers"}))

	cfg, err := Load(writeConfig(t, sampleConfig), flags)
	require.NoError(t, err)

	assert.Equal(t, "legal", cfg.Page.Size)
	assert.Equal(t, "Transfers", cfg.Table.Caption)
	assert.Equal(t, "Seite %d", cfg.Table.TitleTemplate, "unset flags do not override the file")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing explicit file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.toml") },
		},
		{
			name: "malformed file",
			path: func(t *testing.T) string { return writeConfig(t, "[page\nsize = ") },
		},
		{
			name: "zero font size",
			path: func(t *testing.T) string { return writeConfig(t, "[font]\nsize = 0\n") },
		},
		{
			name: "negative margin",
			path: func(t *testing.T) string { return writeConfig(t, "[page.margins]\ntop = -1\n") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t), nil)
			assert.Error(t, err)
		})
	}
}

func TestPrinterOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	opts, err := cfg.PrinterOptions()
	require.NoError(t, err)

	p := api.New(opts...)
	o := p.Options()
	assert.Equal(t, api.PageOrientationLandscape, o.PageOrientation)
	assert.Equal(t, 792, p.PageSize().Width)
	assert.Equal(t, 20.0, o.MarginTop)
	assert.Equal(t, "Anerkennungen", o.Caption)
	assert.False(t, o.RepeatHeader)
	assert.Equal(t, "Times", o.FontFamily)

	cfg.Page.Size = "b5"
	_, err = cfg.PrinterOptions()
	assert.ErrorIs(t, err, api.ErrUnknownPageSize)

	cfg.Page.Size = "a4"
	cfg.Page.Orientation = "sideways"
	_, err = cfg.PrinterOptions()
	assert.Error(t, err)
}
