package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transfersHTML = `<table>
<tr><th>Module</th><th>Origin</th><th>ECTS</th></tr>
<tr><td>Statistik I</td><td>Universität Wien</td><td>9</td></tr>
</table>`

func TestParseStretches(t *testing.T) {
	got, err := parseStretches("1, 1,2.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2.5}, got)

	got, err = parseStretches("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseStretches("1,x")
	assert.Error(t, err)
}

func TestParseMargins(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]float64
		wantErr bool
	}{
		{in: "40", want: [4]float64{40, 40, 40, 40}},
		{in: "20,30", want: [4]float64{20, 30, 20, 30}},
		{in: "1,2,3,4", want: [4]float64{1, 2, 3, 4}},
		{in: "1,2,3", wantErr: true},
		{in: "a", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			top, right, bottom, left, err := parseMargins(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [4]float64{top, right, bottom, left})
		})
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "transfers.pdf", outputPath("transfers.html"))
	assert.Equal(t, filepath.Join("reports", "q1.pdf"), outputPath(filepath.Join("reports", "q1.htm")))
	assert.Equal(t, "transfers.pdf", outputPath("https://example.org/exports/transfers.html"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transfers.html")
	require.NoError(t, os.WriteFile(input, []byte(transfersHTML), 0o644))
	output := filepath.Join(dir, "out.pdf")

	err := run([]string{"--input", input, "--output", output, "--stretch", "2,2,1", "--margins", "30", "--caption", "Anerkennungen"}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRunStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transfers.html")
	require.NoError(t, os.WriteFile(input, []byte(transfersHTML), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-i", input, "-o", "-", "--orientation", "landscape"}, &stdout))
	assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("%PDF")))
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transfers.html")
	require.NoError(t, os.WriteFile(input, []byte(transfersHTML), 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{}},
		{"unknown flag", []string{"--colour"}},
		{"stretch count", []string{"-i", input, "-o", "-", "--stretch", "1,1"}},
		{"unknown page size", []string{"-i", input, "-o", "-", "--page-size", "b5"}},
		{"missing table", []string{"-i", input, "-o", "-", "--table", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			assert.Error(t, run(tt.args, &stdout))
			assert.Zero(t, stdout.Len())
		})
	}
}
