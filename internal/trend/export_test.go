package trend

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatCsv(t *testing.T) {
	// GIVEN
	rows := []Row{
		{Index: 1, Sample: Sample{PV: 10, SP: 50, Out: 12.5, Load: 0}},
		{Index: 2, Sample: Sample{PV: 20.25, SP: 50, Out: 13, Load: 1}},
	}

	// WHEN
	data, err := FormatCsv(rows)

	// THEN
	assert.NoError(t, err)
	expected := "Sample,PV,SP,OUT,LOAD\n" +
		"1,10.00,50.00,12.50,0.00\n" +
		"2,20.25,50.00,13.00,1.00\n"
	assert.Equal(t, expected, string(data))
}

func TestCsvExporter_Export(t *testing.T) {
	// GIVEN
	dir := filepath.Join(t.TempDir(), "trends")
	exporter := NewCsvExporter(dir)
	buffer := NewBuffer(2, 1)
	buffer.Capture(Sample{PV: 1})
	buffer.Capture(Sample{PV: 2})

	// WHEN
	path, err := exporter.Export("loop0", buffer.Export())

	// THEN
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "loop0_pid_trend.csv"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample,PV,SP,OUT,LOAD\n1,1.00,0.00,0.00,0.00\n2,2.00,0.00,0.00,0.00\n", string(data))
}

func TestCsvExporter_ExportToUnwritableDir(t *testing.T) {
	// GIVEN
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte{}, 0o644))
	exporter := NewCsvExporter(filepath.Join(file, "sub"))

	// WHEN
	_, err := exporter.Export("loop0", []Row{})

	// THEN
	assert.Error(t, err)
}
