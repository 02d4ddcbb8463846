package trend

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"github.com/markusressel/pid2go/internal/util"
	"os"
	"path/filepath"
	"strconv"
)

const fileSuffix = "_pid_trend.csv"

var header = []string{"Sample", "PV", "SP", "OUT", "LOAD"}

// Exporter persists a trend outside of the controller
type Exporter interface {
	Export(loopId string, rows []Row) (string, error)
}

// CsvExporter writes trends as CSV files into a directory
type CsvExporter struct {
	Dir string
}

func NewCsvExporter(dir string) *CsvExporter {
	return &CsvExporter{Dir: dir}
}

// FileName returns the name of the export file of the given loop
func FileName(loopId string) string {
	return loopId + fileSuffix
}

// Export writes the given rows to <Dir>/<loopId>_pid_trend.csv and returns the path of the file.
func (e *CsvExporter) Export(loopId string, rows []Row) (string, error) {
	dir, err := util.ExpandPath(e.Dir)
	if err != nil {
		return "", err
	}
	if len(dir) > 0 {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	data, err := FormatCsv(rows)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(loopId))
	err = util.WriteFileAtomic(path, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("cannot write trend of loop %s: %w", loopId, err)
	}
	return path, nil
}

// FormatCsv renders rows including a header line
func FormatCsv(rows []Row) ([]byte, error) {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			formatValue(row.PV),
			formatValue(row.SP),
			formatValue(row.Out),
			formatValue(row.Load),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buffer.Bytes(), writer.Error()
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
