// Package excel reads monthly heart-rate readings from local spreadsheet
// files. It is a ReadingSourcePort implementation for operator-supplied
// data; remote stores stay outside the module entirely.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cardiotrend/domain/trend"
	"cardiotrend/internal/errors"
)

// ReadingReader handles reading Excel and CSV files of monthly readings
type ReadingReader struct {
	config   ReaderConfig
	fileType string // "xlsx" or "csv"
}

// NewReadingReader creates a reader that handles both Excel and CSV files
func NewReadingReader(config ReaderConfig) *ReadingReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &ReadingReader{config: config, fileType: fileType}
}

// Readings implements ports.ReadingSourcePort. The first column carries the
// period label; every other recognized column becomes a raw reading field.
func (r *ReadingReader) Readings(ctx context.Context) ([]trend.RawReading, error) {
	log.Printf("[ReadingReader] Starting to read %s file: %s", r.fileType, r.config.FilePath)

	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, errors.InvalidInput(fmt.Sprintf("%s file not found: %s",
			strings.ToUpper(r.fileType), r.config.FilePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, errors.ExternalSourceError("spreadsheet", err)
	}

	return r.processRows(rows)
}

func (r *ReadingReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	log.Printf("[ReadingReader] Excel file opened in %.2fms",
		float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.config.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[ReadingReader] Sheet %q read (%d rows)", sheet, len(rows))

	return rows, nil
}

func (r *ReadingReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[ReadingReader] CSV file read (%d rows)", len(rows))

	return rows, nil
}

// processRows converts header+data rows into raw readings. Rows whose
// reading cells do not parse are skipped, not fatal: the preprocessor owns
// plausibility filtering, the adapter only owns shape.
func (r *ReadingReader) processRows(rows [][]string) ([]trend.RawReading, error) {
	if len(rows) < 2 {
		return nil, errors.InvalidInput("spreadsheet must have a header row and at least one data row")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, errors.InvalidInput("spreadsheet needs a period column and at least one reading column")
	}

	fieldNames := make([]string, len(header))
	for i := 1; i < len(header); i++ {
		fieldNames[i] = canonicalField(header[i])
	}

	readings := make([]trend.RawReading, 0, len(rows)-1)
	skipped := 0

	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		fields := make(map[string]float64)
		for i := 1; i < len(row) && i < len(fieldNames); i++ {
			if fieldNames[i] == "" {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				continue
			}
			fields[fieldNames[i]] = value
		}

		if len(fields) == 0 {
			skipped++
			continue
		}

		readings = append(readings, trend.RawReading{
			Period: strings.TrimSpace(row[0]),
			Fields: fields,
		})
	}

	if skipped > 0 {
		log.Printf("[ReadingReader] Skipped %d rows without a parseable reading", skipped)
	}

	return readings, nil
}

// canonicalField maps a header cell to a conventional reading field name.
// Unrecognized headers are dropped so stray columns cannot leak into the
// analysis.
func canonicalField(header string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "bpm":
		return "bpm"
	case "value":
		return "value"
	case "heartrate", "heart_rate", "heart rate":
		return "heartRate"
	case "avgbpm", "avg_bpm", "avg bpm":
		return "avgBpm"
	case "reading":
		return "reading"
	default:
		return ""
	}
}
