package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"secretgrid/domain/document"
	"secretgrid/internal"
	"secretgrid/internal/errors"
)

// Extractor reads rows out of spreadsheet exports: xlsx workbooks and CSV
type Extractor struct {
	format document.Format
	logger *internal.Logger
}

// NewExtractor creates an extractor for FormatXLSX or FormatCSV
func NewExtractor(format document.Format, logger *internal.Logger) *Extractor {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Extractor{format: format, logger: logger}
}

// Extract returns one row per sheet row or CSV record, cells trimmed
func (e *Extractor) Extract(doc *document.Document) ([]document.Row, error) {
	switch e.format {
	case document.FormatXLSX:
		return e.readWorkbook(doc)
	case document.FormatCSV:
		return e.readCSV(doc)
	default:
		return nil, errors.ParseFailed(string(e.format), fmt.Errorf("unsupported file type: %q", e.format))
	}
}

// readWorkbook reads the first sheet of an xlsx workbook
func (e *Extractor) readWorkbook(doc *document.Document) ([]document.Row, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
	if err != nil {
		return nil, errors.ParseFailed(string(document.FormatXLSX), fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseFailed(string(document.FormatXLSX), fmt.Errorf("workbook has no sheets"))
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseFailed(string(document.FormatXLSX), fmt.Errorf("failed to read %s: %w", sheets[0], err))
	}
	e.logger.Debug("%s read in %.2fms (%d rows)", sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(raw))

	return trimRows(raw), nil
}

// readCSV reads CSV records; records may differ in length
func (e *Extractor) readCSV(doc *document.Document) ([]document.Row, error) {
	body := bytes.TrimPrefix(doc.Body, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.ParseFailed(string(document.FormatCSV), fmt.Errorf("failed to read CSV: %w", err))
		}
		raw = append(raw, record)
	}
	e.logger.Debug("CSV read (%d records)", len(raw))

	return trimRows(raw), nil
}

func trimRows(raw [][]string) []document.Row {
	rows := make([]document.Row, len(raw))
	for i, record := range raw {
		row := make(document.Row, len(record))
		for j, cell := range record {
			row[j] = strings.TrimSpace(cell)
		}
		rows[i] = row
	}
	return rows
}
