package app

import (
	"context"
	"fmt"
	"time"

	"secretgrid/adapters/excel"
	"secretgrid/adapters/markup"
	"secretgrid/domain/document"
	"secretgrid/domain/grid"
	"secretgrid/internal"
	"secretgrid/internal/errors"
	"secretgrid/ports"
)

// GridPrinter is the output side of a run
type GridPrinter interface {
	RenderGrid(g *grid.Grid) error
	FetchFailed() error
	NoData() error
}

// Decoder runs fetch, extract, validate and build for one document
type Decoder struct {
	fetcher    ports.DocumentFetcher
	extractors map[document.Format]ports.TableExtractor
	format     document.Format
	logger     *internal.Logger
}

// DecodeResult describes how a document was read
type DecodeResult struct {
	Grid       *grid.Grid
	Format     document.Format
	RowsSeen   int
	Candidates int // rows with exactly three cells
	Triples    int
	RuntimeMs  int64
}

// DefaultExtractors returns an extractor for every supported format
func DefaultExtractors(logger *internal.Logger) map[document.Format]ports.TableExtractor {
	return map[document.Format]ports.TableExtractor{
		document.FormatHTML: markup.NewExtractor(logger),
		document.FormatCSV:  excel.NewExtractor(document.FormatCSV, logger),
		document.FormatXLSX: excel.NewExtractor(document.FormatXLSX, logger),
	}
}

// NewDecoder creates a decoder. A FormatUnknown format means detect it per
// document.
func NewDecoder(fetcher ports.DocumentFetcher, extractors map[document.Format]ports.TableExtractor, format document.Format, logger *internal.Logger) *Decoder {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Decoder{
		fetcher:    fetcher,
		extractors: extractors,
		format:     format,
		logger:     logger,
	}
}

// Decode fetches the document at location and plots its coordinate rows.
// Errors carry FETCH_FAILED, PARSE_FAILED or NO_DATA.
func (d *Decoder) Decode(ctx context.Context, location string) (*DecodeResult, error) {
	startTime := time.Now()

	doc, err := d.fetcher.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	format := d.format
	if format == document.FormatUnknown {
		format = doc.DetectFormat()
	}
	extractor, ok := d.extractors[format]
	if !ok {
		return nil, errors.ParseFailed(string(format), fmt.Errorf("no extractor registered"))
	}

	rows, err := extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	result := &DecodeResult{Format: format, RowsSeen: len(rows)}
	candidates := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == grid.RowWidth {
			candidates = append(candidates, row)
		}
	}
	result.Candidates = len(candidates)

	triples := grid.ParseRows(candidates)
	result.Triples = len(triples)
	d.logger.Debug("%s: %d rows, %d with %d cells, %d valid triples",
		format, result.RowsSeen, result.Candidates, grid.RowWidth, result.Triples)

	if len(triples) == 0 {
		return result, errors.NoData(fmt.Sprintf("no valid coordinate rows in %s", location))
	}

	result.Grid = grid.Build(triples)
	width, height := result.Grid.Size()
	result.RuntimeMs = time.Since(startTime).Milliseconds()
	d.logger.Info("decoded %dx%d grid from %d triples in %dms", width, height, result.Triples, result.RuntimeMs)

	return result, nil
}

// Run decodes location and prints either the picture or a short diagnostic.
// Fetch and data failures are reported on out, not returned; only a failed
// write is an error.
func (d *Decoder) Run(ctx context.Context, location string, out GridPrinter) error {
	result, err := d.Decode(ctx, location)

	var writeErr error
	switch {
	case err == nil:
		writeErr = out.RenderGrid(result.Grid)
	case errors.HasCode(err, errors.CodeNoData):
		d.logger.Debug("%v", err)
		writeErr = out.NoData()
	default:
		d.logger.Warn("%v", err)
		writeErr = out.FetchFailed()
	}

	if writeErr != nil {
		d.logger.Error("failed to write output: %v", writeErr)
		return errors.Wrap(writeErr, "failed to write output")
	}
	return nil
}
