package grid

import (
	"strconv"
)

// Triple is a validated (x, y, symbol) record.
type Triple struct {
	X      int
	Y      int
	Symbol Glyph
}

// RowWidth is the only cell count a candidate coordinate row may have.
const RowWidth = 3

// MaxCoordinate is the largest x or y a row may carry. It caps a grid at
// 4096x4096 cells.
const MaxCoordinate = 1<<12 - 1

// ParseRow interprets a raw cell row as a coordinate triple.
//
// The symbol is looked for in field 1 first, giving (x, symbol, y), and then
// in field 2, giving (x, y, symbol). Coordinates must be base-10 integers in
// [0, MaxCoordinate]. Any other shape yields ok == false; the row carries no
// error because malformed rows are expected noise in hand-published tables.
func ParseRow(fields []string) (t Triple, ok bool) {
	if len(fields) != RowWidth {
		return Triple{}, false
	}

	var xField, yField string
	if g, isGlyph := GlyphFromField(fields[1]); isGlyph {
		xField, yField, t.Symbol = fields[0], fields[2], g
	} else if g, isGlyph := GlyphFromField(fields[2]); isGlyph {
		xField, yField, t.Symbol = fields[0], fields[1], g
	} else {
		return Triple{}, false
	}

	x, err := strconv.Atoi(xField)
	if err != nil || !inRange(x) {
		return Triple{}, false
	}
	y, err := strconv.Atoi(yField)
	if err != nil || !inRange(y) {
		return Triple{}, false
	}

	t.X, t.Y = x, y
	return t, true
}

// ParseRows keeps the triples of every valid row, in input order.
func ParseRows(rows [][]string) []Triple {
	triples := make([]Triple, 0, len(rows))
	for _, row := range rows {
		if t, ok := ParseRow(row); ok {
			triples = append(triples, t)
		}
	}
	return triples
}

func inRange(c int) bool {
	return c >= 0 && c <= MaxCoordinate
}
