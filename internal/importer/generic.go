package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// GenericParser parses date,description,amount[,reference] statement exports.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
	genericColRef     = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic statement CSV and returns StatementLines. The
// reference column is optional.
func (p *GenericParser) Parse(r io.Reader) ([]model.StatementLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []model.StatementLine
	for i, rec := range records[1:] {
		line, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseGenericRow(record []string) (model.StatementLine, error) {
	if len(record) < 3 {
		return model.StatementLine{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	date, err := time.Parse(genericDateFormat, record[genericColDate])
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing date %q: %w", record[genericColDate], err)
	}

	amount, err := decimal.NewFromString(record[genericColAmount])
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing amount %q: %w", record[genericColAmount], err)
	}

	var ref string
	if len(record) > genericColRef {
		ref = record[genericColRef]
	}

	return model.StatementLine{
		Date:        date,
		Description: record[genericColDesc],
		Amount:      amount,
		Reference:   ref,
	}, nil
}
