package payables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header for payables.csv.
const Header = "plan_id,description,total_amount,installment_count,current_installment,installment_amount,due_date,is_settled"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colID      = 0
	colDesc    = 1
	colTotal   = 2
	colCount   = 3
	colCurrent = 4
	colAmount  = 5
	colDueDate = 6
	colSettled = 7
)

// ReadPlans reads all installment plans from a payables.csv reader.
func ReadPlans(r io.Reader) ([]model.InstallmentPlan, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payables CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var plans []model.InstallmentPlan
	for i, rec := range records[1:] {
		plan, err := UnmarshalPlan(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// WritePlans writes plans to a payables.csv writer (including header).
func WritePlans(w io.Writer, plans []model.InstallmentPlan) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, plan := range plans {
		if err := cw.Write(MarshalPlan(plan)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalPlan converts an InstallmentPlan to a CSV row.
func MarshalPlan(plan model.InstallmentPlan) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(plan.ID)
	row[colDesc] = plan.Description
	row[colTotal] = plan.TotalAmount.StringFixed(2)
	row[colCount] = strconv.Itoa(plan.InstallmentCount)
	row[colCurrent] = strconv.Itoa(plan.CurrentInstallment)
	row[colAmount] = plan.InstallmentAmount.StringFixed(2)
	row[colDueDate] = plan.DueDate.Format(dateFormat)
	row[colSettled] = strconv.FormatBool(plan.IsSettled)
	return row
}

// UnmarshalPlan converts a CSV row to an InstallmentPlan.
func UnmarshalPlan(record []string) (model.InstallmentPlan, error) {
	if len(record) != numFields {
		return model.InstallmentPlan{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	planID, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing plan_id %q: %w", record[colID], err)
	}

	total, err := decimal.NewFromString(record[colTotal])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing total_amount %q: %w", record[colTotal], err)
	}

	count, err := strconv.Atoi(record[colCount])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing installment_count %q: %w", record[colCount], err)
	}

	current, err := strconv.Atoi(record[colCurrent])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing current_installment %q: %w", record[colCurrent], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing installment_amount %q: %w", record[colAmount], err)
	}

	due, err := time.Parse(dateFormat, record[colDueDate])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing due_date %q: %w", record[colDueDate], err)
	}

	settled, err := strconv.ParseBool(record[colSettled])
	if err != nil {
		return model.InstallmentPlan{}, fmt.Errorf("parsing is_settled %q: %w", record[colSettled], err)
	}

	return model.InstallmentPlan{
		ID:                 planID,
		Description:        record[colDesc],
		TotalAmount:        total,
		InstallmentCount:   count,
		CurrentInstallment: current,
		InstallmentAmount:  amount,
		DueDate:            due,
		IsSettled:          settled,
	}, nil
}
