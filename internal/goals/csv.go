package goals

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

// Header is the CSV header for goals.csv.
const Header = "goal_id,name,target_amount,current_amount,deadline,status"

const (
	numFields   = 6
	dateFormat  = "2006-01-02"
	colID       = 0
	colName     = 1
	colTarget   = 2
	colCurrent  = 3
	colDeadline = 4
	colStatus   = 5
)

// ReadGoals reads all goals from a goals.csv reader.
func ReadGoals(r io.Reader) ([]model.Goal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading goals CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var goals []model.Goal
	for i, rec := range records[1:] {
		goal, err := UnmarshalGoal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		goals = append(goals, goal)
	}
	return goals, nil
}

// WriteGoals writes goals to a goals.csv writer (including header).
func WriteGoals(w io.Writer, goals []model.Goal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, goal := range goals {
		if err := cw.Write(MarshalGoal(goal)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalGoal converts a Goal to a CSV row. A zero deadline writes as an
// empty field.
func MarshalGoal(goal model.Goal) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(goal.ID)
	row[colName] = goal.Name
	row[colTarget] = goal.TargetAmount.StringFixed(2)
	row[colCurrent] = goal.CurrentAmount.StringFixed(2)
	if !goal.Deadline.IsZero() {
		row[colDeadline] = goal.Deadline.Format(dateFormat)
	}
	row[colStatus] = string(goal.Status)
	return row
}

// UnmarshalGoal converts a CSV row to a Goal.
func UnmarshalGoal(record []string) (model.Goal, error) {
	if len(record) != numFields {
		return model.Goal{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	goalID, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing goal_id %q: %w", record[colID], err)
	}

	target, err := decimal.NewFromString(record[colTarget])
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing target_amount %q: %w", record[colTarget], err)
	}

	current, err := decimal.NewFromString(record[colCurrent])
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing current_amount %q: %w", record[colCurrent], err)
	}

	var deadline time.Time
	if record[colDeadline] != "" {
		deadline, err = time.Parse(dateFormat, record[colDeadline])
		if err != nil {
			return model.Goal{}, fmt.Errorf("parsing deadline %q: %w", record[colDeadline], err)
		}
	}

	status := model.GoalStatus(record[colStatus])
	switch status {
	case model.GoalActive, model.GoalCompleted, model.GoalPaused, model.GoalCancelled:
	default:
		return model.Goal{}, fmt.Errorf("unknown status %q", record[colStatus])
	}

	return model.Goal{
		ID:            goalID,
		Name:          record[colName],
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Status:        status,
	}, nil
}
