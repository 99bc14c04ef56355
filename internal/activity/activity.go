package activity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the activity log: a named transition applied to a
// record (installment settled, goal amount updated, statement imported).
type Entry struct {
	ID        string // uuid
	Timestamp time.Time
	Action    string
	Details   string
	RecordID  int // id of the affected record, 0 if not applicable
}

// Actions recorded by the CLI.
const (
	ActionSettle     = "settle-installment"
	ActionGoalUpdate = "goal-update"
	ActionImport     = "import"
)

// Header is the CSV header for activity.csv.
const Header = "entry_id,timestamp,action,details,record_id"

const (
	numFields    = 5
	logFile      = "activity.csv"
	colID        = 0
	colTimestamp = 1
	colAction    = 2
	colDetails   = 3
	colRecordID  = 4
)

// New creates an entry with a fresh uuid and the current time.
func New(action, details string, recordID int) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Action:    action,
		Details:   details,
		RecordID:  recordID,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	if e.RecordID != 0 {
		row[colRecordID] = strconv.Itoa(e.RecordID)
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	var recordID int
	if record[colRecordID] != "" {
		recordID, err = strconv.Atoi(record[colRecordID])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing record_id %q: %w", record[colRecordID], err)
		}
	}

	return Entry{
		ID:        record[colID],
		Timestamp: ts,
		Action:    record[colAction],
		Details:   record[colDetails],
		RecordID:  recordID,
	}, nil
}

// Append writes entries to <dataDir>/activity.csv, creating the file and
// header if needed.
func Append(dataDir string, entries []Entry) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	defer cw.Flush()

	for _, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.ID, err)
		}
	}
	return cw.Error()
}

// Read returns all entries in the activity log. A missing file is an empty
// log.
func Read(dataDir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dataDir, logFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
