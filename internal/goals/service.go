package goals

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

// fileName is the goals file under the data directory.
const fileName = "goals.csv"

// Service persists savings goals and applies their transitions.
type Service struct {
	dataDir string
}

// NewService creates a goals Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// List reads all goals. A missing file is an empty list.
func (s *Service) List() ([]model.Goal, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening goals: %w", err)
	}
	defer f.Close()

	goals, err := ReadGoals(f)
	if err != nil {
		return nil, fmt.Errorf("reading goals: %w", err)
	}
	return goals, nil
}

// Get returns a goal by id.
func (s *Service) Get(goalID int) (model.Goal, error) {
	goals, err := s.List()
	if err != nil {
		return model.Goal{}, err
	}
	for _, goal := range goals {
		if goal.ID == goalID {
			return goal, nil
		}
	}
	return model.Goal{}, fmt.Errorf("goal %d not found", goalID)
}

// Add validates and persists a new goal, returning it with its id assigned.
func (s *Service) Add(name string, targetAmount decimal.Decimal, deadline time.Time) (model.Goal, error) {
	goals, err := s.List()
	if err != nil {
		return model.Goal{}, err
	}

	ids := make([]int, len(goals))
	for i, goal := range goals {
		ids[i] = goal.ID
	}

	goal, err := NewGoal(id.Next(ids), name, targetAmount, deadline)
	if err != nil {
		return model.Goal{}, err
	}

	if err := s.writeAll(append(goals, goal)); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// ApplyCurrentAmount sets the goal's saved amount, applies the automatic
// status flip and persists the result.
func (s *Service) ApplyCurrentAmount(goalID int, amount decimal.Decimal) (model.Goal, error) {
	goals, err := s.List()
	if err != nil {
		return model.Goal{}, err
	}

	for i, goal := range goals {
		if goal.ID != goalID {
			continue
		}
		goals[i] = ApplyCurrentAmount(goal, amount)
		if err := s.writeAll(goals); err != nil {
			return model.Goal{}, err
		}
		return goals[i], nil
	}
	return model.Goal{}, fmt.Errorf("goal %d not found", goalID)
}

// SetStatus sets a goal's status directly (pause, cancel, reactivate) and
// persists it.
func (s *Service) SetStatus(goalID int, status model.GoalStatus) (model.Goal, error) {
	goals, err := s.List()
	if err != nil {
		return model.Goal{}, err
	}

	for i, goal := range goals {
		if goal.ID != goalID {
			continue
		}
		goals[i].Status = status
		if err := s.writeAll(goals); err != nil {
			return model.Goal{}, err
		}
		return goals[i], nil
	}
	return model.Goal{}, fmt.Errorf("goal %d not found", goalID)
}

// Remove deletes a goal.
func (s *Service) Remove(goalID int) error {
	goals, err := s.List()
	if err != nil {
		return err
	}

	kept := goals[:0]
	for _, goal := range goals {
		if goal.ID != goalID {
			kept = append(kept, goal)
		}
	}
	if len(kept) == len(goals) {
		return fmt.Errorf("goal %d not found", goalID)
	}
	return s.writeAll(kept)
}

func (s *Service) writeAll(goals []model.Goal) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("rewriting goals: %w", err)
	}
	defer f.Close()

	if err := WriteGoals(f, goals); err != nil {
		return fmt.Errorf("writing goals: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, fileName)
}
