package payables

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

// fileName is the installment plan file under the data directory.
const fileName = "payables.csv"

// Service persists installment plans and applies their transitions.
type Service struct {
	dataDir string
}

// NewService creates a payables Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// List reads all plans. A missing file is an empty list.
func (s *Service) List() ([]model.InstallmentPlan, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening payables: %w", err)
	}
	defer f.Close()

	plans, err := ReadPlans(f)
	if err != nil {
		return nil, fmt.Errorf("reading payables: %w", err)
	}
	return plans, nil
}

// Get returns a plan by id.
func (s *Service) Get(planID int) (model.InstallmentPlan, error) {
	plans, err := s.List()
	if err != nil {
		return model.InstallmentPlan{}, err
	}
	for _, plan := range plans {
		if plan.ID == planID {
			return plan, nil
		}
	}
	return model.InstallmentPlan{}, fmt.Errorf("plan %d not found", planID)
}

// Add validates and persists a new plan, returning it with its id assigned.
func (s *Service) Add(description string, totalAmount decimal.Decimal, installmentCount int, dueDate time.Time) (model.InstallmentPlan, error) {
	plans, err := s.List()
	if err != nil {
		return model.InstallmentPlan{}, err
	}

	ids := make([]int, len(plans))
	for i, plan := range plans {
		ids[i] = plan.ID
	}

	plan, err := NewPlan(id.Next(ids), description, totalAmount, installmentCount, dueDate)
	if err != nil {
		return model.InstallmentPlan{}, err
	}

	if err := s.writeAll(append(plans, plan)); err != nil {
		return model.InstallmentPlan{}, err
	}
	return plan, nil
}

// SettleOne advances the plan one installment and persists the new
// current installment and settled flag. Settling an already settled plan
// is a no-op.
func (s *Service) SettleOne(planID int) (model.InstallmentPlan, error) {
	plans, err := s.List()
	if err != nil {
		return model.InstallmentPlan{}, err
	}

	for i, plan := range plans {
		if plan.ID != planID {
			continue
		}
		plans[i] = SettleOne(plan)
		if err := s.writeAll(plans); err != nil {
			return model.InstallmentPlan{}, err
		}
		return plans[i], nil
	}
	return model.InstallmentPlan{}, fmt.Errorf("plan %d not found", planID)
}

// Update edits a plan's total amount and installment count. The
// per-installment amount is re-derived before anything is persisted; a
// stale amount is never written.
func (s *Service) Update(planID int, totalAmount decimal.Decimal, installmentCount int) (model.InstallmentPlan, error) {
	plans, err := s.List()
	if err != nil {
		return model.InstallmentPlan{}, err
	}

	for i, plan := range plans {
		if plan.ID != planID {
			continue
		}
		plan.TotalAmount = totalAmount
		plan.InstallmentCount = installmentCount
		plan, err = RecalculateInstallmentAmount(plan)
		if err != nil {
			return model.InstallmentPlan{}, err
		}
		plans[i] = plan
		if err := s.writeAll(plans); err != nil {
			return model.InstallmentPlan{}, err
		}
		return plan, nil
	}
	return model.InstallmentPlan{}, fmt.Errorf("plan %d not found", planID)
}

// Remove deletes a plan. Plans are hard-deleted; a settled plan cannot be
// reopened, only recreated.
func (s *Service) Remove(planID int) error {
	plans, err := s.List()
	if err != nil {
		return err
	}

	kept := plans[:0]
	for _, plan := range plans {
		if plan.ID != planID {
			kept = append(kept, plan)
		}
	}
	if len(kept) == len(plans) {
		return fmt.Errorf("plan %d not found", planID)
	}
	return s.writeAll(kept)
}

func (s *Service) writeAll(plans []model.InstallmentPlan) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("rewriting payables: %w", err)
	}
	defer f.Close()

	if err := WritePlans(f, plans); err != nil {
		return fmt.Errorf("writing payables: %w", err)
	}
	return nil
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, fileName)
}
