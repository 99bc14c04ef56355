package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/config"
)

const dateFormat = "2006-01-02"

// loadConfig reads tally.yaml from the data directory, falling back to
// defaults if the file is missing or unreadable.
func loadConfig(dir string) *config.Config {
	cfg, err := config.Load(filepath.Join(dir, configFileName))
	if err != nil {
		return config.Default()
	}
	return cfg
}

// formatAmount renders an amount with the configured currency symbol, to
// 2 decimal places.
func formatAmount(cfg *config.Config, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + cfg.Display.CurrencySymbol + amount.Abs().StringFixed(2)
	}
	return cfg.Display.CurrencySymbol + amount.StringFixed(2)
}

// parseDate parses a YYYY-MM-DD command argument.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// parseAmount parses a decimal command argument.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// today returns the current date truncated to midnight UTC.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
