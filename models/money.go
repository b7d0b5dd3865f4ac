package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in centavos (BRL minor units).
// It serializes as a decimal number of reais (e.g. 150.5) so persisted state
// keeps the same shape as documents saved with fractional values.
type Money int64

// Reais returns the amount as a decimal number of reais
func (m Money) Reais() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// MoneyFromDecimal rounds a decimal amount of reais to the nearest centavo
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Shift(2).Round(0).IntPart())
}

// MarshalJSON writes the amount as a JSON number of reais
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Reais().String()), nil
}

// UnmarshalJSON accepts a JSON number (150.5) or a string ("150,50", "R$ 1.234,56")
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid money value: %w", err)
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}
	*m = MoneyFromDecimal(d)
	return nil
}

// ParseMoney parses user-formatted amounts.
// Accepts "1234.56", "1234,56", "1.234,56", "R$ 1.234,56" and a leading '-'.
// When a comma is present it is the decimal separator and dots are grouping.
func ParseMoney(s string) (Money, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, "R$", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "\u00a0", "")

	neg := false
	if strings.HasPrefix(clean, "-") {
		neg = true
		clean = strings.TrimPrefix(clean, "-")
	}

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	var b strings.Builder
	b.Grow(len(clean) + 1)
	for _, r := range clean {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, fmt.Errorf("invalid money value: %q", s)
	}
	if neg {
		digits = "-" + digits
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return MoneyFromDecimal(d), nil
}
