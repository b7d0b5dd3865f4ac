package utils

import (
	"strconv"
	"strings"

	"tesouraria-ibs/models"
)

// FormatBRL formats an amount in centavos as "R$ 1.234,56".
// Uses dot as thousands separator and comma for centavos (pt-BR).
func FormatBRL(amount models.Money) string {
	cents := int64(amount)
	neg := cents < 0
	if neg {
		cents = -cents
	}

	reais := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	// Pre-allocate: digits + separators + "-R$ " + ",00"
	b.Grow(len(reais) + len(reais)/3 + 8)
	if neg {
		b.WriteString("-R$ ")
	} else {
		b.WriteString("R$ ")
	}

	// Insert separators from the left.
	rem := len(reais) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(reais[:rem])
	for i := rem; i < len(reais); i += 3 {
		b.WriteByte('.')
		b.WriteString(reais[i : i+3])
	}

	b.WriteByte(',')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}
