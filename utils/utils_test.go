package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tesouraria-ibs/models"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount models.Money
		want   string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{15050, "R$ 150,50"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-3500, "-R$ 35,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "07/03/2025", FormatDate("2025-03-07"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "março", FormatDate("março"))
	assert.Equal(t, "2025-3", FormatDate("2025-3"))
}

func TestFileDate(t *testing.T) {
	assert.Equal(t, "07-03-2025", FileDate("2025-03-07"))
	assert.Equal(t, "", FileDate(""))
	assert.Equal(t, "2025-3", FileDate("2025-3"))
	assert.Equal(t, "2025--07", FileDate("2025--07"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Pagamentos_Diversos_07-03-2025", SanitizeFileName("Pagamentos_Diversos_07/03\\2025"))
	assert.Equal(t, "a-b", SanitizeFileName("a:b"))
}
