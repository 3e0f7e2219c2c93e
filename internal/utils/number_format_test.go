package utils_test

import (
	"testing"

	"github.com/SscSPs/share_register/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "0.1", utils.FormatWithPrecision(decimal.RequireFromString("0.10"), 4))
	assert.Equal(t, "12.35", utils.FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "10", utils.FormatWithPrecision(decimal.NewFromInt(10), 2))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "9.09", utils.FormatFixed(decimal.RequireFromString("9.0909090909"), 2))
	assert.Equal(t, "90.91", utils.FormatFixed(decimal.RequireFromString("90.9090909091"), 2))
	assert.Equal(t, "50.00", utils.FormatFixed(decimal.NewFromInt(50), 2))
}

func TestFormatOptionalFixed(t *testing.T) {
	assert.Equal(t, "", utils.FormatOptionalFixed(nil, 2))
	price := decimal.RequireFromString("12.5")
	assert.Equal(t, "12.50", utils.FormatOptionalFixed(&price, 2))
}
