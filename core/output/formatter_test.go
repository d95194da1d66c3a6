package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipcost/core/types"
)

func sampleQuote() *types.Quote {
	weight := decimal.RequireFromString("10")
	rate := decimal.RequireFromString("1.5")
	return &types.Quote{
		ID:        "test-quote",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Lines: []types.QuoteLine{
			{
				Mode:      types.ModeGround,
				WeightKg:  weight,
				RatePerKg: rate,
				Amount:    weight.Mul(rate),
				Currency:  types.CurrencyUSD,
				Formula:   "weight_kg * 1.5/kg",
			},
		},
		Total:    weight.Mul(rate),
		Currency: types.CurrencyUSD,
	}
}

func TestCLIFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: true}

	require.NoError(t, f.Render(&buf, sampleQuote()))

	out := buf.String()
	assert.Contains(t, out, "SHIPPING QUOTE SUMMARY")
	assert.Contains(t, out, "Ground (10 kg @ 1.5/kg)")
	assert.Contains(t, out, "15 USD")
	assert.Contains(t, out, "TOTAL")
}

func TestCLIFormatter_RenderNoDetails(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{ShowDetails: false}

	require.NoError(t, f.Render(&buf, sampleQuote()))

	out := buf.String()
	assert.NotContains(t, out, "Ground (10 kg")
	assert.Contains(t, out, "TOTAL")
}

func TestJSONFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	require.NoError(t, f.Render(&buf, sampleQuote()))

	var decoded types.Quote
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "test-quote", decoded.ID)
	require.Len(t, decoded.Lines, 1)
	assert.True(t, decoded.Total.Equal(decimal.RequireFromString("15")))
	assert.Equal(t, types.CurrencyUSD, decoded.Currency)
}

func TestGet(t *testing.T) {
	cli, ok := Get(FormatCLI)
	require.True(t, ok)
	assert.Equal(t, FormatCLI, cli.Format())

	jsonF, ok := Get(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, FormatJSON, jsonF.Format())

	_, ok = Get("xml")
	assert.False(t, ok)
}

func TestRegistry_DuplicateFormatter(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&JSONFormatter{}))
	assert.Error(t, r.Register(&JSONFormatter{}))
}
