package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSodaSizeLabels(t *testing.T) {
	tests := []struct {
		size  SodaSize
		label string
	}{
		{SizeVerySmall, "350ml"},
		{SizeSmall, "600ml"},
		{SizeRegular, "1L"},
		{SizeBig, "2L"},
		{SizeVeryBig, "2.5L"},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			assert.True(t, tt.size.Valid())
			assert.Equal(t, tt.label, tt.size.Label())
		})
	}
}

func TestSodaSizeUnknown(t *testing.T) {
	unknown := SodaSize("HUGE")
	assert.False(t, unknown.Valid())
	assert.Empty(t, unknown.Label())
	assert.False(t, SodaSize("").Valid())
}

func TestAllSizesOrderedSmallestFirst(t *testing.T) {
	sizes := AllSizes()
	require.Len(t, sizes, 5)
	assert.Equal(t, SizeVerySmall, sizes[0])
	assert.Equal(t, SizeVeryBig, sizes[4])
}

func TestSodaDTOJSONUsesSizeName(t *testing.T) {
	max, qty := 50, 10
	dto := SodaDTO{Name: "Mineiro", Max: &max, Quantity: &qty, Size: SizeBig}

	out, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"name":"Mineiro","max":50,"quantity":10,"size":"BIG"}`, string(out))
}
