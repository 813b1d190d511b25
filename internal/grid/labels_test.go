package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabeticAxisLabels(t *testing.T) {
	got := AlphabeticAxisLabels()

	require.Len(t, got, 52)
	assert.Equal(t, []string{"A", "A.5", "B"}, got[:3])
	assert.Equal(t, []string{"Z", "Z.5"}, got[50:])
	assert.Contains(t, got, "M.5")
}

func TestNumericAxisLabels(t *testing.T) {
	got := NumericAxisLabels()

	require.Len(t, got, 36)
	assert.Equal(t, []string{"1", "1.5", "2"}, got[:3])
	assert.Equal(t, []string{"18", "18.5"}, got[34:])
	assert.NotContains(t, got, "0")
}

func TestLabels_FreshSlicePerCall(t *testing.T) {
	a := AlphabeticAxisLabels()
	a[0] = "changed"
	assert.Equal(t, "A", AlphabeticAxisLabels()[0])

	n := NumericAxisLabels()
	n[0] = "changed"
	assert.Equal(t, "1", NumericAxisLabels()[0])
}
