package counter

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCounter_ModeSingleElement(t *testing.T) {
	c := NewCounter[string]()
	c.UpdateCounter("Streeter Dr & Grand Ave")

	mode, ok := c.Mode()

	require.True(t, ok)
	require.Equal(t, "Streeter Dr & Grand Ave", mode)
}

func TestCounter_ModeEmpty(t *testing.T) {
	c := NewCounter[int]()

	_, ok := c.Mode()
	require.False(t, ok)

	_, ok = c.Min()
	require.False(t, ok)

	_, ok = c.Max()
	require.False(t, ok)

	require.Empty(t, c.ValueCounts())
}

func TestCounter_ModeTieBreaksBySmallestValue(t *testing.T) {
	c := NewCounter[int]()
	for _, hour := range []int{17, 8, 17, 8, 23} {
		c.UpdateCounter(hour)
	}

	mode, ok := c.Mode()

	require.True(t, ok)
	require.Equal(t, 8, mode)
}

func TestCounter_ModeIncludesZeroValue(t *testing.T) {
	c := NewCounter[int]()
	c.UpdateCounter(0)
	c.UpdateCounter(0)
	c.UpdateCounter(5)

	mode, ok := c.Mode()

	require.True(t, ok)
	require.Equal(t, 0, mode)
}

func TestCounter_MinMax(t *testing.T) {
	c := NewCounter[int]()
	for _, year := range []int{1989, 1950, 2001, 1989} {
		c.UpdateCounter(year)
	}

	minValue, ok := c.Min()
	require.True(t, ok)
	require.Equal(t, 1950, minValue)

	maxValue, ok := c.Max()
	require.True(t, ok)
	require.Equal(t, 2001, maxValue)

	require.Equal(t, 4, c.GetTotal())
	require.Equal(t, 2, c.GetCounter(1989))
}

func TestCounter_ValueCounts(t *testing.T) {
	c := NewCounter[string]()
	for _, userType := range []string{"Subscriber", "Customer", "Subscriber", "Dependent", "Customer", "Subscriber"} {
		c.UpdateCounter(userType)
	}

	expected := []ValueCount[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Customer", Count: 2},
		{Value: "Dependent", Count: 1},
	}
	require.Equal(t, expected, c.ValueCounts())
}

func TestCounter_Merge(t *testing.T) {
	c1 := NewCounter[string]()
	c1.UpdateCounter("Male")
	c2 := NewCounter[string]()
	c2.UpdateCounter("Male")
	c2.UpdateCounter("Female")

	merged := c1.Merge(c2)

	require.Equal(t, 2, merged.GetCounter("Male"))
	require.Equal(t, 1, merged.GetCounter("Female"))
	require.Equal(t, 3, merged.GetTotal())
	require.Equal(t, 1, c1.GetTotal())
}
