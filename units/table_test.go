package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type testCase struct {
		Value, Unit, Category string
		Expected              float64
		ExpectErr             bool
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		actual, err := Parse(tc.Value, tc.Unit, tc.Category)
		if tc.ExpectErr {
			assert.Error(t, err)
			return
		}
		require.NoError(t, err)
		assert.InDelta(t, tc.Expected, actual, 1e-9*tc.Expected+1e-12)
	}

	t.Run("Length", func(t *testing.T) {
		check(t, testCase{Value: "2.5", Unit: "cm", Category: "Length", Expected: 25})
	})
	t.Run("Pressure", func(t *testing.T) {
		check(t, testCase{Value: "15", Unit: "bar", Category: "Pressure", Expected: 15 * Bar})
	})
	t.Run("InverseEnergy", func(t *testing.T) {
		check(t, testCase{Value: "25510", Unit: "1/MeV", Category: "1/Energy", Expected: 25510})
	})
	t.Run("NoUnit", func(t *testing.T) {
		check(t, testCase{Value: "3", Expected: 3})
	})
	t.Run("WrongCategory", func(t *testing.T) {
		check(t, testCase{Value: "3", Unit: "mm", Category: "Time", ExpectErr: true})
	})
	t.Run("UnknownUnit", func(t *testing.T) {
		check(t, testCase{Value: "3", Unit: "furlong", ExpectErr: true})
	})
	t.Run("BadNumber", func(t *testing.T) {
		check(t, testCase{Value: "three", Unit: "mm", ExpectErr: true})
	})
}

func TestBarIsHundredKiloPascal(t *testing.T) {
	assert.InDelta(t, 1e5, Bar/Pascal, 1e-6)
	assert.InDelta(t, 1.01325, Atmosphere/Bar, 1e-12)
}

func TestBest(t *testing.T) {
	assert.Equal(t, "1.5 m", Best(1500*MM, "Length"))
	assert.Equal(t, "300 um", Best(0.3*MM, "Length"))
	assert.Equal(t, "1 us", Best(1000*NS, "Time"))
}
