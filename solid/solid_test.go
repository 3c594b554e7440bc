package solid

import (
	"math"
	"testing"

	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solidTestCases = test.MarshallingCases{
	{
		NewBox("KAPTON_BOARD", 39.5, 39.5, 0.15),
		`{"type":"box","name":"KAPTON_BOARD","halfX":39.5,"halfY":39.5,"halfZ":0.15}`,
	},
	{
		NewTubs("BOARD_MASK_HOLE", 0, 1.75, 1, 0, 2*math.Pi),
		`{"type":"tubs","name":"BOARD_MASK_HOLE","rMin":0,"rMax":1.75,"halfZ":1,
		  "startPhi":0,"deltaPhi":6.283185307179586}`,
	},
}

func TestSolidMarshal(t *testing.T) {
	test.Marshal(t, solidTestCases)
}

func TestSolidUnmarshal(t *testing.T) {
	test.Unmarshal(t, solidTestCases, func(b []byte) (interface{}, error) {
		return Unmarshal(b)
	})
}

func TestBadSolidTypeUnmarshalling(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type": "xaxaxa"}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	type testCase struct {
		Solid   Solid
		IsValid bool
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		err := tc.Solid.Validate()
		if tc.IsValid {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	}

	t.Run("Box", func(t *testing.T) { check(t, testCase{NewBox("b", 1, 2, 3), true}) })
	t.Run("FlatBox", func(t *testing.T) { check(t, testCase{NewBox("b", 1, 2, 0), false}) })
	t.Run("Tubs", func(t *testing.T) { check(t, testCase{NewTubs("t", 0, 1, 1, 0, 2*math.Pi), true}) })
	t.Run("TubsInvertedRadii", func(t *testing.T) { check(t, testCase{NewTubs("t", 2, 1, 1, 0, 2*math.Pi), false}) })
	t.Run("TubsZeroLength", func(t *testing.T) { check(t, testCase{NewTubs("t", 0, 1, 0, 0, 2*math.Pi), false}) })
	t.Run("TubsNoPhi", func(t *testing.T) { check(t, testCase{NewTubs("t", 0, 1, 1, 0, 0), false}) })
}

func TestInside(t *testing.T) {
	box := NewBox("b", 1, 1, 1)
	assert.True(t, box.Inside(geometry.Point{X: 1, Y: 0, Z: -1}))
	assert.False(t, box.Inside(geometry.Point{X: 1.01}))

	tube := NewTubs("t", 0.5, 1, 1, 0, 2*math.Pi)
	assert.True(t, tube.Inside(geometry.Point{X: 0.7}))
	assert.False(t, tube.Inside(geometry.Point{X: 0.2}))

	half := NewTubs("h", 0, 1, 1, 0, math.Pi)
	assert.True(t, half.Inside(geometry.Point{Y: 0.5}))
	assert.False(t, half.Inside(geometry.Point{Y: -0.5}))
}

func TestCubature(t *testing.T) {
	require.InDelta(t, 48.0, NewBox("b", 1, 2, 3).Cubature(), 1e-12)
	require.InDelta(t, 2*math.Pi, NewTubs("t", 0, 1, 1, 0, 2*math.Pi).Cubature(), 1e-12)
}
