package geometries

import (
	"errors"
	"testing"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Subset(t, names, []string{"NEXT100_OPT", "NEXT_DEMO", "SIPM_SENSL", "NEXT100_SIPM"})

	g, err := New("NEXT_DEMO")
	require.NoError(t, err)
	assert.IsType(t, &NextDemo{}, g)

	_, err = New("NEW")
	require.Error(t, err)
	assert.True(t, errors.Is(err, exception.ErrUnknownGeometry))

	assert.Panics(t, func() { Register("NEXT_DEMO", func() Geometry { return NewNextDemo() }) })
	assert.Panics(t, func() { Register("NIL", nil) })
}

func TestNextDemoDefault(t *testing.T) {
	d := NewNextDemo()
	require.NoError(t, d.Construct())

	lab := d.LogicalVolume()
	assert.Equal(t, 64, volume.CountPlacements(lab, HoleName))
	assert.Equal(t, 64, volume.CountPlacements(lab, "SIPM_SENSL"))
	assert.Equal(t, "GXe", d.Board().LogicalVolume().Material.Name)

	p, err := d.GenerateVertex(RegionKapton)
	require.NoError(t, err)
	touchable, ok := volume.Locate(lab, p)
	require.True(t, ok)
	assert.Equal(t, KaptonName, touchable.Volume().Name)
	require.Len(t, touchable, 3)
	assert.Equal(t, "GAS", touchable[0].Name)
	assert.Equal(t, BoardName, touchable[1].Name)

	_, err = d.GenerateVertex(RegionCoating)
	assert.True(t, errors.Is(err, exception.ErrUnknownRegion))
}

func TestNextDemoSeedAfterConstruct(t *testing.T) {
	sample := func(d *NextDemo) geometry.Point {
		p, err := d.GenerateVertex(RegionKapton)
		require.NoError(t, err)
		return p
	}

	reseeded := NewNextDemo()
	reseeded.Seed(1)
	require.NoError(t, reseeded.Construct())
	reseeded.Seed(99)

	seeded := NewNextDemo()
	seeded.Seed(99)
	require.NoError(t, seeded.Construct())

	first := NewNextDemo()
	first.Seed(1)
	require.NoError(t, first.Construct())

	p := sample(reseeded)
	assert.Equal(t, sample(seeded), p)
	assert.NotEqual(t, sample(first), p)
}

func TestNextDemoCommands(t *testing.T) {
	d := NewNextDemo()
	d.Seed(3)
	apply(t, d,
		"/Geometry/NextDemo/sipm_type next100",
		"/Geometry/NextDemo/sipm_coating true",
		"/Geometry/NextDemo/mask_thickness 1.5 mm",
		"/Geometry/NextDemo/membrane_thickness 50 um",
		"/Geometry/NextDemo/coating_thickness 5 um",
		"/Geometry/NextDemo/hole_type rectangular",
		"/Geometry/NextDemo/hole_x 2.5",
		"/Geometry/NextDemo/hole_y 2.5",
		"/Geometry/NextDemo/specific_vertex 0 0 -5 mm",
		"/Geometry/NextDemo/gas depletedXe",
	)
	require.NoError(t, d.Construct())

	board := d.Board()
	assert.InDelta(t, 0.3+0.005+1.5, board.BoardSize().Z, tolerance)
	assert.Equal(t, "GXeDepleted", board.LogicalVolume().Material.Name)
	assert.Len(t, d.Surfaces().Borders(), 2)
	assert.Len(t, d.Surfaces().Skins(), 1)

	v, err := d.GenerateVertex(RegionAdHoc)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point{Z: -5}, v)

	v, err = d.GenerateVertex(RegionCoating)
	require.NoError(t, err)
	touchable, ok := volume.Locate(d.LogicalVolume(), v)
	require.True(t, ok)
	assert.Equal(t, CoatingName, touchable.Volume().Name)
}

func TestNextDemoRejectsInvalidCommands(t *testing.T) {
	d := NewNextDemo()
	apply(t, d)

	type testCase struct {
		Line     string
		Expected error
	}
	check := func(t *testing.T, tc testCase) {
		t.Helper()
		var err error
		for _, m := range d.Messengers() {
			if err = m.Apply(tc.Line); !errors.Is(err, exception.ErrUnknownCommand) {
				break
			}
		}
		assert.True(t, errors.Is(err, tc.Expected), "got %v", err)
	}

	t.Run("Gas", func(t *testing.T) {
		check(t, testCase{Line: "/Geometry/NextDemo/gas argon", Expected: exception.ErrOutOfRange})
	})
	t.Run("SiPMType", func(t *testing.T) {
		check(t, testCase{Line: "/Geometry/NextDemo/sipm_type hamamatsu", Expected: exception.ErrOutOfRange})
	})
	t.Run("NegativeMask", func(t *testing.T) {
		check(t, testCase{Line: "/Geometry/NextDemo/mask_thickness -1 mm", Expected: exception.ErrOutOfRange})
	})
	t.Run("CoatingWithoutMembrane", func(t *testing.T) {
		require.NoError(t, d.Messengers()[0].Apply("/Geometry/NextDemo/coating_thickness 5 um"))
		err := d.Construct()
		assert.True(t, errors.Is(err, exception.ErrInvalidConfiguration))
	})
}

func TestSiPMs(t *testing.T) {
	for _, name := range []string{"SIPM_SENSL", "NEXT100_SIPM"} {
		t.Run(name, func(t *testing.T) {
			g, err := New(name)
			require.NoError(t, err)
			sipm, ok := g.(SiPM)
			require.True(t, ok)
			sipm.SetTimeBinning(5)
			require.NoError(t, sipm.Construct())

			dim := sipm.Dimensions()
			ext := sipm.LogicalVolume().Solid.Extent().Size()
			assert.Equal(t, dim, ext)

			p, err := sipm.GenerateVertex("ACTIVE")
			require.NoError(t, err)
			touchable, ok := volume.Locate(sipm.LogicalVolume(), p)
			require.True(t, ok)
			require.NotNil(t, touchable.Volume())
			assert.Equal(t, "PHOTODIODES", touchable.Volume().Name)
			assert.InDelta(t, 5., touchable.Volume().Logical.Sensitive.TimeBinning, tolerance)

			_, err = sipm.GenerateVertex("CASE")
			assert.True(t, errors.Is(err, exception.ErrUnknownRegion))
		})
	}
}
