package geometries

import (
	"errors"
	"math"
	"testing"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/messenger"
	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/units"
	"github.com/jwaiton/nexus/volume"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, g Geometry, lines ...string) {
	t.Helper()
	ui := messenger.NewUI()
	for _, m := range g.Messengers() {
		require.NoError(t, ui.Register(m))
	}
	for _, line := range lines {
		require.NoError(t, ui.Apply(line))
	}
}

func constructNext100(t *testing.T, commands ...string) *Next100OpticalGeometry {
	t.Helper()
	g := NewNext100OpticalGeometry()
	g.Seed(7)
	apply(t, g, commands...)
	require.NoError(t, g.Construct())
	return g
}

func TestNext100Construct(t *testing.T) {
	g := constructNext100(t)
	lab := g.LogicalVolume()
	require.NotNil(t, lab)
	assert.Equal(t, "LAB", lab.Name)
	assert.Equal(t, "G4_AIR", lab.Material.Name)
	assert.InDelta(t, 2*units.M, lab.Solid.Extent().Max.X, tolerance)
	assert.False(t, lab.Vis.Visible)

	gas := g.GasPhysical()
	require.NotNil(t, gas)
	assert.Equal(t, "GAS", gas.Name)
	assert.InDelta(t, (4*units.M-1*units.CM)/2, gas.Logical.Solid.Extent().Max.Z, tolerance)
	assert.InDelta(t, 15*units.Bar, gas.Logical.Material.Pressure, 1e-6*units.Bar)
	assert.InDelta(t, 300., gas.Logical.Material.Temperature, tolerance)

	props := gas.Logical.Material.PropertiesTable()
	require.NotNil(t, props)
	yield, ok := props.ConstProperty(optical.ScintillationYield)
	require.True(t, ok)
	assert.InDelta(t, 25510/units.MeV, yield, 1e-6)

	inner := g.InnerElements()
	assert.Len(t, inner.Windows(), next100NumWindows)
	assert.Len(t, inner.Boards(), 96)
	assert.Equal(t, 96*64, volume.CountPlacements(lab, "SIPM_NEXT100"))
}

func TestNext100TrackingPlanePosition(t *testing.T) {
	g := constructNext100(t)
	inner := g.InnerElements()
	for _, board := range inner.Boards() {
		ext := board.Extent()
		assert.InDelta(t, -26.2, ext.Max.Z, tolerance, "board surface sits at the gate to tracking plane distance")
		for _, x := range []float64{ext.Min.X, ext.Max.X} {
			for _, y := range []float64{ext.Min.Y, ext.Max.Y} {
				assert.LessOrEqual(t, math.Hypot(x, y), next100ActiveRadius+tolerance)
			}
		}
	}
	sd := inner.Board().SiPM().LogicalVolume().Daughters()[0].Logical.Sensitive
	require.NotNil(t, sd)
	assert.Equal(t, 2, sd.SensorDepth)
	assert.Equal(t, 4, sd.MotherDepth)
}

func TestSapphireWindowPositions(t *testing.T) {
	positions := sapphireWindowPositions()
	require.Len(t, positions, next100NumWindows)
	for i, p := range positions {
		assert.LessOrEqual(t, p.Perp()+next100WindowDiameter/2, next100PlateRadius)
		assert.Greater(t, p.Perp(), 0.)
		for _, q := range positions[i+1:] {
			assert.GreaterOrEqual(t, p.Sub(q).Perp(), next100WindowPitch-tolerance)
		}
	}
}

func TestNext100Vertices(t *testing.T) {
	g := constructNext100(t, "/Geometry/Next100/specific_vertex 1 2 3 cm")

	type testCase struct {
		Region string
		Check  func(t *testing.T, p geometry.Point)
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		for i := 0; i < 50; i++ {
			p, err := g.GenerateVertex(tc.Region)
			require.NoError(t, err)
			tc.Check(t, p)
		}
	}

	t.Run("AdHoc", func(t *testing.T) {
		check(t, testCase{Region: RegionAdHoc, Check: func(t *testing.T, p geometry.Point) {
			assert.Equal(t, geometry.Point{X: 10, Y: 20, Z: 30}, p)
		}})
	})
	t.Run("Center", func(t *testing.T) {
		check(t, testCase{Region: RegionCenter, Check: func(t *testing.T, p geometry.Point) {
			assert.InDelta(t, next100ActiveLength/2, p.Z, tolerance)
		}})
	})
	t.Run("Active", func(t *testing.T) {
		check(t, testCase{Region: RegionActive, Check: func(t *testing.T, p geometry.Point) {
			assert.LessOrEqual(t, p.Perp(), next100ActiveRadius)
			assert.GreaterOrEqual(t, p.Z, -tolerance)
			assert.LessOrEqual(t, p.Z, next100ActiveLength+tolerance)
		}})
	})
	t.Run("ELGap", func(t *testing.T) {
		check(t, testCase{Region: RegionELGap, Check: func(t *testing.T, p geometry.Point) {
			assert.GreaterOrEqual(t, p.Z, -next100ELGap-tolerance)
			assert.LessOrEqual(t, p.Z, tolerance)
		}})
	})
	t.Run("Buffer", func(t *testing.T) {
		check(t, testCase{Region: RegionBuffer, Check: func(t *testing.T, p geometry.Point) {
			assert.GreaterOrEqual(t, p.Z, next100ActiveLength-tolerance)
			assert.LessOrEqual(t, p.Z, 1458.1+tolerance)
		}})
	})
	t.Run("SapphireWindow", func(t *testing.T) {
		check(t, testCase{Region: RegionSapphireWindow, Check: func(t *testing.T, p geometry.Point) {
			assert.GreaterOrEqual(t, p.Z, 1458.1-tolerance)
			assert.LessOrEqual(t, p.Z, 1458.1+next100WindowThickness+tolerance)
			touchable, ok := volume.Locate(g.LogicalVolume(), p)
			require.True(t, ok)
			assert.Equal(t, "SAPPHIRE_WINDOW", touchable.Volume().Name)
		}})
	})
	t.Run("TrackingPlaneBoard", func(t *testing.T) {
		check(t, testCase{Region: RegionTPSiPMBoard, Check: func(t *testing.T, p geometry.Point) {
			board := g.InnerElements().Board().BoardSize()
			assert.InDelta(t, -26.2-board.Z+0.15, p.Z, 0.15+tolerance)
			touchable, ok := volume.Locate(g.LogicalVolume(), p)
			require.True(t, ok)
			assert.Equal(t, KaptonName, touchable.Volume().Name)
		}})
	})
}

func TestNext100Errors(t *testing.T) {
	t.Run("NotConstructed", func(t *testing.T) {
		_, err := NewNext100OpticalGeometry().GenerateVertex(RegionActive)
		assert.True(t, errors.Is(err, exception.ErrNotConstructed))
	})
	t.Run("ConstructTwice", func(t *testing.T) {
		g := constructNext100(t)
		assert.True(t, errors.Is(g.Construct(), exception.ErrAlreadyConstructed))
	})
	t.Run("UnknownGas", func(t *testing.T) {
		g := NewNext100OpticalGeometry()
		apply(t, g, "/Geometry/Next100/gas argon")
		err := g.Construct()
		require.Error(t, err)
		assert.True(t, errors.Is(err, exception.ErrUnknownGas))
		assert.Contains(t, err.Error(), "naturalXe, enrichedXe, depletedXe")
	})
	t.Run("UnknownRegion", func(t *testing.T) {
		g := constructNext100(t)
		_, err := g.GenerateVertex("VESSEL")
		assert.True(t, errors.Is(err, exception.ErrUnknownRegion))
	})
	t.Run("NegativePressure", func(t *testing.T) {
		g := NewNext100OpticalGeometry()
		ui := messenger.NewUI()
		for _, m := range g.Messengers() {
			require.NoError(t, ui.Register(m))
		}
		assert.True(t, errors.Is(ui.Apply("/Geometry/Next100/pressure -1 bar"), exception.ErrOutOfRange))
	})
	t.Run("QuantitiesRequireUnits", func(t *testing.T) {
		g := NewNext100OpticalGeometry()
		ui := messenger.NewUI()
		for _, m := range g.Messengers() {
			require.NoError(t, ui.Register(m))
		}
		for _, line := range []string{
			"/Geometry/Next100/pressure 10",
			"/Geometry/Next100/sc_yield 10000",
			"/Geometry/Next100/e_lifetime 5",
			"/Geometry/Next100/tp_sipm_time_binning 1",
		} {
			assert.True(t, errors.Is(ui.Apply(line), exception.ErrInvalidArgument), line)
		}
		require.NoError(t, g.Construct())
		assert.InDelta(t, 15*units.Bar, g.GasPhysical().Logical.Material.Pressure, 1e-6*units.Bar)
	})
}

func TestNext100GasCommands(t *testing.T) {
	g := constructNext100(t,
		"/Geometry/Next100/gas enrichedXe",
		"/Geometry/Next100/pressure 10 bar",
		"/Geometry/Next100/sc_yield 10000 1/MeV",
		"/Geometry/Next100/e_lifetime 5 ms",
		"/Geometry/Next100/tp_sipm_coating true",
	)
	gas := g.GasPhysical().Logical.Material
	assert.Equal(t, "GXeEnriched", gas.Name)
	assert.InDelta(t, 10*units.Bar, gas.Pressure, 1e-6*units.Bar)
	assert.InDelta(t, 135.72, gas.MolarMass(), 0.05)

	yield, ok := gas.PropertiesTable().ConstProperty(optical.ScintillationYield)
	require.True(t, ok)
	assert.InDelta(t, 10000., yield, 1e-6)

	sipm := g.InnerElements().Board().SiPM()
	assert.InDelta(t, next100SiPMZ+next100CoatingThickn, sipm.Dimensions().Z, tolerance)
}

func TestInnerElementsReport(t *testing.T) {
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetLevel(level)

	constructNext100(t, "/Geometry/Next100/elements_verbosity true")

	messages := []string{}
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "* Tracking plane SiPM boards: 96")
	assert.Contains(t, messages, "* Tracking plane SiPMs:       6144")
}
