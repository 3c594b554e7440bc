package volume

import (
	"math"
	"testing"

	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/material"
	"github.com/jwaiton/nexus/optical"
	"github.com/jwaiton/nexus/solid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(t *testing.T, name string, hx, hy, hz float64) *Logical {
	t.Helper()
	air, err := material.NewLibrary().FindOrBuild(material.Air)
	require.NoError(t, err)
	l, err := NewLogical(solid.NewBox(name, hx, hy, hz), air, name)
	require.NoError(t, err)
	return l
}

func TestNewLogicalValidatesSolid(t *testing.T) {
	air, err := material.NewLibrary().FindOrBuild(material.Air)
	require.NoError(t, err)
	_, err = NewLogical(solid.NewBox("FLAT", 1, 1, 0), air, "FLAT")
	assert.Error(t, err)
	_, err = NewLogical(solid.NewBox("B", 1, 1, 1), nil, "B")
	assert.Error(t, err)
}

func TestPlaceAndLocate(t *testing.T) {
	mother := newBox(t, "MOTHER", 10, 10, 10)
	child := newBox(t, "CHILD", 1, 1, 1)
	grandchild := newBox(t, "GRANDCHILD", .5, .5, .5)

	_, err := Place(Placement{Logical: grandchild, Name: "GRANDCHILD", Mother: child, CheckOverlaps: true})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := Place(Placement{
			Translation: geometry.Point{X: float64(3 * i)},
			Logical:     child, Name: "CHILD", Mother: mother, CopyNo: i, CheckOverlaps: true,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, CountPlacements(mother, "CHILD"))
	assert.Equal(t, 3, CountPlacements(mother, "GRANDCHILD"))

	touchable, inside := Locate(mother, geometry.Point{X: 6.2})
	require.True(t, inside)
	require.Len(t, touchable, 2)
	assert.Equal(t, 2, touchable[0].CopyNo)
	assert.Equal(t, "GRANDCHILD", touchable.Volume().Name)

	touchable, inside = Locate(mother, geometry.Point{X: 8})
	require.True(t, inside)
	assert.Empty(t, touchable)

	_, inside = Locate(mother, geometry.Point{X: 11})
	assert.False(t, inside)
}

func TestPlaceRejectsSelf(t *testing.T) {
	box := newBox(t, "B", 1, 1, 1)
	_, err := Place(Placement{Logical: box, Mother: box, Name: "B"})
	assert.Error(t, err)
}

func TestCheckOverlaps(t *testing.T) {
	mother := newBox(t, "MOTHER", 2, 2, 2)
	child := newBox(t, "CHILD", 1, 1, 1)

	first, err := Place(Placement{Logical: child, Name: "A", Mother: mother})
	require.NoError(t, err)
	assert.Empty(t, CheckOverlaps(mother, first))

	overlapping := &Physical{Name: "B", Logical: child, Mother: mother,
		Transform: geometry.Translate(geometry.Point{X: 1.5})}
	overlaps := CheckOverlaps(mother, overlapping)
	require.Len(t, overlaps, 2)
	assert.Equal(t, "", overlaps[0].With)
	assert.Equal(t, "A", overlaps[1].With)

	rot := geometry.Identity().RotateY(math.Pi)
	flipped := &Physical{Name: "C", Logical: child, Mother: mother,
		Transform: geometry.Transform{Rotation: rot, Translation: geometry.Point{Z: 0}}}
	assert.Len(t, CheckOverlaps(mother, flipped), 1)
}

func TestLogicalVolumesOrder(t *testing.T) {
	mother := newBox(t, "MOTHER", 10, 10, 10)
	child := newBox(t, "CHILD", 1, 1, 1)
	_, err := Place(Placement{Logical: child, Name: "CHILD", Mother: mother})
	require.NoError(t, err)
	_, err = Place(Placement{Logical: child, Name: "CHILD", Mother: mother, CopyNo: 1, Translation: geometry.Point{X: 3}})
	require.NoError(t, err)

	ordered := LogicalVolumes(mother)
	require.Len(t, ordered, 2)
	assert.Same(t, child, ordered[0])
	assert.Same(t, mother, ordered[1])
}

func TestSurfaceStore(t *testing.T) {
	store := NewSurfaceStore()
	mask := newBox(t, "MASK", 1, 1, 1)
	surface := optical.NewSurface("BOARD_MASK", optical.Unified, optical.Ground, optical.DielectricMetal)

	_, err := store.AddSkin("BOARD_MASK_OPSURF", mask, surface)
	require.NoError(t, err)
	_, err = store.AddSkin("BOARD_MASK_OPSURF", mask, surface)
	assert.Error(t, err)
	assert.NotNil(t, store.Skin(mask))

	a := &Physical{Name: "A", Logical: mask}
	b := &Physical{Name: "B", Logical: mask}
	_, err = store.AddBorder("A_B", a, b, surface)
	require.NoError(t, err)
	assert.NotNil(t, store.Border(a, b))
	assert.Nil(t, store.Border(b, a))
}

func TestSensorID(t *testing.T) {
	sd := &SensitiveDetector{NamingOrder: 1000}
	assert.Equal(t, 14063, sd.SensorID(14, 63))
}
