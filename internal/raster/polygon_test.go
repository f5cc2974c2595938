package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/viewmatrix"
)

func TestDrawPolygonClosesLoop(t *testing.T) {
	d := newDevice(t, 5, 5)
	require.NoError(t, DrawPolygon([]DevicePoint{Pt(0, 0), Pt(4, 0), Pt(4, 4)}, d, 1))

	got := setPixels(t, d)
	// Two legs plus the closing diagonal share the three corners.
	assert.Len(t, got, 5+4+3)
	for i := 0; i < 5; i++ {
		assert.Contains(t, got, Pt(i, i))
	}
}

func TestDrawPolygonTwoPoints(t *testing.T) {
	d := newDevice(t, 3, 3)
	require.NoError(t, DrawPolygon([]DevicePoint{Pt(0, 1), Pt(2, 1)}, d, 2))
	assert.Len(t, setPixels(t, d), 3)
}

func TestDrawPolygonValidation(t *testing.T) {
	d := newDevice(t, 5, 5)
	assert.ErrorIs(t, DrawPolygon(nil, d, 1), errs.ErrValidation)
	assert.ErrorIs(t, DrawPolygon([]DevicePoint{Pt(1, 1)}, d, 1), errs.ErrValidation)

	err := DrawPolygon([]DevicePoint{Pt(0, 0), Pt(4, 0), Pt(4, 5)}, d, 1)
	assert.ErrorIs(t, err, errs.ErrRange)
	assert.Empty(t, setPixels(t, d))
}

func TestToDevicePoint(t *testing.T) {
	d := newDevice(t, 480, 640)
	assert.Equal(t, Pt(0, 0), ToDevicePoint(geom.NormalizedPoint{}, d))
	assert.Equal(t, Pt(639, 479), ToDevicePoint(geom.NormalizedPoint{X: 1, Y: 1}, d))
	assert.Equal(t, Pt(320, 240), ToDevicePoint(geom.NormalizedPoint{X: 0.5, Y: 0.5}, d))
}

func TestDrawNormalizedPolygonUnitSquareIsBorder(t *testing.T) {
	a := newDevice(t, 6, 9)
	b := newDevice(t, 6, 9)

	unit := []geom.NormalizedPoint{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	require.NoError(t, DrawNormalizedPolygon(unit, a, 6))
	require.NoError(t, DrawBorder(b, 6))
	assert.Equal(t, a.RawView(), b.RawView())
	assert.Len(t, setPixels(t, a), 2*9+2*4)

	assert.ErrorIs(t, DrawNormalizedPolygon([]geom.NormalizedPoint{{0, 0}, {1.5, 0}}, a, 1), errs.ErrRange)
}

func TestDrawBorderOnViewport(t *testing.T) {
	d := newDevice(t, 10, 10)
	v, err := NewViewportFromCorners(Pt(2, 2), Pt(5, 6), d)
	require.NoError(t, err)
	require.NoError(t, DrawBorder(v, 1))

	got := setPixels(t, d)
	assert.Len(t, got, 2*4+2*3)
	assert.Contains(t, got, Pt(2, 2))
	assert.Contains(t, got, Pt(5, 6))
	assert.NotContains(t, got, Pt(3, 3))
}

func TestRenderPolygonsUnitSquare(t *testing.T) {
	w, err := geom.NewWindow(0, 0, 10, 10)
	require.NoError(t, err)
	d := newDevice(t, 11, 11)

	poly := geom.Polygon{geom.P2(0, 0), geom.P2(10, 0), geom.P2(10, 10), geom.P2(0, 10)}
	require.NoError(t, RenderPolygons([]geom.Polygon{poly}, w, d, 1))
	assert.Len(t, setPixels(t, d), 40)

	outside := geom.Polygon{geom.P2(0, 0), geom.P2(11, 0)}
	d.Clear(0)
	err = RenderPolygons([]geom.Polygon{poly, outside}, w, d, 1)
	assert.ErrorIs(t, err, errs.ErrRange)
	assert.Empty(t, setPixels(t, d))
}

func TestRenderObjectWireframe(t *testing.T) {
	w, err := geom.NewWindow(-2, -2, 2, 2)
	require.NoError(t, err)
	d := newDevice(t, 5, 5)
	cam := viewmatrix.Camera{Normal: mathutil.UnitZ, Up: mathutil.UnitY, ZPP: 1, ZCP: 0}

	// A square at depth 2 projects to half size: corners at (±1, ±1).
	face := geom.Face{geom.P3(-2, -2, 2), geom.P3(2, -2, 2), geom.P3(2, 2, 2), geom.P3(-2, 2, 2)}
	require.NoError(t, RenderObject(geom.Object3D{face}, mathutil.Mat4Identity(), cam, w, d, 2))

	got := setPixels(t, d)
	assert.Len(t, got, 8)
	for _, p := range []DevicePoint{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)} {
		assert.Equal(t, colors.ColorID(2), got[p])
	}
	assert.NotContains(t, got, Pt(2, 2))
}
