package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe-renderer/internal/errs"
)

const tol = 1e-9

func assertVec4(t *testing.T, want, got Vec4) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol)
}

func TestTranslation2D(t *testing.T) {
	got := Translation2D(10, -3).MulVec3(Vec3{1, 2, 1})
	assert.InDeltaSlice(t, []float64{11, -1, 1}, got[:], tol)
}

func TestRotation2DCounterClockwise(t *testing.T) {
	got := Rotation2D(90).MulVec3(Vec3{1, 0, 1})
	assert.InDeltaSlice(t, []float64{0, 1, 1}, got[:], tol)
}

func TestScale2D(t *testing.T) {
	got := Scale2D(2, 3).MulVec3(Vec3{4, 5, 1})
	assert.InDeltaSlice(t, []float64{8, 15, 1}, got[:], tol)
}

func TestTranslation3D(t *testing.T) {
	assertVec4(t, Vec4{2, 3, 4, 1}, Translation3D(1, 1, 1).MulVec4(Point4(1, 2, 3)))
}

func TestScale3D(t *testing.T) {
	assertVec4(t, Vec4{2, -2, 6, 1}, Scale3D(2, -1, 3).MulVec4(Point4(1, 2, 2)))
}

func TestRotations3D(t *testing.T) {
	assertVec4(t, Vec4{0, 0, 1, 1}, RotationX(90).MulVec4(Point4(0, 1, 0)))
	assertVec4(t, Vec4{1, 0, 0, 1}, RotationY(90).MulVec4(Point4(0, 0, 1)))
	assertVec4(t, Vec4{0, 1, 0, 1}, RotationZ(90).MulVec4(Point4(1, 0, 0)))
}

func TestQuarterTurnsAreExact(t *testing.T) {
	for _, deg := range []float64{90, 180, 270, 360, -90, 450, -720} {
		s, c := sinCosDeg(deg)
		assert.Zero(t, s*c, "deg %v", deg)
		assert.Equal(t, 1.0, s*s+c*c, "deg %v", deg)
	}
	assert.Equal(t, Vec3{0, 1, 1}, Rotation2D(90).MulVec3(Vec3{1, 0, 1}))
	assert.Equal(t, Vec3{-3, -4, 1}, Rotation2D(-180).MulVec3(Vec3{3, 4, 1}))
	assert.Equal(t, Vec4{0, -1, 0, 1}, RotationZ(270).MulVec4(Point4(1, 0, 0)))
	assert.Equal(t, RotationY(-90), RotationY(270))
}

func TestSinCosDegMatchesRadians(t *testing.T) {
	for _, deg := range []float64{5, 30, 45, 123.4, -60, 725} {
		s, c := sinCosDeg(deg)
		assert.InDelta(t, math.Sin(deg*math.Pi/180), s, tol, "deg %v", deg)
		assert.InDelta(t, math.Cos(deg*math.Pi/180), c, tol, "deg %v", deg)
	}
}

func TestRotation3DAxis(t *testing.T) {
	m, err := Rotation3D(30, AxisY)
	require.NoError(t, err)
	assert.Equal(t, RotationY(30), m)

	_, err = Rotation3D(30, Axis(7))
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestRotationAboutMatchesAxisBuilders(t *testing.T) {
	m, err := RotationAbout(37, UnitZ)
	require.NoError(t, err)
	want := RotationZ(37)
	assert.InDeltaSlice(t, want[:], m[:], tol)

	_, err = RotationAbout(10, Vec3{})
	assert.ErrorIs(t, err, errs.ErrGeometry)
}

func TestComposeOrder(t *testing.T) {
	// Translate then rotate differs from rotate then translate.
	tr := Translation3D(1, 0, 0)
	rot := RotationZ(90)
	p := Point4(0, 0, 0)

	assertVec4(t, Vec4{0, 1, 0, 1}, Compose4(tr, rot).MulVec4(p))
	assertVec4(t, Vec4{1, 0, 0, 1}, Compose4(rot, tr).MulVec4(p))

	// Composition is associative.
	a, b, c := RotationX(20), Scale3D(1, 2, 3), Translation3D(4, 5, 6)
	left := Mat4Mul(Mat4Mul(a, b), c)
	right := Mat4Mul(a, Mat4Mul(b, c))
	assert.InDeltaSlice(t, left[:], right[:], tol)
}

func TestCompose3(t *testing.T) {
	m := Compose3(Scale2D(2, 2), Translation2D(1, 1))
	got := m.MulVec3(Vec3{1, 1, 1})
	assert.InDeltaSlice(t, []float64{3, 3, 1}, got[:], tol)
}

func TestMatFromRows(t *testing.T) {
	m, err := Mat3FromRows([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, Mat3Identity(), m)

	_, err = Mat3FromRows([][]float64{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = Mat4FromRows([][]float64{{1, 0, 0, 0}, {0, 1, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	assert.ErrorIs(t, err, errs.ErrValidation)

	m4, err := Mat4FromRows([][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}})
	require.NoError(t, err)
	assert.True(t, m4.IsIdentity())
}

func TestObserverTransformIdentityBasis(t *testing.T) {
	m, err := ObserverTransform(Vec3{0, 0, 5}, Vec3{0, 1, 0}, Vec3{})
	require.NoError(t, err)
	// u = up × w = y × z = x, v = w × u = z × x = y.
	want := Mat4Identity()
	assert.InDeltaSlice(t, want[:], m[:], tol)
}

func TestObserverTransformOffsetAndOrthonormal(t *testing.T) {
	m, err := ObserverTransform(Vec3{1, 1, 1}, Vec3{1, -1, -1}, Vec3{1, 2, 3})
	require.NoError(t, err)

	u := Vec3{m[0], m[1], m[2]}
	v := Vec3{m[4], m[5], m[6]}
	w := Vec3{m[8], m[9], m[10]}
	for _, b := range []Vec3{u, v, w} {
		assert.InDelta(t, 1, b.Len(), tol)
	}
	assert.InDelta(t, 0, u.Dot(v), tol)
	assert.InDelta(t, 0, u.Dot(w), tol)
	assert.InDelta(t, 0, v.Dot(w), tol)
	assert.Equal(t, []float64{1, 2, 3}, []float64{m[3], m[7], m[11]})
	assert.Equal(t, []float64{0, 0, 0, 1}, m[12:])
}

func TestObserverTransformDegenerate(t *testing.T) {
	_, err := ObserverTransform(Vec3{}, UnitY, Vec3{})
	assert.ErrorIs(t, err, errs.ErrGeometry)

	_, err = ObserverTransform(Vec3{0, 2, 0}, Vec3{0, -1, 0}, Vec3{})
	assert.ErrorIs(t, err, errs.ErrGeometry)
}

func TestVec3Len(t *testing.T) {
	assert.Equal(t, 5.0, Vec3{3, 0, 4}.Len())
	assert.Equal(t, 32.0, Vec3{1, 2, 3}.Dot(Vec3{4, 5, 6}))
}

func TestVec3Normalize(t *testing.T) {
	n, ok := Vec3{3, 0, 4}.Normalize()
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.6, 0, 0.8}, n[:], tol)

	_, ok = Vec3{}.Normalize()
	assert.False(t, ok)
}
