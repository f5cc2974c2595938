package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/raster"
)

func testDevice(t *testing.T) *raster.Device {
	t.Helper()
	d, err := raster.NewDevice(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1)) // bottom-left: red
	require.NoError(t, d.Set(2, 1, 3)) // top-right: blue
	return d
}

func TestToImageFlipsRows(t *testing.T) {
	img, err := ToImage(testDevice(t), colors.DefaultPalette())
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, img.NRGBAAt(1, 0))
}

func TestToImageRejectsUnknownColor(t *testing.T) {
	d := testDevice(t)
	require.NoError(t, d.Set(1, 1, 9))

	_, err := ToImage(d, colors.DefaultPalette())
	assert.ErrorIs(t, err, errs.ErrRange)
	assert.Contains(t, err.Error(), "pixel (1,1)")

	_, err = ToImage(d, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpscale(t *testing.T) {
	img, err := ToImage(testDevice(t), colors.DefaultPalette())
	require.NoError(t, err)

	assert.Same(t, img, Upscale(img, 1))

	big := Upscale(img, 4)
	require.Equal(t, image.Rect(0, 0, 12, 8), big.Bounds())
	for y := 4; y < 8; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.NRGBA{255, 0, 0, 255}, big.NRGBAAt(x, y))
		}
	}
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, big.NRGBAAt(11, 0))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"webp": FormatWebP, ".TGA": FormatTGA, "Bmp": FormatBMP, ".png": FormatPNG,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, ".webp", FormatWebP.Ext())
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds().Size(), got.Bounds().Size())
	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			assert.Equal(t, [4]uint32{wr, wg, wbl, wa}, [4]uint32{gr, gg, gbl, ga}, "(%d,%d)", x, y)
		}
	}
}

func TestEncodeDecodable(t *testing.T) {
	img, err := ToImage(testDevice(t), colors.DefaultPalette())
	require.NoError(t, err)

	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatTGA: func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
		FormatBMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatPNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
	}
	for f, decode := range decoders {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, img, f), f)
		got, err := decode(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, f)
		assertSamePixels(t, img, got)
	}
}

func TestEncodeWebPHeader(t *testing.T) {
	img, err := ToImage(testDevice(t), colors.DefaultPalette())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, FormatWebP))
	b := buf.Bytes()
	require.Greater(t, len(b), 12)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WEBP", string(b[8:12]))
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 1, 1)), Format("gif"))
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestWriteFileCreatesDirs(t *testing.T) {
	img, err := ToImage(testDevice(t), colors.DefaultPalette())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frames", "0001.png")
	require.NoError(t, WriteFile(path, img, FormatPNG))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assertSamePixels(t, img, got)
}
