// Package export turns a rendered Device into displayable images and writes
// them out. It only reads the device.
package export

import (
	"fmt"
	"image"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/raster"
)

// ToImage translates every ColorID of dev through pal. The device's row 0 is
// the bottom of the picture, so rows are flipped into image order.
//
// Every id is checked against the palette before the image is built.
func ToImage(dev *raster.Device, pal colors.Palette) (*image.NRGBA, error) {
	if len(pal) == 0 {
		return nil, fmt.Errorf("export: empty palette: %w", errs.ErrValidation)
	}
	buf := dev.RawView()
	for i, id := range buf {
		if !pal.Contains(id) {
			return nil, fmt.Errorf("export: pixel (%d,%d) has id %d outside palette of %d: %w",
				i%dev.Columns(), i/dev.Columns(), id, len(pal), errs.ErrRange)
		}
	}

	// Decode the palette once.
	lut := make([][4]uint8, len(pal))
	for i, c := range pal {
		r, g, b := c.RGBA8()
		lut[i] = [4]uint8{r, g, b, 255}
	}

	rows, cols := dev.Rows(), dev.Columns()
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		src := buf[y*cols : (y+1)*cols]
		off := (rows - 1 - y) * img.Stride
		for x, id := range src {
			copy(img.Pix[off+x*4:off+x*4+4], lut[id][:])
		}
	}
	return img, nil
}
