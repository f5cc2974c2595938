package raster

import (
	"fmt"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
)

// SentinelColor is reserved by FillPolygon for its temporary outline. It
// must not appear in a target that is being filled.
const SentinelColor = colors.ColorID(^uint16(0))

// FloodFill recolors the 4-connected region around seed with newColor,
// stopping at pixels that already hold newColor or borderColor and at the
// target's edges. It uses an explicit stack, so region size is bounded by
// memory rather than call depth.
//
// The caller must place seed strictly inside a closed outline drawn in
// borderColor. A seed outside the intended region floods whatever region it
// is in, the exterior included.
func FloodFill(seed DevicePoint, newColor, borderColor colors.ColorID, t Target) error {
	if !t.Contains(seed) {
		return fmt.Errorf("raster: seed (%d,%d) outside %dx%d target: %w",
			seed.X, seed.Y, t.Rows(), t.Columns(), errs.ErrRange)
	}

	stack := []DevicePoint{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !t.Contains(p) {
			continue
		}
		cur, err := t.Get(p.X, p.Y)
		if err != nil {
			return err
		}
		if cur == newColor || cur == borderColor {
			continue
		}
		if err := t.Set(p.X, p.Y, newColor); err != nil {
			return err
		}
		stack = append(stack,
			Pt(p.X+1, p.Y),
			Pt(p.X-1, p.Y),
			Pt(p.X, p.Y+1),
			Pt(p.X, p.Y-1),
		)
	}
	return nil
}

// FillPolygon colors the polygon outline and its interior with id.
//
// The outline is drawn in SentinelColor, the region around seed is flooded
// with SentinelColor up to that outline, and every sentinel pixel is then
// recolored to id. This handles concave outlines without a point-in-polygon
// test, provided the outline is a single closed loop that does not cross
// itself and seed lies strictly inside it.
func FillPolygon(points []DevicePoint, seed DevicePoint, id colors.ColorID, t Target) error {
	if id == SentinelColor {
		return fmt.Errorf("raster: color %d is reserved: %w", id, errs.ErrValidation)
	}
	segs, err := outline(points, t)
	if err != nil {
		return err
	}
	if !t.Contains(seed) {
		return fmt.Errorf("raster: seed (%d,%d) outside %dx%d target: %w",
			seed.X, seed.Y, t.Rows(), t.Columns(), errs.ErrRange)
	}
	if found, err := containsColor(t, SentinelColor); err != nil {
		return err
	} else if found {
		return fmt.Errorf("raster: target already holds reserved color %d: %w", SentinelColor, errs.ErrValidation)
	}

	for _, s := range segs {
		if err := drawLine(s.P0, s.P1, SentinelColor, t); err != nil {
			return err
		}
	}
	if err := FloodFill(seed, SentinelColor, SentinelColor, t); err != nil {
		return err
	}
	return replaceColor(t, SentinelColor, id)
}

func containsColor(t Target, id colors.ColorID) (bool, error) {
	for y := 0; y < t.Rows(); y++ {
		for x := 0; x < t.Columns(); x++ {
			c, err := t.Get(x, y)
			if err != nil {
				return false, err
			}
			if c == id {
				return true, nil
			}
		}
	}
	return false, nil
}

func replaceColor(t Target, from, to colors.ColorID) error {
	for y := 0; y < t.Rows(); y++ {
		for x := 0; x < t.Columns(); x++ {
			c, err := t.Get(x, y)
			if err != nil {
				return err
			}
			if c != from {
				continue
			}
			if err := t.Set(x, y, to); err != nil {
				return err
			}
		}
	}
	return nil
}
