package raster

import (
	"fmt"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/viewmatrix"
)

// RenderPolygons normalizes each world-space polygon against w and draws its
// outline scaled to t. Every polygon is normalized before anything is drawn.
func RenderPolygons(polys []geom.Polygon, w geom.Window, t Target, id colors.ColorID) error {
	normalized := make([][]geom.NormalizedPoint, len(polys))
	for i, poly := range polys {
		np, err := geom.NormalizePolygon(poly, w)
		if err != nil {
			return fmt.Errorf("raster: polygon %d: %w", i, err)
		}
		normalized[i] = np
	}

	for i, np := range normalized {
		// Faces with fewer than two vertices have no outline.
		if len(np) < 2 {
			continue
		}
		if err := DrawPolygon(ToDevicePolygon(np, t), t, id); err != nil {
			return fmt.Errorf("raster: polygon %d: %w", i, err)
		}
	}
	return nil
}

// RenderObject runs obj through model and cam, then draws every face as a
// wireframe into t.
func RenderObject(
	obj geom.Object3D,
	model mathutil.Mat4,
	cam viewmatrix.Camera,
	w geom.Window,
	t Target,
	id colors.ColorID,
) error {
	polys, err := cam.Project(obj, model)
	if err != nil {
		return err
	}
	return RenderPolygons(polys, w, t, id)
}
