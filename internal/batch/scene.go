package batch

import (
	"context"
	"fmt"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/viewmatrix"
)

// Scene is immutable frame input shared by all workers: an object spun
// about Axis by StepDegrees per frame and drawn as a wireframe.
type Scene struct {
	Object      geom.Object3D
	Camera      viewmatrix.Camera
	Window      geom.Window
	Rows        int
	Cols        int
	Axis        mathutil.Axis
	StepDegrees float64
	Color       colors.ColorID
	Border      colors.ColorID // 0 draws no border
}

// Frame renders frame idx into a new Device. It is a FrameFunc.
func (s Scene) Frame(ctx context.Context, idx int) (*raster.Device, error) {
	model, err := mathutil.Rotation3D(float64(idx)*s.StepDegrees, s.Axis)
	if err != nil {
		return nil, err
	}
	dev, err := raster.NewDevice(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}
	// A superseded frame is simply dropped; nothing observable is half-drawn
	// since the Device has not been handed out yet.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	port := raster.FullViewport(dev)
	if err := raster.RenderObject(s.Object, model, s.Camera, s.Window, port, s.Color); err != nil {
		return nil, fmt.Errorf("batch: frame %d: %w", idx, err)
	}
	if s.Border != 0 {
		if err := raster.DrawBorder(port, s.Border); err != nil {
			return nil, err
		}
	}
	return dev, nil
}
