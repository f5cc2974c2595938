// Command demo3d draws the built-in prism as seen by three observers, each
// in its own viewport of one device.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/mesh"
	"wireframe-renderer/internal/raster"
	"wireframe-renderer/internal/viewmatrix"
)

// view places one observer's picture on the device.
type view struct {
	lowerLeft raster.DevicePoint
	camera    viewmatrix.Camera
}

func views() []view {
	cam := func(normal, up mathutil.Vec3) viewmatrix.Camera {
		c := viewmatrix.DefaultCamera()
		c.Normal, c.Up = normal, up
		return c
	}
	return []view{
		{raster.Pt(0, 0), cam(mathutil.UnitZ, mathutil.UnitX)},
		{raster.Pt(399, 0), cam(mathutil.UnitZ, mathutil.UnitY)},
		{raster.Pt(399, 299), cam(mathutil.Vec3{1, 1, 1}, mathutil.Vec3{1, -1, -1})},
	}
}

func main() {
	output := flag.String("o", "demo3d.png", "Output image; the extension picks the format")
	scale := flag.Int("scale", 1, "Integer upscale factor")
	border := flag.Bool("border", true, "Outline each viewport")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*output, *scale, *border, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(output string, scale int, border bool, logger *slog.Logger) error {
	format, err := export.ParseFormat(filepath.Ext(output))
	if err != nil {
		return err
	}
	dev, err := render(border)
	if err != nil {
		return err
	}
	img, err := export.ToImage(dev, colors.DefaultPalette())
	if err != nil {
		return err
	}
	img = export.Upscale(img, scale)
	if err := export.WriteFile(output, img, format); err != nil {
		return err
	}
	logger.Info("wrote image", "path", output, "format", format, "views", len(views()))
	return nil
}

// render draws every view into a fresh 600×800 device.
func render(border bool) (*raster.Device, error) {
	dev, err := raster.NewDevice(600, 800)
	if err != nil {
		return nil, err
	}
	window, err := geom.NewWindow(-30, -30, 30, 30)
	if err != nil {
		return nil, err
	}
	obj := mesh.Prism()

	for i, v := range views() {
		port, err := raster.NewViewport(v.lowerLeft, dev.Rows()/2, dev.Columns()/2, dev)
		if err != nil {
			return nil, fmt.Errorf("view %d: %w", i, err)
		}
		if err := raster.RenderObject(obj, mathutil.Mat4Identity(), v.camera, window, port, 1); err != nil {
			return nil, fmt.Errorf("view %d: %w", i, err)
		}
		if border {
			if err := raster.DrawBorder(port, 5); err != nil {
				return nil, fmt.Errorf("view %d: %w", i, err)
			}
		}
	}
	return dev, nil
}
