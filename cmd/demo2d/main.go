// Command demo2d draws the 2D pipeline examples into a single image:
// world polygons through translate and rotate into one viewport, and a
// filled polygon in a second.
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
	"wireframe-renderer/internal/raster"
)

func main() {
	output := flag.String("o", "demo2d.png", "Output image; the extension picks the format")
	scale := flag.Int("scale", 1, "Integer upscale factor")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*output, *scale, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(output string, scale int, logger *slog.Logger) error {
	format, err := export.ParseFormat(filepath.Ext(output))
	if err != nil {
		return err
	}

	dev, err := raster.NewDevice(600, 800)
	if err != nil {
		return err
	}
	left, err := raster.NewViewportFromCorners(raster.Pt(0, 0), raster.Pt(399, 599), dev)
	if err != nil {
		return err
	}
	right, err := raster.NewViewportFromCorners(raster.Pt(799, 599), raster.Pt(400, 0), dev)
	if err != nil {
		return err
	}

	window, err := geom.NewWindow(-10, -10, 10, 10)
	if err != nil {
		return err
	}

	triangle := geom.Polygon{geom.P2(-5, -5), geom.P2(5, -5), geom.P2(0, 5)}
	polys := []geom.Polygon{
		triangle,
		geom.TransformPolygon(triangle, mathutil.Translation2D(2, 2)),
		geom.TransformPolygon(triangle, mathutil.Compose3(
			mathutil.Translation2D(2, 2),
			mathutil.Rotation2D(45),
		)),
	}
	for i, poly := range polys {
		id := colors.ColorID(1 + i)
		if err := raster.RenderPolygons([]geom.Polygon{poly}, window, left, id); err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
	}

	square := []raster.DevicePoint{
		raster.Pt(100, 150), raster.Pt(300, 150), raster.Pt(300, 450), raster.Pt(100, 450),
	}
	if err := raster.FillPolygon(square, raster.Pt(200, 300), 4, right); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	diamond := geom.TransformPolygon(
		geom.Polygon{geom.P2(-8, 0), geom.P2(0, -8), geom.P2(8, 0), geom.P2(0, 8)},
		mathutil.Scale2D(1, 1.1),
	)
	if err := raster.RenderPolygons([]geom.Polygon{diamond}, window, right, 5); err != nil {
		return fmt.Errorf("diamond: %w", err)
	}

	for _, port := range []*raster.Viewport{left, right} {
		if err := raster.DrawBorder(port, 6); err != nil {
			return err
		}
	}

	img, err := export.ToImage(dev, colors.DefaultPalette())
	if err != nil {
		return err
	}
	img = export.Upscale(img, scale)
	if err := export.WriteFile(output, img, format); err != nil {
		return err
	}
	logger.Info("wrote image", "path", output, "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
