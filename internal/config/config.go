package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/export"
	"wireframe-renderer/internal/geom"
	"wireframe-renderer/internal/mathutil"
	"wireframe-renderer/internal/viewmatrix"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	VerticesCSV string `json:"vertices_csv"`
	FacesCSV    string `json:"faces_csv"`
	OutputDir   string `json:"output_dir"`

	// Device
	Rows int `json:"rows"`
	Cols int `json:"columns"`

	// World window
	Window [4]float64 `json:"window"` // min_x, min_y, max_x, max_y

	// Camera
	Normal [3]float64 `json:"normal"`
	Up     [3]float64 `json:"up"`
	Offset [3]float64 `json:"offset"`
	ZPP    float64    `json:"zpp"`
	ZCP    float64    `json:"zcp"`

	// Animation
	Frames      int     `json:"frames"`
	StepDegrees float64 `json:"step_degrees"`
	Axis        string  `json:"axis"`
	FPS         int     `json:"fps"`

	// Output
	Format  string `json:"format"`
	Scale   int    `json:"scale"`
	Workers int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	VerticesCSV string
	FacesCSV    string
	OutputDir   string
	Frames      int
	Format      string
	Scale       int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.VerticesCSV != "" {
		c.VerticesCSV = flags.VerticesCSV
	}
	if flags.FacesCSV != "" {
		c.FacesCSV = flags.FacesCSV
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
		if cwd, err := os.Getwd(); err == nil {
			c.OutputDir = filepath.Join(cwd, c.OutputDir)
		}
	}

	// Defaults for render settings
	if c.Rows <= 0 {
		c.Rows = 600
	}
	if c.Cols <= 0 {
		c.Cols = 800
	}
	if c.Window == [4]float64{} {
		if c.VerticesCSV == "" {
			// The built-in prism swept a full turn about Y reaches |x| ~ 37.2
			// at the default camera.
			c.Window = [4]float64{-40, -40, 40, 40}
		} else {
			c.Window = [4]float64{-10, -10, 10, 10}
		}
	}
	if c.Normal == [3]float64{} {
		c.Normal = [3]float64{0, 0, 1}
	}
	if c.Up == [3]float64{} {
		c.Up = [3]float64{0, 1, 0}
	}
	if c.ZPP == 0 && c.ZCP == 0 {
		c.ZPP, c.ZCP = 40, -45
	}
	if c.Frames <= 0 {
		c.Frames = 100
	}
	if c.StepDegrees == 0 {
		c.StepDegrees = 5
	}
	if c.Axis == "" {
		c.Axis = "y"
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.Format == "" {
		c.Format = string(export.FormatWebP)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks that the resolved settings describe a renderable scene.
func (c *Config) Validate() error {
	if (c.VerticesCSV == "") != (c.FacesCSV == "") {
		return fmt.Errorf("config: vertices_csv and faces_csv must be set together: %w", errs.ErrValidation)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("config: device %dx%d must have positive size: %w", c.Rows, c.Cols, errs.ErrValidation)
	}
	if _, err := c.WindowValue(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.AxisValue(); err != nil {
		return err
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Camera().Matrix(); err != nil {
		return fmt.Errorf("config: camera: %w", err)
	}
	if c.ZPP == c.ZCP {
		return fmt.Errorf("config: zpp and zcp must differ: %w", errs.ErrValidation)
	}
	return nil
}

// WindowValue builds the world window.
func (c *Config) WindowValue() (geom.Window, error) {
	return geom.NewWindow(c.Window[0], c.Window[1], c.Window[2], c.Window[3])
}

// AxisValue parses the rotation axis name.
func (c *Config) AxisValue() (mathutil.Axis, error) {
	switch c.Axis {
	case "x", "X":
		return mathutil.AxisX, nil
	case "y", "Y":
		return mathutil.AxisY, nil
	case "z", "Z":
		return mathutil.AxisZ, nil
	}
	return 0, fmt.Errorf("config: unknown axis %q: %w", c.Axis, errs.ErrValidation)
}

// Camera builds the observer from the camera fields.
func (c *Config) Camera() viewmatrix.Camera {
	return viewmatrix.Camera{
		Normal: mathutil.Vec3(c.Normal),
		Up:     mathutil.Vec3(c.Up),
		Offset: mathutil.Vec3(c.Offset),
		ZPP:    c.ZPP,
		ZCP:    c.ZCP,
	}
}
