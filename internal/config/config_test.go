package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/mathutil"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	assert.Equal(t, 600, c.Rows)
	assert.Equal(t, 800, c.Cols)
	assert.Equal(t, [4]float64{-40, -40, 40, 40}, c.Window)
	assert.Equal(t, 40.0, c.ZPP)
	assert.Equal(t, -45.0, c.ZCP)
	assert.Equal(t, 100, c.Frames)
	assert.Equal(t, "webp", c.Format)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.True(t, filepath.IsAbs(c.OutputDir))
	require.NoError(t, c.Validate())

	axis, err := c.AxisValue()
	require.NoError(t, err)
	assert.Equal(t, mathutil.AxisY, axis)
}

func TestResolveMeshWindow(t *testing.T) {
	var c Config
	c.Resolve(Flags{VerticesCSV: "v.csv", FacesCSV: "f.csv"})
	assert.Equal(t, [4]float64{-10, -10, 10, 10}, c.Window)

	c = Config{Window: [4]float64{-5, -5, 5, 5}}
	c.Resolve(Flags{})
	assert.Equal(t, [4]float64{-5, -5, 5, 5}, c.Window)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"rows": 120, "columns": 160, "frames": 10, "format": "tga",
		"window": [-30, -30, 30, 30], "axis": "x"
	}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	c.Resolve(Flags{Frames: 3, Format: "png", OutputDir: "/tmp/out"})

	assert.Equal(t, 120, c.Rows)
	assert.Equal(t, 160, c.Cols)
	assert.Equal(t, 3, c.Frames)
	assert.Equal(t, "png", c.Format)
	assert.Equal(t, "/tmp/out", c.OutputDir)
	require.NoError(t, c.Validate())

	w, err := c.WindowValue()
	require.NoError(t, err)
	assert.Equal(t, -30.0, w.MinX())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"inverted window": func(c *Config) { c.Window = [4]float64{1, 0, 0, 1} },
		"bad axis":        func(c *Config) { c.Axis = "w" },
		"bad format":      func(c *Config) { c.Format = "gif" },
		"parallel up":     func(c *Config) { c.Up = c.Normal },
		"zpp equals zcp":  func(c *Config) { c.ZPP, c.ZCP = 5, 5 },
		"half mesh":       func(c *Config) { c.VerticesCSV = "v.csv" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{})
			mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValidation) || errors.Is(err, errs.ErrGeometry),
				"unexpected error kind: %v", err)
		})
	}
}
