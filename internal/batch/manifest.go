package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index int    `json:"index"`
	Image string `json:"image,omitempty"`
	Error string `json:"error,omitempty"`
}

// Manifest lists the frames of a run in playback order.
type Manifest struct {
	Rows   int             `json:"rows"`
	Cols   int             `json:"columns"`
	Scale  int             `json:"scale"`
	FPS    int             `json:"fps,omitempty"`
	Frames []ManifestEntry `json:"frames"`
}

// NewManifest builds the manifest for results.
func NewManifest(rows, cols, scale, fps int, results []Result) Manifest {
	m := Manifest{Rows: rows, Cols: cols, Scale: scale, FPS: fps, Frames: make([]ManifestEntry, len(results))}
	for i, r := range results {
		e := ManifestEntry{Index: r.Index, Image: r.Image}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		m.Frames[i] = e
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
