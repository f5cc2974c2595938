// Package mesh loads 3D objects from vertex/face CSV tables and provides the
// built-in demo objects.
//
// Both tables start with a header row and carry a leading index column that
// is ignored:
//
//	vertices: index,x,y,z
//	faces:    index,v0,v1,v2[,v3...]
//
// Face entries are zero-based row numbers into the vertex table.
package mesh

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"wireframe-renderer/internal/errs"
	"wireframe-renderer/internal/geom"
)

// Load reads a vertex table and a face table into an Object3D. Faces keep
// their file order.
func Load(vertices, faces io.Reader) (geom.Object3D, error) {
	verts, err := readVertices(vertices)
	if err != nil {
		return nil, err
	}
	return readFaces(faces, verts)
}

// LoadFiles is Load over two file paths.
func LoadFiles(verticesPath, facesPath string) (geom.Object3D, error) {
	vf, err := os.Open(verticesPath)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	defer vf.Close()

	ff, err := os.Open(facesPath)
	if err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	defer ff.Close()

	obj, err := Load(vf, ff)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s, %s: %w", verticesPath, facesPath, err)
	}
	return obj, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return cr
}

func readVertices(r io.Reader) ([]geom.Point3, error) {
	cr := newReader(r)
	var verts []geom.Point3
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mesh: vertices: %w", err)
		}
		if line == 1 {
			continue
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("mesh: vertices line %d: want 4 fields, got %d: %w", line, len(rec), errs.ErrValidation)
		}
		var xyz [3]float64
		for i := range xyz {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: vertices line %d: %v: %w", line, err, errs.ErrValidation)
			}
			xyz[i] = v
		}
		verts = append(verts, geom.P3(xyz[0], xyz[1], xyz[2]))
	}
	return verts, nil
}

func readFaces(r io.Reader, verts []geom.Point3) (geom.Object3D, error) {
	cr := newReader(r)
	var obj geom.Object3D
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mesh: faces: %w", err)
		}
		if line == 1 {
			continue
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("mesh: faces line %d: want at least 3 vertices, got %d: %w",
				line, len(rec)-1, errs.ErrValidation)
		}
		face := make(geom.Face, 0, len(rec)-1)
		for _, field := range rec[1:] {
			idx, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("mesh: faces line %d: %v: %w", line, err, errs.ErrValidation)
			}
			if idx < 0 || idx >= len(verts) {
				return nil, fmt.Errorf("mesh: faces line %d: vertex %d of %d: %w", line, idx, len(verts), errs.ErrRange)
			}
			face = append(face, verts[idx])
		}
		obj = append(obj, face)
	}
	return obj, nil
}

// Prism is the five-faced ridge-roof solid used by the 3D demo: two
// triangular gables at x = ±10 joined by two sloped faces and a base.
func Prism() geom.Object3D {
	return geom.Object3D{
		{geom.P3(10, 10, 0), geom.P3(10, 0, 15), geom.P3(10, -10, 0)},
		{geom.P3(-10, 10, 0), geom.P3(-10, 0, 15), geom.P3(-10, -10, 0)},
		{geom.P3(10, 10, 0), geom.P3(10, 0, 15), geom.P3(-10, 0, 15), geom.P3(-10, 10, 0)},
		{geom.P3(10, 0, 15), geom.P3(10, -10, 0), geom.P3(-10, -10, 0), geom.P3(-10, 0, 15)},
		{geom.P3(10, 10, 0), geom.P3(10, -10, 0), geom.P3(-10, -10, 0), geom.P3(-10, 10, 0)},
	}
}

// Cube is an axis-aligned cube of the given half-size centred on the origin.
func Cube(half float64) geom.Object3D {
	h := half
	v := [8]geom.Point3{
		geom.P3(-h, -h, -h), geom.P3(h, -h, -h), geom.P3(h, h, -h), geom.P3(-h, h, -h),
		geom.P3(-h, -h, h), geom.P3(h, -h, h), geom.P3(h, h, h), geom.P3(-h, h, h),
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{2, 3, 7, 6}, {1, 2, 6, 5}, {0, 3, 7, 4},
	}
	obj := make(geom.Object3D, len(quads))
	for i, q := range quads {
		obj[i] = geom.Face{v[q[0]], v[q[1]], v[q[2]], v[q[3]]}
	}
	return obj
}
