package raster

import (
	"context"
	"fmt"
	"sync"

	"wireframe-renderer/internal/colors"
	"wireframe-renderer/internal/errs"
)

// DrawLine rasterizes the segment p0–p1 with integer Bresenham, endpoints
// included. The endpoints are put in a canonical order before walking, so
// DrawLine(a, b) and DrawLine(b, a) color the same pixels.
func DrawLine(p0, p1 DevicePoint, id colors.ColorID, t Target) error {
	if !t.Contains(p0) || !t.Contains(p1) {
		return fmt.Errorf("raster: line (%d,%d)-(%d,%d) leaves %dx%d target: %w",
			p0.X, p0.Y, p1.X, p1.Y, t.Rows(), t.Columns(), errs.ErrRange)
	}
	return drawLine(p0, p1, id, t)
}

// drawLine assumes both endpoints are inside t; every intermediate pixel then
// lies inside their bounding box.
func drawLine(p0, p1 DevicePoint, id colors.ColorID, t Target) error {
	if p0 == p1 {
		return t.Set(p0.X, p0.Y, id)
	}

	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	// Walk along the major axis.
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}

	e := dx / 2
	y := y0
	for x := x0; x <= x1; x++ {
		var err error
		if steep {
			err = t.Set(y, x, id)
		} else {
			err = t.Set(x, y, id)
		}
		if err != nil {
			return err
		}
		e -= dy
		if e < 0 {
			y += ystep
			e += dx
		}
	}
	return nil
}

// Segment is one line for the batched entry points.
type Segment struct {
	P0, P1 DevicePoint
}

// DrawLines draws every segment into t. All segments are checked against t
// before the first pixel is written.
func DrawLines(segments []Segment, id colors.ColorID, t Target) error {
	for i, s := range segments {
		if !t.Contains(s.P0) || !t.Contains(s.P1) {
			return fmt.Errorf("raster: segment %d (%d,%d)-(%d,%d) leaves %dx%d target: %w",
				i, s.P0.X, s.P0.Y, s.P1.X, s.P1.Y, t.Rows(), t.Columns(), errs.ErrRange)
		}
	}
	for _, s := range segments {
		if err := drawLine(s.P0, s.P1, id, t); err != nil {
			return err
		}
	}
	return nil
}

// LineJob is a batch of segments bound for one target.
type LineJob struct {
	Target   Target
	Segments []Segment
	Color    colors.ColorID
}

// DrawLinesParallel runs DrawLines for each job on a pool of workers.
//
// Jobs run concurrently, so no two jobs may share a Device. Errors are
// returned per job, in job order; jobs not started before ctx is cancelled
// report ctx.Err().
func DrawLinesParallel(ctx context.Context, jobs []LineJob, workers int) []error {
	if workers <= 0 {
		workers = 1
	}
	results := make([]error, len(jobs))

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				if err := ctx.Err(); err != nil {
					results[idx] = err
					continue
				}
				j := jobs[idx]
				results[idx] = DrawLines(j.Segments, j.Color, j.Target)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	return results
}
