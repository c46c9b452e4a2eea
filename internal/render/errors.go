package render

import (
	"errors"
	"fmt"
)

// Export stages reported in ExportError.
const (
	StageCompose   = "compose"
	StageRasterize = "rasterize"
	StagePaginate  = "paginate"
	StageAssemble  = "assemble"
	StageWrite     = "write"
)

// ErrRasterTooLarge is returned when the canvas would exceed the pixel budget.
var ErrRasterTooLarge = errors.New("raster exceeds pixel budget")

// ErrSurfaceReleased is returned when a released Surface is read.
var ErrSurfaceReleased = errors.New("surface already released")

// ExportError is the single failure surfaced by an export. No file bytes
// accompany it.
type ExportError struct {
	Stage string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed (%s): %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

func exportErr(stage string, err error) *ExportError {
	var ee *ExportError
	if errors.As(err, &ee) {
		return ee
	}
	return &ExportError{Stage: stage, Err: err}
}
