package agg

import "fmt"

// InvalidArgumentError reports a color, point, rect, or point-list that
// could not be interpreted, or a primitive called with fewer points than
// it requires.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("agg: %s: invalid argument: %s", e.Op, e.Reason)
}

// UnsupportedSurfaceError reports a target surface whose bytes-per-pixel is
// outside the {1,2,3,4} set this module can address.
type UnsupportedSurfaceError struct {
	BytesPerPixel int
}

func (e *UnsupportedSurfaceError) Error() string {
	return fmt.Sprintf("agg: unsupported surface: bytes_per_pixel=%d", e.BytesPerPixel)
}

// ResourceFailureError reports a surface lock/unlock failure or scratch
// buffer allocation failure.
type ResourceFailureError struct {
	Op     string
	Reason string
}

func (e *ResourceFailureError) Error() string {
	return fmt.Sprintf("agg: %s: resource failure: %s", e.Op, e.Reason)
}
