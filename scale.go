package stickr

import "math"

// ScaleEstimate is the scale estimator's reading for one two-pointer frame.
type ScaleEstimate struct {
	// SpanY is the current vertical distance between the two pointers.
	SpanY float64

	// Factor is the ratio of the current to the previous pointer distance.
	// It is 1 when there is no usable previous distance.
	Factor float64
}

// Wide reports whether the pointers are far enough apart vertically for the
// frame to count as a scale gesture rather than a tilt.
func (s ScaleEstimate) Wide(threshold float64) bool {
	return s.SpanY > threshold
}

// EstimateScale reads span and scale factor from a frame. ok is false when
// fewer than two pointers are tracked.
func EstimateScale(f Frame) (est ScaleEstimate, ok bool) {
	if f.Count < 2 {
		return ScaleEstimate{Factor: 1}, false
	}
	est.SpanY = math.Abs(f.Second.Cur.Y - f.First.Cur.Y)
	est.Factor = 1

	prev := f.Second.Prev.Sub(f.First.Prev).Len()
	cur := f.Second.Cur.Sub(f.First.Cur).Len()
	if prev > 0 && finite(cur/prev) {
		est.Factor = cur / prev
	}
	return est, true
}
