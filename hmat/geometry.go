package hmat

import "math"

// BBox is an axis-aligned bounding box
type BBox struct {
	Lo, Hi [3]float64
}

func EmptyBBox() (b BBox) {
	for d := 0; d < 3; d++ {
		b.Lo[d] = math.Inf(1)
		b.Hi[d] = math.Inf(-1)
	}
	return
}

func (b *BBox) Extend(p []float64) {
	for d := 0; d < 3; d++ {
		if p[d] < b.Lo[d] {
			b.Lo[d] = p[d]
		}
		if p[d] > b.Hi[d] {
			b.Hi[d] = p[d]
		}
	}
}

func (b *BBox) Union(o BBox) {
	for d := 0; d < 3; d++ {
		if o.Lo[d] < b.Lo[d] {
			b.Lo[d] = o.Lo[d]
		}
		if o.Hi[d] > b.Hi[d] {
			b.Hi[d] = o.Hi[d]
		}
	}
}

// Extent returns the box size along axis d
func (b BBox) Extent(d int) float64 {
	return b.Hi[d] - b.Lo[d]
}

// LongestAxis returns the axis of greatest extent and that extent
func (b BBox) LongestAxis() (axis int, extent float64) {
	for d := 0; d < 3; d++ {
		if e := b.Extent(d); e > extent {
			axis, extent = d, e
		}
	}
	return
}

// Diameter is the largest extent of the box
func (b BBox) Diameter() (diam float64) {
	_, diam = b.LongestAxis()
	return
}

// Distance is the separation between two boxes: the largest per-axis gap,
// zero when the boxes touch or overlap. Measured in the same max-extent
// metric as Diameter so the two are comparable in the admissibility test.
func (b BBox) Distance(o BBox) (dist float64) {
	for d := 0; d < 3; d++ {
		gap := math.Max(b.Lo[d]-o.Hi[d], o.Lo[d]-b.Hi[d])
		if gap > dist {
			dist = gap
		}
	}
	return
}
