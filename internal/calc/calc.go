package calc

import "math"

const (
	// MinLargeSectionPoints is the lower clamp applied to the point count of
	// large cross-sections by both engines.
	MinLargeSectionPoints = 12
	// MaxLargeSectionPoints is the upper clamp applied to the point count of
	// large cross-sections by both engines.
	MaxLargeSectionPoints = 20
)

// Circular band thresholds (diameter, metres).
const (
	smallDiameter  = 0.35
	mediumDiameter = 1.1
	largeDiameter  = 1.6
)

// Rectangular band thresholds (area, square metres).
const (
	smallArea  = 0.1
	mediumArea = 1.0
	largeArea  = 2.0
)

// MeasurementConstraints is the sampling plan for a circular duct.
type MeasurementConstraints struct {
	// MinimumMeasurementAxisCount is reserved. It is always zero and exists
	// so both engines expose a section count in the same position.
	MinimumMeasurementAxisCount  int `json:"minimum_measurement_axis_count" yaml:"minimum_measurement_axis_count"`
	MinimumMeasurementPointCount int `json:"minimum_measurement_point_count" yaml:"minimum_measurement_point_count"`
}

// RectangularMeasurementConstraints is the sampling plan for a rectangular duct.
type RectangularMeasurementConstraints struct {
	MinimumSectionAlongPipeSideCount int `json:"minimum_section_along_pipe_side_count" yaml:"minimum_section_along_pipe_side_count"`
	MinimumMeasurementPointCount     int `json:"minimum_measurement_point_count" yaml:"minimum_measurement_point_count"`
}

// CrossSectionArea returns the area of a circle with diameter d.
func CrossSectionArea(d float64) float64 {
	r := d / 2
	return math.Pi * r * r
}

// Circular returns the constraints for a circular duct of the given diameter.
func Circular(pipeDiameter float64) MeasurementConstraints {
	var points int
	switch {
	case pipeDiameter < smallDiameter:
		points = 1
	case pipeDiameter < mediumDiameter:
		points = 4
	case pipeDiameter < largeDiameter:
		points = 8
	default:
		points = largeSectionPoints(CrossSectionArea(pipeDiameter))
	}
	return MeasurementConstraints{MinimumMeasurementPointCount: points}
}

// Rectangular returns the constraints for a rectangular duct.
func Rectangular(width, height float64) RectangularMeasurementConstraints {
	area := width * height
	switch {
	case area < smallArea:
		return RectangularMeasurementConstraints{MinimumSectionAlongPipeSideCount: 0, MinimumMeasurementPointCount: 1}
	case area < mediumArea:
		return RectangularMeasurementConstraints{MinimumSectionAlongPipeSideCount: 2, MinimumMeasurementPointCount: 4}
	case area < largeArea:
		return RectangularMeasurementConstraints{MinimumSectionAlongPipeSideCount: 3, MinimumMeasurementPointCount: 9}
	default:
		return RectangularMeasurementConstraints{
			MinimumSectionAlongPipeSideCount: 4,
			MinimumMeasurementPointCount:     largeSectionPoints(area),
		}
	}
}

// largeSectionPoints is four points per square metre, clamped.
func largeSectionPoints(area float64) int {
	n := int(math.Round(4 * area))
	return min(max(n, MinLargeSectionPoints), MaxLargeSectionPoints)
}
