package calc

import (
	"errors"
	"fmt"

	"stackmeter/internal/domain"
)

// ErrInvalidDimensions is returned when a site's duct dimensions are not
// usable by the engine selected for its shape.
var ErrInvalidDimensions = errors.New("calc: duct dimensions must be positive")

// Plan summarises the sampling plan for one site.
type Plan struct {
	Shape       domain.PipeShape                   `yaml:"shape"`
	Area        float64                            `yaml:"area_m2"`
	Circular    *MeasurementConstraints            `yaml:"circular,omitempty"`
	Rectangular *RectangularMeasurementConstraints `yaml:"rectangular,omitempty"`
}

// Points returns the minimum number of traverse points regardless of shape.
func (p Plan) Points() int {
	if p.Circular != nil {
		return p.Circular.MinimumMeasurementPointCount
	}
	if p.Rectangular != nil {
		return p.Rectangular.MinimumMeasurementPointCount
	}
	return 0
}

// ForSite selects the engine matching the site's pipe shape.
func ForSite(site domain.Site) (Plan, error) {
	switch site.Shape {
	case domain.ShapeRectangular:
		if !(site.Width > 0) || !(site.Height > 0) {
			return Plan{}, fmt.Errorf("%w: width=%g height=%g", ErrInvalidDimensions, site.Width, site.Height)
		}
		c := Rectangular(site.Width, site.Height)
		return Plan{Shape: site.Shape, Area: site.Width * site.Height, Rectangular: &c}, nil
	default:
		if !(site.Diameter > 0) {
			return Plan{}, fmt.Errorf("%w: diameter=%g", ErrInvalidDimensions, site.Diameter)
		}
		c := Circular(site.Diameter)
		return Plan{Shape: domain.ShapeCircular, Area: CrossSectionArea(site.Diameter), Circular: &c}, nil
	}
}
