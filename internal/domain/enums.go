package domain

import (
	"fmt"
	"strings"
)

// PipeShape is the cross-section shape of the measured duct.
type PipeShape int

const (
	ShapeCircular PipeShape = iota
	ShapeRectangular
)

var pipeShapeNames = []string{"circular", "rectangular"}

// PipeShapes lists every shape in declaration order.
func PipeShapes() []PipeShape { return []PipeShape{ShapeCircular, ShapeRectangular} }

func (s PipeShape) String() string {
	if s < 0 || int(s) >= len(pipeShapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return pipeShapeNames[s]
}

// ParsePipeShape is the inverse of PipeShape.String.
func ParsePipeShape(s string) (PipeShape, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for i, name := range pipeShapeNames {
		if name == n {
			return PipeShape(i), nil
		}
	}
	return ShapeCircular, fmt.Errorf("unknown pipe shape %q, want one of %v", s, PipeShapes())
}

// MarshalYAML renders the shape by name.
func (s PipeShape) MarshalYAML() (any, error) { return s.String(), nil }

// GasComponent is the species a gas analyzer channel measures.
type GasComponent int

const (
	GasO2 GasComponent = iota
	GasCO2
	GasCO
	GasNO
	GasNO2
	GasSO2
	GasCH4
	GasTOC
)

var gasComponentNames = []string{"O2", "CO2", "CO", "NO", "NO2", "SO2", "CH4", "TOC"}

// GasComponents lists every component in declaration order.
func GasComponents() []GasComponent {
	out := make([]GasComponent, len(gasComponentNames))
	for i := range out {
		out[i] = GasComponent(i)
	}
	return out
}

func (g GasComponent) String() string {
	if g < 0 || int(g) >= len(gasComponentNames) {
		return fmt.Sprintf("gas(%d)", int(g))
	}
	return gasComponentNames[g]
}

// ParseGasComponent is the inverse of GasComponent.String. Matching ignores
// case.
func ParseGasComponent(s string) (GasComponent, error) {
	n := strings.TrimSpace(s)
	for i, name := range gasComponentNames {
		if strings.EqualFold(name, n) {
			return GasComponent(i), nil
		}
	}
	return GasO2, fmt.Errorf("unknown gas component %q, want one of %v", s, GasComponents())
}

// MarshalYAML renders the component by name.
func (g GasComponent) MarshalYAML() (any, error) { return g.String(), nil }
