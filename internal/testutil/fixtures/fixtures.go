// Package fixtures holds sample measurement sessions shared by tests.
package fixtures

import (
	"time"

	"stackmeter/internal/domain"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.May, day, hour, minute, 0, 0, time.UTC)
}

// Session is one populated record collection per domain.
type Session struct {
	Sites      []domain.Site
	Utilities  []domain.UtilityEvent
	Flows      []domain.FlowPoint
	H2O        []domain.H2ORun
	Dust       []domain.DustRun
	Gas        []domain.GasAnalyzerCheck
	Aspiration []domain.AspirationRun
}

// Full returns a session with every domain populated, including text that
// needs quoting.
func Full() Session {
	return Session{
		Sites: []domain.Site{{
			Date:                at(14, 8, 30),
			Company:             "Acme Cement, a.s.",
			Address:             "Kiln Road 12\nBuilding \"B\"",
			Operator:            " J. Novak",
			StackName:           "K2",
			Shape:               domain.ShapeRectangular,
			Width:               1.25,
			Height:              0.8,
			AtmosphericPressure: 1013.2,
			Notes:               "==== FLOWS ==== seen on the stack label",
		}},
		Utilities: []domain.UtilityEvent{
			{Label: "kiln start", Start: at(14, 7, 0), End: at(14, 7, 45), Note: "cold start"},
			{Label: "fuel switch", Start: at(14, 11, 5), Note: "open, not finished"},
		},
		Flows: []domain.FlowPoint{
			{Axis: 1, Point: 1, Depth: 0.1, DynamicPressure: 45.5, StaticPressure: -120, Temperature: 182.3, SwirlAngle: 3},
			{Axis: 1, Point: 2, Depth: 0.35, DynamicPressure: 51.25, StaticPressure: -118.5, Temperature: 183},
			{Axis: 2, Point: 1, Depth: 0.1, DynamicPressure: 0.001, StaticPressure: 0, Temperature: -4.75, SwirlAngle: -12.5},
		},
		H2O: []domain.H2ORun{
			{Run: 1, Start: at(14, 9, 0), End: at(14, 9, 30), GasVolume: 60.2, ImpingerMassBefore: 512.31, ImpingerMassAfter: 518.02, SilicaMassBefore: 250, SilicaMassAfter: 251.4, GasMeterTemperature: 21.5},
		},
		Dust: []domain.DustRun{
			{Run: 1, FilterID: "F-001", Start: at(14, 9, 40), End: at(14, 10, 10), NozzleDiameter: 8, GasVolume: 812.4, FilterMassBefore: 401.12, FilterMassAfter: 402.87, Isokinetic: 98.6},
			{Run: 2, FilterID: "F-002", Start: at(14, 10, 20), End: at(14, 10, 50), NozzleDiameter: 8, GasVolume: 798.1, FilterMassBefore: 399.5, FilterMassAfter: 401.02, Isokinetic: 101.3},
		},
		Gas: []domain.GasAnalyzerCheck{
			{Component: domain.GasO2, Unit: "%", Reference: 20.9, ZeroReading: 0.02, SpanReading: 20.85, CheckedAt: at(14, 8, 0)},
			{Component: domain.GasSO2, Unit: "mg/m3", Reference: 450, ZeroReading: -1.5, SpanReading: 447, CheckedAt: at(14, 8, 5)},
		},
		Aspiration: []domain.AspirationRun{
			{Run: 1, Medium: "XAD-2, lot 7", Start: at(14, 12, 0), End: at(14, 13, 0), FlowRate: 2.5, GasVolume: 150, Temperature: 20, Pressure: 1011},
		},
	}
}
