package codec

import (
	"time"

	"stackmeter/internal/domain"
)

// Home is the codec for site/home records.
func Home() *Codec[domain.Site] {
	return New(domain.Home,
		Time("date", func(s *domain.Site) *time.Time { return &s.Date }),
		String("company", func(s *domain.Site) *string { return &s.Company }),
		String("address", func(s *domain.Site) *string { return &s.Address }),
		String("operator", func(s *domain.Site) *string { return &s.Operator }),
		String("stack", func(s *domain.Site) *string { return &s.StackName }),
		Enum("shape", func(s *domain.Site) *domain.PipeShape { return &s.Shape }, domain.ParsePipeShape),
		Float("diameter", func(s *domain.Site) *float64 { return &s.Diameter }),
		Float("width", func(s *domain.Site) *float64 { return &s.Width }),
		Float("height", func(s *domain.Site) *float64 { return &s.Height }),
		Float("atmospheric_pressure", func(s *domain.Site) *float64 { return &s.AtmosphericPressure }),
		String("notes", func(s *domain.Site) *string { return &s.Notes }),
	)
}

// Utilities is the codec for the utilities timing log.
func Utilities() *Codec[domain.UtilityEvent] {
	return New(domain.Utilities,
		String("label", func(e *domain.UtilityEvent) *string { return &e.Label }),
		Time("start", func(e *domain.UtilityEvent) *time.Time { return &e.Start }),
		Time("end", func(e *domain.UtilityEvent) *time.Time { return &e.End }),
		String("note", func(e *domain.UtilityEvent) *string { return &e.Note }),
	)
}

// Flows is the codec for flow traverse points.
func Flows() *Codec[domain.FlowPoint] {
	return New(domain.Flows,
		Int("axis", func(p *domain.FlowPoint) *int { return &p.Axis }),
		Int("point", func(p *domain.FlowPoint) *int { return &p.Point }),
		Float("depth", func(p *domain.FlowPoint) *float64 { return &p.Depth }),
		Float("dynamic_pressure", func(p *domain.FlowPoint) *float64 { return &p.DynamicPressure }),
		Float("static_pressure", func(p *domain.FlowPoint) *float64 { return &p.StaticPressure }),
		Float("temperature", func(p *domain.FlowPoint) *float64 { return &p.Temperature }),
		Float("swirl_angle", func(p *domain.FlowPoint) *float64 { return &p.SwirlAngle }),
	)
}

// H2O is the codec for gravimetric moisture runs.
func H2O() *Codec[domain.H2ORun] {
	return New(domain.H2O,
		Int("run", func(r *domain.H2ORun) *int { return &r.Run }),
		Time("start", func(r *domain.H2ORun) *time.Time { return &r.Start }),
		Time("end", func(r *domain.H2ORun) *time.Time { return &r.End }),
		Float("gas_volume", func(r *domain.H2ORun) *float64 { return &r.GasVolume }),
		Float("impinger_before", func(r *domain.H2ORun) *float64 { return &r.ImpingerMassBefore }),
		Float("impinger_after", func(r *domain.H2ORun) *float64 { return &r.ImpingerMassAfter }),
		Float("silica_before", func(r *domain.H2ORun) *float64 { return &r.SilicaMassBefore }),
		Float("silica_after", func(r *domain.H2ORun) *float64 { return &r.SilicaMassAfter }),
		Float("meter_temperature", func(r *domain.H2ORun) *float64 { return &r.GasMeterTemperature }),
	)
}

// Dust is the codec for dust sampling runs.
func Dust() *Codec[domain.DustRun] {
	return New(domain.Dust,
		Int("run", func(r *domain.DustRun) *int { return &r.Run }),
		String("filter", func(r *domain.DustRun) *string { return &r.FilterID }),
		Time("start", func(r *domain.DustRun) *time.Time { return &r.Start }),
		Time("end", func(r *domain.DustRun) *time.Time { return &r.End }),
		Float("nozzle_diameter", func(r *domain.DustRun) *float64 { return &r.NozzleDiameter }),
		Float("gas_volume", func(r *domain.DustRun) *float64 { return &r.GasVolume }),
		Float("filter_before", func(r *domain.DustRun) *float64 { return &r.FilterMassBefore }),
		Float("filter_after", func(r *domain.DustRun) *float64 { return &r.FilterMassAfter }),
		Float("isokinetic", func(r *domain.DustRun) *float64 { return &r.Isokinetic }),
	)
}

// GasAnalyzer is the codec for analyzer zero/span checks.
func GasAnalyzer() *Codec[domain.GasAnalyzerCheck] {
	return New(domain.GasAnalyzer,
		Enum("component", func(c *domain.GasAnalyzerCheck) *domain.GasComponent { return &c.Component }, domain.ParseGasComponent),
		String("unit", func(c *domain.GasAnalyzerCheck) *string { return &c.Unit }),
		Float("reference", func(c *domain.GasAnalyzerCheck) *float64 { return &c.Reference }),
		Float("zero", func(c *domain.GasAnalyzerCheck) *float64 { return &c.ZeroReading }),
		Float("span", func(c *domain.GasAnalyzerCheck) *float64 { return &c.SpanReading }),
		Time("checked_at", func(c *domain.GasAnalyzerCheck) *time.Time { return &c.CheckedAt }),
	)
}

// Aspiration is the codec for aspiration runs.
func Aspiration() *Codec[domain.AspirationRun] {
	return New(domain.Aspiration,
		Int("run", func(r *domain.AspirationRun) *int { return &r.Run }),
		String("medium", func(r *domain.AspirationRun) *string { return &r.Medium }),
		Time("start", func(r *domain.AspirationRun) *time.Time { return &r.Start }),
		Time("end", func(r *domain.AspirationRun) *time.Time { return &r.End }),
		Float("flow_rate", func(r *domain.AspirationRun) *float64 { return &r.FlowRate }),
		Float("gas_volume", func(r *domain.AspirationRun) *float64 { return &r.GasVolume }),
		Float("temperature", func(r *domain.AspirationRun) *float64 { return &r.Temperature }),
		Float("pressure", func(r *domain.AspirationRun) *float64 { return &r.Pressure }),
	)
}

// Tables returns one table per domain in document order.
func Tables() []Table {
	return []Table{Home(), Utilities(), Flows(), H2O(), Dust(), GasAnalyzer(), Aspiration()}
}

// TableFor returns the table for id, or nil for an unknown domain.
func TableFor(id domain.ID) Table {
	if !id.Valid() {
		return nil
	}
	return Tables()[id]
}
