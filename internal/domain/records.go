package domain

import "time"

// Site describes the measurement location and the duct under test. The home
// domain normally holds a single Site.
type Site struct {
	Date                time.Time `yaml:"date"`
	Company             string    `yaml:"company"`
	Address             string    `yaml:"address"`
	Operator            string    `yaml:"operator"`
	StackName           string    `yaml:"stack_name"`
	Shape               PipeShape `yaml:"shape"`
	Diameter            float64   `yaml:"diameter_m"`
	Width               float64   `yaml:"width_m"`
	Height              float64   `yaml:"height_m"`
	AtmosphericPressure float64   `yaml:"atmospheric_pressure_hpa"`
	Notes               string    `yaml:"notes"`
}

// UtilityEvent is one entry of the utilities timing log (plant start/stop,
// fuel change, sampling pause and so on).
type UtilityEvent struct {
	Label string    `yaml:"label"`
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Note  string    `yaml:"note"`
}

// Duration returns End-Start, or 0 when either end is unset.
func (e UtilityEvent) Duration() time.Duration {
	if e.Start.IsZero() || e.End.IsZero() {
		return 0
	}
	return e.End.Sub(e.Start)
}

// FlowPoint is one traverse point of a velocity survey.
type FlowPoint struct {
	Axis            int     `yaml:"axis"`
	Point           int     `yaml:"point"`
	Depth           float64 `yaml:"depth_m"`
	DynamicPressure float64 `yaml:"dynamic_pressure_pa"`
	StaticPressure  float64 `yaml:"static_pressure_pa"`
	Temperature     float64 `yaml:"temperature_c"`
	SwirlAngle      float64 `yaml:"swirl_angle_deg"`
}

// H2ORun is one gravimetric moisture run.
type H2ORun struct {
	Run                 int       `yaml:"run"`
	Start               time.Time `yaml:"start"`
	End                 time.Time `yaml:"end"`
	GasVolume           float64   `yaml:"gas_volume_l"`
	ImpingerMassBefore  float64   `yaml:"impinger_mass_before_g"`
	ImpingerMassAfter   float64   `yaml:"impinger_mass_after_g"`
	SilicaMassBefore    float64   `yaml:"silica_mass_before_g"`
	SilicaMassAfter     float64   `yaml:"silica_mass_after_g"`
	GasMeterTemperature float64   `yaml:"gas_meter_temperature_c"`
}

// CollectedWater returns the water mass picked up by impingers and silica.
func (r H2ORun) CollectedWater() float64 {
	return (r.ImpingerMassAfter - r.ImpingerMassBefore) + (r.SilicaMassAfter - r.SilicaMassBefore)
}

// DustRun is one isokinetic dust sampling run.
type DustRun struct {
	Run              int       `yaml:"run"`
	FilterID         string    `yaml:"filter_id"`
	Start            time.Time `yaml:"start"`
	End              time.Time `yaml:"end"`
	NozzleDiameter   float64   `yaml:"nozzle_diameter_mm"`
	GasVolume        float64   `yaml:"gas_volume_l"`
	FilterMassBefore float64   `yaml:"filter_mass_before_mg"`
	FilterMassAfter  float64   `yaml:"filter_mass_after_mg"`
	Isokinetic       float64   `yaml:"isokinetic_pct"`
}

// CollectedMass returns the dust mass caught on the filter.
func (r DustRun) CollectedMass() float64 { return r.FilterMassAfter - r.FilterMassBefore }

// GasAnalyzerCheck is a zero/span check of one analyzer channel.
type GasAnalyzerCheck struct {
	Component   GasComponent `yaml:"component"`
	Unit        string       `yaml:"unit"`
	Reference   float64      `yaml:"reference"`
	ZeroReading float64      `yaml:"zero_reading"`
	SpanReading float64      `yaml:"span_reading"`
	CheckedAt   time.Time    `yaml:"checked_at"`
}

// SpanDeviation returns the relative span error. It is 0 when no reference
// value was entered.
func (c GasAnalyzerCheck) SpanDeviation() float64 {
	if c.Reference == 0 {
		return 0
	}
	return (c.SpanReading - c.Reference) / c.Reference
}

// AspirationRun is one sorbent or impinger aspiration run.
type AspirationRun struct {
	Run         int       `yaml:"run"`
	Medium      string    `yaml:"medium"`
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
	FlowRate    float64   `yaml:"flow_rate_l_min"`
	GasVolume   float64   `yaml:"gas_volume_l"`
	Temperature float64   `yaml:"temperature_c"`
	Pressure    float64   `yaml:"pressure_hpa"`
}
