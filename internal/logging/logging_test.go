package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"none":    zerolog.Disabled,
		"trace":   zerolog.TraceLevel,
		"fatal":   zerolog.FatalLevel,
		"Error":   zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "  ", "loud"} {
		if _, ok := ParseLevel(in); ok {
			t.Fatalf("ParseLevel(%q) accepted", in)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "nonsense")
	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnv(&cfg)
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || cfg.NoColor {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestBuild_WritesAppField(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(ProfileTest)
	cfg.Out = &buf
	log := Build("stackmeter", cfg)
	log.Info().Str("domain", "dust").Msg("imported")
	log.Trace().Msg("hidden")
	out := buf.String()
	if !strings.Contains(out, "imported") || !strings.Contains(out, "app=stackmeter") || !strings.Contains(out, "domain=dust") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("trace message written at debug level: %q", out)
	}
}
