package domain

import (
	"fmt"
	"strings"
)

// ID identifies one measurement domain. The numeric order is the fixed block
// order of the global export document.
type ID int

const (
	Home ID = iota
	Utilities
	Flows
	H2O
	Dust
	GasAnalyzer
	Aspiration
)

// Count is the number of domains in a session.
const Count = int(Aspiration) + 1

type descriptor struct {
	name    string
	heading string
	key     string
}

var descriptors = [Count]descriptor{
	Home:        {name: "home", heading: "==== HOME ====", key: "home-measurements.txt"},
	Utilities:   {name: "utilities", heading: "==== UTILITIES ====", key: "utilities-measurements.txt"},
	Flows:       {name: "flows", heading: "==== FLOWS ====", key: "flows-measurements.txt"},
	H2O:         {name: "h2o", heading: "==== H2O ====", key: "h2o-measurements.txt"},
	Dust:        {name: "dust", heading: "==== DUST ====", key: "dust-measurements.txt"},
	GasAnalyzer: {name: "gas-analyzer", heading: "==== GAS ANALYZER ====", key: "gas-analyzer-measurements.txt"},
	Aspiration:  {name: "aspiration", heading: "==== ASPIRATION ====", key: "aspiration-measurements.txt"},
}

// All returns every domain in document order.
func All() []ID {
	out := make([]ID, Count)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Valid reports whether id names a known domain.
func (id ID) Valid() bool { return id >= 0 && int(id) < Count }

// Name returns the short, CLI-friendly name of the domain.
func (id ID) Name() string {
	if !id.Valid() {
		return fmt.Sprintf("domain(%d)", int(id))
	}
	return descriptors[id].name
}

// String returns the name of the domain.
func (id ID) String() string { return id.Name() }

// Heading returns the literal that marks the domain's block in the export
// document.
func (id ID) Heading() string {
	if !id.Valid() {
		return ""
	}
	return descriptors[id].heading
}

// StorageKey returns the well-known blob store key for the domain.
func (id ID) StorageKey() string {
	if !id.Valid() {
		return ""
	}
	return descriptors[id].key
}

// Parse resolves a domain by name. Matching ignores case and surrounding
// space.
func Parse(name string) (ID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, d := range descriptors {
		if d.name == n {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown domain %q", name)
}

// IsHeading reports whether s, ignoring surrounding space, is one of the
// heading literals.
func IsHeading(s string) bool {
	s = strings.TrimSpace(s)
	for _, d := range descriptors {
		if d.heading == s {
			return true
		}
	}
	return false
}
