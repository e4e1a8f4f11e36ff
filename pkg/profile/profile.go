package profile

import "strings"

// Profile identifies an Order-X conformance profile.
type Profile int

const (
	// Unknown is the zero value; it never resolves to a guideline URN.
	Unknown Profile = iota
	// Basic covers the minimum order content for automated processing.
	Basic
	// Comfort adds the commonly exchanged optional structures.
	Comfort
	// Extended covers the full Order-X structure set.
	Extended
)

// ConfigurationError reports an unknown or unsupported profile identifier.
type ConfigurationError struct {
	Identifier string
}

func (e *ConfigurationError) Error() string {
	return "unknown order-x profile: " + e.Identifier
}

// entry holds the registry row for one profile.
type entry struct {
	name         string
	guidelineURN string
}

// The registry is read-only after init; safe for concurrent readers.
var registry = map[Profile]entry{
	Basic:    {name: "BASIC", guidelineURN: "urn:order-x.eu:1p0:basic"},
	Comfort:  {name: "COMFORT", guidelineURN: "urn:order-x.eu:1p0:comfort"},
	Extended: {name: "EXTENDED", guidelineURN: "urn:order-x.eu:1p0:extended"},
}

// FromString resolves a profile from its name, case-insensitively.
// Unknown identifiers return a *ConfigurationError.
func FromString(name string) (Profile, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for p, e := range registry {
		if e.name == upper {
			return p, nil
		}
	}
	return Unknown, &ConfigurationError{Identifier: name}
}

// Valid reports whether p is a registered profile.
func (p Profile) Valid() bool {
	_, ok := registry[p]
	return ok
}

// String returns the profile name, or "UNKNOWN" for unregistered values.
func (p Profile) String() string {
	if e, ok := registry[p]; ok {
		return e.name
	}
	return "UNKNOWN"
}

// GuidelineURN returns the guideline context-parameter URN stamped into the
// ExchangedDocumentContext of documents built with this profile. It returns
// the empty string for unregistered values.
func (p Profile) GuidelineURN() string {
	return registry[p].guidelineURN
}
