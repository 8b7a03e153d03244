// Package refdata holds the concrete civic record types and the immutable
// snapshot that bundles them with the place hierarchy and tier tables.
package refdata

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
)

// Kind names a facility dataset shape.
type Kind string

const (
	KindEmergency Kind = "emergency"
	KindMarine    Kind = "marine"
	KindTaxi      Kind = "taxi"
	KindWaste     Kind = "waste"
	KindChamber   Kind = "chamber"
)

// ParseKind maps a configuration string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEmergency, KindMarine, KindTaxi, KindWaste, KindChamber:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown dataset kind %q", s)
}

// Site is the located shape every facility record shares: coordinates, a
// type string, and the municipality/region it belongs to. Concrete record
// types embed it and add their own payload, so the proximity engine can
// rank any of them without knowing which dataset they came from.
type Site struct {
	Name         string
	Type         string
	Municipality string
	Region       string
	Position     orb.Point
}

// Coordinate implements proximity.Locatable.
func (s Site) Coordinate() orb.Point { return s.Position }

// FacilityType implements proximity.Locatable.
func (s Site) FacilityType() string { return s.Type }

func (s Site) site() Site { return s }

// SiteOf extracts the shared located shape from any facility record.
func SiteOf(rec proximity.Locatable) (Site, bool) {
	p, ok := rec.(interface{ site() Site })
	if !ok {
		return Site{}, false
	}
	return p.site(), true
}

// EmergencyService is a police, fire, ambulance, or hospital listing.
type EmergencyService struct {
	Site
	Service string
	Phone   string
}

// MarineFacility is a harbour, marina, dock, or boat launch.
type MarineFacility struct {
	Site
	VHFChannel string
	Moorage    bool
}

// TaxiOperator is a licensed taxi or ride service.
type TaxiOperator struct {
	Site
	Phone       string
	ServiceArea string
}

// WasteFacility is a transfer station, recycling depot, or landfill.
type WasteFacility struct {
	Site
	Materials []string
	Operator  string
}

// ChamberMember is a chamber-of-commerce member business.
type ChamberMember struct {
	Site
	Website string
	Phone   string
}

// FromMap builds a typed record from a decoded dataset object. The fields
// map renames canonical keys for datasets that use different ones.
// Records without numeric coordinates are unusable for proximity ranking
// and are rejected; the caller skips them without failing the dataset.
func FromMap(kind Kind, m map[string]any, fields map[string]string) (proximity.Locatable, error) {
	key := func(canonical string) string {
		if fields != nil {
			if k, ok := fields[canonical]; ok {
				return k
			}
		}
		return canonical
	}

	lat, latOK := num(m[key("latitude")])
	lon, lonOK := num(m[key("longitude")])
	if !latOK || !lonOK {
		return nil, fmt.Errorf("record %q: missing or non-numeric coordinates", str(m[key("name")]))
	}

	site := Site{
		Name:         str(m[key("name")]),
		Type:         str(m[key("type")]),
		Municipality: str(m[key("municipality")]),
		Region:       str(m[key("region")]),
		Position:     orb.Point{lon, lat},
	}

	switch kind {
	case KindEmergency:
		return EmergencyService{Site: site, Service: str(m["service"]), Phone: str(m["phone"])}, nil
	case KindMarine:
		return MarineFacility{Site: site, VHFChannel: str(m["vhf_channel"]), Moorage: boolean(m["moorage"])}, nil
	case KindTaxi:
		return TaxiOperator{Site: site, Phone: str(m["phone"]), ServiceArea: str(m["service_area"])}, nil
	case KindWaste:
		return WasteFacility{Site: site, Materials: strs(m["materials"]), Operator: str(m["operator"])}, nil
	case KindChamber:
		return ChamberMember{Site: site, Website: str(m["website"]), Phone: str(m["phone"])}, nil
	}
	return nil, fmt.Errorf("unknown dataset kind %q", kind)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func boolean(v any) bool {
	b, _ := v.(bool)
	return b
}

func strs(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// num accepts the numeric shapes JSON decoders produce.
func num(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
