// Package sighting parses raw neighbor table snapshots into normalized
// device sightings.
package sighting

import "net"

// Origin identifies the system table a sighting was read from.
type Origin int

const (
	ARPTable Origin = iota
	NeighborTable
)

func (o Origin) String() string {
	switch o {
	case ARPTable:
		return "arp"
	case NeighborTable:
		return "neigh"
	}
	return "unknown"
}

// Sighting is a single observation of a device in one snapshot. HWAddr and
// Iface may be empty when the source did not report them.
type Sighting struct {
	IP     string
	HWAddr string
	Iface  string
	Origin Origin
}

type Sightings []Sighting

// FilterIface keeps sightings seen on the named interface. Sightings without
// interface information are kept as well.
func (ss Sightings) FilterIface(name string) Sightings {
	filtered := make(Sightings, 0, len(ss))
	for _, s := range ss {
		if s.Iface == "" || s.Iface == name {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// canonicalHWAddr normalizes a hardware address to the lowercase colon
// separated form, or "" if it isn't one.
func canonicalHWAddr(s string) string {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return ""
	}
	return hw.String()
}
