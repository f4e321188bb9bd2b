package mon

import (
	"time"

	"github.com/mxmCherry/movavg"

	"github.com/MiguelRegueiro/NetNeighbor/internal/devicestats"
	"github.com/MiguelRegueiro/NetNeighbor/internal/sighting"
)

// AliasesMap maps hardware addresses to display names. It is populated once
// from the -aliases flag before the monitor starts.
var AliasesMap = map[string]string{}

// Device is one tracked entry in the registry. A device keeps its last known
// attributes after disconnecting so a later reappearance reuses them.
type Device struct {
	Key       string
	IP        string
	HWAddr    string
	Iface     string
	FirstSeen time.Time
	LastSeen  time.Time
	Connected bool

	avail movavg.MA
}

func newDevice(key string, s sighting.Sighting, now time.Time, avgSamples int) *Device {
	return &Device{
		Key:       key,
		IP:        s.IP,
		HWAddr:    s.HWAddr,
		Iface:     s.Iface,
		FirstSeen: now,
		LastSeen:  now,
		avail:     movavg.NewSMA(avgSamples),
	}
}

// updateSighting records another observation. The latest sighting wins, but
// columns the source didn't report keep their last known value.
func (d *Device) updateSighting(s sighting.Sighting, now time.Time) {
	d.IP = s.IP
	if s.HWAddr != "" {
		d.HWAddr = s.HWAddr
	}
	if s.Iface != "" {
		d.Iface = s.Iface
	}
	d.LastSeen = now
}

func (d *Device) event(kind Kind, now time.Time) Event {
	return Event{
		Kind:   kind,
		IP:     d.IP,
		HWAddr: d.HWAddr,
		Iface:  d.Iface,
		Time:   now,
	}
}

func (d *Device) Stat() devicestats.Stat {
	return devicestats.Stat{
		IP:           d.IP,
		HWAddr:       d.HWAddr,
		Name:         AliasesMap[d.HWAddr],
		Iface:        d.Iface,
		Connected:    d.Connected,
		FirstSeen:    d.FirstSeen,
		LastSeen:     d.LastSeen,
		Availability: d.avail.Avg(),
	}
}
