package mon

import (
	"sort"
	"sync"
	"time"

	"github.com/MiguelRegueiro/NetNeighbor/internal/devicestats"
	"github.com/MiguelRegueiro/NetNeighbor/internal/sighting"
)

// Devices is the registry of tracked devices, keyed by hardware address when
// one is known and by IP address otherwise. All mutation happens through
// Update, which the monitor calls once per poll cycle; the mutex only exists
// so the stats API may read while the monitor owns the updates.
type Devices struct {
	mu sync.Mutex
	ds map[string]*Device

	disconnectTimeout time.Duration
	avgSamples        int
}

func NewDevices(disconnectTimeout time.Duration, avgSamples int) *Devices {
	return &Devices{
		ds:                make(map[string]*Device),
		disconnectTimeout: disconnectTimeout,
		avgSamples:        avgSamples,
	}
}

// Update merges one poll cycle of sightings into the registry and returns the
// presence events this cycle produced, all Connected events first.
//
// Sightings are processed in slice order, so the caller's source order
// decides which sighting wins conflicting attributes for a shared key. A
// connected device absent from the cycle is only reported disconnected once
// the disconnect timeout has elapsed since it was last seen; it then stays in
// the registry, unannounced, until it is sighted again.
func (d *Devices) Update(ss sighting.Sightings, now time.Time) []Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	touched := make(map[string]bool, len(ss))
	var order []string // first-touch order, keeps event output stable
	for _, s := range ss {
		key := s.HWAddr
		if key == "" {
			key = s.IP
		}
		if key == "" {
			continue
		}
		dev, ok := d.ds[key]
		if ok {
			dev.updateSighting(s, now)
		} else {
			dev = newDevice(key, s, now, d.avgSamples)
			d.ds[key] = dev
		}
		if !touched[key] {
			touched[key] = true
			order = append(order, key)
		}
	}

	var events []Event
	for _, key := range order {
		dev := d.ds[key]
		if !dev.Connected {
			dev.Connected = true
			events = append(events, dev.event(Connected, now))
		}
	}

	keys := make([]string, 0, len(d.ds))
	for k := range d.ds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dev := d.ds[k]
		if touched[k] {
			dev.avail.Add(1)
			continue
		}
		dev.avail.Add(0)
		if dev.Connected && now.Sub(dev.LastSeen) >= d.disconnectTimeout {
			dev.Connected = false
			events = append(events, dev.event(Disconnected, now))
		}
	}

	return events
}

// Stats returns a snapshot of all tracked devices.
func (d *Devices) Stats() devicestats.Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	ss := make(devicestats.Stats, 0, len(d.ds))
	for _, dev := range d.ds {
		ss = append(ss, dev.Stat())
	}
	return ss
}

// Len returns the number of tracked devices, connected or not.
func (d *Devices) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.ds)
}
