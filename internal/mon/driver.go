package mon

import (
	"context"
	"time"

	"github.com/MiguelRegueiro/NetNeighbor/internal/log"
	"github.com/MiguelRegueiro/NetNeighbor/internal/sighting"
)

// Monitor drives the poll cycle: acquire raw snapshots from both sources,
// parse, update the registry and hand the resulting events to the printer.
type Monitor struct {
	ARP      Source
	Neigh    Source
	Devices  *Devices
	Printer  *Printer
	Interval time.Duration
	Iface    string // only report devices on this interface when set
	Verbose  bool
}

// Run polls until ctx is cancelled. The first cycle runs immediately. An
// in-flight cycle always completes before Run returns.
func (m *Monitor) Run(ctx context.Context) {
	m.update(ctx, time.Now())
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()
	for {
		select {
		case t := <-ticker.C:
			m.update(ctx, t)
		case <-ctx.Done():
			return
		}
	}
}

// update runs a single poll cycle. A failing source is logged and contributes
// no sightings; the cycle continues with whatever the other source produced.
// The ARP table is parsed before the neighbor table so conflicting attributes
// for a shared key resolve the same way every cycle.
func (m *Monitor) update(ctx context.Context, now time.Time) {
	var ss sighting.Sightings

	raw, err := m.ARP.Acquire(ctx)
	if err != nil {
		log.Info().Err(err).Msg("arp snapshot failed")
	} else {
		ss = append(ss, sighting.ParseArp(raw)...)
	}

	raw, err = m.Neigh.Acquire(ctx)
	if err != nil {
		log.Info().Err(err).Msg("neighbor snapshot failed")
	} else {
		ss = append(ss, sighting.ParseNeigh(raw)...)
	}

	if m.Iface != "" {
		ss = ss.FilterIface(m.Iface)
	}

	events := m.Devices.Update(ss, now)
	m.Printer.Print(events)

	if m.Verbose && m.Devices.Len() == 0 {
		m.Printer.NoDevices(now)
	}
}
