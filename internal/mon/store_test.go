package mon

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"

	"github.com/MiguelRegueiro/NetNeighbor/internal/sighting"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func arpSighting(ip, hw, iface string) sighting.Sighting {
	return sighting.Sighting{IP: ip, HWAddr: hw, Iface: iface, Origin: sighting.ARPTable}
}

func neighSighting(ip, hw, iface string) sighting.Sighting {
	return sighting.Sighting{IP: ip, HWAddr: hw, Iface: iface, Origin: sighting.NeighborTable}
}

func TestUpdateConnect(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	events := d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)

	want := []Event{
		{Kind: Connected, IP: "192.168.1.5", HWAddr: "aa:bb:cc:dd:ee:ff", Iface: "wlan0", Time: t0},
	}
	is.Equal("", cmp.Diff(want, events))
	is.Equal(1, d.Len())
	is.True(d.Stats()[0].Connected)
}

func TestUpdateIdempotent(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	ss := sighting.Sightings{arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0")}
	events := d.Update(ss, t0)
	is.Equal(1, len(events))

	for i := 1; i <= 3; i++ {
		events = d.Update(ss, t0.Add(time.Duration(i)*2*time.Second))
		is.Equal(0, len(events))
	}
	is.Equal(1, d.Len())
}

func TestUpdateDisconnectTimeout(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	ss := sighting.Sightings{arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0")}

	events := d.Update(ss, t0)
	is.Equal(1, len(events))
	is.Equal(Connected, events[0].Kind)

	// absent but still within the timeout
	events = d.Update(nil, t0.Add(5*time.Second))
	is.Equal(0, len(events))

	// timeout crossed
	events = d.Update(nil, t0.Add(11*time.Second))
	want := []Event{
		{Kind: Disconnected, IP: "192.168.1.5", HWAddr: "aa:bb:cc:dd:ee:ff", Iface: "wlan0", Time: t0.Add(11 * time.Second)},
	}
	is.Equal("", cmp.Diff(want, events))

	// no duplicate disconnect, device is retained
	events = d.Update(nil, t0.Add(13*time.Second))
	is.Equal(0, len(events))
	is.Equal(1, d.Len())

	// reconnection announces again
	events = d.Update(ss, t0.Add(14*time.Second))
	is.Equal(1, len(events))
	is.Equal(Connected, events[0].Kind)
}

func TestUpdateMergesSourcesByHWAddr(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	events := d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "br0"),
		neighSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)

	is.Equal(1, d.Len())
	is.Equal(1, len(events))
	// the neighbor table is parsed last, so its interface wins
	is.Equal("wlan0", events[0].Iface)
}

func TestUpdateIPFallbackKey(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	// incomplete arp entry and a FAILED neigh entry for the same IP
	events := d.Update(sighting.Sightings{
		arpSighting("192.168.1.9", "", "wlan0"),
		neighSighting("192.168.1.9", "", "wlan0"),
	}, t0)

	is.Equal(1, d.Len())
	is.Equal(1, len(events))
	is.Equal("192.168.1.9", events[0].IP)
	is.Equal("", events[0].HWAddr)
}

func TestUpdateInterfaceMigration(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	events := d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)
	is.Equal(1, len(events))

	events = d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "eth0"),
	}, t0.Add(2*time.Second))
	is.Equal(0, len(events)) // no spurious pair

	stats := d.Stats()
	is.Equal(1, len(stats))
	is.Equal("eth0", stats[0].Iface)
}

func TestUpdateKeepsLastKnownColumns(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)
	// later sighting without an interface column
	d.Update(sighting.Sightings{
		neighSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", ""),
	}, t0.Add(2*time.Second))

	stats := d.Stats()
	is.Equal(1, len(stats))
	is.Equal("wlan0", stats[0].Iface)
	is.Equal(t0.Add(2*time.Second), stats[0].LastSeen)
}

func TestUpdateEventOrder(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)

	// one device times out in the same cycle another appears
	events := d.Update(sighting.Sightings{
		arpSighting("192.168.1.6", "11:22:33:44:55:66", "wlan0"),
	}, t0.Add(11*time.Second))

	is.Equal(2, len(events))
	is.Equal(Connected, events[0].Kind)
	is.Equal("192.168.1.6", events[0].IP)
	is.Equal(Disconnected, events[1].Kind)
	is.Equal("192.168.1.5", events[1].IP)
}

func TestUpdateEmptyInput(t *testing.T) {
	is := is.New(t)
	d := NewDevices(10*time.Second, 8)

	events := d.Update(nil, t0)
	is.Equal(0, len(events))
	is.Equal(0, d.Len())

	events = d.Update(sighting.Sightings{}, t0.Add(time.Second))
	is.Equal(0, len(events))
}

func TestUpdateAvailability(t *testing.T) {
	is := is.New(t)
	d := NewDevices(time.Minute, 2)

	ss := sighting.Sightings{arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0")}
	d.Update(ss, t0)
	d.Update(nil, t0.Add(2*time.Second))

	stats := d.Stats()
	is.Equal(1, len(stats))
	is.Equal(0.5, stats[0].Availability) // seen one of the last two cycles
}

func TestStatsName(t *testing.T) {
	is := is.New(t)
	AliasesMap["aa:bb:cc:dd:ee:ff"] = "nas"
	defer delete(AliasesMap, "aa:bb:cc:dd:ee:ff")

	d := NewDevices(10*time.Second, 8)
	d.Update(sighting.Sightings{
		arpSighting("192.168.1.5", "aa:bb:cc:dd:ee:ff", "wlan0"),
	}, t0)

	stats := d.Stats()
	is.Equal("nas", stats[0].Name)
}
