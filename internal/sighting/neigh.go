package sighting

import (
	"net"
	"strings"
)

// ParseNeigh parses `ip neigh show` output, one entry per line:
//
//	192.168.1.34 dev eth0 lladdr 0e:11:22:33:44:55 STALE
//
// FAILED and INCOMPLETE entries carry no lladdr column and yield sightings
// without a hardware address. Lines whose first field isn't an address are
// skipped.
func ParseNeigh(blob string) Sightings {
	var ss Sightings
	for _, line := range strings.Split(blob, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ip := fields[0]
		if net.ParseIP(ip) == nil {
			continue
		}
		var hw, iface string
		for i, f := range fields {
			switch f {
			case "lladdr":
				if i+1 < len(fields) {
					hw = fields[i+1]
				}
			case "dev":
				if i+1 < len(fields) {
					iface = fields[i+1]
				}
			}
		}
		ss = append(ss, Sighting{
			IP:     ip,
			HWAddr: canonicalHWAddr(hw),
			Iface:  iface,
			Origin: NeighborTable,
		})
	}
	return ss
}
