package sighting

import "strings"

// ParseArp parses `arp -a -n` output, one entry per line:
//
//	? (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on wlan0
//
// Unresolved entries report `<incomplete>` in place of a hardware address and
// yield sightings without one. Lines that don't parse are skipped, as are
// loopback, multicast and broadcast addresses.
func ParseArp(blob string) Sightings {
	var ss Sightings
	for _, line := range strings.Split(blob, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		ip := strings.TrimSuffix(strings.TrimPrefix(fields[1], "("), ")")
		var hw, iface string
		for i, f := range fields {
			switch f {
			case "at":
				if i+1 < len(fields) {
					hw = fields[i+1]
				}
			case "on":
				if i+1 < len(fields) {
					iface = fields[i+1]
				}
			}
		}
		if ip == "" || iface == "" {
			continue
		}
		if skipIP(ip) {
			continue
		}
		ss = append(ss, Sighting{
			IP:     ip,
			HWAddr: canonicalHWAddr(hw),
			Iface:  iface,
			Origin: ARPTable,
		})
	}
	return ss
}

func skipIP(ip string) bool {
	return strings.HasPrefix(ip, "127.") ||
		strings.HasPrefix(ip, "224.") ||
		strings.HasPrefix(ip, "255.") ||
		ip == "::1"
}
