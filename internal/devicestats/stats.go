package devicestats

import (
	"bytes"
	"net"
	"sort"
)

type Stats []Stat

func (s Stats) OrderByIP() {
	sort.SliceStable(s, func(i, j int) bool {
		return bytes.Compare(net.ParseIP(s[i].IP), net.ParseIP(s[j].IP)) < 0
	})
}

func (s Stats) OrderByHWAddr() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].HWAddr < s[j].HWAddr })
}

func (s Stats) OrderByIface() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Iface < s[j].Iface })
}

func (s Stats) OrderByName() {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Name == "" && s[j].Name != "" {
			return false
		}
		if s[i].Name != "" && s[j].Name == "" {
			return true
		}
		return s[i].Name < s[j].Name
	})
}

func (s Stats) OrderByLastSeen() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].LastSeen.After(s[j].LastSeen) })
}

func (s Stats) OrderByAvailability() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Availability > s[j].Availability })
}
