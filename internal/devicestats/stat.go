package devicestats

import (
	"fmt"
	"time"
)

// Stat is the external view of one tracked device.
type Stat struct {
	IP           string    `json:"ip"`
	HWAddr       string    `json:"hwaddr"`
	Name         string    `json:"name"`
	Iface        string    `json:"iface"`
	Connected    bool      `json:"connected"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
	Availability float64   `json:"availability"`
}

func (s Stat) ConnectedFmt() string {
	if s.Connected {
		return "yes"
	}
	return "no"
}

func (s Stat) AvailabilityFmt() string {
	return fmt.Sprintf("%.0f%%", s.Availability*100)
}

// AgeFmt formats the time since the device was last seen.
func (s Stat) AgeFmt(now time.Time) string {
	d := now.Sub(s.LastSeen)
	if d < 0 {
		d = 0
	}
	return d.Truncate(time.Second).String()
}
