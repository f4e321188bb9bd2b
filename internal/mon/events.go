package mon

import (
	"fmt"
	"time"
)

// Kind classifies a presence event.
type Kind int

const (
	Connected Kind = iota
	Disconnected
)

func (k Kind) String() string {
	switch k {
	case Connected:
		return "CONNECTED"
	case Disconnected:
		return "DISCONNECTED"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event records a device joining or leaving the network segment.
type Event struct {
	Kind   Kind
	IP     string
	HWAddr string
	Iface  string
	Time   time.Time
}
