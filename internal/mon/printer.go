package mon

import (
	"fmt"
	"io"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// Printer renders presence events as timestamped lines. Event lines are the
// program's primary output and go to W verbatim, not through the logger.
type Printer struct {
	W io.Writer
}

func (p *Printer) Print(events []Event) {
	for _, e := range events {
		p.print(e)
	}
}

func (p *Printer) print(e Event) {
	mac := e.HWAddr
	if mac == "" {
		mac = "unknown"
	}
	iface := e.Iface
	if iface == "" {
		iface = "unknown"
	}
	if name := AliasesMap[e.HWAddr]; name != "" {
		fmt.Fprintf(p.W, "[%s] [%s] IP: %s | MAC: %s | Name: %s | Interface: %s\n",
			e.Time.Format(timeFormat), e.Kind, e.IP, mac, name, iface)
		return
	}
	fmt.Fprintf(p.W, "[%s] [%s] IP: %s | MAC: %s | Interface: %s\n",
		e.Time.Format(timeFormat), e.Kind, e.IP, mac, iface)
}

// NoDevices reports an empty registry in verbose mode.
func (p *Printer) NoDevices(now time.Time) {
	fmt.Fprintf(p.W, "[%s] no devices detected\n", now.Format(timeFormat))
}
