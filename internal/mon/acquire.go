package mon

import (
	"context"
	"fmt"
	"os/exec"
)

// Source acquires one raw snapshot of a neighbor table. An empty string is a
// valid result for a source with no entries.
type Source interface {
	Acquire(ctx context.Context) (string, error)
}

// CommandSource acquires snapshots by running a system command and capturing
// its stdout.
type CommandSource struct {
	Name string
	Args []string
}

func (c CommandSource) Acquire(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, c.Name, c.Args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.Name, err)
	}
	return string(out), nil
}

// ARPSource reads the ARP cache.
func ARPSource() Source {
	return CommandSource{Name: "arp", Args: []string{"-a", "-n"}}
}

// NeighSource reads the IP neighbor table.
func NeighSource() Source {
	return CommandSource{Name: "ip", Args: []string{"neigh", "show"}}
}
