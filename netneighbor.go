// Command netneighbor watches the host's ARP cache and IP neighbor table and
// prints a timestamped line whenever a device joins or leaves the local
// network segment.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-pa/fenv"
	"github.com/go-pa/flagutil"

	"github.com/MiguelRegueiro/NetNeighbor/internal/log"
	"github.com/MiguelRegueiro/NetNeighbor/internal/mon"
	"github.com/MiguelRegueiro/NetNeighbor/internal/server"
)

// all command line flags, global state for now
var flags = struct {
	interval          time.Duration
	disconnectTimeout time.Duration
	iface             string
	verbose           bool
	avgSamples        int
	listen            string
	aliases           flagutil.StringSliceFlag
}{}

func main() {
	var logFlags log.Flags

	logFlags.Register(flag.CommandLine)
	flag.DurationVar(&flags.interval, "interval", 2*time.Second, "delay between readings of the arp and neighbor tables")
	flag.DurationVar(&flags.disconnectTimeout, "disconnect.timeout", 10*time.Second, "how long a device may go unseen before it is reported disconnected")
	flag.StringVar(&flags.iface, "iface", "", "only monitor devices on this network interface, empty monitors all interfaces")
	flag.BoolVar(&flags.verbose, "verbose", false, "also report poll cycles that find no devices")
	flag.IntVar(&flags.avgSamples, "avg.samples", 8, "number of poll cycles to average device availability over")
	flag.StringVar(&flags.listen, "listen", "", "listen address for the device list api, empty disables the server")
	flag.Var(&flags.aliases, "aliases", "hardware address aliases comma separated. ex: -aliases=00:00:00:00:00:00=nas.alias,00:00:00:00:00:01=server.alias")

	fenv.CommandLinePrefix("NETNEIGHBOR_")
	fenv.MustParse()
	flag.Parse()

	if err := logFlags.Setup(); err != nil {
		panic(err)
	}

	if flags.interval <= 0 {
		log.Fatal().Dur("interval", flags.interval).Msg("interval must be greater than zero")
	}
	if flags.disconnectTimeout <= 0 {
		log.Fatal().Dur("disconnect.timeout", flags.disconnectTimeout).Msg("disconnect timeout must be greater than zero")
	}
	if flags.avgSamples <= 0 {
		log.Fatal().Int("avg.samples", flags.avgSamples).Msg("avg.samples must be greater than zero")
	}

	for _, v := range flags.aliases {
		ss := strings.SplitN(v, "=", 2)
		if len(ss) != 2 {
			fmt.Println("invalid alias specification:", v)
			os.Exit(1)
		}
		mon.AliasesMap[ss[0]] = ss[1]
	}

	log.Debug().Msg("application starting")

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(c)

		select {
		case <-ctx.Done():
		case <-c:
			cancel()
		}
	}()

	devices := mon.NewDevices(flags.disconnectTimeout, flags.avgSamples)

	if flags.listen != "" {
		srv := &server.Server{Devices: devices}
		hs := &http.Server{
			Addr:           flags.listen,
			Handler:        srv.Routes(),
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		}
		go func() {
			log.Fatal().Err(hs.ListenAndServe()).Msg("")
		}()
	}

	fmt.Println("netneighbor - network connection monitor")
	fmt.Println("monitoring every", flags.interval)
	fmt.Println("disconnect timeout:", flags.disconnectTimeout)
	if flags.iface != "" {
		fmt.Println("interface:", flags.iface)
	} else {
		fmt.Println("monitoring all interfaces")
	}
	fmt.Print("press ctrl+c to stop\n\n")

	m := &mon.Monitor{
		ARP:      mon.ARPSource(),
		Neigh:    mon.NeighSource(),
		Devices:  devices,
		Printer:  &mon.Printer{W: os.Stdout},
		Interval: flags.interval,
		Iface:    flags.iface,
		Verbose:  flags.verbose,
	}
	m.Run(ctx)

	log.Info().Msg("shutting down...")
}
