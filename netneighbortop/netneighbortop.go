// Command netneighbortop shows a live table of the devices tracked by a
// running netneighbor instance.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/go-pa/fenv"

	"github.com/MiguelRegueiro/NetNeighbor/internal/devicestats"
)

func readDevices(ctx context.Context, baseurl string) (devicestats.Stats, error) {
	url := fmt.Sprintf("%s/v1/devices/", baseurl)
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	var stats devicestats.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func main() {
	var baseURL string
	var delay time.Duration

	flag.StringVar(&baseURL, "url", "http://127.0.0.1:8844", "base url for netneighbor")
	flag.DurationVar(&delay, "delay", time.Second, "delay between refreshes")
	fenv.CommandLinePrefix("NETNEIGHBORTOP_")
	fenv.MustParse()
	flag.Parse()

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	table := widgets.NewTable()
	table.TextStyle = ui.StyleClear
	w, h := ui.TerminalDimensions()
	table.SetRect(0, 0, w, h)
	table.RowSeparator = false
	table.ColumnWidths = []int{5, 5, 5, 5, 5, 5, 5}

	statsCh := make(chan devicestats.Stats)

	go func(ctx context.Context) {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-ticker.C:
				stats, err := readDevices(ctx, baseURL)
				if err != nil {
					log.Println(err)
					continue loop
				}
				statsCh <- stats
			case <-ctx.Done():
				return
			}
		}
	}(ctx)

	uiEvents := ui.PollEvents()

loop:
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				break loop

			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				table.SetRect(0, 0, payload.Width, payload.Height)
				ui.Clear()
				ui.Render(table)
			}
		case stats := <-statsCh:
			stats.OrderByIP()
			now := time.Now()
			rows := [][]string{
				{"ip", "hwaddr", "name", "iface", "up", "avail", "last seen"},
			}
			for _, v := range stats {
				row := []string{v.IP, v.HWAddr, v.Name, v.Iface, v.ConnectedFmt(), v.AvailabilityFmt(), v.AgeFmt(now)}
				rows = append(rows, row)
				for idx, val := range row {
					l := len(val) + 2
					if table.ColumnWidths[idx] < l {
						table.ColumnWidths[idx] = l
					}
				}
			}
			table.Rows = rows
			ui.Render(table)
		case <-ctx.Done():
			break loop
		}
	}
	cancel()
}
