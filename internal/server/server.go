// Package server exposes the tracked device list as a small JSON API.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/zerolog/hlog"

	"github.com/MiguelRegueiro/NetNeighbor/internal/devicestats"
	"github.com/MiguelRegueiro/NetNeighbor/internal/log"
	"github.com/MiguelRegueiro/NetNeighbor/internal/mon"
)

// Server contains the JSON API routes.
type Server struct {
	Devices *mon.Devices
}

// Routes returns a *http.ServeMux with all the application request handlers.
func (s *Server) Routes() *http.ServeMux {
	c := alice.New()
	c = c.Append(
		hlog.NewHandler(log.Logger),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			l := log.WithIDWithoutCaller(r.Context()).Logger()
			l.Info().
				Str("caller", "http").
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("dur", duration).
				Str("addr", r.RemoteAddr).
				Msg("")
		}),
		MaxBytesReaderMiddleware(1024*1024),
	)

	mux := http.NewServeMux()
	mux.Handle("/v1/devices/", c.Then(s.DevicesV1()))

	return mux
}

// DevicesV1 is an API resource that returns a JSON encoded response with the
// currently tracked devices and their presence state.
func (s *Server) DevicesV1() AppHandler {
	order := func(ss devicestats.Stats, r *http.Request) {
		ss.OrderByIP()
		switch r.URL.Query().Get("order_by") {
		case "hwaddr":
			ss.OrderByHWAddr()
		case "name":
			ss.OrderByName()
		case "iface":
			ss.OrderByIface()
		case "last_seen":
			ss.OrderByLastSeen()
		case "availability":
			ss.OrderByAvailability()
		}
	}

	filter := func(ss devicestats.Stats, r *http.Request) devicestats.Stats {
		q := r.URL.Query()
		IPs := q["ip"]
		HWAddrs := q["hwaddr"]
		ifaces := q["iface"]
		connected := q.Get("connected")

		if len(IPs) == 0 && len(HWAddrs) == 0 && len(ifaces) == 0 && connected == "" {
			return ss
		}
		res := make(devicestats.Stats, 0, len(ss))
	loop:
		for _, s := range ss {
			if connected == "true" && !s.Connected {
				continue loop
			}
			if connected == "false" && s.Connected {
				continue loop
			}
			if len(IPs) == 0 && len(HWAddrs) == 0 && len(ifaces) == 0 {
				res = append(res, s)
				continue loop
			}
			for _, v := range IPs {
				if s.IP == v {
					res = append(res, s)
					continue loop
				}
			}
			for _, v := range HWAddrs {
				if s.HWAddr == v {
					res = append(res, s)
					continue loop
				}
			}
			for _, v := range ifaces {
				if s.Iface == v {
					res = append(res, s)
					continue loop
				}
			}
		}
		return res
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		logger := log.FromRequest(r)
		ss := s.Devices.Stats()
		ss = filter(ss, r)
		order(ss, r)
		data, err := json.Marshal(&ss)
		if err != nil {
			logger.Info().Err(err).Msg("")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return nil
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return nil
	}
}
