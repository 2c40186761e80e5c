package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	apifristen "github.com/hochfrequenz/fristenkalender/api/fristen"
	"github.com/hochfrequenz/fristenkalender/config"
	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/holiday"
	coremetrics "github.com/hochfrequenz/fristenkalender/core/metrics"
	"github.com/hochfrequenz/fristenkalender/core/notify"
	"github.com/hochfrequenz/fristenkalender/infra/logger"
	"github.com/hochfrequenz/fristenkalender/infra/metrics"
	"github.com/hochfrequenz/fristenkalender/pkg/export"
)

// Service wires calendar, generator, exporters and metrics from the configuration.
type Service struct {
	Calendar  *holiday.Calendar
	Generator *fristen.Generator
	ICS       *export.ICSExporter
	Sink      coremetrics.Sink

	cfg    *config.Config
	log    logger.Logger
	closer []func()
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	cal, err := newCalendar(cfg.Calendar)
	if err != nil {
		return nil, fmt.Errorf("holiday calendar: %w", err)
	}

	svc := &Service{Calendar: cal, cfg: cfg, log: logg}
	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			svc.closer = append(svc.closer, is.Close)
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}
	svc.Sink = sink

	svc.Generator = fristen.NewGenerator(cal,
		fristen.WithLogger(logger.New("generator")),
		fristen.WithMetrics(sink),
		fristen.WithParallel(cfg.Generator.Parallel),
	)
	svc.ICS = export.NewICSExporter(cfg.Export.ProductID)
	return svc, nil
}

func newCalendar(cfg config.CalendarConfig) (*holiday.Calendar, error) {
	opt := holiday.WithYearRange(cfg.MinYear, cfg.MaxYear)
	if cfg.HolidaysFile == "" {
		return holiday.NewBDEW(opt), nil
	}
	rs, err := holiday.LoadRuleset(cfg.HolidaysFile)
	if err != nil {
		return nil, err
	}
	return holiday.New(rs, opt)
}

// Handler returns the HTTP API.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	h := &apifristen.Handler{Gen: s.Generator, Cal: s.Calendar, ICS: s.ICS, Attendee: s.cfg.Export.Attendee}
	h.Register(mux)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Serve runs the HTTP API on l until ctx is canceled. A nil listener binds
// the configured server address.
func (s *Service) Serve(ctx context.Context, l net.Listener) error {
	if l == nil {
		var err error
		if l, err = net.Listen("tcp", s.cfg.Server.Address); err != nil {
			return err
		}
	}
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("serving Fristenkalender API on %s", l.Addr())
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Notifier builds a reminder notifier publishing through pub.
func (s *Service) Notifier(pub notify.Publisher) (*notify.Notifier, error) {
	types, err := s.cfg.Notify.FristenTypes()
	if err != nil {
		return nil, err
	}
	return notify.New(s.Generator, pub,
		notify.WithHorizon(s.cfg.Notify.HorizonDays),
		notify.WithTypes(types...),
		notify.WithLogger(logger.New("notify")),
	), nil
}

// Close releases resources held by the service.
func (s *Service) Close() {
	for _, c := range s.closer {
		c()
	}
}
