package request

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// Options tunes Process.
type Options struct {
	// Settings apply when the document carries no routing_settings.
	Settings router.Settings
	// Parallelism bounds the router precomputation; 0 selects GOMAXPROCS.
	Parallelism int
	Logger      *slog.Logger
}

// Process answers doc.StatRequests against cat in order. The router is built
// only when at least one Route request is present, and the map is drawn at
// most once however many Map requests ask for it.
func Process(ctx context.Context, doc *Document, cat *catalogue.Catalogue, opts Options) ([]Response, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &batch{cat: cat, logger: logger}
	if doc.hasRequests(TypeRoute) {
		settings := opts.Settings
		if doc.RoutingSettings != nil {
			settings = *doc.RoutingSettings
		}
		routerOpts := []router.Option{router.WithLogger(logger)}
		if opts.Parallelism > 0 {
			routerOpts = append(routerOpts, router.WithParallelism(opts.Parallelism))
		}
		var err error
		if b.rt, err = router.New(cat, settings, routerOpts...); err != nil {
			return nil, fmt.Errorf("build router: %w", err)
		}
	}
	if doc.RenderSettings != nil && doc.hasRequests(TypeMap) {
		var err error
		if b.renderer, err = render.New(*doc.RenderSettings); err != nil {
			return nil, fmt.Errorf("build renderer: %w", err)
		}
	}

	out := make([]Response, 0, len(doc.StatRequests))
	for _, q := range doc.StatRequests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, b.answer(q))
	}

	return out, nil
}

// batch holds what the stat requests of one document are answered from.
type batch struct {
	cat      *catalogue.Catalogue
	rt       *router.Router
	renderer *render.Renderer
	logger   *slog.Logger

	svg      string
	rendered bool
}

func (b *batch) answer(q StatRequest) Response {
	switch q.Type {
	case TypeBus:
		if data, ok := b.cat.BusStatistics(q.Name); ok {
			return NewBusResponse(q.ID, data)
		}
	case TypeStop:
		if buses, ok := b.cat.BusesThroughStop(q.Name); ok {
			return StopResponse{ID: q.ID, Buses: buses}
		}
	case TypeRoute:
		if it, ok := b.rt.ComputeRoute(q.From, q.To); ok {
			return NewRouteResponse(q.ID, it)
		}
	case TypeMap:
		if b.renderer == nil {
			return ErrorResponse{ID: q.ID, ErrorMessage: MsgNoRenderSettings}
		}
		return MapResponse{ID: q.ID, Map: b.drawMap()}
	}

	return ErrorResponse{ID: q.ID, ErrorMessage: MsgNotFound}
}

func (b *batch) drawMap() string {
	if !b.rendered {
		start := time.Now()
		doc := b.renderer.Render(b.cat)
		b.svg, b.rendered = doc.String(), true
		b.logger.Debug("map rendered",
			"objects", doc.Len(),
			"bytes", len(b.svg),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return b.svg
}

// Run is the whole batch pipeline: decode in, build the catalogue, answer the
// stat requests and encode the answers to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()

	doc, err := Decode(in)
	if err != nil {
		return err
	}
	cat, err := doc.Catalogue(cfg.CatalogueOptions()...)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	st := cat.Stats()
	logger.Debug("catalogue loaded",
		"stops", st.StopCount,
		"buses", st.BusCount,
		"distances", st.DistanceCount,
	)

	responses, err := Process(ctx, doc, cat, Options{
		Settings:    cfg.Routing.Settings,
		Parallelism: cfg.Routing.Parallelism,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	if err := Encode(out, responses, cfg.Output.Indent); err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	logger.Info("batch processed",
		"stat_requests", len(responses),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
