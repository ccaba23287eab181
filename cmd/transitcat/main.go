// Command transitcat answers transit catalogue queries.
//
//	transitcat process [-config file] [-indent]   JSON batch on stdin, answers on stdout
//	transitcat serve -base file.json [-config file]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/request"
	"github.com/katalvlaran/transitcat/router"
	"github.com/katalvlaran/transitcat/server"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "process":
		err = runProcess(args)
	case "serve":
		err = runServe(args)
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "transitcat: unknown command %q\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("transitcat failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  transitcat process [-config file] [-indent] < requests.json")
	fmt.Fprintln(w, "  transitcat serve -base file.json [-config file]")
}

// loadConfig resolves configuration and installs the configured logger as
// the slog default. Logs go to stderr so stdout stays clean for answers.
func loadConfig(path string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	indent := fs.Bool("indent", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *indent {
		cfg.Output.Indent = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return request.Run(ctx, os.Stdin, os.Stdout, cfg, logger)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	basePath := fs.String("base", "", "JSON document whose base_requests seed the catalogue")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *basePath == "" {
		return errors.New("-base is required")
	}

	cfg, logger, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(*basePath)
	if err != nil {
		return err
	}
	doc, err := request.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	cat, err := doc.Catalogue(cfg.CatalogueOptions()...)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	settings := cfg.Routing.Settings
	if doc.RoutingSettings != nil {
		settings = *doc.RoutingSettings
	}
	routerOpts := []router.Option{router.WithLogger(logger)}
	if cfg.Routing.Parallelism > 0 {
		routerOpts = append(routerOpts, router.WithParallelism(cfg.Routing.Parallelism))
	}
	rt, err := router.New(cat, settings, routerOpts...)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	st := cat.Stats()
	logger.Info("starting transitcat server",
		"log_level", cfg.LogLevel().String(),
		"http_addr", cfg.HTTP.Addr,
		"stops", st.StopCount,
		"buses", st.BusCount,
	)

	var serverOpts []server.Option
	if doc.RenderSettings != nil {
		rd, err := render.New(*doc.RenderSettings)
		if err != nil {
			return fmt.Errorf("build renderer: %w", err)
		}
		serverOpts = append(serverOpts, server.WithRenderer(rd))
	}

	srv := server.NewHTTPServer(server.New(cat, rt, cfg, logger, serverOpts...), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			serveErr <- err
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}
