package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scipunch/newslist/config"
	"github.com/scipunch/newslist/fetcher"
	"github.com/scipunch/newslist/page"
	"github.com/scipunch/newslist/render"
	"github.com/scipunch/newslist/server"
)

func main() {
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfgPath, inPath, outPath string
	var serve bool
	flag.StringVar(&cfgPath, "config", config.DefaultPath(), "path to a TOML config")
	flag.StringVar(&inPath, "in", "", "HTML page to render instead of the built-in home page")
	flag.StringVar(&outPath, "out", "index.html", "where to write the rendered page")
	flag.BoolVar(&serve, "serve", false, "serve the home page over HTTP")
	flag.Parse()

	// Read config and create if default is missing
	conf, err := config.Read(cfgPath)
	if errors.Is(err, os.ErrNotExist) && cfgPath == config.DefaultPath() {
		if err := config.Write(cfgPath, conf); err != nil {
			log.Fatalf("failed to write default config with %s", err)
		}
	} else if err != nil {
		log.Fatalf("failed to read config with %s", err)
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	loader, err := fetcher.GetLoader(conf)
	if err != nil {
		log.Fatalf("failed to initialize feed loader with %s", err)
	}
	renderer := render.New(render.WithContainerID(conf.ContainerID), render.WithFeedAttr(conf.FeedAttr))

	source := func() (*page.Page, error) {
		if inPath == "" {
			return page.Home(conf)
		}
		f, err := os.Open(inPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return page.Parse(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serve {
		if err := runServer(ctx, conf.Listen, server.NewHandler(slog.Default(), source, renderer, loader)); err != nil {
			log.Fatalf("server failed with %s", err)
		}
		return
	}

	p, err := source()
	if err != nil {
		log.Fatalf("failed to load page with %s", err)
	}

	select {
	case <-renderer.Init(ctx, p, loader):
	case <-ctx.Done():
		slog.Info("interrupted by user, exiting gracefully")
		return
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal("could not create output HTML file", err)
	}
	defer out.Close()
	if err := p.Render(out); err != nil {
		log.Fatal("could not write rendered page", err)
	}
	slog.Info("HTML file generated", "path", outPath)
}

func runServer(ctx context.Context, addr string, h *server.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: server.NewServer(slog.Default(), h),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
