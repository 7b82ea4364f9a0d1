package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"priced/internal/config"
	"priced/internal/httpapi"
	"priced/internal/registry"
	"priced/internal/store"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	configPath := flag.String("config", envOr("PRICED_CONFIG", ""), "Optional config file (.yaml/.json/.toml)")
	addr := flag.String("addr", envOr("PRICED_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	modelsDir := flag.String("models-dir", envOr("PRICED_MODELS_DIR", "saved_models"), "Directory to scan for model artifacts (*.json, *.gob)")
	autoLoad := flag.Bool("auto-load", true, "Load the newest discovered model at startup")
	logLevel := flag.String("log-level", envOr("PRICED_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	flag.Parse()
	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			l := zerolog.New(os.Stderr)
			l.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
	}
	// Explicit flags win over the config file; the config file wins over defaults.
	if cfg.Addr != "" && !setFlags["addr"] {
		*addr = cfg.Addr
	}
	if cfg.ModelsDir != "" && !setFlags["models-dir"] {
		*modelsDir = cfg.ModelsDir
	}
	if cfg.LogLevel != "" && !setFlags["log-level"] {
		*logLevel = cfg.LogLevel
	}
	if cfg.AutoLoad != nil && !setFlags["auto-load"] {
		*autoLoad = *cfg.AutoLoad
	}

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "priced").Logger()
	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

	st := store.New(log)

	watcher, err := registry.NewWatcher(*modelsDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("models_dir", *modelsDir).Msg("scan models dir")
	}
	defer watcher.Close()

	if *autoLoad {
		if models := watcher.Models(); len(models) > 0 {
			latest := models[0]
			if _, err := st.Load(latest.Path, latest.MetadataPath); err != nil {
				log.Warn().Err(err).Str("model", latest.Filename).Msg("auto-load failed")
			} else {
				log.Info().Str("model", latest.Filename).Msg("auto-loaded latest model")
			}
		} else {
			log.Info().Str("models_dir", *modelsDir).Msg("no model artifacts found, waiting for explicit load")
		}
	}

	mux := httpapi.NewMux(st, watcher)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		log.Info().Str("addr", *addr).Str("models_dir", *modelsDir).Msg("priced listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
