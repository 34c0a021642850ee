package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/openmuseum/collections-import/internal/config"
	"github.com/openmuseum/collections-import/internal/emu"
	"github.com/openmuseum/collections-import/internal/entities"
	"github.com/openmuseum/collections-import/internal/factories"
	http_controllers "github.com/openmuseum/collections-import/internal/http"
	"github.com/openmuseum/collections-import/internal/imports"
	"github.com/openmuseum/collections-import/internal/media"
	"github.com/openmuseum/collections-import/internal/store"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App bundles the wired components so the serve and one-shot import commands
// share the same construction path.
type App struct {
	Store       *store.Store
	Checkpoints *store.Checkpoints
	Runner      *imports.Runner
	MediaUpdate imports.Job
}

// NewApp wires the source client, the store and the import jobs from config.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.Emu.BaseURL == "" {
		return nil, fmt.Errorf("EMU_BASE_URL is not set")
	}

	if cfg.Media.Dir != "" {
		if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create media directory %s: %w", cfg.Media.Dir, err)
		}
	}
	media.SetBaseURL(cfg.Media.BaseURL)

	if cfg.Import.Timezone != "" {
		if err := factories.SetTimezone(cfg.Import.Timezone); err != nil {
			return nil, err
		}
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	client := emu.NewClient(cfg.Emu.BaseURL, cfg.Emu.Timeout)
	checkpoints := store.NewCheckpoints(st.DB())

	helper := media.NewHelper(client, cfg.Media.Dir)
	mediaFactory := factories.NewMediaFactory(helper)

	deps := imports.Deps{
		Source:         client,
		Store:          st,
		Checkpoints:    checkpoints,
		DataBatchSize:  cfg.Import.DataBatchSize,
		CacheBatchSize: cfg.Import.CacheBatchSize,
		OfflineCutoff:  cfg.Import.OfflineCutoff,
	}

	mediaUpdate := imports.NewMediaUpdateImport(mediaFactory, deps)

	runner := imports.NewRunner(checkpoints,
		imports.NewEmuImport[entities.Specimen]("specimens", 1, factories.NewSpecimenFactory(mediaFactory), deps),
		imports.NewEmuImport[entities.Item]("items", 2, factories.NewItemFactory(mediaFactory), deps),
		imports.NewEmuImport[entities.Species]("species", 3, factories.NewSpeciesFactory(mediaFactory), deps),
		imports.NewEmuImport[entities.Article]("articles", 4, factories.NewArticleFactory(mediaFactory), deps),
		mediaUpdate,
	)

	return &App{
		Store:       st,
		Checkpoints: checkpoints,
		Runner:      runner,
		MediaUpdate: mediaUpdate,
	}, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run starts the HTTP surface and the scheduled import runs, then blocks
// until a termination signal arrives.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting collections import v%s", version)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Import runs are driven by cron; a run past the source system's nightly
	// offline window stops at a batch boundary and the next run resumes it.
	runCtx, cancelRuns := context.WithCancel(context.Background())

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Import.Schedule, func() {
		if err := app.Runner.Run(runCtx); err != nil {
			log.Printf("ERROR: scheduled import run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid import schedule %q: %v", cfg.Import.Schedule, err)
	}
	scheduler.Start()
	log.Printf("Import schedule: %s", cfg.Import.Schedule)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:       app.Store,
		Checkpoints: app.Checkpoints,
		MediaDir:    cfg.Media.Dir,
		Version:     version,
	})

	onShutdown := func(ctx context.Context) {
		cancelRuns()
		stopCtx := scheduler.Stop()
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
			log.Printf("Shutdown timeout elapsed before the running import stopped")
		}
	}

	Serve(router, cfg, onShutdown)
}

// RunImport executes every import job once and exits. Interrupt signals
// cancel the run at the next batch boundary.
func RunImport(cfg *config.Config, version string) {
	log.Printf("Starting one-shot import v%s", version)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	if err := app.Runner.Run(signalContext()); err != nil {
		log.Fatalf("Import run failed: %v", err)
	}
}

// RunMediaImport executes only the media update job once and exits.
func RunMediaImport(cfg *config.Config, version string) {
	log.Printf("Starting one-shot media update v%s", version)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	if err := app.MediaUpdate.Run(signalContext()); err != nil {
		log.Fatalf("Media update failed: %v", err)
	}
}

func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Printf("Received termination signal, stopping at the next batch boundary")
		cancel()
	}()
	return ctx
}
