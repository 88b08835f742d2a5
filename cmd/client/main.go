package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"jobconnect-client/internal/api"
	"jobconnect-client/internal/config"
	"jobconnect-client/internal/events"
	"jobconnect-client/internal/notify"
	"jobconnect-client/internal/scheduler"
	"jobconnect-client/internal/session"
	"jobconnect-client/internal/store"
	"jobconnect-client/internal/ui"
)

func main() {
	// Data dir: use env if provided (the shell can pass one), else local folder.
	dataDir := os.Getenv("JOBCONNECT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second launch exits instead of fighting
	// over the sqlite file and the port.
	lock := flock.New(filepath.Join(dataDir, "jobconnect.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another instance is already running (lock: %s)", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobconnect.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	hub := events.NewHub()
	creds := session.NewKeyringStore(db)

	client := api.New(api.Options{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		Tokens:     creds,
		RatePerSec: cfg.Backend.RatePerSec,
		RateBurst:  cfg.Backend.RateBurst,
	})

	sessions := session.NewStore(client.Auth, creds, hub)
	client.SetOnUnauthorized(sessions.Invalidate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Rehydrate in the background; handlers answer SUSPEND until it lands.
	go sessions.Init(ctx)

	poller := notify.NewPoller(client.Notifications, sessions, hub,
		time.Duration(cfg.Polling.NotificationsSeconds)*time.Second)
	go poller.Run(ctx)

	maxAge := time.Duration(cfg.Cache.JobsMaxAgeHours) * time.Hour
	go scheduler.Every(ctx, time.Hour, "cache-prune", func(ctx context.Context) error {
		n, err := db.PruneCachedJobs(ctx, maxAge)
		if err == nil && n > 0 {
			log.Printf("[store] pruned %d cached jobs", n)
		}
		return err
	})

	mux := ui.NewMux(ui.Deps{
		Sessions:    sessions,
		API:         client,
		Cache:       db,
		Hub:         hub,
		Poller:      poller,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler:           ui.Chain(mux, ui.Cors, ui.RequestID, ui.Recover, ui.AccessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatalf("shutdown token: %v", err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))

	log.Printf("level=info msg=\"client engine listening\" addr=http://%s api_base=%s", addr, cfg.Backend.BaseURL)
	fmt.Printf("SHUTDOWN_TOKEN=%s\n", token)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"client engine stopped\"")
}
