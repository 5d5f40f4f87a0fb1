package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"applydesk-engine/internal/config"
	"applydesk-engine/internal/events"
	"applydesk-engine/internal/httpapi"
	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/restclient"
	"applydesk-engine/internal/secrets"
	"applydesk-engine/internal/session"
	"applydesk-engine/internal/store"
	"applydesk-engine/internal/view"
)

func main() {
	_ = godotenv.Load()

	// Engine data dir: use env if provided (the shell can pass one), else local folder.
	dataDir := os.Getenv("APPLYDESK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// The local store assumes a single writer; refuse to start twice.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatal("another engine instance is already running")
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg)
		normalized, vr := config.NormalizeAndValidate(cfg)
		for _, msg := range vr.Warnings {
			log.Printf("[config] warn: %s", msg)
		}
		if !vr.OK() {
			return cfg, errors.New("config validation failed:\n- " + strings.Join(vr.Errors, "\n- "))
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)
	log.Printf("[config] api=%s timeout=%s authorized_email=%s",
		cfg.API.BaseURL, cfg.Timeout(), mask(cfg.Auth.AuthorizedEmail))

	dbPath := filepath.Join(dataDir, "applydesk.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	tokens := secrets.TokenStore{}
	rc := restclient.New(cfg.API.BaseURL, cfg.Timeout(), cfg.API.RequestsPerSecond, tokens)
	svc := remote.NewService(rc, db)

	sess := session.New(svc, hub)
	sess.Init()
	if c := sess.Candidate(); c != nil {
		log.Printf("[session] restored candidate email=%s", mask(c.Email))
	}

	pf := prefs.New(db, hub, prefs.Theme(cfg.UI.DefaultTheme), prefs.Language(cfg.UI.DefaultLanguage))
	pf.Init(context.Background())

	views := view.NewState()

	mux := httpapi.NewMux(httpapi.Deps{
		Session:     sess,
		Service:     svc,
		Views:       views,
		Prefs:       pf,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.AccessLog,
			httpapi.Recover,
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownToken, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&shutdownToken, srv))
	log.Printf("[engine] shutdown token: %s", shutdownToken)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// signal.Notify requires the channel to be buffered
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case <-ctx.Done():
			return nil
		case s := <-sig:
			log.Printf("[engine] signal %s; shutting down", s)
			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shCtx)
		}
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
