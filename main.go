package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	auth "Catalyst/internal/auth"
	batch "Catalyst/internal/calc/batch"
	loading "Catalyst/internal/calc/loading"
	report "Catalyst/internal/calc/report"
	config "Catalyst/internal/config"
	elements "Catalyst/internal/elements"
	history "Catalyst/internal/history"
	metrics "Catalyst/internal/metrics"
	repo "Catalyst/internal/repo"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// openHistory opens the configured history store. The file driver keeps the
// log as a single JSON file; sqlite keeps it as one row.
func openHistory(ctx context.Context, cfg config.Config) (*history.Log, repo.Repository, error) {
	var (
		store repo.Repository
		key   string
		err   error
	)
	switch cfg.HistoryDriver {
	case repo.DriverSQLite:
		path := cfg.HistoryPath
		if path == config.DefaultHistoryPath {
			path = ""
		}
		store, err = repo.Open(ctx, repo.DriverSQLite, path)
		key = "history"
	default:
		store, err = repo.Open(ctx, repo.DriverFile, filepath.Dir(cfg.HistoryPath))
		key = filepath.Base(cfg.HistoryPath)
	}
	if err != nil {
		return nil, nil, err
	}
	l := history.New(store, history.Options{
		Key:      key,
		Capacity: cfg.HistoryCapacity,
		Locale:   history.Locale(cfg.Locale),
	})
	return l, store, nil
}

func HandleList(mux *mux.Router, cfg config.Config, db *elements.Database, hist *history.Log) {
	authEnv := &auth.Authenv{
		JWTkey:       []byte(cfg.TokenKey),
		PasswordHash: cfg.OperatorPasswordHash,
		SecureCookie: cfg.SecureCookie,
	}
	if !authEnv.Enabled() {
		log.Println("No operator password configured, API is open to local clients")
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

	elementsH := &elements.Handler{DB: db}
	loadingH := &loading.Handler{History: hist}
	batchH := &batch.Handler{}
	historyH := &history.Handler{Log: hist}
	reportH := &report.Handler{History: hist}

	api.HandleFunc("/elements", elementsH.List).Methods("GET")
	api.HandleFunc("/elements/{symbol}", elementsH.Get).Methods("GET")
	api.HandleFunc("/formula", elementsH.Format).Methods("GET")

	api.HandleFunc("/tools/loading/calc", loadingH.Calc).Methods("POST")
	api.HandleFunc("/tools/loading/batch", batchH.Loading).Methods("POST")
	api.HandleFunc("/tools/loading/batch/import", batchH.ImportXLSX).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	api.HandleFunc("/history", historyH.List).Methods("GET")
	api.HandleFunc("/history/export.csv", historyH.ExportCSV).Methods("GET")
	api.HandleFunc("/history/export.xlsx", historyH.ExportXLSX).Methods("GET")
	api.HandleFunc("/history/chart.png", reportH.Chart).Methods("GET")

	secureApi := api.NewRoute().Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/elements/import", elementsH.Import).Methods("POST")
	secureApi.HandleFunc("/elements/{symbol}/compounds", elementsH.AddCompound).Methods("POST")
	secureApi.HandleFunc("/elements/{symbol}/compounds", elementsH.DeleteCompound).Methods("DELETE")
	secureApi.HandleFunc("/history/{index:[0-9]+}", historyH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/history", historyH.Clear).Methods("DELETE")

	mux.Handle("/metrics", metrics.Handler()).Methods("GET")

	mainFileServer := http.FileServer(http.Dir(cfg.StaticDir))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db := elements.Initialize()
	db.LoadOverrides(cfg.CompoundsPath)

	hist, store, err := openHistory(ctx, cfg)
	if err != nil {
		log.Fatalf("History store error: %v", err)
	}
	defer store.Close()

	mux := mux.NewRouter()
	HandleList(mux, cfg, db, hist)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.ListenAddr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
