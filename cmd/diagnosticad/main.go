// Command diagnosticad is the hosted diagnostic assessment service.
// It serves the assessment API and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/diagnostica/diagnostica/internal/api"
	"github.com/diagnostica/diagnostica/internal/archive"
	"github.com/diagnostica/diagnostica/internal/platform"
	"github.com/diagnostica/diagnostica/internal/session"
	"github.com/diagnostica/diagnostica/pkg/assessment"
	diagconfig "github.com/diagnostica/diagnostica/pkg/config"
	"github.com/diagnostica/diagnostica/pkg/recommend"
)

type serverConfig struct {
	Port        string
	DatabaseURL string
	APIKey      string
	CORSOrigin  string

	ArchiveBackend string
	LocalPath      string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	GCSBucket      string
}

func loadServerConfig() serverConfig {
	return serverConfig{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/diagnostica?sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),
		CORSOrigin:  os.Getenv("CORS_ORIGIN"),

		ArchiveBackend: envOrDefault("ARCHIVE_BACKEND", "local"),
		LocalPath:      envOrDefault("LOCAL_STORAGE_PATH", "/tmp/diagnostica-data"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
	}
}

func main() {
	cfg := loadServerConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := newArchiveClient(ctx, cfg)
	if err != nil {
		log.Fatalf("archive storage: %v", err)
	}

	// Scoring parameters come from the optional YAML config; defaults apply
	// when no config file is found.
	cwd, _ := os.Getwd()
	appCfg, err := diagconfig.Load(diagconfig.FindConfigFile(cwd))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine := assessment.NewEngine(
		assessment.DefaultMatrix(),
		assessment.Breakpoints{
			NoviceMax:       appCfg.Scoring.NoviceMax,
			PractitionerMax: appCfg.Scoring.PractitionerMax,
		},
		appCfg.Scoring.SecondaryWindow,
	)
	ranker := recommend.NewRanker(recommend.Weights{
		PriorityWeight: appCfg.Recommend.PriorityWeight,
		DomainWeight:   appCfg.Recommend.DomainWeight,
		InterestWeight: appCfg.Recommend.InterestWeight,
		TieBoost:       appCfg.Recommend.TieBoost,
		MaxResults:     appCfg.Recommend.MaxResults,
	})

	sessions := session.NewService(db)
	handler, err := api.NewHandler(sessions, engine, ranker, store)
	if err != nil {
		log.Fatalf("build api handler: %v", err)
	}

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRootHandler(apiMux, cfg.APIKey, cfg.CORSOrigin, healthHandler(db)),
	}

	go func() {
		log.Printf("starting diagnosticad on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newRootHandler wires the outer routing: the health check is served
// outside auth, everything else goes through CORS and key validation.
func newRootHandler(apiHandler http.Handler, apiKey, corsOrigin string, health http.HandlerFunc) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health)
	mux.Handle("/", api.CORS(corsOrigin)(api.APIKeyAuth(apiKey)(apiHandler)))
	return mux
}

func newArchiveClient(ctx context.Context, cfg serverConfig) (archive.StorageClient, error) {
	switch cfg.ArchiveBackend {
	case "s3":
		return archive.NewS3Storage(ctx, archive.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return archive.NewGCSStorage(ctx, cfg.GCSBucket)
	case "none":
		return nil, nil
	default:
		return archive.NewLocalStorage(cfg.LocalPath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
