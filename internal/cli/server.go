package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"psy211-course-service/internal/app"
	"psy211-course-service/internal/config"
	"psy211-course-service/internal/content"
	"psy211-course-service/internal/gateway"
	"psy211-course-service/internal/infra/memory"
	pgloader "psy211-course-service/internal/infra/postgres"
	rediscontent "psy211-course-service/internal/infra/redis"
	transport "psy211-course-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the course server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.UnitLoader = memory.NewStaticUnitLoader(content.Units())
	if pool != nil {
		loader = pgloader.NewUnitLoader(pool)
	}

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	units := memory.NewUnitRepository(loader, contentTTL)

	var store app.ContentStore
	if redisClient != nil {
		store = rediscontent.NewContentStore(redisClient, redisTTL)
	} else {
		store = memory.NewContentStore()
	}

	keyEnvVar := cfg.Gateway.KeyEnvVar
	if keyEnvVar == "" {
		keyEnvVar = "GEMINI_API_KEY"
	}
	keys := gateway.NewEnvKeyStore(keyEnvVar)
	generator := gateway.NewClient(keys, gateway.Options{
		BaseURL: cfg.Gateway.BaseURL,
		Model:   cfg.Gateway.Model,
		Timeout: config.TTLDuration(cfg.Gateway.Timeout, 60*time.Second),
	})

	course := content.Course()
	factory := func(ctx context.Context) (*app.CourseService, error) {
		return app.NewCourseService(ctx, course, units, store, generator, keys)
	}
	wsHandler := transport.NewWSHandler(factory)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting course service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
