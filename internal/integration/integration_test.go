package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"psy211-course-service/internal/app"
	"psy211-course-service/internal/content"
	"psy211-course-service/internal/domain"
	"psy211-course-service/internal/infra/memory"
	pgloader "psy211-course-service/internal/infra/postgres"
	pgmigrations "psy211-course-service/internal/infra/postgres/migrations"
	rediscontent "psy211-course-service/internal/infra/redis"
)

func TestQuizFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	units := content.Units()
	seedUnits(t, ctx, pgURL, units)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	repo := memory.NewUnitRepository(pgloader.NewUnitLoader(pool), 5*time.Minute)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	store := rediscontent.NewContentStore(redisClient, 5*time.Minute)

	service, err := app.NewCourseService(ctx, content.Course(), repo, store, nil, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	first := units[0]
	if err := service.OpenUnit(ctx, first.ID); err != nil {
		t.Fatalf("open unit: %v", err)
	}
	if err := service.StartUnitQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}

	view := service.View()
	if view.Quiz == nil || view.Quiz.Phase != domain.PhaseRunning {
		t.Fatalf("expected running session, got %+v", view.Quiz)
	}

	answers := answerKey(first.Questions)
	for {
		view = service.View()
		if view.Quiz.Phase != domain.PhaseRunning {
			break
		}
		if err := service.SubmitAnswer(answers[view.Quiz.Question.ID]); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if err := service.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	view = service.View()
	if view.Quiz.Result == nil {
		t.Fatalf("expected result after finishing")
	}
	if view.Quiz.Result.Percentage != 100 || view.Quiz.Result.Grade != domain.GradeExcellent {
		t.Fatalf("expected a perfect run, got %+v", view.Quiz.Result)
	}
}

func TestGeneratedContentSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	generated := domain.Question{
		ID:      "gen-1-test",
		Unit:    1,
		Text:    "سؤال مولد",
		Options: []string{"أ", "ب", "ج", "د"},
		Answer:  "ب",
	}

	store := rediscontent.NewContentStore(redisClient, 5*time.Minute)
	store.AppendQuestions(1, []domain.Question{generated})

	// A fresh store instance simulates a process restart; the pool must be
	// restored from Redis.
	fresh := rediscontent.NewContentStore(redisClient, 5*time.Minute)
	restored := fresh.Questions(1)
	if len(restored) != 1 || restored[0].ID != generated.ID {
		t.Fatalf("expected restored pool, got %+v", restored)
	}
}

func answerKey(questions []domain.Question) map[string]string {
	key := make(map[string]string, len(questions))
	for _, q := range questions {
		key[q.ID] = q.Answer
	}
	return key
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "course", "POSTGRES_PASSWORD": "coursepass", "POSTGRES_DB": "coursedb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://course:coursepass@%s:%s/coursedb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedUnits(t *testing.T, ctx context.Context, dsn string, units []domain.UnitData) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, unit := range units {
		data, err := json.Marshal(unit)
		if err != nil {
			t.Fatalf("marshal unit: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO course_units (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, unit.ID, string(data)); err != nil {
			t.Fatalf("insert unit: %v", err)
		}
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
