package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/fourweek-cli/internal/repository/storage"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

// Suite gives token store tests an empty redis of their own.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Addr is the host:port the container is published on.
	Addr    string
	Storage *redis.Client
}

// New - runs redis in docker for the lifetime of t. Skipped in -short mode and when docker is unreachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("redis suite skipped in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	pool := dockerPool(t)
	container := runRedis(t, pool)
	addr := container.GetHostPort(redisPort)

	conn := connect(ctx, t, pool, addr)
	if err := conn.Connection.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush redis: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Addr:    addr,
		Storage: conn.Connection,
	}
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not reach docker: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	pool.MaxWait = startTimeout

	return pool
}

// runRedis - the container removes itself once stopped and is killed after containerTTL seconds at most.
func runRedis(t *testing.T, pool *dockertest.Pool) *dockertest.Resource {
	t.Helper()

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(hostConfig *docker.HostConfig) {
		hostConfig.AutoRemove = true
		hostConfig.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not run %s:%s: %v", redisImage, redisTag, err)
	}

	_ = container.Expire(containerTTL)

	t.Cleanup(func() {
		if err := pool.Purge(container); err != nil {
			t.Errorf("could not remove redis container: %v", err)
		}
	})

	return container
}

// connect - goes through the same constructor the CLI uses, retrying until redis accepts connections.
func connect(ctx context.Context, t *testing.T, pool *dockertest.Pool, addr string) *storage.RedisStorage {
	t.Helper()

	var conn *storage.RedisStorage

	err := pool.Retry(func() error {
		var err error
		conn, err = storage.NewRedisStorage(ctx, addr)
		return err
	})
	if err != nil {
		t.Fatalf("redis at %s never became ready: %v", addr, err)
	}

	return conn
}
