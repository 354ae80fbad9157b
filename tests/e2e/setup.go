//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"maya-connect/cmd/bootstrap"
	"maya-connect/cmd/bootstrap/components"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/tests/common/authtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container
	redisDBCounter     int
	redisDBMu          sync.Mutex
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per-suite environment: a fake backend plus the gateway on Redis
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*FakeBackend, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	redisInfo := startContainers(t)
	backend := NewFakeBackend(t, authtest.TestSecret)

	cfg := createTestConfig(backend.URL, redisInfo)
	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"backend_url", backend.URL,
		"redis_addr", cfg.Redis.Addr,
		"redis_db", cfg.Redis.DB)

	return backend, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	startRedisContainerOnce(t)

	info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container address")
	return info
}

// nextRedisDB gives each suite its own logical database so deny lists never leak between suites.
func nextRedisDB() int {
	redisDBMu.Lock()
	defer redisDBMu.Unlock()
	redisDBCounter = (redisDBCounter + 1) % 16
	return redisDBCounter
}

// ------------------------------------------------------------
// Application wiring for e2e tests
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
		bootstrap.ConfigSections,
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		fx.Provide(clock.NewRealClock),
		bootstrap.CacheModule,
		components.BackendModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, app
}

func createTestConfig(backendURL string, redisInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Backend.BaseURL = backendURL
	testConfig.Auth.JWTSecret = authtest.TestSecret
	testConfig.Cache.Driver = cache.DriverRedis
	testConfig.Redis = config.RedisConfig{
		Addr: fmt.Sprintf("%s:%s", redisInfo.Host, redisInfo.Port.Port()),
		DB:   nextRedisDB(),
	}
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Redis container, started once per test process
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort("6379/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
	})
	require.NotNil(t, redisTestContainer, "redis container unavailable")
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *FakeBackend
	Config  config.Config
}

func (s *SharedSuite) SetupSuite() {
	backend, router, cfg := setupE2EEnvironment(s.T())
	s.Backend = backend
	s.Router = router
	s.Config = cfg
}
