package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping() error { return f.err }

func newTestServer(svc *Service) *echo.Echo {
	e := echo.New()
	RegisterEndpoints(e, "mrshoofer-api", "1.2.3", svc)
	return e
}

func get(e *echo.Echo, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRegisterEndpoints_Basic(t *testing.T) {
	e := newTestServer(NewService(logger.NewNopLogger()))

	for _, path := range []string{"/health", "/api/health"} {
		rec, body := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "mrshoofer-api", body["service"])
	}

	rec, body := get(e, "/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", body["status"])

	rec, body = get(e, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, runtime.Version(), body["go_version"])
	assert.NotEmpty(t, body["server_time"])
}

func TestRegisterEndpoints_Detailed(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := database.NewRedisClientFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer redisClient.Close()

	svc := NewService(logger.NewNopLogger())
	svc.AddChecker("redis", NewPingChecker(redisClient))
	svc.AddChecker("nsq", NewNSQChecker(fakePinger{}))
	svc.AddChecker(DatabaseDependency, CheckerFunc(func(ctx context.Context) error { return nil }))
	e := newTestServer(svc)

	rec, body := get(e, "/health/detailed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusHealthy, body["status"])
	deps := body["dependencies"].(map[string]interface{})
	assert.Len(t, deps, 3)

	rec, body = get(e, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])

	mr.Close()

	rec, body = get(e, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	deps = body["dependencies"].(map[string]interface{})
	assert.Equal(t, StatusUnhealthy, deps["redis"].(map[string]interface{})["status"])

	// the database-only probe ignores the broken redis
	rec, body = get(e, "/api/db-health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["dependencies"], 1)
}

func TestService_Check(t *testing.T) {
	svc := NewService(nil)
	svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))
	svc.AddChecker("nsq", NewNSQChecker(nil))

	assert.Equal(t, []string{"nsq", "postgres"}, svc.Names())

	response := svc.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, "connection refused", response.Dependencies["postgres"].Error)
	assert.Equal(t, StatusHealthy, response.Dependencies["nsq"].Status)

	assert.Empty(t, svc.Check(context.Background(), "unknown").Dependencies)
}

func TestNewPingChecker_NilClient(t *testing.T) {
	assert.Error(t, NewPingChecker(nil).CheckHealth(context.Background()))
}

func TestNewNSQChecker_Failure(t *testing.T) {
	err := NewNSQChecker(fakePinger{err: errors.New("not connected")}).CheckHealth(context.Background())
	assert.EqualError(t, err, "not connected")
}
