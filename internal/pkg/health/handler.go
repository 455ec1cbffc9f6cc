package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo is returned by /ping
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func buildInfo(serviceName, version string) BuildInfo {
	info := BuildInfo{
		Version:     version,
		GitCommit:   os.Getenv("GIT_COMMIT"),
		BuildTime:   os.Getenv("BUILD_TIME"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
	}
	if info.Version == "" {
		info.Version = "development"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	} else {
		info.Hostname = "unknown"
	}
	return info
}

// DatabaseDependency is the checker name /api/db-health reports on
const DatabaseDependency = "postgres"

// RegisterEndpoints mounts the ping, liveness, readiness and detailed
// health endpoints
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	info := buildInfo(serviceName, version)

	e.GET("/ping", func(c echo.Context) error {
		response := info
		response.ServerTime = time.Now()
		return c.JSON(http.StatusOK, response)
	})

	basic := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	}
	e.GET("/health", basic)
	e.GET("/api/health", basic)

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "alive", "service": serviceName})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		response := detailed(c, svc, serviceName, version, 3*time.Second)
		if response.Status != StatusHealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ready", "service": serviceName})
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		response := detailed(c, svc, serviceName, version, 5*time.Second)
		return c.JSON(statusCode(response), response)
	})

	e.GET("/api/db-health", func(c echo.Context) error {
		response := detailed(c, svc, serviceName, version, 3*time.Second, DatabaseDependency)
		return c.JSON(statusCode(response), response)
	})
}

func detailed(c echo.Context, svc *Service, serviceName, version string, timeout time.Duration, names ...string) Response {
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	response := svc.Check(ctx, names...)
	response.Service = serviceName
	response.Version = version
	return response
}

func statusCode(response Response) int {
	if response.Status != StatusHealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
