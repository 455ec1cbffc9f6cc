package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Response is the body of the detailed health endpoints
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the result for one dependency
type DependencyInfo struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// Service runs the registered checkers
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates an empty health service
func NewService(l *logger.ZapLogger) *Service {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Service{checkers: make(map[string]Checker), logger: l}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Names lists the registered dependencies
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs the named checkers, or all of them when names is empty.
// Checks run concurrently.
func (s *Service) Check(ctx context.Context, names ...string) Response {
	if len(names) == 0 {
		names = s.Names()
	}

	response := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, name := range names {
		s.mu.RLock()
		checker, ok := s.checkers[name]
		s.mu.RUnlock()
		if !ok {
			continue
		}

		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()
			start := time.Now()
			err := checker.CheckHealth(ctx)
			info := DependencyInfo{Status: StatusHealthy, LatencyMs: time.Since(start).Milliseconds()}
			if err != nil {
				info.Status = StatusUnhealthy
				info.Error = err.Error()
				s.logger.Warn("Health check failed", logger.String("dependency", name), logger.Err(err))
			}

			mu.Lock()
			defer mu.Unlock()
			response.Dependencies[name] = info
			if err != nil {
				response.Status = StatusUnhealthy
			}
		}(name, checker)
	}
	wg.Wait()

	return response
}
