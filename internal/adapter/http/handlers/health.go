package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/middleware"
)

const (
	StatusOk          = "ok"
	StatusDown        = "down"
	healthPingTimeout = 2 * time.Second
)

// Dependency is a backing service probed by the health endpoints.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthAdvanced struct {
	AppName           string            `json:"app_name"`
	AppVersion        string            `json:"app_version"`
	CurrentSystemTime string            `json:"current_system_time"`
	Language          string            `json:"language"`
	Status            map[string]string `json:"status"`
}

type HealthHandler struct {
	deps []Dependency
}

func NewHealthHandler(deps ...Dependency) *HealthHandler {
	return &HealthHandler{deps: deps}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	for _, status := range h.probe(c.Request.Context()) {
		if status != StatusOk {
			statusCode = http.StatusInternalServerError
			message = StatusDown
			break
		}
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status:            h.probe(c.Request.Context()),
	})
}

func (h *HealthHandler) probe(ctx context.Context) map[string]string {
	statuses := make(map[string]string, len(h.deps))
	for _, dep := range h.deps {
		statuses[dep.Name] = StatusDown
		if dep.Ping == nil {
			continue
		}
		// Avoid hanging health checks if a dependency stalls.
		timeoutCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		if dep.Ping(timeoutCtx) == nil {
			statuses[dep.Name] = StatusOk
		}
		cancel()
	}
	return statuses
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
