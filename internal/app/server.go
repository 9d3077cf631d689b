package app

import (
	"net/http"
	"time"

	"linkboard/internal/config"

	"go.uber.org/zap"
)

// CreateServer creates and configures the dashboard HTTP server.
func CreateServer(c *config.Config, handler http.Handler, logger *zap.SugaredLogger) *http.Server {
	logger.Infof("Linkboard at http://%s, backend %s\n", c.Addr, c.APIBaseURL)

	return &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 20 * time.Second,
	}
}
