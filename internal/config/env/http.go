package env

import (
	"bingo_backend/internal/config"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	httpHostEnvName = "HTTP_HOST"
	httpPortEnvName = "HTTP_PORT"

	defaultHTTPHost = "0.0.0.0"
	defaultHTTPPort = "8080"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	host := os.Getenv(httpHostEnvName)
	if len(host) == 0 {
		host = defaultHTTPHost
	}

	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}

	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("invalid http port %q: %w", port, err)
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
