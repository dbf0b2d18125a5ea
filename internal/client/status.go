package client

import (
	dto "bingo_backend/internal/api/dto/draw"
	"bingo_backend/internal/converter"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const requestTimeout = 5 * time.Second

// StatusFetcher Источник истории выпавших номеров
type StatusFetcher interface {
	FetchDrawn(ctx context.Context) ([]int, error)
}

// StatusClient Читает /api/status у сервера ведущего
type StatusClient struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func NewStatusClient(baseURL string, logger *log.Logger) *StatusClient {
	return &StatusClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger.WithPrefix("status"),
	}
}

// FetchDrawn История в порядке выпадения. Неразборчивые записи пропускаются
func (c *StatusClient) FetchDrawn(ctx context.Context) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/status", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch status: unexpected status %d", res.StatusCode)
	}

	var body dto.StatusResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}

	drawn, skipped := converter.ParseNumbers(body.DrawnNumbers)
	if len(skipped) > 0 {
		c.logger.Debug("skipped malformed numbers", "values", skipped)
	}

	return drawn, nil
}
