package report

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client uploads room-measurement payloads to the report service.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// ClientConfig configures the upload client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retries int
}

// NewClient creates an upload client with retries and JSON defaults.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		httpClient.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// uploadResponse is the report service's acknowledgment.
type uploadResponse struct {
	ReportID string `json:"reportId"`
	Status   string `json:"status"`
}

// Upload posts the payload under the given room id and returns the remote
// report id.
func (c *Client) Upload(roomID string, p Payload) (string, error) {
	c.logger.Info("uploading room report",
		zap.String("room_id", roomID),
		zap.Int("wall_count", p.WallCount),
		zap.Float64("floor_area_m2", p.FloorAreaM2),
	)

	var response uploadResponse
	resp, err := c.httpClient.R().
		SetBody(p).
		SetResult(&response).
		Post(fmt.Sprintf("/rooms/%s/report", roomID))
	if err != nil {
		c.logger.Error("report upload failed", zap.Error(err))
		return "", fmt.Errorf("upload report: %w", err)
	}

	if resp.IsError() {
		c.logger.Error("report service rejected upload",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", fmt.Errorf("upload report: status %d", resp.StatusCode())
	}

	return response.ReportID, nil
}
