package pdfgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/realty-hub/realty-hub/internal/domain/negotiation"
)

// Client implements negotiation.ProposalRenderer against an external
// rendering service that accepts the proposal payload as JSON and responds
// with the PDF bytes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("service", "pdfgen").Logger(),
	}
}

func (c *Client) RenderProposal(ctx context.Context, data negotiation.ProposalData) ([]byte, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/render/proposal", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error().Int("status", resp.StatusCode).Msg("proposal rendering failed")
		return nil, fmt.Errorf("proposal renderer returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
