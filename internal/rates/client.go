package rates

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecom-labs/order-total-service/internal/config"
	"github.com/ecom-labs/order-total-service/internal/entities"
)

// Client talks to the sales tax rate service. The contract is minimal:
// POST the raw zip code string, read back a decimal fraction such as 0.07.
type Client struct {
	logger *slog.Logger
	url    string
	http   *http.Client
}

func New(logger *slog.Logger, cfg config.RateService) *Client {
	return &Client{
		logger: logger.With(slog.String("client", "rates")),
		url:    cfg.URL,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

// FindRate resolves the sales tax rate for a zip code. The outbound
// request is tied to ctx, so a disconnected caller cancels the lookup.
// Failures are classified into the entities error taxonomy; a timeout
// counts as unreachable.
func (c *Client) FindRate(ctx context.Context, zip string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(zip))
	if err != nil {
		return 0, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "rate service unreachable", slog.Any("error", err), slog.String("zip", zip))
		return 0, fmt.Errorf("%w: %w", entities.ErrRateServiceUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to read rate response", slog.Any("error", err), slog.String("zip", zip))
		return 0, fmt.Errorf("%w: %w", entities.ErrRateServiceUnreadable, err)
	}

	// Rates are fractions like 0.07, parsed at 32-bit precision so
	// overflowing values are rejected along with non-numeric text.
	text := strings.TrimSpace(string(body))
	rate, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", entities.ErrNoRateForZip, text)
	}
	return rate, nil
}
