package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Upstream reservation API paths.
const (
	bikeBookingsPath    = "/api/bike-bookings"
	vehicleBookingsPath = "/api/vehicle-bookings"
	contactsPath        = "/api/contacts"
)

// BookingsClient forwards accepted submissions to the external reservations
// API. Any 2xx response is acceptance; every other status and every
// transport failure is a uniform submission failure, since the upstream
// contract has no response body beyond acceptance.
type BookingsClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewBookingsClient(baseURL string, timeout time.Duration, log *zap.Logger) *BookingsClient {
	return &BookingsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "bookings")),
	}
}

func (c *BookingsClient) SubmitBikeBooking(ctx context.Context, payload any) error {
	return c.post(ctx, bikeBookingsPath, payload)
}

func (c *BookingsClient) SubmitVehicleBooking(ctx context.Context, payload any) error {
	return c.post(ctx, vehicleBookingsPath, payload)
}

func (c *BookingsClient) SubmitContact(ctx context.Context, payload any) error {
	return c.post(ctx, contactsPath, payload)
}

func (c *BookingsClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("Booking endpoint unreachable",
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	c.log.Info("Booking forwarded",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("booking endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
