package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type LinkStatus string

const (
	LinkPending LinkStatus = "PENDING"
	LinkReady   LinkStatus = "READY"
	LinkInvalid LinkStatus = "INVALID"
)

type LinkResponse struct {
	Code      string     `json:"code"`
	Status    LinkStatus `json:"status"`
	URL       string     `json:"url"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type ErrThrottle struct {
	RetryAfter int
}

func (e *ErrThrottle) Error() string {
	return fmt.Sprintf("Too many requests, retry after %d seconds", e.RetryAfter)
}

var (
	ErrUnknown       = errors.New("Unknown server error")
	ErrCodeNotExists = errors.New("Payment code not exists")
)

const defaultRetryAfter = 1

type Client struct {
	client *resty.Client
}

func NewClient(address string) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(address).
			SetTimeout(10 * time.Second),
	}
}

func (c *Client) GetPaymentLink(ctx context.Context, code string) (*LinkResponse, error) {

	response, err := c.client.R().
		SetContext(ctx).
		SetPathParam("code", code).
		Get("/api/payments/{code}/link")
	if err != nil {
		return nil, err
	}

	switch response.StatusCode() {
	case http.StatusOK:
		var link LinkResponse
		err = json.Unmarshal(response.Body(), &link)
		if err != nil {
			return nil, fmt.Errorf("json parsing error %w", err)
		}
		return &link, nil

	case http.StatusNoContent:
		return nil, fmt.Errorf("%w", ErrCodeNotExists)
	case http.StatusTooManyRequests:
		retry, err := strconv.Atoi(response.Header().Get("Retry-After"))
		if err != nil || retry <= 0 {
			retry = defaultRetryAfter
		}
		return nil, fmt.Errorf("%w", &ErrThrottle{RetryAfter: retry})
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return nil, fmt.Errorf("%w", ErrUnknown)
	default:
		return nil, fmt.Errorf("Unexpected status %d", response.StatusCode())
	}
}
