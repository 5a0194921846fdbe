package random

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xkpass/xkpass/pkg/logger"
)

// remoteDomain is the integer range the remote service is asked for. Values
// are normalized into [0,1) by dividing by this constant.
const remoteDomain = 1_000_000_000

// RemoteSource fetches batches of integers from an HTTP randomness service
// and normalizes them into [0,1). Fetching many values per round trip
// amortizes latency and respects third-party rate etiquette, which is the
// whole reason the batching cache exists. The core never retries a failed
// draw; a failure aborts only the enclosing generation call.
type RemoteSource struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// remoteResponse is the service's JSON payload: integers in [0, remoteDomain).
type remoteResponse struct {
	Numbers []int64 `json:"numbers"`
}

// RemoteOption configures a RemoteSource.
type RemoteOption func(*RemoteSource)

// WithHTTPClient overrides the HTTP client, e.g. to adjust timeouts or to
// stub the transport in tests.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(s *RemoteSource) {
		if client != nil {
			s.client = client
		}
	}
}

// WithRemoteLogger sets the logger for request activity.
func WithRemoteLogger(logger *slog.Logger) RemoteOption {
	return func(s *RemoteSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewRemoteSource creates a source fetching from the given service URL.
func NewRemoteSource(baseURL string, opts ...RemoteOption) (*RemoteSource, error) {
	if _, err := url.Parse(baseURL); err != nil || baseURL == "" {
		return nil, fmt.Errorf("%w: invalid service url %q", ErrRemoteRequest, baseURL)
	}

	s := &RemoteSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Draw requests n integers from the service and normalizes them. A wrong
// count or an out-of-domain integer is a hard error.
func (s *RemoteSource) Draw(ctx context.Context, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrInvalidBatchSize
	}

	reqURL := s.baseURL + "?num=" + strconv.Itoa(n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteRequest, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteRequest, resp.StatusCode)
	}

	var payload remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteResponse, err)
	}
	if len(payload.Numbers) != n {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", ErrSourceCount, n, len(payload.Numbers))
	}

	out := make([]float64, n)
	for i, num := range payload.Numbers {
		if num < 0 || num >= remoteDomain {
			return nil, fmt.Errorf("%w: integer %d at index %d", ErrValueOutOfRange, num, i)
		}
		out[i] = float64(num) / float64(remoteDomain)
	}

	s.logger.DebugContext(ctx, "remote randomness batch fetched",
		logger.RequestID(requestID),
		logger.Count("count", n),
		logger.Elapsed(start))
	return out, nil
}
