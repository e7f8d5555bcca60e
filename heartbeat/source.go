package heartbeat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MetricSource supplies the metric values reported with each heartbeat.
type MetricSource interface {
	Collect(ctx context.Context) (map[string]uint64, error)
}

// StaticSource always reports the same values.
type StaticSource map[string]uint64

func (s StaticSource) Collect(context.Context) (map[string]uint64, error) {
	out := make(map[string]uint64, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}

// HTTPSource scrapes a JSON object of metric name to unsigned integer value.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *HTTPSource) Collect(ctx context.Context) (map[string]uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error scraping metrics from %v: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error scraping metrics from %v: status %v", s.URL, resp.StatusCode)
	}
	out := map[string]uint64{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("error decoding metrics from %v: %w", s.URL, err)
	}
	return out, nil
}

// MultiSource merges sources in order, later sources overriding earlier ones.
type MultiSource []MetricSource

func (m MultiSource) Collect(ctx context.Context) (map[string]uint64, error) {
	out := map[string]uint64{}
	for _, src := range m {
		values, err := src.Collect(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			out[k] = v
		}
	}
	return out, nil
}
