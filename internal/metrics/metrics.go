// Package metrics emits request counters and latency timings to DogStatsD.
// With no address configured the recorder is a no-op.
package metrics

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
)

// Recorder receives HTTP request metrics.
type Recorder interface {
	Request(method, path string, status int, latency time.Duration)
}

type noop struct{}

func (noop) Request(string, string, int, time.Duration) {}

type dogstatsd struct {
	client *statsd.Client
}

// New returns a DogStatsD recorder, or a no-op when addr is empty.
func New(addr string) (Recorder, error) {
	if addr == "" {
		return noop{}, nil
	}
	client, err := statsd.New(addr, statsd.WithNamespace("wrs_backend."))
	if err != nil {
		return nil, fmt.Errorf("metrics: statsd: %w", err)
	}
	return &dogstatsd{client: client}, nil
}

func (d *dogstatsd) Request(method, path string, status int, latency time.Duration) {
	tags := []string{
		"method:" + method,
		"path:" + path,
		fmt.Sprintf("status:%d", status),
	}
	_ = d.client.Incr("http.requests", tags, 1)
	_ = d.client.Timing("http.latency", latency, tags, 1)
}
