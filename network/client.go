// Package network provides the shared HTTP client used to check remote media sources before playback.
package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/log"
	"golang.org/x/net/http2"
)

// Client is the HTTP client shared across the application.
// Remote sources are usually served by CDNs, so the transport negotiates HTTP/2 when offered.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with HTTP/2 enabled.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	if err := http2.ConfigureTransport(t); err != nil {
		log.Warnf("http2 unavailable: %s", err)
	}
	return t
}

// Probe checks that a remote media URL answers. Servers rejecting HEAD are retried with a ranged GET.
func Probe(ctx context.Context, url string) error {
	status, err := request(ctx, http.MethodHead, url)
	if err != nil {
		return err
	}
	if status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented {
		if status, err = request(ctx, http.MethodGet, url); err != nil {
			return err
		}
	}

	if status >= 400 {
		return fmt.Errorf("%s: %s", url, http.StatusText(status))
	}
	return nil
}

func request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("reach %s: %w", url, err)
	}
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
