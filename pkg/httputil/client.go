// Package httputil provides the shared outbound-HTTP plumbing for the
// jaal gateway: pooled clients with tiered timeouts, bounded body readers,
// and a counting semaphore for fire-and-forget deliveries.
package httputil

import (
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

// MaxResponseSize caps how much of a response body is ever read into
// memory. The evaluator endpoint is not under our control.
const MaxResponseSize = 10 * 1024 * 1024

// maxErrorSize caps error-body reads; error messages are small.
const maxErrorSize = 1 * 1024 * 1024

// One transport for every outbound call so TCP connections are reused
// across health probes and callback deliveries alike.
var sharedTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	ForceAttemptHTTP2:     true,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ExpectContinueTimeout: 1 * time.Second,
}

// TimeoutTier groups outbound calls by how long they may reasonably take.
type TimeoutTier int

const (
	// TierFast: liveness probes and other quick checks (5s).
	TierFast TimeoutTier = iota
	// TierMedium: ordinary API calls, including evaluator callbacks (30s).
	TierMedium
	// TierSlow: endpoints known to stall under load (60s).
	TierSlow
)

var tierTimeouts = [...]time.Duration{
	TierFast:   5 * time.Second,
	TierMedium: 30 * time.Second,
	TierSlow:   60 * time.Second,
}

var (
	clients     [len(tierTimeouts)]*http.Client
	clientsOnce sync.Once
)

func initClients() {
	for tier, timeout := range tierTimeouts {
		clients[tier] = &http.Client{
			Timeout:   timeout,
			Transport: sharedTransport,
		}
	}
}

// Client returns the shared client for a tier. Callers must not mutate the
// returned client; the instances are process-wide singletons.
func Client(tier TimeoutTier) *http.Client {
	clientsOnce.Do(initClients)
	if tier < 0 || int(tier) >= len(clients) {
		tier = TierMedium
	}
	return clients[tier]
}

// FastClient returns the 5s-timeout client.
func FastClient() *http.Client {
	return Client(TierFast)
}

// MediumClient returns the 30s-timeout client.
func MediumClient() *http.Client {
	return Client(TierMedium)
}

// SlowClient returns the 60s-timeout client.
func SlowClient() *http.Client {
	return Client(TierSlow)
}

// ReadResponseBody reads a body up to maxSize bytes; zero or negative
// means MaxResponseSize.
func ReadResponseBody(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = MaxResponseSize
	}
	return io.ReadAll(io.LimitReader(r, maxSize))
}

// ReadErrorBody reads a failed response's body for inclusion in an error
// message, bounded so a hostile endpoint cannot balloon our logs.
func ReadErrorBody(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxErrorSize))
}

// DrainAndClose consumes the remainder of a body before closing it, which
// is what lets the transport return the connection to the pool.
func DrainAndClose(body io.ReadCloser) {
	if body != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(body, MaxResponseSize))
		_ = body.Close()
	}
}
