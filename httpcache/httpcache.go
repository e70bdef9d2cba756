// Package httpcache contains the http utilities shared by the market-data providers:
// a JSON GET helper and an optional disk cache whose entries expire daily.
package httpcache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/optimaxx/date"
)

// StatusError is returned by GetJSON when the server does not answer 200.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cannot http GET %s: %s", e.URL, e.Status)
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base  http.RoundTripper
	dir   string
	today func() date.Date
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If none is found for today, it proceeds with the
// actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the day is part of the key, so entries expire every day.
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL.String())
	key = fmt.Sprintf("optimaxx-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) error {
	// DumpResponse reads the body and replaces it with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}

// logging traces every request that reaches the network.
type logging struct{ base http.RoundTripper }

func (l logging) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := l.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v failed: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}

// NewClient returns an http.Client with a 30s timeout that traces requests.
func NewClient() *http.Client {
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: logging{http.DefaultTransport},
	}
}

// NewDailyCachingClient returns an http.Client that uses a disk cache in dir where entries expire daily.
// An empty dir means the system temporary directory.
func NewDailyCachingClient(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	client := NewClient()
	client.Transport = &diskCache{base: client.Transport, dir: dir, today: date.Today}
	return client
}

// GetJSON performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
//
// Non 200 responses are returned as a *StatusError carrying the body.
func GetJSON(ctx context.Context, client *http.Client, addr string, data any, headers ...string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: resp.Request.URL.Host + resp.Request.URL.Path, Body: body}
	}
	return json.Unmarshal(body, data)
}
