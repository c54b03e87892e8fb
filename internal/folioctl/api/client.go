// Package api talks to a running folio server.
package api

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"
)

// DefaultHost is used when neither --host nor FOLIO_HOST is set.
const DefaultHost = "localhost:8080"

// ResolveHost prefers the flag value, then FOLIO_HOST, then DefaultHost.
func ResolveHost(flagValue string) string {
	if host := strings.TrimSpace(flagValue); host != "" {
		return host
	}
	if host := strings.TrimSpace(os.Getenv("FOLIO_HOST")); host != "" {
		return host
	}
	return DefaultHost
}

// Client issues requests against the server's /api routes.
type Client struct {
	baseURL string
	token   string
	cc      *client.Client
}

// NewClient accepts host:port or a full http(s) URL.
func NewClient(host, token string) *Client {
	base := strings.TrimRight(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	cc := client.New()
	cc.SetTimeout(10 * time.Second)

	return &Client{baseURL: base, token: token, cc: cc}
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded with status %d", e.Status)
	}
	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Message)
}

// Ping hits /api/meta/ping and returns its body.
func (c *Client) Ping() (string, error) {
	return c.text("/api/meta/ping")
}

// Version returns the running server version, e.g. "v1.0.0".
func (c *Client) Version() (string, error) {
	return c.text("/api/meta/version")
}

// ClearHistory wipes the stored webhook history.
func (c *Client) ClearHistory() (string, error) {
	resp, err := c.cc.Delete(c.baseURL+"/api/webhook/data", client.Config{Header: c.authHeader()})
	if err != nil {
		return "", err
	}
	defer resp.Close()

	return decodeMessage(resp.StatusCode(), resp.Body())
}

// Revalidate drops the cache entry for tag; an empty tag means the blog listing.
func (c *Client) Revalidate(tag string) (string, error) {
	header := c.authHeader()
	header["Content-Type"] = "application/json"

	resp, err := c.cc.Post(c.baseURL+"/api/revalidate", client.Config{
		Header: header,
		Body:   map[string]string{"tag": tag},
	})
	if err != nil {
		return "", err
	}
	defer resp.Close()

	return decodeMessage(resp.StatusCode(), resp.Body())
}

func (c *Client) text(path string) (string, error) {
	resp, err := c.cc.Get(c.baseURL + path)
	if err != nil {
		return "", err
	}
	defer resp.Close()

	body := strings.TrimSpace(string(resp.Body()))
	if resp.StatusCode() != 200 {
		return "", &StatusError{Status: resp.StatusCode(), Message: body}
	}

	return body, nil
}

func (c *Client) authHeader() map[string]string {
	header := map[string]string{}
	if c.token != "" {
		header["Authorization"] = "Bearer " + c.token
	}
	return header
}

// decodeMessage pulls the human readable part out of a JSON envelope.
func decodeMessage(status int, body []byte) (string, error) {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	if status < 200 || status > 299 {
		msg := envelope.Message
		if msg == "" {
			msg = envelope.Error
		}
		return "", &StatusError{Status: status, Message: msg}
	}

	return envelope.Message, nil
}
