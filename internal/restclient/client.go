package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// TokenStore is where the bearer token lives between runs. Evict is called
// when the server answers 401.
type TokenStore interface {
	Token() (string, bool)
	Evict()
}

type Client struct {
	base    string
	hc      *http.Client
	tokens  TokenStore
	limiter *rate.Limiter
}

func New(baseURL string, timeout time.Duration, reqPerSec float64, tokens TokenStore) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		tokens:  tokens,
		limiter: rate.NewLimiter(rate.Limit(reqPerSec), 1),
	}
}

// Do issues one JSON request against the API. body is marshaled when non-nil,
// out is decoded into when non-nil and the response is 2xx. Failures come
// back as *StatusError, *TransportError, or a wrapped build error; nothing
// is retried here.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			log.Printf("[api] request not sent method=%s path=%s err=%v", method, path, err)
			return fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		log.Printf("[api] request not sent method=%s path=%s err=%v", method, path, err)
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ApplyDesk/1.0 (+local)")
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		log.Printf("[api] request not sent method=%s path=%s err=%v", method, path, err)
		return fmt.Errorf("rate wait: %w", err)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		log.Printf("[api] no response method=%s path=%s err=%v", method, path, err)
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := readErrorMessage(res.Body, res.StatusCode)
		log.Printf("[api] status=%d method=%s path=%s msg=%q", res.StatusCode, method, path, msg)
		if res.StatusCode == http.StatusUnauthorized {
			c.tokens.Evict()
		}
		return &StatusError{Status: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls a message out of an error body without committing
// to a body schema: {"message": ...} or {"error": ...} when present, a
// generic status string otherwise.
func readErrorMessage(r io.Reader, status int) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return fmt.Sprintf("api status %d", status)
}
