package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/YousifAziz000/lifting-bot-rlbr/internal/models"
)

// Transport-level failure sentinels. ErrTimeout wraps ErrUnavailable so a
// deadline expiry still matches errors.Is(err, ErrUnavailable) while staying
// distinguishable from a plain network failure.
var (
	ErrUnavailable = errors.New("workout backend unavailable")
	ErrTimeout     = fmt.Errorf("workout backend timed out: %w", ErrUnavailable)
)

// RejectedError is an application-level failure: the backend answered but
// flagged the operation as unsuccessful. Message is surfaced to the user
// verbatim.
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("backend rejected %s: %s", e.Op, e.Message)
}

// Submitter is the one-method contract the rest of the bot programs against.
type Submitter interface {
	Submit(ctx context.Context, op string, payload any) (*models.BackendReply, error)
}

// Client submits named operations to the workout scripting backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a backend client for the given endpoint and shared secret. The
// client imposes no timeout of its own; callers bound individual calls
// through their context (see SubmitBounded).
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

// Submit serializes payload as JSON and posts it to the backend with the
// operation selector and shared secret in the query string. It never
// retries; retry policy belongs to the caller.
func (c *Client) Submit(ctx context.Context, op string, payload any) (*models.BackendReply, error) {
	if payload == nil {
		payload = map[string]any{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", op, err)
	}

	endpoint := fmt.Sprintf("%s?op=%s&token=%s", c.baseURL, url.QueryEscape(op), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (op=%s request_id=%s)", ErrTimeout, op, requestID)
		}
		return nil, fmt.Errorf("%w: %v (op=%s request_id=%s)", ErrUnavailable, err, op, requestID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d (op=%s request_id=%s)", ErrUnavailable, resp.StatusCode, op, requestID)
	}

	var reply models.BackendReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: undecodable reply: %v (op=%s request_id=%s)", ErrUnavailable, err, op, requestID)
	}

	// A reply without a success flag decodes to false and lands here too.
	if !reply.Success {
		msg := reply.Error
		if msg == "" {
			msg = "the workout backend rejected the request"
		}
		return nil, &RejectedError{Op: op, Message: msg}
	}

	return &reply, nil
}

// SubmitBounded runs one Submit with a hard deadline: on expiry the pending
// result is discarded and the call reports ErrTimeout. Catalog refresh is
// the one bounded path; command submissions run to completion or failure.
func SubmitBounded(ctx context.Context, s Submitter, timeout time.Duration, op string, payload any) (*models.BackendReply, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := s.Submit(ctx, op, payload)
	if err != nil && !errors.Is(err, ErrTimeout) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w (op=%s)", ErrTimeout, op)
	}
	return reply, err
}
