// Package zoom provisions video meetings through the Zoom REST API using server-to-server OAuth.
package zoom

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/constant"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL           = "https://api.zoom.us/v2"
	defaultOAuthURL          = "https://zoom.us/oauth/token"
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerSecond = 10
	maxErrorBody             = 4096
)

var (
	// ErrAuth covers token acquisition failures, including missing credentials.
	ErrAuth          = errors.New("zoom authentication failed")
	ErrNotConfigured = fmt.Errorf("%w: credentials not configured", ErrAuth)
)

// APIError is a non-2xx answer from a meeting endpoint.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zoom %s failed with status %d: %s", e.Operation, e.StatusCode, e.Body)
}

type Provisioner interface {
	CreateMeeting(ctx context.Context, req MeetingRequest) (*Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID string, update MeetingUpdate) error
	// DeleteMeeting treats an already deleted meeting as success.
	DeleteMeeting(ctx context.Context, meetingID string) error
}

type Client struct {
	accountID    string
	clientID     string
	clientSecret string
	baseURL      string
	oauthURL     string
	hostEmail    string
	timeout      time.Duration
	httpClient   *http.Client
	limiter      *rate.Limiter
	tokens       *TokenCache
	otel         otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Provisioner {
	return NewClient(cfg, otl, &http.Client{})
}

// NewClient builds a client on top of the given HTTP client.
func NewClient(cfg *config.Config, otl otel.Otel, httpClient *http.Client) *Client {
	zoomCfg := cfg.External.Zoom

	baseURL := strings.TrimRight(zoomCfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	oauthURL := zoomCfg.OAuthURL
	if oauthURL == "" {
		oauthURL = defaultOAuthURL
	}

	timeout := time.Duration(zoomCfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rps := zoomCfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		accountID:    zoomCfg.AccountID,
		clientID:     zoomCfg.ClientID,
		clientSecret: zoomCfg.ClientSecret,
		baseURL:      baseURL,
		oauthURL:     oauthURL,
		hostEmail:    zoomCfg.HostEmail,
		timeout:      timeout,
		httpClient:   httpClient,
		limiter:      rate.NewLimiter(rate.Limit(rps), 1),
		tokens:       NewTokenCache(nil),
		otel:         otl,
	}
}

func (c *Client) CreateMeeting(ctx context.Context, req MeetingRequest) (meeting *Meeting, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelZoomScopeName, constant.OtelZoomScopeName+".CreateMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := newCreateBody(req, c.hostEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare meeting: %w", err)
	}

	var resp meetingResponse

	status, err := c.do(ctx, "create meeting", http.MethodPost, "/users/me/meetings", body, &resp)
	if err != nil {
		return nil, err
	}

	scope.SetAttribute("http.status_code", status)

	return &Meeting{
		JoinURL:   resp.JoinURL,
		MeetingID: resp.ID.String(),
		Password:  resp.Password,
		HostURL:   resp.StartURL,
	}, nil
}

func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, update MeetingUpdate) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelZoomScopeName, constant.OtelZoomScopeName+".UpdateMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("zoom.meeting_id", meetingID)

	body := updateMeetingBody{Duration: update.DurationMinutes}

	if update.Start != nil {
		start := update.Start.UTC().Format(startTimeLayout)
		body.StartTime = &start
	}

	_, err = c.do(ctx, "update meeting", http.MethodPatch, "/meetings/"+url.PathEscape(meetingID), body, nil)

	return err
}

func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelZoomScopeName, constant.OtelZoomScopeName+".DeleteMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("zoom.meeting_id", meetingID)

	_, err = c.do(ctx, "delete meeting", http.MethodDelete, "/meetings/"+url.PathEscape(meetingID), nil, nil)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		log.Info().Str("meetingId", meetingID).Msg("zoom meeting already deleted")

		return nil
	}

	return err
}

// do sends an authenticated request. A 401 drops the cached token and retries once.
func (c *Client) do(ctx context.Context, operation, method, path string, payload, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body []byte

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to encode %s request: %w", operation, err)
		}

		body = encoded
	}

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Get(ctx, c.fetchToken)
		if err != nil {
			return 0, err
		}

		status, data, err := c.send(ctx, method, c.baseURL+path, token, body)
		if err != nil {
			return 0, fmt.Errorf("zoom %s request failed: %w", operation, err)
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			log.Warn().Str("operation", operation).Msg("zoom rejected access token, refreshing")
			c.tokens.Invalidate()

			continue
		}

		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return status, &APIError{Operation: operation, StatusCode: status, Body: truncate(data)}
		}

		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return status, fmt.Errorf("failed to decode %s response: %w", operation, err)
			}
		}

		return status, nil
	}
}

func (c *Client) send(ctx context.Context, method, target, token string, body []byte) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, data, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, time.Duration, error) {
	if c.accountID == "" || c.clientID == "" || c.clientSecret == "" {
		return "", 0, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("grant_type", "account_credentials")
	query.Set("account_id", c.accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("%w: read token response: %v", ErrAuth, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("body", truncate(data)).Msg("zoom token request rejected")

		return "", 0, fmt.Errorf("%w: token endpoint returned %d", ErrAuth, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(data, &token); err != nil || token.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: malformed token response", ErrAuth)
	}

	return token.AccessToken, time.Duration(token.ExpiresIn) * time.Second, nil
}

func truncate(data []byte) string {
	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}

	return string(data)
}
