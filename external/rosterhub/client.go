// Package rosterhub is an HTTP client for the roster API. It is the
// data source for the console roster screen and any headless tooling
// that manages squads remotely.
package rosterhub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/clubdesk/internal/domain/player"
	"github.com/riskibarqy/clubdesk/internal/platform/logging"
	"github.com/riskibarqy/clubdesk/internal/platform/resilience"
	"github.com/riskibarqy/clubdesk/internal/usecase"
)

const (
	defaultTimeout    = 20 * time.Second
	maxBodyBytes      = 6 << 20
	abbreviateBodyLen = 512
)

var errRosterHubTransient = crerr.New("rosterhub transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// ListPlayers fetches the roster for a team. Concurrent calls for the
// same team collapse into a single upstream request.
func (c *Client) ListPlayers(ctx context.Context, teamID string) ([]player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}

	path := "/v1/teams/" + teamID + "/players"
	out, err, _ := c.flight.Do("list:"+path, func() (any, error) {
		return c.do(ctx, http.MethodGet, path, nil)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope listPlayersEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode roster payload: %w", err)
	}
	if envelope.Error != nil {
		return nil, mapEnvelopeError(envelope.Error)
	}

	players := make([]player.Player, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		players = append(players, item.toDomain())
	}

	return players, nil
}

// CreatePlayer submits one new player. Mutations never go through the
// singleflight group: two distinct submits must both reach the server.
// Only transport failures before a response arrives are retried; once
// the server has answered, whatever it said is final.
func (c *Client) CreatePlayer(ctx context.Context, teamID string, in usecase.CreatePlayerInput) (player.Player, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body := createPlayerPayload{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Position:     string(in.Position),
		JerseyNumber: in.JerseyNumber,
		Status:       string(in.Status),
		Nationality:  in.Nationality,
	}
	if in.DateOfBirth != nil {
		body.DateOfBirth = in.DateOfBirth.UTC().Format("2006-01-02")
	}

	encoded, err := sonic.Marshal(body)
	if err != nil {
		return player.Player{}, fmt.Errorf("marshal create player payload: %w", err)
	}
	_, _ = buf.Write(encoded)

	raw, err := c.do(ctx, http.MethodPost, "/v1/teams/"+teamID+"/players", buf.Bytes())
	if err != nil {
		return player.Player{}, err
	}

	var envelope createPlayerEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return player.Player{}, fmt.Errorf("decode created player payload: %w", err)
	}
	if envelope.Error != nil {
		return player.Player{}, mapEnvelopeError(envelope.Error)
	}

	return envelope.Data.toDomain(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "rosterhub circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: roster service is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, method, c.baseURL+path, body)
	if c.circuitEnabled {
		if err != nil && isRosterHubCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	// Reads can replay freely. A mutation that reached the server must
	// not be sent again, even on a retryable status: the server may have
	// applied it before failing, and replaying would apply it twice.
	replaySafe := method == http.MethodGet

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = strings.NewReader(string(body))
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		responseReceived := false
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errRosterHubTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			responseReceived = true
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errRosterHubTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: roster service status=%d body=%s", errRosterHubTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, decodeErrorBody(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		if responseReceived && !replaySafe {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("roster service request failed")
	}
	c.logger.WarnContext(ctx, "rosterhub request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRosterHubCircuitFailure(err error) bool {
	return crerr.Is(err, errRosterHubTransient)
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func decodeErrorBody(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		return mapEnvelopeError(envelope.Error)
	}
	return fmt.Errorf("roster service status=%d body=%s", status, abbreviateBody(raw))
}

func mapEnvelopeError(body *errorBody) error {
	switch body.Status {
	case "INVALID_ARGUMENT":
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, body.Message)
	case "NOT_FOUND":
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, body.Message)
	case "UNAUTHENTICATED":
		return fmt.Errorf("%w: %s", usecase.ErrUnauthorized, body.Message)
	case "UNAVAILABLE":
		return fmt.Errorf("%w: %s", usecase.ErrDependencyUnavailable, body.Message)
	default:
		return fmt.Errorf("roster service error: %s", body.Message)
	}
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	value := strings.TrimSpace(string(raw))
	if len(value) <= abbreviateBodyLen {
		return value
	}
	return value[:abbreviateBodyLen] + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

type listPlayersEnvelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       []playerPayload `json:"data"`
	Error      *errorBody      `json:"error"`
}

type createPlayerEnvelope struct {
	APIVersion string        `json:"apiVersion"`
	Data       playerPayload `json:"data"`
	Error      *errorBody    `json:"error"`
}

type errorEnvelope struct {
	Error *errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type playerPayload struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Status       string `json:"status"`
	DateOfBirth  string `json:"dateOfBirth"`
	Nationality  string `json:"nationality"`
	CreatedAt    string `json:"createdAt"`
}

type createPlayerPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email,omitempty"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Status       string `json:"status,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

func (p playerPayload) toDomain() player.Player {
	out := player.Player{
		ID:           p.ID,
		TeamID:       p.TeamID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Position:     player.Position(p.Position),
		JerseyNumber: p.JerseyNumber,
		Status:       player.Status(p.Status),
		Nationality:  p.Nationality,
	}
	if parsed, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
		out.DateOfBirth = &parsed
	}
	if parsed, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		out.CreatedAt = parsed
	}
	return out
}
