package identity

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/betting-analytics/internal/domain/user"
	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
	"github.com/riskibarqy/betting-analytics/internal/platform/resilience"
	"github.com/riskibarqy/betting-analytics/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"
)

const maxIntrospectBody = 1 << 20

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	errIdentityTransient = crerr.New("identity provider transient failure")
)

type Config struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against the identity provider's
// introspection endpoint.
type Client struct {
	httpClient    *http.Client
	timeout       time.Duration
	introspectURL string
	adminKey      string
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
	flight        singleflight.Group
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient:    httpClient,
		timeout:       timeout,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		logger:        logger,
		breaker:       resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "token is required")
	}

	if err := ctx.Err(); err != nil {
		return user.Principal{}, crerr.Wrap(err, "verify access token")
	}

	// Concurrent requests carrying the same token share one introspection call.
	// The shared call is detached from any single caller so one disconnect
	// neither aborts it for the others nor counts against the breaker.
	ch := c.flight.DoChan(hashToken(token), func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		var principal user.Principal
		callErr := c.breaker.Execute(func() error {
			var err error
			principal, err = c.introspect(callCtx, token)
			return err
		}, isCircuitFailure)
		return principal, callErr
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return user.Principal{}, crerr.Wrap(ctx.Err(), "verify access token")
	case res = <-ch:
	}

	v, err := res.Val, res.Err
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "identity circuit breaker rejected request", "state", string(c.breaker.State()))
			return user.Principal{}, crerr.Wrap(usecase.ErrDependencyUnavailable, "identity provider circuit open")
		}
		return user.Principal{}, err
	}

	return v.(user.Principal), nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := json.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return user.Principal{}, crerr.Wrap(err, "request introspection")
		}
		return user.Principal{}, markTransient(crerr.Wrap(err, "request introspection"))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxIntrospectBody)); err != nil {
		return user.Principal{}, markTransient(crerr.Wrap(err, "read introspect response"))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "introspection denied")
	case resp.StatusCode == http.StatusForbidden:
		// The provider refused our admin key, not the caller's token.
		c.logger.ErrorContext(ctx, "identity provider rejected admin key", "status_code", resp.StatusCode)
		return user.Principal{}, crerr.Wrap(usecase.ErrDependencyUnavailable, "identity provider forbidden")
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "identity introspection unavailable", "status_code", resp.StatusCode)
		return user.Principal{}, markTransient(crerr.Newf("identity introspection failed with status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "identity introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "identity introspection status %d", resp.StatusCode)
	}

	var decoded introspectResponse
	if err := json.Unmarshal(buf.B, &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(usecase.ErrDependencyUnavailable, "unmarshal introspect response")
	}
	if !decoded.Active {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "inactive token")
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "introspect response has empty user_id")
	}

	return user.Principal{
		UserID: strings.TrimSpace(decoded.UserID),
		Email:  strings.TrimSpace(decoded.Email),
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
