package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/betting-analytics/internal/usecase"
)

// markTransient tags err as a provider outage: it trips the circuit breaker and
// surfaces to callers as ErrDependencyUnavailable.
func markTransient(err error) error {
	return fmt.Errorf("%w: %w: %w", usecase.ErrDependencyUnavailable, errIdentityTransient, err)
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, errIdentityTransient)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
