// Package auth validates bearer tokens on incoming requests.
//
// Token verification is delegated to the external identity provider. Two
// modes are supported: local validation of the provider's HS256-signed JWTs
// when a shared secret is configured, and remote validation through the
// provider's token introspection endpoint otherwise.
package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds configuration for bearer-token authentication.
type Config struct {
	// Secret is the shared HMAC secret for local JWT validation. When set,
	// tokens are verified in-process without calling the identity provider.
	Secret string `mapstructure:"secret" default:""`
	// Issuer is the expected token issuer. Checked only when non-empty.
	Issuer string `mapstructure:"issuer" default:""`
	// IntrospectURL is the identity provider's token introspection endpoint,
	// used when no shared secret is configured.
	IntrospectURL string `mapstructure:"introspect_url" default:""`
	// TimeoutSeconds is the timeout for introspection calls.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Enabled reports whether any verification mode is configured.
func (c Config) Enabled() bool {
	return c.Secret != "" || c.IntrospectURL != ""
}

// introspection is the relevant subset of an RFC 7662 introspection response.
type introspection struct {
	Active  bool   `json:"active"`
	Subject string `json:"sub"`
}

// New returns a middleware that rejects requests without a valid bearer token.
// The token subject is stored in the request locals under "subject".
func New(cfg Config) fiber.Handler {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	client := &http.Client{Timeout: time.Duration(timeout) * time.Second}

	return func(c *fiber.Ctx) error {
		if !cfg.Enabled() {
			return c.Next()
		}

		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return unauthorized(c, "missing bearer token")
		}

		var subject string
		var err error
		if cfg.Secret != "" {
			subject, err = verifyLocal(cfg, token)
		} else {
			subject, err = verifyRemote(client, cfg.IntrospectURL, token)
		}
		if err != nil {
			return unauthorized(c, "invalid token")
		}

		c.Locals("subject", subject)
		return c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// verifyLocal validates an HS256 JWT with the shared secret.
func verifyLocal(cfg Config, token string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("token validation failed: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("token has no subject: %w", err)
	}
	return subject, nil
}

// verifyRemote asks the identity provider whether the token is active.
func verifyRemote(client *http.Client, introspectURL, token string) (string, error) {
	resp, err := client.PostForm(introspectURL, url.Values{"token": {token}})
	if err != nil {
		return "", fmt.Errorf("introspection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("introspection returned status %d", resp.StatusCode)
	}

	var result introspection
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode introspection response: %w", err)
	}
	if !result.Active {
		return "", fmt.Errorf("token is not active")
	}
	return result.Subject, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
