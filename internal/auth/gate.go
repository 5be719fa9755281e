// Package auth verifies Cognito-issued bearer tokens and classifies each
// request as anonymous, authenticated or administrator.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// devToken is the fixed sentinel the development bypass accepts. The bypass
// is a complete authentication hole and is reachable only when the gate is
// constructed with devMode set.
const devToken = "dev-mode-token"

// Identity is the verified caller.
type Identity struct {
	Username string
	Email    string
	Groups   []string
	IsAdmin  bool
}

// Gate verifies bearer tokens against the user pool's key set and issuer.
type Gate struct {
	keys       *keySet
	issuer     string
	adminGroup string
	devMode    bool
}

// Options configures a Gate. Region and UserPoolID locate the pool; DevMode
// must only ever be set for local development. Issuer and JWKSURL override
// the Cognito defaults, mainly for tests.
type Options struct {
	Region     string
	UserPoolID string
	AdminGroup string
	DevMode    bool
	Issuer     string
	JWKSURL    string
}

// New builds the gate. The JWKS URL and issuer follow Cognito's layout
// unless overridden.
func New(opts Options) *Gate {
	issuer := opts.Issuer
	if issuer == "" {
		issuer = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", opts.Region, opts.UserPoolID)
	}
	jwksURL := opts.JWKSURL
	if jwksURL == "" {
		jwksURL = issuer + "/.well-known/jwks.json"
	}
	adminGroup := opts.AdminGroup
	if adminGroup == "" {
		adminGroup = "Admins"
	}
	return &Gate{
		keys:       newKeySet(jwksURL),
		issuer:     issuer,
		adminGroup: adminGroup,
		devMode:    opts.DevMode,
	}
}

// Verify checks the token's signature and issuer and extracts the caller's
// identity. A nil error means the token is valid; admin classification is
// the caller's to check.
func (g *Gate) Verify(ctx context.Context, token string) (*Identity, error) {
	if g.devMode && token == devToken {
		return &Identity{
			Username: "dev-admin",
			Email:    "admin@localhost",
			Groups:   []string{g.adminGroup},
			IsAdmin:  true,
		}, nil
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("auth: token has no kid header")
		}
		return g.keys.key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: token verification failed: %w", err)
	}

	ident := &Identity{
		Username: stringClaim(claims, "cognito:username"),
		Email:    stringClaim(claims, "email"),
		Groups:   groupClaims(claims),
	}
	if ident.Username == "" {
		ident.Username = stringClaim(claims, "sub")
	}
	for _, group := range ident.Groups {
		if group == g.adminGroup {
			ident.IsAdmin = true
			break
		}
	}
	return ident, nil
}

// ExtractBearer pulls the token out of an Authorization header value.
// Returns "" when the header is absent or not a bearer scheme.
func ExtractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}

func groupClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["cognito:groups"].([]interface{})
	if !ok {
		return nil
	}
	groups := make([]string, 0, len(raw))
	for _, g := range raw {
		if s, ok := g.(string); ok {
			groups = append(groups, s)
		}
	}
	return groups
}
