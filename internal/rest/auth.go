package rest

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"

	identityKey = "identity"
)

var errMissingToken = errors.New("missing bearer token")

// Claims are the token claims issued by the identity service.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the verified caller of a request.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Authenticator verifies HS256 bearer tokens. It never issues them.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Parse validates the token and extracts the caller identity.
func (a *Authenticator) Parse(tokenString string) (*Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	} else if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	subject := claims.UserID
	if subject == "" {
		subject = claims.Subject
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	return &Identity{UserID: userID, Role: claims.Role}, nil
}

// Require only lets through requests carrying a valid token with one of roles.
func (a *Authenticator) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			identity, err := a.Parse(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			if len(roles) > 0 && !slices.Contains(roles, identity.Role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			c.Set(identityKey, *identity)

			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errMissingToken
	}

	return strings.TrimSpace(parts[1]), nil
}

// identityFrom returns the caller set by Require.
func identityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
