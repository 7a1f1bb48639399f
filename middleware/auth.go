package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bistro-api/apperr"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// TokenTTL is the lifetime of an issued access token.
const TokenTTL = time.Hour

const (
	tokenIssuer = "bistro-boss"
	contextKey  = "email"
)

// Claims is the access token payload. Only the email is carried; the role is
// always re-read from the user store.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs an access token for email. Issuance does not check that
// a user with that email exists.
func GenerateToken(secret, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies signature, algorithm and expiry and returns the claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Email == "" {
		return nil, errors.New("token carries no identity")
	}
	return claims, nil
}

// AuthRequired validates the bearer token and stores its email in the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperr.New(apperr.Unauthenticated, "unauthorized access"))
			return
		}
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			abortWithError(c, apperr.New(apperr.Unauthenticated, "unauthorized access"))
			return
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			logrus.WithError(err).Debug("rejected access token")
			abortWithError(c, apperr.New(apperr.Unauthenticated, "unauthorized access"))
			return
		}

		c.Set(contextKey, claims.Email)
		c.Next()
	}
}

// AdminRequired admits only callers whose stored role is admin. It must run
// after AuthRequired and looks the role up on every request.
func AdminRequired(users store.UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		if email == "" {
			abortWithError(c, apperr.New(apperr.Unauthenticated, "unauthorized access"))
			return
		}

		user, err := users.FindUserByEmail(c.Request.Context(), email)
		if errors.Is(err, store.ErrNotFound) {
			abortWithError(c, apperr.New(apperr.Forbidden, "forbidden access"))
			return
		}
		if err != nil {
			logrus.WithError(err).WithField("email", email).Error("admin role lookup failed")
			abortWithError(c, apperr.Wrap(apperr.UpstreamFailure, "user store unavailable", err))
			return
		}
		if !user.IsAdmin() {
			abortWithError(c, apperr.New(apperr.Forbidden, "forbidden access"))
			return
		}
		c.Next()
	}
}

// GetEmail returns the email attached by AuthRequired, or "".
func GetEmail(c *gin.Context) string {
	v, _ := c.Get(contextKey)
	email, _ := v.(string)
	return email
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}
