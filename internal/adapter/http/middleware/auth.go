package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"taskhub/pkg/apierrors"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims are the claims of identity provider access tokens. The subject is
// the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the HS256 bearer token issued by the identity
// provider and stores its subject as the user id.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		userID, err := ParseUserID(ExtractBearerToken(c.GetHeader("Authorization")), key)
		if err != nil {
			zap.L().Debug("rejecting request", zap.String("path", c.Request.URL.Path), zap.Error(err))
			switch {
			case errors.Is(err, ErrMissingToken):
				apierrors.Abort(c, http.StatusUnauthorized, apierrors.MsgMissingToken)
			case errors.Is(err, ErrExpiredToken):
				apierrors.Abort(c, http.StatusUnauthorized, apierrors.MsgExpiredToken)
			default:
				apierrors.Abort(c, http.StatusUnauthorized, apierrors.MsgInvalidToken)
			}
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// ParseUserID validates tokenString and returns its subject.
func ParseUserID(tokenString string, secret []byte) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

func ExtractBearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
