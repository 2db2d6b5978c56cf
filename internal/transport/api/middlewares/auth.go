package middlewares

import (
	"errors"
	"net/http"

	"github.com/IEVN1001-20001021/api-paso/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentUserIDKey = "currentUserID"

// checkAuthorization extracts the bearer token from the Authorization header
// and validates it. Returns ErrTokenNotExist when no token was sent.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*jwt.Token, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	tokenStr := tokenHeader[len(bearer):]
	token, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return token, nil
}

// AuthRequired rejects unauthenticated requests with 403, distinguishing a
// missing, expired and invalid token. On success the current user id is
// stored under CurrentUserIDKey.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenNotExist):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token required"})
			case errors.Is(err, tokens.ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token expired"})
			default:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		userClaim, ok := token.Claims.(*tokens.UserClaims)
		if !ok {
			_ = c.AbortWithError(http.StatusInternalServerError, errors.New("invalid jwt claims type")).
				SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentUserIDKey, userClaim.ID)
		c.Next()
	}
}
