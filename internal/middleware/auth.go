package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"prepdeck/internal/dto"
)

const userIDKey = "auth_user_id"

// RequireUser validates the hosted auth provider's bearer token (HS256 with
// the shared JWT secret) and stashes the user id from the "sub" claim. Token
// issuance, refresh and revocation all stay with the auth provider; this is
// identity extraction only.
func RequireUser(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil {
			log.Debug().Err(err).Msg("rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token subject is not a valid user id"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// UserID returns the authenticated user id set by RequireUser.
func UserID(ctx *gin.Context) uuid.UUID {
	v, _ := ctx.Get(userIDKey)
	id, _ := v.(uuid.UUID)
	return id
}
