package middlewares

import (
	"crs/src/config"
	"crs/src/db"
	"crs/src/lib"
	"crs/src/models"
	"crs/src/types"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and loads the caller into the
// request context. Each token failure mode gets its own response:
// missing and expired and revoked tokens are 401, a malformed or
// badly signed token is 422.
func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return config.JWTSecret(), nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		if errors.Is(err, jwt.ErrTokenExpired) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "The token has expired"})
			return
		}
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid token"})
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid token"})
		return
	}

	if rd := lib.GetRedisClient(); rd != nil && claims.ID != "" {
		n, err := rd.Exists(ctx, fmt.Sprintf("revoked:%s", claims.ID)).Result()
		if err == nil && n > 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "The token has been revoked"})
			return
		}
	}

	uid, err := strconv.Atoi(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid token"})
		return
	}
	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where(&models.User{ID: uint(uid)}).
		First(&user).
		Error; err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ctx.Set("id", user.ID)
	ctx.Set("username", user.Username)
	ctx.Set("email", user.Email)
	ctx.Set("role", string(user.Role))
	ctx.Set("jti", claims.ID)
	if claims.ExpiresAt != nil {
		ctx.Set("exp", claims.ExpiresAt.Time)
	}
}
