package controllers

import (
	"context"
	"crs/src/db"
	"crs/src/lib"
	"crs/src/lib/mailer"
	"crs/src/models"
	"crs/src/types"
	"crs/src/utils"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRegister(ctx *gin.Context) (status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, errors.New(utils.BindingErrorMessage(err))
	}
	if !utils.ValidateEmail(body.Email) {
		return http.StatusBadRequest, errors.New("Invalid email address")
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("username = ?", body.Username).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("Username already exists")
		}
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", body.Email).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("Email already exists")
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     body.Username,
			Email:        body.Email,
			PasswordHash: hash,
			Role:         types.ROLE_USER,
		}
		if err := tx.Create(&user).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return errors.New("could not complete registration")
		}
		return nil
	})
	if err != nil {
		return http.StatusBadRequest, err
	}

	// Welcome mail is best-effort.
	if _, err := mailer.GetMailer().Send(&lib.SendMailInput{
		To:      []string{body.Email},
		Subject: "Welcome to Our Service",
		Body:    fmt.Sprintf("Hello %s, thank you for registering!", body.Username),
	}); err != nil {
		log.Printf("Could not send welcome email to %s: %s\n", body.Email, err.Error())
	}

	return http.StatusCreated, nil
}

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err := db.
		Model(&models.User{}).
		Where("username = ?", body.Username).
		First(&user).
		Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("Invalid credentials")
	}
	if !utils.CheckPassword(user.PasswordHash, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("Invalid credentials")
	}

	jwt, err := utils.GenerateJWT(user.Username, user.ID)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, errors.New("Internal server error")
	}

	if rd := lib.GetRedisClient(); rd != nil {
		cached, err := json.Marshal(&user)
		if err == nil {
			if err := rd.Set(context.Background(), fmt.Sprintf("%d:user", user.ID), cached, 24*time.Hour).Err(); err != nil {
				log.Printf("[redis] Error updating user cache: %s\n", err.Error())
			}
		}
	}

	return &jwt, http.StatusOK, nil
}

// AuthLogout denylists the token's jti until its natural expiry; the
// auth middleware rejects denylisted tokens as revoked.
func AuthLogout(ctx *gin.Context) (status int, err error) {
	jti := ctx.GetString("jti")
	if jti == "" {
		return http.StatusBadRequest, errors.New("Invalid token")
	}
	rd := lib.GetRedisClient()
	if rd == nil {
		return http.StatusInternalServerError, errors.New("Internal server error")
	}
	ttl := time.Hour
	if exp, ok := ctx.Get("exp"); ok {
		if expTime, ok := exp.(time.Time); ok {
			ttl = time.Until(expTime)
		}
	}
	if err := rd.Set(context.Background(), fmt.Sprintf("revoked:%s", jti), "1", ttl).Err(); err != nil {
		log.Printf("[redis] Error revoking token: %s\n", err.Error())
		return http.StatusInternalServerError, errors.New("Internal server error")
	}
	return http.StatusOK, nil
}

// PromoteUser grants the admin role. The original system exposed this
// without authentication; it is admin-gated here like every other
// administrative operation.
func PromoteUser(ctx *gin.Context) (username string, status int, err error) {
	var params struct {
		UserID uint `uri:"user_id" binding:"required"`
	}
	if err := ctx.ShouldBindUri(&params); err != nil {
		return "", http.StatusBadRequest, err
	}
	db := db.GetDb()
	var user models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.User{}).
			Where(&models.User{ID: params.UserID}).
			First(&user).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return errors.New("could not complete transaction")
		}
		if err := tx.
			Model(&models.User{}).
			Where(&models.User{ID: params.UserID}).
			Update("role", types.ROLE_ADMIN).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", http.StatusNotFound, errors.New("Resource not found")
		}
		return "", http.StatusBadRequest, err
	}
	return user.Username, http.StatusOK, nil
}
