package main

import (
	"crs/src/lib"
	"crs/src/lib/mailer"
	"crs/src/types"
	"crs/src/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func emailHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/send-email", func(ctx *gin.Context) {
			var body types.SendEmailRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Subject and content are required"})
				return
			}
			if !utils.ValidateEmail(body.To) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient email"})
				return
			}
			id, err := mailer.GetMailer().Send(&lib.SendMailInput{
				To:      []string{body.To},
				Subject: body.Subject,
				Body:    body.Content,
			})
			if err != nil {
				log.Printf("Could not send email to %s: %s\n", body.To, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Email sent successfully", "id": id})
		})
	return g
}
