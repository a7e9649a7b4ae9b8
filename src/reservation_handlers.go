package main

import (
	"crs/src/common"
	"crs/src/db"
	"crs/src/models"
	"crs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var reservations []models.Reservation
			if err := db.
				Model(&models.Reservation{}).
				Where(&models.Reservation{UserID: userId}).
				Preload("Seats").
				Preload("Payment").
				Preload("Showtime").
				Find(&reservations).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reservations, "count": len(reservations)})
		}).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			reservationId, status, err := common.CreateReservation(userId, body.ShowtimeID)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{
				"message":        "Reservation created successfully",
				"reservation_id": reservationId,
			})
		}).
		PUT("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
				return
			}
			userId := ctx.GetUint("id")
			result, status, err := common.UpdateReservation(&common.UpdateReservationInput{
				ReservationID: params.ID,
				UserID:        userId,
				ShowtimeID:    body.ShowtimeID,
				SeatIDs:       body.SeatIDs,
				PaymentMethod: types.PaymentMethod(body.PaymentMethod),
				PaymentToken:  body.PaymentToken,
			})
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, result)
		}).
		DELETE("/reservations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			status, err := common.CancelReservation(userId, params.ID)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"message": "Reservation cancelled successfully"})
		})
	return g
}
