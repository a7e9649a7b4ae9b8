package main

import (
	"crs/src/config"
	"crs/src/controllers"
	"crs/src/db"
	"crs/src/models"
	"crs/src/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/admin", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"message": fmt.Sprintf("Welcome Admin %s", ctx.GetString("username")),
				"admin":   true,
				"email":   ctx.GetString("email"),
				"user_id": ctx.GetUint("id"),
			})
		}).
		POST("/users/promote/:user_id", func(ctx *gin.Context) {
			username, status, err := controllers.PromoteUser(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"message": fmt.Sprintf("User %s promoted to admin", username)})
		}).
		GET("/admin/report", func(ctx *gin.Context) {
			db := db.GetDb()
			var totalReservations int64
			if err := db.Model(&models.Reservation{}).Count(&totalReservations).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			var reservedSeats int64
			if err := db.Table("reservation_seats").Count(&reservedSeats).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			// Revenue is a flat fee per reservation, not a sum over
			// payment amounts.
			ctx.JSON(http.StatusOK, gin.H{
				"total_reservations":   totalReservations,
				"capacity_utilization": reservedSeats,
				"revenue":              float64(totalReservations) * config.REPORT_FLAT_FEE,
			})
		}).
		GET("/admin/reservations", func(ctx *gin.Context) {
			db := db.GetDb()
			var reservations []models.Reservation
			if err := db.
				Model(&models.Reservation{}).
				Preload("Seats").
				Preload("Showtime").
				Find(&reservations).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			payload := make([]gin.H, 0, len(reservations))
			for _, reservation := range reservations {
				seatNumbers := make([]string, 0, len(reservation.Seats))
				for _, seat := range reservation.Seats {
					seatNumbers = append(seatNumbers, seat.SeatNumber)
				}
				showtime := ""
				if reservation.Showtime != nil {
					showtime = utils.NaturalTime(reservation.Showtime.StartTime)
				}
				payload = append(payload, gin.H{
					"reservation_id": reservation.ID,
					"user_id":        reservation.UserID,
					"showtime":       showtime,
					"seats":          seatNumbers,
					"total_amount":   float64(len(reservation.Seats)) * config.REPORT_FLAT_FEE,
				})
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}
