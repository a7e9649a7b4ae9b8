package main

import (
	"crs/src/db"
	"crs/src/models"
	"crs/src/types"
	"crs/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func seatAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/seats", func(ctx *gin.Context) {
			var body types.CreateSeatsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
				return
			}
			db := db.GetDb()
			// The batch is all-or-nothing: one bad seat code or one
			// duplicate label rolls back every row.
			err := db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.
					Model(&models.Showtime{}).
					Where("id = ?", body.ShowtimeID).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count == 0 {
					return gorm.ErrRecordNotFound
				}
				seats := make([]models.Seat, 0, len(body.SeatNumbers))
				for _, seatNumber := range body.SeatNumbers {
					row, column, err := utils.ParseSeatNumber(seatNumber)
					if err != nil {
						return err
					}
					seats = append(seats, models.Seat{
						SeatNumber: seatNumber,
						Row:        row,
						Column:     column,
						ShowtimeID: body.ShowtimeID,
					})
				}
				return tx.Create(&seats).Error
			})
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"message": "Seats created successfully"})
		})
	return g
}
