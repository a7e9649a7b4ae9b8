package main

import (
	"crs/src/config"
	"crs/src/db"
	"crs/src/models"
	"crs/src/types"
	"crs/src/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func showtimeHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/showtimes/search", func(ctx *gin.Context) {
			date := ctx.Query("date")
			if date == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
				return
			}
			day, err := time.Parse(config.DATE_PARSE_FORMAT, date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
				return
			}
			db := db.GetDb()
			var showtimes []models.Showtime
			if err := db.
				Model(&models.Showtime{}).
				Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1)).
				Preload("Movie").
				Preload("Seats").
				Find(&showtimes).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			payload := make([]gin.H, 0, len(showtimes))
			for _, showtime := range showtimes {
				available := 0
				for _, seat := range showtime.Seats {
					if !seat.IsReserved {
						available++
					}
				}
				movieTitle := ""
				if showtime.Movie != nil {
					movieTitle = showtime.Movie.Title
				}
				payload = append(payload, gin.H{
					"id":              showtime.ID,
					"movie_title":     movieTitle,
					"start_time":      showtime.StartTime.Format(time.RFC3339),
					"available_seats": available,
				})
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}

func showtimeAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/showtimes", func(ctx *gin.Context) {
			var body types.CreateShowtimeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
				return
			}
			startTime, err := time.Parse(config.TIME_PARSE_FORMAT, body.StartTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time format. Use YYYY-MM-DD HH:MM:SS"})
				return
			}
			db := db.GetDb()
			showtime := models.Showtime{
				MovieID:   body.MovieID,
				StartTime: startTime,
				Duration:  body.Duration,
			}
			err = db.Transaction(func(tx *gorm.DB) error {
				var count int64
				if err := tx.
					Model(&models.Movie{}).
					Where("id = ?", body.MovieID).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count == 0 {
					return gorm.ErrRecordNotFound
				}
				return tx.Create(&showtime).Error
			})
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"message":     "Showtime created successfully",
				"showtime_id": showtime.ID,
				"start_time":  utils.NaturalTime(showtime.StartTime),
			})
		})
	return g
}
