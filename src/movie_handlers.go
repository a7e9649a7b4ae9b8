package main

import (
	"crs/src/config"
	"crs/src/db"
	"crs/src/models"
	"crs/src/types"
	"crs/src/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func movieJSON(movie *models.Movie) gin.H {
	return gin.H{
		"id":                   movie.ID,
		"title":                movie.Title,
		"description":          movie.Description,
		"poster_url":           movie.PosterURL,
		"genre":                movie.Genre,
		"release_date":         movie.ReleaseDate.Format(config.DATE_PARSE_FORMAT),
		"natural_release_date": utils.NaturalTime(movie.ReleaseDate),
	}
}

func movieHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/movies", func(ctx *gin.Context) {
			page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
			if err != nil || page < 1 {
				page = 1
			}
			perPage, err := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))
			if err != nil || perPage < 1 {
				perPage = 10
			}
			db := db.GetDb()
			var total int64
			if err := db.Model(&models.Movie{}).Count(&total).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			var movies []models.Movie
			if err := db.
				Model(&models.Movie{}).
				Offset((page-1)*perPage).
				Limit(perPage).
				Find(&movies).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			payload := make([]gin.H, 0, len(movies))
			for i := range movies {
				payload = append(payload, movieJSON(&movies[i]))
			}
			ctx.JSON(http.StatusOK, gin.H{
				"movies":       payload,
				"total_pages":  utils.TotalPages(total, perPage),
				"current_page": page,
			})
		}).
		GET("/movies/search", func(ctx *gin.Context) {
			genre := ctx.Query("genre")
			title := ctx.Query("title")

			db := db.GetDb()
			query := db.Model(&models.Movie{})
			if genre != "" {
				query = query.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(genre)+"%")
			}
			if title != "" {
				query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(title)+"%")
			}
			var movies []models.Movie
			if err := query.Find(&movies).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			payload := make([]gin.H, 0, len(movies))
			for i := range movies {
				payload = append(payload, movieJSON(&movies[i]))
			}
			ctx.JSON(http.StatusOK, payload)
		})
	return g
}

func movieAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/movies", func(ctx *gin.Context) {
			var body types.CreateMovieRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
				return
			}
			releaseDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.ReleaseDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid release date format. Use YYYY-MM-DD"})
				return
			}
			movie := models.Movie{
				Title:       body.Title,
				Description: body.Description,
				PosterURL:   body.PosterURL,
				Genre:       body.Genre,
				ReleaseDate: releaseDate,
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&movie).Error
			}); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"message": "Movie created successfully", "movie_id": movie.ID})
		}).
		PUT("/movies/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateMovieRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.BindingErrorMessage(err)})
				return
			}
			db := db.GetDb()
			var movie models.Movie
			if err := db.
				Model(&models.Movie{}).
				Where(&models.Movie{ID: params.ID}).
				First(&movie).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				return
			}
			updates := map[string]any{}
			if body.Title != nil {
				updates["title"] = *body.Title
			}
			if body.Description != nil {
				updates["description"] = *body.Description
			}
			if body.PosterURL != nil {
				updates["poster_url"] = *body.PosterURL
			}
			if body.Genre != nil {
				updates["genre"] = *body.Genre
			}
			if body.ReleaseDate != nil {
				releaseDate, err := time.Parse(config.DATE_PARSE_FORMAT, *body.ReleaseDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid release date format. Use YYYY-MM-DD"})
					return
				}
				updates["release_date"] = releaseDate
			}
			if len(updates) > 0 {
				if err := db.Model(&movie).Updates(updates).Error; err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Movie updated successfully"})
		}).
		DELETE("/movies/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var movie models.Movie
			if err := db.
				Model(&models.Movie{}).
				Where(&models.Movie{ID: params.ID}).
				First(&movie).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
				return
			}
			if err := db.Delete(&movie).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
		})
	return g
}
