package main

import (
	"bytes"
	"crs/src/config"
	awslib "crs/src/lib/aws"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func allowedPosterFile(header *multipart.FileHeader) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	return ext, config.ALLOWED_POSTER_EXTENSIONS[ext]
}

func allowedExtensionList() string {
	exts := make([]string, 0, len(config.ALLOWED_POSTER_EXTENSIONS))
	for ext := range config.ALLOWED_POSTER_EXTENSIONS {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

func uploadAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/upload-poster", func(ctx *gin.Context) {
			header, err := ctx.FormFile("file")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
				return
			}
			if header.Filename == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
				return
			}
			ext, ok := allowedPosterFile(header)
			if !ok {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Allowed types: " + allowedExtensionList()})
				return
			}
			if header.Size > config.MAX_UPLOAD_SIZE {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB upload limit"})
				return
			}
			file, err := header.Open()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
				return
			}
			defer file.Close()
			data, err := io.ReadAll(io.LimitReader(file, config.MAX_UPLOAD_SIZE+1))
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
				return
			}
			if int64(len(data)) > config.MAX_UPLOAD_SIZE {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB upload limit"})
				return
			}
			cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is not a valid image"})
				return
			}

			base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
			key := fmt.Sprintf("movie_posters/%s-%s.%s", slug.Make(base), uuid.NewString()[:8], ext)
			url, err := awslib.S3UploadPoster(key, bytes.NewReader(data), fmt.Sprintf("image/%s", format))
			if err != nil {
				log.Printf("Poster upload failed: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"url":       url,
				"public_id": key,
				"format":    format,
				"width":     cfg.Width,
				"height":    cfg.Height,
			})
		})
	return g
}
