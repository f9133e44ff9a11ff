package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/database"
	"chefinho_back_end/internal/services"
)

// Health reporta o que está ligado. Nada aqui é check profundo: um ping no
// Redis e a presença dos clientes.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	redisOK := database.Redis != nil && database.Redis.Ping(ctx).Err() == nil

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"redis":    redisOK,
		"minio":    database.MinioClient != nil,
		"supabase": services.Supabase.CanRead(),
	})
}
