package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"chefinho_back_end/internal/config"
	"chefinho_back_end/internal/database"
	"chefinho_back_end/internal/routes"
	"chefinho_back_end/internal/services"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	services.ConnectSupabase()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Servidor Chefinho lançado na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Servidor caiu:", err)
	}
}
