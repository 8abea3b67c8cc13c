package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/booking-core/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-core/internal/db"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	"github.com/BruksfildServices01/booking-core/internal/routes"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	// Coleções autoritativas: Postgres quando configurado, senão memória
	// (sessão local de usuário único).
	var durable store.Store
	if cfg.DBUrl != "" {
		durable = store.NewGormStore(dbpkg.NewDB(cfg))
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		durable = store.NewMemoryStore()
	}

	// Staging (carrinho/perfil): Redis quando configurado.
	staging := durable
	if cfg.RedisAddr != "" {
		staging = store.NewRedisStore(cfg.RedisAddr)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, durable, staging)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
