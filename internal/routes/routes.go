package routes

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/assist"
	"github.com/BruksfildServices01/booking-core/internal/booking"
	"github.com/BruksfildServices01/booking-core/internal/catalog"
	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/directory"
	"github.com/BruksfildServices01/booking-core/internal/handlers"
	"github.com/BruksfildServices01/booking-core/internal/middleware"
	"github.com/BruksfildServices01/booking-core/internal/notify"
	"github.com/BruksfildServices01/booking-core/internal/store"
)

// RegisterRoutes monta todo o grafo de dependências e as rotas.
// durable guarda as coleções autoritativas; staging guarda carrinho/perfil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	durable store.Store,
	staging store.Store,
) {

	ctx := context.Background()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	dispatcher := notify.NewDispatcher(notify.LogNotifier{})

	book := booking.New(ctx, durable, dispatcher)
	dir := directory.New(ctx, durable)
	cat := catalog.New(ctx, durable)
	cart := catalog.NewCart(ctx, staging)

	dir.Seed(ctx, seedProviders())
	cat.SeedServices(ctx, seedServices())

	assistClient := assist.NewClient(cfg.AssistURL, cfg.AssistTimeout)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(book, cat, cart, dir, staging)
	providerHandler := handlers.NewProviderHandler(dir)
	catalogHandler := handlers.NewCatalogHandler(cat, assistClient)
	cartHandler := handlers.NewCartHandler(cart, cat)
	profileHandler := handlers.NewProfileHandler(staging)
	assistHandler := handlers.NewAssistHandler(assistClient, staging)
	authHandler := handlers.NewAuthHandler(cfg, staging)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CATÁLOGO
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/products", catalogHandler.ListProducts)

		// ------------------------------
		// BARBEIROS
		// ------------------------------
		api.GET("/providers", providerHandler.List)
		api.GET("/providers/:id", providerHandler.Get)
		api.GET("/providers/:id/availability", appointmentHandler.Availability)
		api.POST("/providers/:id/reviews", providerHandler.AddReview)

		// ------------------------------
		// CARRINHO (staging)
		// ------------------------------
		api.GET("/cart", cartHandler.Get)
		api.POST("/cart", cartHandler.Add)
		api.DELETE("/cart/:serviceId", cartHandler.Remove)
		api.DELETE("/cart", cartHandler.Clear)

		// ------------------------------
		// PERFIL
		// ------------------------------
		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Put)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.Upcoming)
		api.GET("/appointments/history", appointmentHandler.History)
		api.PATCH("/appointments/:id", appointmentHandler.Edit)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		// ------------------------------
		// RECOMENDAÇÃO (serviço externo)
		// ------------------------------
		api.POST("/assist/recommendation", assistHandler.Recommend)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", authHandler.AdminLogin)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(cfg))
		{
			admin.GET("/session", authHandler.Session)
			admin.GET("/appointments", appointmentHandler.Agenda)

			admin.POST("/providers", providerHandler.Create)
			admin.PATCH("/providers/:id", providerHandler.Update)
			admin.PATCH("/providers/:id/availability", providerHandler.SetAvailability)

			admin.POST("/services", catalogHandler.CreateService)
			admin.PATCH("/services/:id", catalogHandler.UpdateService)

			admin.POST("/products", catalogHandler.CreateProduct)
			admin.POST("/products/:id/describe", catalogHandler.DescribeProduct)
		}
	}
}
