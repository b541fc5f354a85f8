package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"reposteria/internal/live"
	"reposteria/internal/monitoring"
	"reposteria/internal/pricing"
	"reposteria/internal/store"
)

// Server represents the main API handler for the bakery backend
type Server struct {
	Router      *gin.Engine
	Ingredients *store.IngredientStore
	Services    *store.ServiceStore
	Recipes     *store.RecipeStore
	Hub         *live.Hub
	Monitor     *monitoring.Monitor
}

// NewServer creates the API server with all routes configured.
func NewServer(db *gorm.DB) *Server {
	s := &Server{
		Router:      gin.Default(),
		Ingredients: store.NewIngredientStore(db),
		Services:    store.NewServiceStore(db),
		Recipes:     store.NewRecipeStore(db),
		Hub:         live.NewHub(),
		Monitor:     monitoring.NewMonitor(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.Use(monitoring.GinMiddleware())

	s.Router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Servidor de Repostería funcionando correctamente"})
	})

	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Live change feed
	s.Router.GET("/ws", s.Hub.Handle)

	api := s.Router.Group("/api")
	{
		// Ingredient catalog
		api.GET("/ingredientes", s.ListIngredients)
		api.GET("/ingredientes/:id", s.GetIngredient)
		api.POST("/ingredientes", s.CreateIngredient)
		api.PUT("/ingredientes/:id", s.UpdateIngredient)
		api.DELETE("/ingredientes/:id", s.DeleteIngredient)

		// Billable services catalog
		api.GET("/servicios", s.ListServices)
		api.GET("/servicios/:id", s.GetService)
		api.POST("/servicios", s.CreateService)
		api.PUT("/servicios/:id", s.UpdateService)
		api.DELETE("/servicios/:id", s.DeleteService)

		// Recipes with derived costs
		api.GET("/recetas", s.ListRecipes)
		api.GET("/recetas/:id", s.GetRecipe)
		api.GET("/recetas/:id/completa", s.GetRecipeComplete)
		api.POST("/recetas", s.CreateRecipe)
		api.PUT("/recetas/:id", s.UpdateRecipe)
		api.DELETE("/recetas/:id", s.DeleteRecipe)

		// Runtime counters
		api.GET("/metrics", s.GetMetrics)
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ruta no encontrada"})
	})
}

// GetMetrics returns the runtime counters as JSON.
func (s *Server) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.Monitor.Metrics())
}

// snapshot materializes the current catalog for the pricing engine.
func (s *Server) snapshot() (pricing.Snapshot, error) {
	return store.Snapshot(s.Ingredients, s.Services)
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return 0, false
	}
	return id, true
}
