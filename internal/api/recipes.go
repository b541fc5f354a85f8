package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reposteria/internal/live"
	"reposteria/internal/models"
	"reposteria/internal/monitoring"
	"reposteria/internal/pricing"
	"reposteria/internal/store"
)

type recipePayload struct {
	Nombre             *string                 `json:"nombre"`
	TiempoPreparacion  *float64                `json:"tiempoPreparacion"`
	PorcentajeGanancia *float64                `json:"porcentajeGanancia"`
	Ingredientes       []models.IngredientLine `json:"ingredientes"`
	Servicios          []models.ServiceLine    `json:"servicios"`
	PasosASeguir       []string                `json:"pasosASeguir"`
	RutaFoto           string                  `json:"rutaFoto"`
	VideoURL           string                  `json:"videoUrl"`
}

func (p *recipePayload) validate() string {
	switch {
	case p.Nombre == nil || *p.Nombre == "":
		return "El campo nombre es obligatorio"
	case p.TiempoPreparacion == nil:
		return "El campo tiempoPreparacion es obligatorio"
	case *p.TiempoPreparacion < 0:
		return "El campo tiempoPreparacion no puede ser negativo"
	case p.PorcentajeGanancia != nil && (*p.PorcentajeGanancia < 0 || *p.PorcentajeGanancia > 100):
		return "El campo porcentajeGanancia debe estar entre 0 y 100"
	}
	for _, line := range p.Ingredientes {
		if line.Quantity < 0 {
			return "La cantidad de un ingrediente no puede ser negativa"
		}
	}
	for _, line := range p.Servicios {
		if line.Minutes < 0 {
			return "El tiempo de un servicio no puede ser negativo"
		}
	}
	return ""
}

// toModel applies the documented defaults: absent margin, lines and steps
// become 0 and empty sequences.
func (p *recipePayload) toModel() models.Recipe {
	recipe := models.Recipe{
		Name:        *p.Nombre,
		PrepMinutes: *p.TiempoPreparacion,
		Ingredients: models.IngredientLines{},
		Services:    models.ServiceLines{},
		Steps:       models.StringSlice{},
		PhotoPath:   p.RutaFoto,
		VideoURL:    p.VideoURL,
	}
	if p.PorcentajeGanancia != nil {
		recipe.ProfitMarginPercent = *p.PorcentajeGanancia
	}
	if len(p.Ingredientes) > 0 {
		recipe.Ingredients = models.IngredientLines(p.Ingredientes)
	}
	if len(p.Servicios) > 0 {
		recipe.Services = models.ServiceLines(p.Servicios)
	}
	if len(p.PasosASeguir) > 0 {
		recipe.Steps = models.StringSlice(p.PasosASeguir)
	}
	return recipe
}

// ListRecipes handles GET /api/recetas. Every recipe carries its cost
// breakdown computed against the current catalog.
func (s *Server) ListRecipes(c *gin.Context) {
	recipes, err := s.Recipes.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las recetas", "detalles": err.Error()})
		return
	}

	snap, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular los costos", "detalles": err.Error()})
		return
	}

	enriched := make([]pricing.RecipeWithCosts, 0, len(recipes))
	for _, recipe := range recipes {
		enriched = append(enriched, pricing.WithCosts(recipe, snap))
		monitoring.CountCostComputation()
	}
	c.JSON(http.StatusOK, enriched)
}

// GetRecipe handles GET /api/recetas/:id
func (s *Server) GetRecipe(c *gin.Context) {
	recipe, snap, ok := s.recipeWithSnapshot(c)
	if !ok {
		return
	}

	monitoring.CountCostComputation()
	c.JSON(http.StatusOK, pricing.WithCosts(*recipe, snap))
}

// GetRecipeComplete handles GET /api/recetas/:id/completa. Lines are joined
// against the catalog; stale references keep their line with null detalles.
func (s *Server) GetRecipeComplete(c *gin.Context) {
	recipe, snap, ok := s.recipeWithSnapshot(c)
	if !ok {
		return
	}

	monitoring.CountCostComputation()
	c.JSON(http.StatusOK, pricing.WithFullDetails(*recipe, snap))
}

// CreateRecipe handles POST /api/recetas
func (s *Server) CreateRecipe(c *gin.Context) {
	var payload recipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	recipe := payload.toModel()
	if err := s.Recipes.Create(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la receta", "detalles": err.Error()})
		return
	}

	snap, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular los costos", "detalles": err.Error()})
		return
	}

	s.Monitor.Incr("recetas_creadas")
	s.Hub.Broadcast(live.Event{Entity: "receta", Action: "creada", ID: recipe.ID})
	monitoring.CountCostComputation()
	c.JSON(http.StatusCreated, gin.H{"message": "Receta creada exitosamente", "receta": pricing.WithCosts(recipe, snap)})
}

// UpdateRecipe handles PUT /api/recetas/:id
func (s *Server) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload recipePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	recipe := payload.toModel()
	err := s.Recipes.Update(id, &recipe)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receta no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la receta", "detalles": err.Error()})
		return
	}

	snap, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular los costos", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "receta", Action: "actualizada", ID: id})
	monitoring.CountCostComputation()
	c.JSON(http.StatusOK, gin.H{"message": "Receta actualizada exitosamente", "receta": pricing.WithCosts(recipe, snap)})
}

// DeleteRecipe handles DELETE /api/recetas/:id
func (s *Server) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := s.Recipes.Delete(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receta no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la receta", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "receta", Action: "eliminada", ID: id})
	c.JSON(http.StatusOK, gin.H{
		"message":         "Receta eliminada exitosamente",
		"recetaEliminada": gin.H{"_id": recipe.ID, "nombre": recipe.Name},
	})
}

// recipeWithSnapshot loads the recipe from the path id together with a catalog
// snapshot, writing the error response itself when either fails.
func (s *Server) recipeWithSnapshot(c *gin.Context) (*models.Recipe, pricing.Snapshot, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, pricing.Snapshot{}, false
	}

	recipe, err := s.Recipes.Get(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receta no encontrada"})
		return nil, pricing.Snapshot{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la receta", "detalles": err.Error()})
		return nil, pricing.Snapshot{}, false
	}

	snap, err := s.snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular los costos", "detalles": err.Error()})
		return nil, pricing.Snapshot{}, false
	}
	return recipe, snap, true
}
