package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reposteria/internal/live"
	"reposteria/internal/models"
	"reposteria/internal/store"
)

// ingredientPayload is the write-endpoint body. Pointer fields distinguish
// absent values from zero values so required-field validation can reject
// incomplete requests before anything reaches the stores.
type ingredientPayload struct {
	Nombre          *string  `json:"nombre"`
	UnidadMedida    *string  `json:"unidadMedida"`
	Cantidad        *float64 `json:"cantidad"`
	PrecioPorUnidad *float64 `json:"precioPorUnidad"`
	ImagenURL       string   `json:"imagenUrl"`
}

func (p *ingredientPayload) validate() string {
	switch {
	case p.Nombre == nil || *p.Nombre == "":
		return "El campo nombre es obligatorio"
	case p.UnidadMedida == nil || *p.UnidadMedida == "":
		return "El campo unidadMedida es obligatorio"
	case p.Cantidad == nil:
		return "El campo cantidad es obligatorio"
	case *p.Cantidad < 0:
		return "El campo cantidad no puede ser negativo"
	case p.PrecioPorUnidad == nil:
		return "El campo precioPorUnidad es obligatorio"
	case *p.PrecioPorUnidad < 0:
		return "El campo precioPorUnidad no puede ser negativo"
	}
	return ""
}

func (p *ingredientPayload) toModel() models.Ingredient {
	return models.Ingredient{
		Name:         *p.Nombre,
		Unit:         *p.UnidadMedida,
		Stock:        *p.Cantidad,
		PricePerUnit: *p.PrecioPorUnidad,
		ImageURL:     p.ImagenURL,
	}
}

// ListIngredients handles GET /api/ingredientes
func (s *Server) ListIngredients(c *gin.Context) {
	ingredients, err := s.Ingredients.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los ingredientes", "detalles": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GetIngredient handles GET /api/ingredientes/:id
func (s *Server) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ingredient, err := s.Ingredients.Get(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingrediente no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el ingrediente", "detalles": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// CreateIngredient handles POST /api/ingredientes
func (s *Server) CreateIngredient(c *gin.Context) {
	var payload ingredientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ingredient := payload.toModel()
	if err := s.Ingredients.Create(&ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el ingrediente", "detalles": err.Error()})
		return
	}

	s.Monitor.Incr("ingredientes_creados")
	s.Hub.Broadcast(live.Event{Entity: "ingrediente", Action: "creado", ID: ingredient.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Ingrediente creado exitosamente", "ingrediente": ingredient})
}

// UpdateIngredient handles PUT /api/ingredientes/:id
func (s *Server) UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload ingredientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ingredient := payload.toModel()
	err := s.Ingredients.Update(id, &ingredient)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingrediente no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el ingrediente", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "ingrediente", Action: "actualizado", ID: id})
	c.JSON(http.StatusOK, gin.H{"message": "Ingrediente actualizado exitosamente", "ingrediente": ingredient})
}

// DeleteIngredient handles DELETE /api/ingredientes/:id
func (s *Server) DeleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ingredient, err := s.Ingredients.Delete(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingrediente no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el ingrediente", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "ingrediente", Action: "eliminado", ID: id})
	c.JSON(http.StatusOK, gin.H{
		"message":              "Ingrediente eliminado exitosamente",
		"ingredienteEliminado": gin.H{"_id": ingredient.ID, "nombre": ingredient.Name},
	})
}
