package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reposteria/internal/live"
	"reposteria/internal/models"
	"reposteria/internal/store"
)

type servicePayload struct {
	Nombre           *string  `json:"nombre"`
	ConsumoPorMinuto *float64 `json:"consumoPorMinuto"`
	ImagenURL        string   `json:"imagenUrl"`
}

func (p *servicePayload) validate() string {
	switch {
	case p.Nombre == nil || *p.Nombre == "":
		return "El campo nombre es obligatorio"
	case p.ConsumoPorMinuto == nil:
		return "El campo consumoPorMinuto es obligatorio"
	case *p.ConsumoPorMinuto < 0:
		return "El campo consumoPorMinuto no puede ser negativo"
	}
	return ""
}

func (p *servicePayload) toModel() models.Service {
	return models.Service{
		Name:          *p.Nombre,
		CostPerMinute: *p.ConsumoPorMinuto,
		ImageURL:      p.ImagenURL,
	}
}

// ListServices handles GET /api/servicios
func (s *Server) ListServices(c *gin.Context) {
	services, err := s.Services.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los servicios", "detalles": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/servicios/:id
func (s *Server) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	service, err := s.Services.Get(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Servicio no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el servicio", "detalles": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService handles POST /api/servicios
func (s *Server) CreateService(c *gin.Context) {
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	service := payload.toModel()
	if err := s.Services.Create(&service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el servicio", "detalles": err.Error()})
		return
	}

	s.Monitor.Incr("servicios_creados")
	s.Hub.Broadcast(live.Event{Entity: "servicio", Action: "creado", ID: service.ID})
	c.JSON(http.StatusCreated, gin.H{"message": "Servicio creado exitosamente", "servicio": service})
}

// UpdateService handles PUT /api/servicios/:id
func (s *Server) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}
	if msg := payload.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	service := payload.toModel()
	err := s.Services.Update(id, &service)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Servicio no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el servicio", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "servicio", Action: "actualizado", ID: id})
	c.JSON(http.StatusOK, gin.H{"message": "Servicio actualizado exitosamente", "servicio": service})
}

// DeleteService handles DELETE /api/servicios/:id
func (s *Server) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	service, err := s.Services.Delete(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Servicio no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el servicio", "detalles": err.Error()})
		return
	}

	s.Hub.Broadcast(live.Event{Entity: "servicio", Action: "eliminado", ID: id})
	c.JSON(http.StatusOK, gin.H{
		"message":           "Servicio eliminado exitosamente",
		"servicioEliminado": gin.H{"_id": service.ID, "nombre": service.Name},
	})
}
