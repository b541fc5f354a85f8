package models

// Ingredient is a raw material in the catalog, priced per unit of measure.
// JSON field names match the wire schema the frontend already consumes.
type Ingredient struct {
	ID           int     `gorm:"primary_key" json:"_id"`
	Name         string  `gorm:"not null" json:"nombre"`
	Unit         string  `gorm:"not null" json:"unidadMedida"`
	Stock        float64 `json:"cantidad"`
	PricePerUnit float64 `json:"precioPorUnidad"`
	ImageURL     string  `gorm:"type:text" json:"imagenUrl"`
}

// TableName sets the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredientes"
}
