package models

// IngredientLine references a catalog ingredient and how much of it a recipe uses.
// Only the id and quantity are stored; prices are resolved against the catalog at
// computation time, so recomputed costs always reflect current prices.
type IngredientLine struct {
	IngredientID int     `json:"idIngrediente"`
	Quantity     float64 `json:"cantidad"`
}

// ServiceLine references a catalog service and the minutes of use it bills.
type ServiceLine struct {
	ServiceID int     `json:"idServicio"`
	Minutes   float64 `json:"cantidadTiempo"`
}

// Recipe is a finished product: ingredient quantities, service minutes,
// preparation time and a target profit margin.
type Recipe struct {
	ID                  int             `gorm:"primary_key" json:"_id"`
	Name                string          `gorm:"not null" json:"nombre"`
	PrepMinutes         float64         `json:"tiempoPreparacion"`
	ProfitMarginPercent float64         `json:"porcentajeGanancia"`
	Ingredients         IngredientLines `gorm:"type:text" json:"ingredientes"`
	Services            ServiceLines    `gorm:"type:text" json:"servicios"`
	Steps               StringSlice     `gorm:"type:text" json:"pasosASeguir"`
	PhotoPath           string          `gorm:"type:text" json:"rutaFoto"`
	VideoURL            string          `gorm:"type:text" json:"videoUrl"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recetas"
}
