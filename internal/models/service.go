package models

// Service is a consumable utility resource (electricity, gas, water)
// billed per minute of use during preparation.
type Service struct {
	ID            int     `gorm:"primary_key" json:"_id"`
	Name          string  `gorm:"not null" json:"nombre"`
	CostPerMinute float64 `json:"consumoPorMinuto"`
	ImageURL      string  `gorm:"type:text" json:"imagenUrl"`
}

// TableName sets the table name for Service
func (Service) TableName() string {
	return "servicios"
}
