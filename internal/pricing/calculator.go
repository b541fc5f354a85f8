// Package pricing derives production cost, sale price and profit for a recipe
// from a point-in-time catalog snapshot. All computations are pure: they read
// only their arguments and allocate only their results, so they are safe to
// call concurrently.
package pricing

import (
	"math"

	"reposteria/internal/models"
)

// LaborRatePerMinute is the fixed labor cost applied to every minute of
// preparation time. It is a pricing constant, not derived from any catalog.
const LaborRatePerMinute = 16.7

// Snapshot is an immutable view of the catalog at computation time. Callers
// materialize it once and pass it in; the calculator never reads ambient state.
type Snapshot struct {
	Ingredients map[int]models.Ingredient
	Services    map[int]models.Service
}

// Breakdown holds the derived cost, price and profit figures for one recipe.
// JSON field names match the wire schema the frontend already consumes.
type Breakdown struct {
	IngredientCost      float64 `json:"costoIngredientes"`
	ServiceCost         float64 `json:"costoServicios"`
	LaborCost           float64 `json:"costoTiempoPreparacion"`
	ProductionCost      float64 `json:"costoProduccion"`
	SalePrice           float64 `json:"precioVenta"`
	Profit              float64 `json:"ganancia"`
	ProfitMarginPercent float64 `json:"porcentajeGanancia"`
}

// ComputeCosts computes the full cost breakdown for a recipe against the given
// catalog snapshot. Line items whose ingredient or service id does not resolve
// contribute zero; a stale reference degrades the figure, it never fails the
// computation.
//
// Each monetary field is rounded to 2 decimals independently (half away from
// zero). Profit is round(unrounded salePrice - unrounded productionCost), so it
// may differ from the subtraction of the rounded fields by up to 0.01. That
// matches the pricing behavior consumers already rely on.
func ComputeCosts(recipe models.Recipe, snap Snapshot) Breakdown {
	var ingredientCost float64
	for _, line := range recipe.Ingredients {
		if ing, ok := snap.Ingredients[line.IngredientID]; ok {
			ingredientCost += ing.PricePerUnit * line.Quantity
		}
	}

	var serviceCost float64
	for _, line := range recipe.Services {
		if svc, ok := snap.Services[line.ServiceID]; ok {
			serviceCost += svc.CostPerMinute * line.Minutes
		}
	}

	laborCost := recipe.PrepMinutes * LaborRatePerMinute
	productionCost := ingredientCost + serviceCost + laborCost
	salePrice := productionCost * (1 + recipe.ProfitMarginPercent/100)
	profit := salePrice - productionCost

	return Breakdown{
		IngredientCost:      round2(ingredientCost),
		ServiceCost:         round2(serviceCost),
		LaborCost:           round2(laborCost),
		ProductionCost:      round2(productionCost),
		SalePrice:           round2(salePrice),
		Profit:              round2(profit),
		ProfitMarginPercent: recipe.ProfitMarginPercent,
	}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
