package pricing

import "reposteria/internal/models"

// RecipeWithCosts is a recipe with its computed cost breakdown attached,
// used for list and summary views.
type RecipeWithCosts struct {
	models.Recipe
	Costs Breakdown `json:"costos"`
}

// IngredientLineDetail is an ingredient line with the resolved catalog record
// attached. Details is nil when the referenced ingredient no longer exists;
// views render a placeholder in that case.
type IngredientLineDetail struct {
	models.IngredientLine
	Details *models.Ingredient `json:"detalles"`
}

// ServiceLineDetail is a service line with the resolved catalog record attached.
type ServiceLineDetail struct {
	models.ServiceLine
	Details *models.Service `json:"detalles"`
}

// CompleteRecipe is the denormalized single-recipe view: every line joined
// against the catalog, plus the aggregate cost breakdown.
type CompleteRecipe struct {
	models.Recipe
	Ingredients []IngredientLineDetail `json:"ingredientes"`
	Services    []ServiceLineDetail    `json:"servicios"`
	Costs       Breakdown              `json:"costos"`
}

// WithCosts attaches the computed cost breakdown to a recipe.
func WithCosts(recipe models.Recipe, snap Snapshot) RecipeWithCosts {
	return RecipeWithCosts{
		Recipe: recipe,
		Costs:  ComputeCosts(recipe, snap),
	}
}

// WithFullDetails joins every line of the recipe against the catalog snapshot
// and attaches the aggregate cost breakdown. Unresolved references keep their
// line but carry nil details; the view degrades, it never fails.
func WithFullDetails(recipe models.Recipe, snap Snapshot) CompleteRecipe {
	ingredients := make([]IngredientLineDetail, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		detail := IngredientLineDetail{IngredientLine: line}
		if ing, ok := snap.Ingredients[line.IngredientID]; ok {
			ing := ing
			detail.Details = &ing
		}
		ingredients = append(ingredients, detail)
	}

	services := make([]ServiceLineDetail, 0, len(recipe.Services))
	for _, line := range recipe.Services {
		detail := ServiceLineDetail{ServiceLine: line}
		if svc, ok := snap.Services[line.ServiceID]; ok {
			svc := svc
			detail.Details = &svc
		}
		services = append(services, detail)
	}

	return CompleteRecipe{
		Recipe:      recipe,
		Ingredients: ingredients,
		Services:    services,
		Costs:       ComputeCosts(recipe, snap),
	}
}
