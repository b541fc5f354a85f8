package store

import (
	"reposteria/internal/models"
	"reposteria/internal/pricing"
)

// Snapshot materializes the current catalog into the immutable view the
// pricing engine computes against.
func Snapshot(ingredients *IngredientStore, services *ServiceStore) (pricing.Snapshot, error) {
	ings, err := ingredients.List()
	if err != nil {
		return pricing.Snapshot{}, err
	}
	svcs, err := services.List()
	if err != nil {
		return pricing.Snapshot{}, err
	}

	snap := pricing.Snapshot{
		Ingredients: make(map[int]models.Ingredient, len(ings)),
		Services:    make(map[int]models.Service, len(svcs)),
	}
	for _, ing := range ings {
		snap.Ingredients[ing.ID] = ing
	}
	for _, svc := range svcs {
		snap.Services[svc.ID] = svc
	}
	return snap, nil
}
