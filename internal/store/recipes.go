package store

import (
	"sync"

	"github.com/jinzhu/gorm"

	"reposteria/internal/models"
)

// RecipeStore provides CRUD access to recipes.
type RecipeStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewRecipeStore creates a recipe store backed by db.
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// List returns all recipes ordered by id.
func (s *RecipeStore) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns the recipe with the given id.
func (s *RecipeStore) Get(id int) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ?", id).First(&recipe).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create assigns the next sequential id and persists the recipe.
func (s *RecipeStore) Create(recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := nextID(s.db, models.Recipe{}.TableName())
	if err != nil {
		return err
	}
	recipe.ID = id
	return s.db.Create(recipe).Error
}

// Update replaces the stored recipe with the given id.
func (s *RecipeStore) Update(id int, recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	recipe.ID = id
	return s.db.Save(recipe).Error
}

// Delete removes the recipe with the given id and returns the deleted record.
func (s *RecipeStore) Delete(id int) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeStore) get(id int) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ?", id).First(&recipe).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
