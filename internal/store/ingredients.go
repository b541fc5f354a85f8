package store

import (
	"sync"

	"github.com/jinzhu/gorm"

	"reposteria/internal/models"
)

// IngredientStore provides CRUD access to the ingredient catalog.
type IngredientStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewIngredientStore creates an ingredient store backed by db.
func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// List returns all ingredients ordered by id.
func (s *IngredientStore) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get returns the ingredient with the given id.
func (s *IngredientStore) Get(id int) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Where("id = ?", id).First(&ingredient).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Create assigns the next sequential id and persists the ingredient.
func (s *IngredientStore) Create(ingredient *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := nextID(s.db, models.Ingredient{}.TableName())
	if err != nil {
		return err
	}
	ingredient.ID = id
	return s.db.Create(ingredient).Error
}

// Update replaces the stored ingredient with the given id. The id itself is
// immutable.
func (s *IngredientStore) Update(id int, ingredient *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	ingredient.ID = id
	return s.db.Save(ingredient).Error
}

// Delete removes the ingredient with the given id and returns the deleted
// record.
func (s *IngredientStore) Delete(id int) (*models.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ingredient, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Ingredient{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientStore) get(id int) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Where("id = ?", id).First(&ingredient).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}
