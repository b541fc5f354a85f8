package store

import (
	"sync"

	"github.com/jinzhu/gorm"

	"reposteria/internal/models"
)

// ServiceStore provides CRUD access to the billable services catalog.
type ServiceStore struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewServiceStore creates a service store backed by db.
func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

// List returns all services ordered by id.
func (s *ServiceStore) List() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Get returns the service with the given id.
func (s *ServiceStore) Get(id int) (*models.Service, error) {
	var service models.Service
	err := s.db.Where("id = ?", id).First(&service).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Create assigns the next sequential id and persists the service.
func (s *ServiceStore) Create(service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := nextID(s.db, models.Service{}.TableName())
	if err != nil {
		return err
	}
	service.ID = id
	return s.db.Create(service).Error
}

// Update replaces the stored service with the given id.
func (s *ServiceStore) Update(id int, service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	service.ID = id
	return s.db.Save(service).Error
}

// Delete removes the service with the given id and returns the deleted record.
func (s *ServiceStore) Delete(id int) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	service, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceStore) get(id int) (*models.Service, error) {
	var service models.Service
	err := s.db.Where("id = ?", id).First(&service).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}
