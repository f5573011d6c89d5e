package services

import (
	"fmt"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAddressService defines the address service interface
type InterfaceAddressService interface {
	GetAllAddresses() ([]models.Address, error)
	GetAddressByID(id uint) (*models.Address, error)
	CreateAddress(address *models.Address) error
	UpdateAddress(id uint, updates map[string]interface{}) (*models.Address, error)
	DeleteAddress(id uint) error
}

// AddressService provides address-related operations
type AddressService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAddressService creates a new address service
func NewAddressService(db *gorm.DB, cfg *config.Config) InterfaceAddressService {
	return &AddressService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllAddresses returns every address, ordered by id ascending
func (s *AddressService) GetAllAddresses() ([]models.Address, error) {
	var addresses []models.Address
	if err := s.DB.Order("id asc").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetAddressByID returns a single address by id
func (s *AddressService) GetAddressByID(id uint) (*models.Address, error) {
	var address models.Address
	if err := s.DB.First(&address, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no address found with id=%d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &address, nil
}

// CreateAddress inserts a new address record, stamping created_date and
// last_modified when absent.
func (s *AddressService) CreateAddress(address *models.Address) error {
	now := time.Now().UTC()
	if address.CreatedDate.IsZero() {
		address.CreatedDate = now
		address.LastModified = now
	}
	if address.LastModified.IsZero() {
		address.LastModified = now
	}

	return s.DB.Create(address).Error
}

// UpdateAddress applies the provided column updates to an existing record
// and refreshes last_modified.
func (s *AddressService) UpdateAddress(id uint, updates map[string]interface{}) (*models.Address, error) {
	address, err := s.GetAddressByID(id)
	if err != nil {
		return nil, err
	}

	updates["last_modified"] = time.Now().UTC()

	if err := s.DB.Model(address).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAddressByID(id)
}

// DeleteAddress removes an address record
func (s *AddressService) DeleteAddress(id uint) error {
	address, err := s.GetAddressByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(address).Error
}
