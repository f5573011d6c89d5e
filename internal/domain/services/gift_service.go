package services

import (
	"fmt"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceGiftService defines the gift service interface
type InterfaceGiftService interface {
	GetAllGifts() ([]models.Gift, error)
	GetGiftByID(id uint) (*models.Gift, error)
	CreateGift(gift *models.Gift) error
	UpdateGift(id uint, updates map[string]interface{}) (*models.Gift, error)
	DeleteGift(id uint) error
}

// GiftService provides gift-related operations
type GiftService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewGiftService creates a new gift service
func NewGiftService(db *gorm.DB, cfg *config.Config) InterfaceGiftService {
	return &GiftService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllGifts returns every gift, ordered by id ascending
func (s *GiftService) GetAllGifts() ([]models.Gift, error) {
	var gifts []models.Gift
	if err := s.DB.Order("id asc").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// GetGiftByID returns a single gift by id
func (s *GiftService) GetGiftByID(id uint) (*models.Gift, error) {
	var gift models.Gift
	if err := s.DB.First(&gift, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no gift found with id=%d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &gift, nil
}

// CreateGift inserts a new gift record. Referential integrity for event_id
// is left to the storage layer's foreign key, not pre-validated here.
func (s *GiftService) CreateGift(gift *models.Gift) error {
	return s.DB.Create(gift).Error
}

// UpdateGift applies the provided column updates to an existing record
func (s *GiftService) UpdateGift(id uint, updates map[string]interface{}) (*models.Gift, error) {
	gift, err := s.GetGiftByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(gift).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetGiftByID(id)
}

// DeleteGift removes a gift record
func (s *GiftService) DeleteGift(id uint) error {
	gift, err := s.GetGiftByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(gift).Error
}
