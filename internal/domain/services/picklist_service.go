package services

import (
	"fmt"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfacePicklistService defines the picklist service interface
type InterfacePicklistService interface {
	GetDefaultPicklists() (*models.Picklists, error)
}

// PicklistService serves the read-only picklist configuration
type PicklistService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPicklistService creates a new picklist service
func NewPicklistService(db *gorm.DB, cfg *config.Config) InterfacePicklistService {
	return &PicklistService{
		DB:     db,
		Config: cfg,
	}
}

// GetDefaultPicklists returns the singleton picklist row (version 1).
// A missing row is a configuration error, not a normal empty result.
func (s *PicklistService) GetDefaultPicklists() (*models.Picklists, error) {
	var picklists models.Picklists
	if err := s.DB.First(&picklists, models.DefaultPicklistVersion).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no picklist values found for version=%d: %w",
				models.DefaultPicklistVersion, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &picklists, nil
}
