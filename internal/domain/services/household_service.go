package services

import (
	"fmt"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceHouseholdService defines the household service interface
type InterfaceHouseholdService interface {
	GetAllHouseholds() ([]models.Household, error)
	GetHouseholdByID(id uint) (*models.Household, error)
	CreateHousehold(household *models.Household) error
	UpdateHousehold(id uint, updates map[string]interface{}) (*models.Household, error)
	DeleteHousehold(id uint) error
}

// HouseholdService provides household-related operations
type HouseholdService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHouseholdService creates a new household service
func NewHouseholdService(db *gorm.DB, cfg *config.Config) InterfaceHouseholdService {
	return &HouseholdService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllHouseholds returns every household, ordered by id ascending
func (s *HouseholdService) GetAllHouseholds() ([]models.Household, error) {
	var households []models.Household
	if err := s.DB.Order("id asc").Find(&households).Error; err != nil {
		return nil, err
	}
	return households, nil
}

// GetHouseholdByID returns a single household by id
func (s *HouseholdService) GetHouseholdByID(id uint) (*models.Household, error) {
	var household models.Household
	if err := s.DB.First(&household, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no household found with id=%d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &household, nil
}

// CreateHousehold inserts a new household record. created_date and
// last_modified are stamped when the caller did not supply them.
func (s *HouseholdService) CreateHousehold(household *models.Household) error {
	now := time.Now().UTC()
	if household.CreatedDate.IsZero() {
		household.CreatedDate = now
		household.LastModified = now
	}
	if household.LastModified.IsZero() {
		household.LastModified = now
	}

	return s.DB.Create(household).Error
}

// UpdateHousehold applies the provided column updates to an existing record
// and refreshes last_modified.
func (s *HouseholdService) UpdateHousehold(id uint, updates map[string]interface{}) (*models.Household, error) {
	household, err := s.GetHouseholdByID(id)
	if err != nil {
		return nil, err
	}

	updates["last_modified"] = time.Now().UTC()

	if err := s.DB.Model(household).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetHouseholdByID(id)
}

// DeleteHousehold removes a household. Dependent addresses are removed in
// the same request only when cascade deletes are enabled; otherwise they are
// left orphaned, as this app has always done.
func (s *HouseholdService) DeleteHousehold(id uint) error {
	household, err := s.GetHouseholdByID(id)
	if err != nil {
		return err
	}

	if s.Config != nil && s.Config.CascadeDeletes {
		if err := s.DB.Where("household_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}
	}

	return s.DB.Delete(household).Error
}
