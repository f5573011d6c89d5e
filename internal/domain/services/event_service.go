package services

import (
	"fmt"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceEventService defines the event service interface
type InterfaceEventService interface {
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id uint) (*models.Event, error)
	CreateEvent(event *models.Event) error
	UpdateEvent(id uint, updates map[string]interface{}) (*models.Event, error)
	DeleteEvent(id uint) error
}

// EventService provides event-related operations
type EventService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEventService creates a new event service
func NewEventService(db *gorm.DB, cfg *config.Config) InterfaceEventService {
	return &EventService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllEvents returns every event, ordered by id ascending
func (s *EventService) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.Order("id asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID returns a single event by id
func (s *EventService) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no event found with id=%d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &event, nil
}

// CreateEvent inserts a new event record. Annual events may omit the date;
// the year defaults to the current calendar year.
func (s *EventService) CreateEvent(event *models.Event) error {
	if event.Year == 0 {
		event.Year = time.Now().UTC().Year()
	}

	return s.DB.Create(event).Error
}

// UpdateEvent applies the provided column updates to an existing record
func (s *EventService) UpdateEvent(id uint, updates map[string]interface{}) (*models.Event, error) {
	event, err := s.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEventByID(id)
}

// DeleteEvent removes an event record
func (s *EventService) DeleteEvent(id uint) error {
	event, err := s.GetEventByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(event).Error
}
