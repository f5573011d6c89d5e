package services

import (
	"fmt"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"
	"github.com/brystmar/greeting-cards/internal/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceCardService defines the card service interface
type InterfaceCardService interface {
	GetAllCards() ([]models.Card, error)
	GetCardByID(id uint) (*models.Card, error)
	CreateCard(card *models.Card) error
	UpdateCard(id uint, updates map[string]interface{}) (*models.Card, error)
	DeleteCard(id uint) error
}

// CardService provides card-related operations
type CardService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCardService creates a new card service
func NewCardService(db *gorm.DB, cfg *config.Config) InterfaceCardService {
	return &CardService{
		DB:     db,
		Config: cfg,
	}
}

// today returns the current UTC date, truncated to midnight
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetAllCards returns every card, ordered by id ascending
func (s *CardService) GetAllCards() ([]models.Card, error) {
	var cards []models.Card
	if err := s.DB.Order("id asc").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCardByID returns a single card by id
func (s *CardService) GetCardByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := s.DB.First(&card, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no card found with id=%d: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, err
	}
	return &card, nil
}

// CreateCard inserts a new card record. A card created directly in the Sent
// status without an explicit date_sent gets stamped with today's date.
func (s *CardService) CreateCard(card *models.Card) error {
	if card.Status == "" {
		card.Status = models.CardStatusNew
	}

	if card.Status.IsSent() && card.DateSent == nil {
		d := today()
		card.DateSent = &d
		logger.Info("Card created as Sent with no date_sent; stamping %s", d.Format(models.DateLayout))
	}

	return s.DB.Create(card).Error
}

// UpdateCard applies the provided column updates to an existing record.
// The one side effect in this system lives here: when the stored status is
// anything other than Sent and the update moves it to Sent (compared
// case-insensitively) without supplying date_sent, date_sent is stamped with
// today's date. An explicitly supplied date_sent always wins.
func (s *CardService) UpdateCard(id uint, updates map[string]interface{}) (*models.Card, error) {
	card, err := s.GetCardByID(id)
	if err != nil {
		return nil, err
	}

	if raw, ok := updates["status"]; ok {
		newStatus := toCardStatus(raw)
		if !card.Status.IsSent() && newStatus.IsSent() {
			if _, supplied := updates["date_sent"]; !supplied {
				d := today()
				updates["date_sent"] = d
				logger.Info("Card id=%d transitioned to Sent with no date_sent; stamping %s", id, d.Format(models.DateLayout))
			}
		}
	}

	if err := s.DB.Model(card).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetCardByID(id)
}

// toCardStatus converts an updates-map status value to a CardStatus
func toCardStatus(raw interface{}) models.CardStatus {
	switch v := raw.(type) {
	case models.CardStatus:
		return v
	case string:
		return models.CardStatus(v)
	default:
		return ""
	}
}

// DeleteCard removes a card record
func (s *CardService) DeleteCard(id uint) error {
	card, err := s.GetCardByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(card).Error
}
