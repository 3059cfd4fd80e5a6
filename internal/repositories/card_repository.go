package repositories

import (
	"errors"
	"fmt"

	"lifeos-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound = errors.New("card not found")
)

// cardRepository implements CardRepositoryInterface
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new card
func (r *cardRepository) Create(card *models.Card) error {
	if err := r.db.Create(card).Error; err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}
	return nil
}

// GetByID retrieves a card by ID
func (r *cardRepository) GetByID(id uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

// List retrieves all active cards
func (r *cardRepository) List() ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("active = ?", true).
		Order("name ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// ListShared retrieves active cards flagged as shared with the partner
func (r *cardRepository) ListShared() ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Where("active = ? AND shared_with_partner = ?", true, true).
		Order("name ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list shared cards: %w", err)
	}
	return cards, nil
}

// Update updates a card
func (r *cardRepository) Update(card *models.Card) error {
	result := r.db.Model(&models.Card{}).
		Where("id = ?", card.ID).
		Updates(card)

	if result.Error != nil {
		return fmt.Errorf("failed to update card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete marks a card inactive
func (r *cardRepository) Delete(id uuid.UUID) error {
	result := r.db.Model(&models.Card{}).
		Where("id = ?", id).
		Update("active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
