package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a pending order line owned by an email. A cart item is either
// present (pending) or absent (settled or removed); there is no settled flag.
// Price is a snapshot taken when the item was added so later menu edits do
// not change what the customer agreed to pay.
type CartItem struct {
	ID         uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	MenuItemID uuid.UUID       `json:"menuItemId" gorm:"type:char(36);not null;index"`
	Email      string          `json:"email" gorm:"size:255;not null;index"`
	Name       string          `json:"name" gorm:"size:255"`
	Image      string          `json:"image" gorm:"size:512"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
