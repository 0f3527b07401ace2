package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an immutable record of a settled checkout. Created exactly once
// per checkout; never updated or deleted through the API. The sum of a user's
// payment prices is their total spend.
type Payment struct {
	ID            uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	Email         string          `json:"email" gorm:"size:255;not null;index"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	TransactionID string          `json:"transactionId" gorm:"size:255"`
	CartItemIDs   []uuid.UUID     `json:"cartIds" gorm:"type:json;serializer:json"`
	Status        string          `json:"status" gorm:"size:50"`
	Date          time.Time       `json:"date"`
}

// BeforeCreate sets UUID and date before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	return nil
}
