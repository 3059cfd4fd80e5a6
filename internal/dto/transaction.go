package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the payload for recording a transaction
type CreateTransactionRequest struct {
	Description      string     `json:"description" validate:"required,max=255"`
	Amount           float64    `json:"amount" validate:"required,gt=0"`
	Kind             string     `json:"kind" validate:"required,oneof=debit credit"`
	OccurredOn       time.Time  `json:"occurred_on" validate:"required"`
	Category         string     `json:"category" validate:"omitempty,max=50"`
	AccountID        *uuid.UUID `json:"account_id"`
	CardID           *uuid.UUID `json:"card_id"`
	Shared           bool       `json:"shared"`
	InstallmentCount int        `json:"installment_count" validate:"omitempty,min=1,max=60"`
}

// BulkShareRequest is the payload for flagging several transactions shared
type BulkShareRequest struct {
	TransactionIDs []uuid.UUID `json:"transaction_ids" validate:"required,min=1,dive,required"`
}
