package entities

import (
	"time"

	"github.com/google/uuid"
)

// TokenRate is the cash-to-token conversion rate: 2000 VND buys one token.
const TokenRate = 2000

// TokenTransactionType represents a token transaction type
type TokenTransactionType string

const (
	TokenTransactionTypeTopUp  TokenTransactionType = "topup"
	TokenTransactionTypeSpend  TokenTransactionType = "spend"
	TokenTransactionTypeReward TokenTransactionType = "reward"
)

// TokenTransaction represents a token-balance change. For top-ups it is
// created alongside the order and only read during reconciliation.
type TokenTransaction struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"userId"`
	Type        TokenTransactionType `json:"type"`
	AmountToken int64                `json:"amountToken"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// TokensForCash converts a cash amount to tokens, rounding down.
func TokensForCash(amount int64) int64 {
	return amount / TokenRate
}
