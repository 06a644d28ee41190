package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Gateway string    `gorm:"type:varchar(20);not null"`
	Amount  int64     `gorm:"not null"`
	Status  string    `gorm:"type:varchar(20);not null;index"`

	TransactionRef     *string `gorm:"type:varchar(100);uniqueIndex"`
	CorrelationToken   *string `gorm:"type:varchar(100);uniqueIndex"`
	ResponseCode       *string `gorm:"type:varchar(10)"`
	BankCode           *string `gorm:"type:varchar(50)"`
	CardType           *string `gorm:"type:varchar(50)"`
	PayDate            *string `gorm:"type:varchar(20)"`
	SecureHash         *string `gorm:"type:varchar(255)"`
	GatewayTxnID       *string `gorm:"type:varchar(100);index"`
	AccountNumber      *string `gorm:"type:varchar(50)"`
	SubAccount         *string `gorm:"type:varchar(50)"`
	TransactionContent *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Order Order `gorm:"foreignKey:OrderID"`
}
