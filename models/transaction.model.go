package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is one immutable ledger entry. Shares are signed: positive for
// a buy, negative for a sell. Holdings are always derived by summing these
// rows; there is no position table and no update or delete path.
type Transaction struct {
	gorm.Model
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Symbol       string    `gorm:"type:varchar(20);not null;index" json:"symbol"`
	Shares       int64     `gorm:"not null" json:"shares"`
	Price        float64   `gorm:"not null" json:"price"`
	TransactedAt time.Time `gorm:"not null" json:"transactedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Holding is the aggregate net position for one symbol, scanned from the
// grouped ledger query.
type Holding struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}
