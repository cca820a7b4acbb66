package ledger

import (
	"errors"

	"finsim/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockUser loads the user row FOR UPDATE so the validate-and-write sequence
// of a trade is serialized per user. Two concurrent buys or sells from the
// same user cannot both validate against a stale balance or holding.
// SQLite has no FOR UPDATE and serializes writers itself, so the clause is
// only added on postgres.
func lockUser(tx *gorm.DB, userID uint) (*models.User, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var user models.User
	err := query.
		Where("id = ? AND is_deleted = false", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Buy records a purchase of shares at price and debits the cost from cash,
// as one atomic transaction. The caller resolves the quote; affordability is
// checked here against the locked balance.
func Buy(db *gorm.DB, userID uint, symbol string, shares int64, price float64) (*models.Transaction, error) {
	if symbol == "" || shares <= 0 || price <= 0 {
		return nil, ErrValidation
	}

	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		cost := price * float64(shares)
		if user.Cash < cost {
			return ErrInsufficientFunds
		}

		txn, err = Record(tx, userID, symbol, shares, price)
		if err != nil {
			return err
		}

		return tx.Model(user).Update("cash", user.Cash-cost).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Sell records a sale of shares at price and credits the proceeds, as one
// atomic transaction. The net holding is re-read under the user lock so a
// concurrent sell cannot oversell the position.
func Sell(db *gorm.DB, userID uint, symbol string, shares int64, price float64) (*models.Transaction, error) {
	if symbol == "" || shares <= 0 || price <= 0 {
		return nil, ErrValidation
	}

	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}

		owned, err := NetShares(tx, userID, symbol)
		if err != nil {
			return err
		}
		if owned <= 0 {
			return ErrNoPosition
		}
		if shares > owned {
			return ErrInsufficientShares
		}

		txn, err = Record(tx, userID, symbol, -shares, price)
		if err != nil {
			return err
		}

		proceeds := price * float64(shares)
		return tx.Model(user).Update("cash", user.Cash+proceeds).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// AddCash credits amount to the user's balance atomically.
func AddCash(db *gorm.DB, userID uint, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrValidation
	}

	var balance float64
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		balance = user.Cash + amount
		return tx.Model(user).Update("cash", balance).Error
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}
