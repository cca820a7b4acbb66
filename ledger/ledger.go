package ledger

import (
	"errors"
	"time"

	"finsim/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Record appends one immutable entry to the ledger. Positive shares record a
// buy, negative a sell. No validation happens here; Buy/Sell/AddCash are the
// validated entry points.
func Record(db *gorm.DB, userID uint, symbol string, shares int64, price float64) (*models.Transaction, error) {
	txn := models.Transaction{
		UserID:       userID,
		Symbol:       symbol,
		Shares:       shares,
		Price:        price,
		TransactedAt: time.Now(),
	}
	if err := db.Create(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// Holdings returns the net position per symbol, excluding symbols whose
// aggregate is zero or negative.
func Holdings(db *gorm.DB, userID uint) ([]models.Holding, error) {
	var holdings []models.Holding
	err := db.Model(&models.Transaction{}).
		Select("symbol, SUM(shares) AS shares").
		Where("user_id = ?", userID).
		Group("symbol").
		Having("SUM(shares) > 0").
		Order("symbol ASC").
		Scan(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

// NetShares returns the current net position for one symbol; zero when the
// user never traded it or traded back to flat.
func NetShares(db *gorm.DB, userID uint, symbol string) (int64, error) {
	var net struct {
		Shares int64
	}
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(shares), 0) AS shares").
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Scan(&net).Error
	if err != nil {
		return 0, err
	}
	return net.Shares, nil
}

// History returns the user's ledger entries, most recent first. Period may be
// "today", "week" or "month" to bound the range; anything else means all.
func History(db *gorm.DB, userID uint, page, limit int, period string) ([]models.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	switch period {
	case "today":
		query = query.Where("transacted_at >= ?", now.BeginningOfDay())
	case "week":
		query = query.Where("transacted_at >= ?", now.BeginningOfWeek())
	case "month":
		query = query.Where("transacted_at >= ?", now.BeginningOfMonth())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []models.Transaction
	err := query.
		Order("transacted_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// GetCash returns the user's current cash balance.
func GetCash(db *gorm.DB, userID uint) (float64, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return user.Cash, nil
}

// AdjustCash adds delta to the user's balance. The caller must have already
// validated that a debit cannot push the balance negative.
func AdjustCash(db *gorm.DB, userID uint, delta float64) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND is_deleted = false", userID).
		Update("cash", gorm.Expr("cash + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
