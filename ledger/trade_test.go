package ledger

import (
	"testing"

	"finsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func cashOf(t *testing.T, db *gorm.DB, userID uint) float64 {
	t.Helper()
	cash, err := GetCash(db, userID)
	require.NoError(t, err)
	return cash
}

func ledgerRows(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func TestBuyThenSellScenario(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000.00)

	// Buy 10 AAA at 100.00
	_, err := Buy(db, user.ID, "AAA", 10, 100.00)
	require.NoError(t, err)
	assert.InDelta(t, 9000.00, cashOf(t, db, user.ID), 1e-9)

	holdings, err := Holdings(db, user.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, int64(10), holdings[0].Shares)

	// Sell 5 AAA at 120.00
	_, err = Sell(db, user.ID, "AAA", 5, 120.00)
	require.NoError(t, err)
	assert.InDelta(t, 9600.00, cashOf(t, db, user.ID), 1e-9)

	holdings, err = Holdings(db, user.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, int64(5), holdings[0].Shares)

	// Oversell is rejected and mutates nothing
	rowsBefore := ledgerRows(t, db, user.ID)
	_, err = Sell(db, user.ID, "AAA", 10, 120.00)
	assert.ErrorIs(t, err, ErrInsufficientShares)
	assert.InDelta(t, 9600.00, cashOf(t, db, user.ID), 1e-9)
	assert.Equal(t, rowsBefore, ledgerRows(t, db, user.ID))
}

func TestBuySellRoundTripRestoresCash(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 2500.00)

	_, err := Buy(db, user.ID, "NFLX", 4, 123.45)
	require.NoError(t, err)
	_, err = Sell(db, user.ID, "NFLX", 4, 123.45)
	require.NoError(t, err)

	assert.InDelta(t, 2500.00, cashOf(t, db, user.ID), 1e-9)

	holdings, err := Holdings(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}

func TestBuyInsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 999.99)

	_, err := Buy(db, user.ID, "AAA", 10, 100.00)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.InDelta(t, 999.99, cashOf(t, db, user.ID), 1e-9)
	assert.Equal(t, int64(0), ledgerRows(t, db, user.ID))
}

func TestSellWithNoPosition(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000.00)

	_, err := Sell(db, user.ID, "AAA", 1, 100.00)
	assert.ErrorIs(t, err, ErrNoPosition)

	// A position traded back to flat counts as not owned
	_, err = Buy(db, user.ID, "BBB", 2, 10.00)
	require.NoError(t, err)
	_, err = Sell(db, user.ID, "BBB", 2, 10.00)
	require.NoError(t, err)
	_, err = Sell(db, user.ID, "BBB", 1, 10.00)
	assert.ErrorIs(t, err, ErrNoPosition)
}

func TestTradeInputValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000.00)

	_, err := Buy(db, user.ID, "AAA", 0, 100.00)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Buy(db, user.ID, "AAA", -5, 100.00)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Buy(db, user.ID, "", 5, 100.00)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Sell(db, user.ID, "AAA", 0, 100.00)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, int64(0), ledgerRows(t, db, user.ID))
}

func TestTradeUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := Buy(db, 42, "AAA", 1, 100.00)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Sell(db, 42, "AAA", 1, 100.00)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCash(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100.00)

	balance, err := AddCash(db, user.ID, 49.50)
	require.NoError(t, err)
	assert.InDelta(t, 149.50, balance, 1e-9)
	assert.InDelta(t, 149.50, cashOf(t, db, user.ID), 1e-9)

	_, err = AddCash(db, user.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = AddCash(db, user.ID, -10)
	assert.ErrorIs(t, err, ErrValidation)

	assert.InDelta(t, 149.50, cashOf(t, db, user.ID), 1e-9)
}
