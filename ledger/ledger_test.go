package ledger

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"finsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with a shared cache keeps GORM's pooled
	// connections on the same database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Session{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, cash float64) *models.User {
	t.Helper()

	user := models.User{
		Username: "tester",
		Password: "irrelevant",
		Cash:     cash,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestRecordAndNetShares(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000)

	_, err := Record(db, user.ID, "AAPL", 10, 150.00)
	require.NoError(t, err)
	_, err = Record(db, user.ID, "AAPL", -3, 160.00)
	require.NoError(t, err)

	net, err := NetShares(db, user.ID, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int64(7), net)

	// Never traded
	net, err = NetShares(db, user.ID, "MSFT")
	require.NoError(t, err)
	assert.Equal(t, int64(0), net)
}

func TestHoldingsExcludesNonPositiveAggregates(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000)

	// AAPL nets to zero, NFLX stays positive
	_, err := Record(db, user.ID, "AAPL", 10, 150.00)
	require.NoError(t, err)
	_, err = Record(db, user.ID, "AAPL", -10, 155.00)
	require.NoError(t, err)
	_, err = Record(db, user.ID, "NFLX", 5, 400.00)
	require.NoError(t, err)

	holdings, err := Holdings(db, user.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "NFLX", holdings[0].Symbol)
	assert.Equal(t, int64(5), holdings[0].Shares)
}

func TestHoldingsDoNotLeakBetweenUsers(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, 10000)

	bob := models.User{Username: "bob", Password: "irrelevant", Cash: 10000}
	require.NoError(t, db.Create(&bob).Error)

	_, err := Record(db, alice.ID, "AAPL", 10, 150.00)
	require.NoError(t, err)

	holdings, err := Holdings(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}

func TestHistoryOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000)

	base := time.Now().Add(-3 * time.Hour)
	for i := 0; i < 5; i++ {
		txn := models.Transaction{
			UserID:       user.ID,
			Symbol:       fmt.Sprintf("SYM%d", i),
			Shares:       1,
			Price:        10,
			TransactedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&txn).Error)
	}

	txns, total, err := History(db, user.ID, 1, 3, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, txns, 3)

	// Most recent first
	assert.Equal(t, "SYM4", txns[0].Symbol)
	assert.Equal(t, "SYM3", txns[1].Symbol)
	assert.Equal(t, "SYM2", txns[2].Symbol)

	txns, _, err = History(db, user.ID, 2, 3, "")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "SYM1", txns[0].Symbol)
}

func TestHistoryPeriodFilter(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10000)

	old := models.Transaction{
		UserID:       user.ID,
		Symbol:       "OLD",
		Shares:       1,
		Price:        10,
		TransactedAt: time.Now().AddDate(0, -2, 0),
	}
	require.NoError(t, db.Create(&old).Error)

	recent := models.Transaction{
		UserID:       user.ID,
		Symbol:       "NEW",
		Shares:       1,
		Price:        10,
		TransactedAt: time.Now(),
	}
	require.NoError(t, db.Create(&recent).Error)

	txns, total, err := History(db, user.ID, 1, 10, "today")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txns, 1)
	assert.Equal(t, "NEW", txns[0].Symbol)

	_, total, err = History(db, user.ID, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGetCashAndAdjustCash(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 500.50)

	cash, err := GetCash(db, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 500.50, cash, 1e-9)

	require.NoError(t, AdjustCash(db, user.ID, 100))
	require.NoError(t, AdjustCash(db, user.ID, -50.25))

	cash, err = GetCash(db, user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 550.25, cash, 1e-9)
}

func TestGetCashUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetCash(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, AdjustCash(db, 999, 10), ErrNotFound)
}
