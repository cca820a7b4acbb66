package utils

import (
	"finsim/database"
	"finsim/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logAudit logs ledger audit events with timestamp
func logAudit(message string) {
	log.Printf("[LEDGER-AUDIT %s] %s", time.Now().Format(time.RFC3339), message)
}

// auditLedger sweeps the ledger for states the trade workflows should make
// impossible: a symbol sold below zero net shares, or a cash balance below
// zero. Findings are logged for operator follow-up; nothing is mutated.
func auditLedger() {
	db := database.Database.Db

	var oversold []struct {
		UserID uint
		Symbol string
		Shares int64
	}
	err := db.Model(&models.Transaction{}).
		Select("user_id, symbol, SUM(shares) AS shares").
		Group("user_id, symbol").
		Having("SUM(shares) < 0").
		Scan(&oversold).Error
	if err != nil {
		logAudit("Error scanning positions: " + err.Error())
		return
	}
	for _, p := range oversold {
		logAudit(fmt.Sprintf("Negative position detected: user %d symbol %s (net %d)", p.UserID, p.Symbol, p.Shares))
	}

	var overdrawn []models.User
	if err := db.Where("cash < 0 AND is_deleted = false").Find(&overdrawn).Error; err != nil {
		logAudit("Error scanning balances: " + err.Error())
		return
	}
	for _, u := range overdrawn {
		logAudit(fmt.Sprintf("Negative cash detected: user %d (cash %.2f)", u.ID, u.Cash))
	}

	if len(oversold) == 0 && len(overdrawn) == 0 {
		logAudit("Ledger clean.")
	}
}

// InitializeLedgerAudit schedules the nightly ledger sweep.
func InitializeLedgerAudit() *cron.Cron {
	c := cron.New()

	// Nightly, after midnight
	if _, err := c.AddFunc("15 0 * * *", auditLedger); err != nil {
		logAudit("Failed to schedule ledger audit: " + err.Error())
		return c
	}

	c.Start()
	logAudit("Ledger audit scheduled.")
	return c
}
