package database

import (
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedTransactions inserts demo consumers, merchants and unsettled
// transactions. Existing rows are left untouched.
func SeedTransactions(db *gorm.DB) error {
	consumers := []models.Consumer{
		{
			ConsumerID: "consumer_1",
			FirstName:  "Alice",
			LastName:   "Walker",
			Address1:   "100 Main St",
			City:       "Austin",
			State:      "TX",
			Zip:        "78701",
			HomePhone:  "5125550101",
		},
		{
			ConsumerID:  "consumer_2",
			FirstName:   "Bob",
			LastName:    "Stone",
			Address1:    "22 Elm Ave",
			Address2:    "Apt 4",
			City:        "Denver",
			State:       "CO",
			Zip:         "80202",
			MobilePhone: "3035550199",
		},
	}

	merchants := []models.Merchant{
		{
			MerchantID:     "merchant_1",
			Address1:       "500 Market St",
			City:           "San Francisco",
			State:          "CA",
			AchTransType:   "POS",
			AchStatementID: "DEMO STORE",
		},
	}

	now := time.Now().UTC()
	transactions := []models.Transaction{
		{
			TransactionID: "txn_1001",
			Stamp:         &now,
			TotalAmount:   decimal.RequireFromString("25.00"),
			ConsumerID:    "consumer_1",
			MerchantID:    "merchant_1",
			TerminalID:    "TERM01",
			ApprovalCode:  "APR001",
			SerialNumber:  "000001",
		},
		{
			TransactionID: "txn_1002",
			Stamp:         &now,
			TotalAmount:   decimal.RequireFromString("149.99"),
			ConsumerID:    "consumer_2",
			MerchantID:    "merchant_1",
			TerminalID:    "TERM02",
			ApprovalCode:  "APR002",
		},
		{
			TransactionID: "txn_1003",
			TotalAmount:   decimal.RequireFromString("7.50"),
			ConsumerID:    "consumer_1",
			MerchantID:    "merchant_1",
			TerminalID:    "TERM01",
		},
	}

	for _, consumer := range consumers {
		if err := db.Where(models.Consumer{ConsumerID: consumer.ConsumerID}).FirstOrCreate(&consumer).Error; err != nil {
			return err
		}
	}
	for _, merchant := range merchants {
		if err := db.Where(models.Merchant{MerchantID: merchant.MerchantID}).FirstOrCreate(&merchant).Error; err != nil {
			return err
		}
	}
	for _, transaction := range transactions {
		if err := db.Where(models.Transaction{TransactionID: transaction.TransactionID}).FirstOrCreate(&transaction).Error; err != nil {
			return err
		}
	}

	logrus.Info("✅ Transactions seeded successfully")
	return nil
}
