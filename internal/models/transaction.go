package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the stored point-of-sale transaction awaiting settlement.
type Transaction struct {
	TransactionID string          `gorm:"primaryKey;size:64"`
	Stamp         *time.Time
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ConsumerID    string          `gorm:"size:64;index"`
	MerchantID    string          `gorm:"size:64;index"`
	TerminalID    string          `gorm:"size:32"`
	ApprovalCode  string          `gorm:"size:32"`
	SerialNumber  string          `gorm:"size:32"`
	CreatedAt     time.Time
}

type Consumer struct {
	ConsumerID  string `gorm:"primaryKey;size:64"`
	FirstName   string `gorm:"size:64"`
	LastName    string `gorm:"size:64"`
	Address1    string `gorm:"size:128"`
	Address2    string `gorm:"size:128"`
	City        string `gorm:"size:64"`
	State       string `gorm:"size:16"`
	Zip         string `gorm:"size:16"`
	HomePhone   string `gorm:"size:32"`
	MobilePhone string `gorm:"size:32"`
}

type Merchant struct {
	MerchantID     string `gorm:"primaryKey;size:64"`
	Address1       string `gorm:"size:128"`
	City           string `gorm:"size:64"`
	State          string `gorm:"size:16"`
	AchTransType   string `gorm:"size:8"`
	AchStatementID string `gorm:"size:64"`
}

// TransactionRecord is the immutable snapshot the dispatcher works from,
// read in a single query together with the settlement marker.
type TransactionRecord struct {
	TransactionID string
	Amount        decimal.Decimal
	Consumer      ConsumerInfo
	Merchant      MerchantInfo
	Terminal      TerminalInfo
	Timestamp     *time.Time
	// SettlementEventID is the settlement log id of the recorded settlement
	// event. Empty means the transaction has not been settled.
	SettlementEventID string
}

type ConsumerInfo struct {
	ID             string
	FirstName      string
	LastName       string
	Address1       string
	Address2       string
	City           string
	State          string
	Zip            string
	PrimaryPhone   string
	SecondaryPhone string
}

type MerchantInfo struct {
	ID                  string
	Address             string
	City                string
	State               string
	SECCode             string
	StatementDescriptor string
}

type TerminalInfo struct {
	TerminalID   string
	ApprovalCode string
	SerialNumber string
}
