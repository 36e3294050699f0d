package posgrest

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transactionRow is the flat result of the lookup join.
type transactionRow struct {
	TransactionID   string
	Stamp           *time.Time
	TotalAmount     decimal.Decimal
	TerminalID      string
	ApprovalCode    string
	SerialNumber    string
	ConsumerID      string
	FirstName       string
	LastName        string
	Address1        string
	Address2        string
	City            string
	State           string
	Zip             string
	HomePhone       string
	MobilePhone     string
	MerchantID      string
	MerchantAddress string
	MerchantCity    string
	MerchantState   string
	AchTransType    string
	AchStatementID  string
	SettlementLogID *string
}

type TransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// LookupTransaction reads the transaction, its consumer and merchant, and the
// settlement marker in one statement so the settled check sees a single
// consistent snapshot. Returns models.ErrTransactionNotFound when absent.
func (r *TransactionRepo) LookupTransaction(ctx context.Context, transactionID string) (*models.TransactionRecord, error) {
	var rows []transactionRow
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`t.transaction_id, t.stamp, t.total_amount, t.terminal_id, t.approval_code, t.serial_number,
			t.consumer_id, c.first_name, c.last_name, c.address1, c.address2, c.city, c.state, c.zip,
			c.home_phone, c.mobile_phone,
			t.merchant_id, m.address1 AS merchant_address, m.city AS merchant_city, m.state AS merchant_state,
			m.ach_trans_type, m.ach_statement_id,
			e.settlement_log_id`).
		Joins("LEFT JOIN consumers AS c ON c.consumer_id = t.consumer_id").
		Joins("LEFT JOIN merchants AS m ON m.merchant_id = t.merchant_id").
		Joins("LEFT JOIN settlement_events AS e ON e.transaction_id = t.transaction_id").
		Where("t.transaction_id = ?", transactionID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error looking up transaction %s: %w", transactionID, err)
	}
	if len(rows) == 0 {
		return nil, models.ErrTransactionNotFound
	}

	return rows[0].toRecord(), nil
}

func (row transactionRow) toRecord() *models.TransactionRecord {
	record := &models.TransactionRecord{
		TransactionID: row.TransactionID,
		Amount:        row.TotalAmount,
		Consumer: models.ConsumerInfo{
			ID:             row.ConsumerID,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Address1:       row.Address1,
			Address2:       row.Address2,
			City:           row.City,
			State:          row.State,
			Zip:            row.Zip,
			PrimaryPhone:   row.HomePhone,
			SecondaryPhone: row.MobilePhone,
		},
		Merchant: models.MerchantInfo{
			ID:                  row.MerchantID,
			Address:             row.MerchantAddress,
			City:                row.MerchantCity,
			State:               row.MerchantState,
			SECCode:             row.AchTransType,
			StatementDescriptor: row.AchStatementID,
		},
		Terminal: models.TerminalInfo{
			TerminalID:   row.TerminalID,
			ApprovalCode: row.ApprovalCode,
			SerialNumber: row.SerialNumber,
		},
		Timestamp: row.Stamp,
	}
	if row.SettlementLogID != nil {
		record.SettlementEventID = *row.SettlementLogID
	}
	return record
}
