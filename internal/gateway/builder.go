package gateway

import (
	"strings"
	"time"

	"github.com/jeffleon2/draftea-settlement-service/internal/models"
)

const (
	DefaultSECCode             = "POS"
	DefaultAccountType         = "Personal Checking"
	DefaultCardTransactionType = "01"
	DefaultReferenceInfo2      = "00"

	serialNumberLength = 6
	stampLayout        = "2006-01-02T15:04:05"
	stampLayoutMicros  = "2006-01-02T15:04:05.000000"
)

// Builder turns a TransactionRecord into a SettlementRequest. Build never
// fails: every missing field gets a default.
type Builder struct {
	RoutingNumber string
	AccountNumber string
	Now           func() time.Time
}

func NewBuilder(routingNumber, accountNumber string) *Builder {
	return &Builder{
		RoutingNumber: routingNumber,
		AccountNumber: accountNumber,
		Now:           time.Now,
	}
}

func (b *Builder) Build(record models.TransactionRecord) SettlementRequest {
	stamp := b.stamp(record.Timestamp)

	return SettlementRequest{
		UniqueTranID:               record.TransactionID,
		Routing:                    b.RoutingNumber,
		AccountNumber:              b.AccountNumber,
		CheckAmount:                Amount(record.Amount),
		SECCode:                    secCode(record.Merchant.SECCode),
		POSTransactionDate:         stamp,
		POSTerminalID:              record.Terminal.TerminalID,
		POSTransactionSerialNumber: serialNumber(record),
		POSAuthorizationCode:       record.Terminal.ApprovalCode,
		LastName:                   record.Consumer.LastName,
		FirstName:                  record.Consumer.FirstName,
		Address1:                   record.Consumer.Address1,
		Address2:                   record.Consumer.Address2,
		City:                       record.Consumer.City,
		State:                      record.Consumer.State,
		Zip:                        record.Consumer.Zip,
		Phone:                      phone(record.Consumer),
		CheckDate:                  stamp,
		CustomDescriptor:           record.Merchant.StatementDescriptor,
		POSCardTransactionTypeCode: DefaultCardTransactionType,
		POSTerminalLocationAddress: record.Merchant.Address,
		POSTerminalCity:            record.Merchant.City,
		POSTerminalState:           record.Merchant.State,
		POSReferenceInfo1:          record.Consumer.ID,
		POSReferenceInfo2:          DefaultReferenceInfo2,
		AccountType:                DefaultAccountType,
	}
}

// stamp renders the transaction time in UTC with an explicit Z suffix,
// using the current time when the record carries none.
func (b *Builder) stamp(ts *time.Time) string {
	var t time.Time
	if ts != nil && !ts.IsZero() {
		t = *ts
	} else {
		now := b.Now
		if now == nil {
			now = time.Now
		}
		t = now()
	}
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(stampLayout) + "Z"
	}
	// a fraction is always six digits wide
	return t.Format(stampLayoutMicros) + "Z"
}

func secCode(code string) string {
	if code = strings.TrimSpace(code); code != "" {
		return code
	}
	return DefaultSECCode
}

func serialNumber(record models.TransactionRecord) string {
	if record.Terminal.SerialNumber != "" {
		return record.Terminal.SerialNumber
	}
	id := []rune(record.TransactionID)
	if len(id) <= serialNumberLength {
		return string(id)
	}
	return string(id[len(id)-serialNumberLength:])
}

func phone(c models.ConsumerInfo) string {
	if c.PrimaryPhone != "" {
		return c.PrimaryPhone
	}
	return c.SecondaryPhone
}
