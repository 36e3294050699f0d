package gateway

import (
	"github.com/shopspring/decimal"
)

// Amount is a currency amount that goes over the wire as a JSON number with
// two decimal places, never through a float.
type Amount decimal.Decimal

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

// SettlementRequest is the canonical debit payload. UniqueTranID is the
// transaction id, which the gateway also uses to suppress duplicates.
type SettlementRequest struct {
	UniqueTranID               string `json:"uniqueTranId"`
	Routing                    string `json:"routing"`
	AccountNumber              string `json:"accountNumber"`
	CheckAmount                Amount `json:"checkAmount"`
	SECCode                    string `json:"secCode"`
	POSTransactionDate         string `json:"posTransactionDate"`
	POSTerminalID              string `json:"posTerminalId"`
	POSTransactionSerialNumber string `json:"posTransactionSerialNumber"`
	POSAuthorizationCode       string `json:"posAuthorizationCode"`
	LastName                   string `json:"lastName"`
	FirstName                  string `json:"firstName"`
	Address1                   string `json:"address1"`
	Address2                   string `json:"address2"`
	City                       string `json:"city"`
	State                      string `json:"state"`
	Zip                        string `json:"zip"`
	Phone                      string `json:"phone"`
	CheckDate                  string `json:"checkDate"`
	CustomDescriptor           string `json:"customDescriptor"`
	CheckNumber                string `json:"checkNumber"`
	POSCardTransactionTypeCode string `json:"posCardTransactionTypeCode"`
	POSTerminalLocationAddress string `json:"posTerminalLocationAddress"`
	POSTerminalCity            string `json:"posTerminalCity"`
	POSTerminalState           string `json:"posTerminalState"`
	POSReferenceInfo1          string `json:"posReferenceInfo1"`
	POSReferenceInfo2          string `json:"posReferenceInfo2"`
	OriginalTranID             string `json:"originalTranId"`
	AccountType                string `json:"accountType"`
	CompanyName                string `json:"companyName"`
	Opt1                       string `json:"opt1"`
	Opt2                       string `json:"opt2"`
	Opt3                       string `json:"opt3"`
	Opt4                       string `json:"opt4"`
	Opt5                       string `json:"opt5"`
	Opt6                       string `json:"opt6"`
	MICRData                   string `json:"micrData"`
	WebType                    string `json:"webType"`
	OrigSECCode                string `json:"origSecCode"`
	ImageFront                 string `json:"imageF"`
	ImageBack                  string `json:"imageB"`
	IsSameDay                  bool   `json:"isSameDay"`
	FutureDate                 string `json:"futureDate"`
	MicroEntry                 bool   `json:"microEntry"`
	ConvenienceFee             bool   `json:"convenienceFee"`
	ConvenienceFeeAmount       Amount `json:"convenienceFeeAmount"`
}
