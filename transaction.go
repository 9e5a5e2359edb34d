package qif

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single transaction from a QIF export. String fields hold
// the raw file values; multi-line fields such as Memo and Address keep
// their lines joined by newlines.
type Transaction struct {
	Date          time.Time
	Amount        decimal.Decimal
	Number        string
	Payee         string
	Memo          string
	Address       string
	Category      string
	Status        string
	SplitCategory string
	SplitMemo     string
	SplitAmount   decimal.Decimal
}

// transactionFromRecord builds a Transaction from a scanned record. It
// returns nil when the record has no fields or carries an amount that does
// not read as a number; such records keep their position in the cache as
// empty slots.
func transactionFromRecord(record *FieldRecord) *Transaction {
	if record == nil || record.Len() == 0 {
		return nil
	}
	t := &Transaction{
		Date:          record.Date(),
		Number:        record.Field('N'),
		Payee:         record.Field('P'),
		Memo:          record.Field('M'),
		Address:       record.Field('A'),
		Category:      record.Field('L'),
		Status:        record.Field('C'),
		SplitCategory: record.Field('S'),
		SplitMemo:     record.Field('E'),
	}
	amount := record.Field('T')
	if u := record.Field('U'); u != "" {
		// U is the higher precision amount; prefer it over T.
		amount = u
	}
	if amount != "" {
		v, err := decimal.NewFromString(amount)
		if err != nil {
			return nil
		}
		t.Amount = v
	}
	if split := record.Field('$'); split != "" {
		v, err := decimal.NewFromString(split)
		if err != nil {
			return nil
		}
		t.SplitAmount = v
	}
	return t
}
