package qif

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanRecord(t *testing.T, input string) *FieldRecord {
	t.Helper()
	record, err := readRecord(newLineSource(strings.NewReader(input)), testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)
	return record
}

func TestTransactionFromRecord(t *testing.T) {
	record := scanRecord(t, strings.Join([]string{
		"D15/03/2023",
		"T-1,250.00",
		"N1234",
		"PAcme Pty Ltd",
		"MInvoice 42",
		"A1 Example St",
		"AExampleville",
		"LOffice Supplies",
		"CX",
		"SOffice Supplies:Paper",
		"EReam of A4",
		"$-250.00",
		"^",
	}, "\n") + "\n")

	tx := transactionFromRecord(record)
	require.NotNil(t, tx)

	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-1250.00")))
	assert.Equal(t, "1234", tx.Number)
	assert.Equal(t, "Acme Pty Ltd", tx.Payee)
	assert.Equal(t, "Invoice 42", tx.Memo)
	assert.Equal(t, "1 Example St\nExampleville", tx.Address)
	assert.Equal(t, "Office Supplies", tx.Category)
	assert.Equal(t, "X", tx.Status)
	assert.Equal(t, "Office Supplies:Paper", tx.SplitCategory)
	assert.Equal(t, "Ream of A4", tx.SplitMemo)
	assert.True(t, tx.SplitAmount.Equal(decimal.RequireFromString("-250.00")))
}

func TestTransactionFromRecordPrefersHighPrecisionAmount(t *testing.T) {
	record := scanRecord(t, "T-10.00\nU-10.005\n^\n")

	tx := transactionFromRecord(record)
	require.NotNil(t, tx)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-10.005")))
}

func TestTransactionFromRecordDeclines(t *testing.T) {
	assert.Nil(t, transactionFromRecord(nil))

	// An empty record (a bare terminator line) produces no transaction.
	assert.Nil(t, transactionFromRecord(scanRecord(t, "^\n")))

	// An amount that does not read as a number produces no transaction.
	assert.Nil(t, transactionFromRecord(scanRecord(t, "Tten dollars\nPShop\n^\n")))
	assert.Nil(t, transactionFromRecord(scanRecord(t, "$ten\nPShop\n^\n")))
}
