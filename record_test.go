package qif

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFormat = DateFormat{Order: DayMonth, YearDigits: 4}

func TestReadRecordFields(t *testing.T) {
	src := newLineSource(strings.NewReader("D15/03/2023\nT-42.50\nPGroceries\nLFood\n^\n"))

	record, err := readRecord(src, testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), record.Date())
	assert.Equal(t, "-42.50", record.Field('T'))
	assert.Equal(t, "Groceries", record.Field('P'))
	assert.Equal(t, "Food", record.Field('L'))
	assert.Equal(t, 4, record.Len())
}

func TestReadRecordMultiLineField(t *testing.T) {
	src := newLineSource(strings.NewReader("Mfirst line\nMsecond line\nMthird line\n^\n"))

	record, err := readRecord(src, testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "first line\nsecond line\nthird line", record.Field('M'))
	assert.Equal(t, 1, record.Len())
}

func TestReadRecordAmountSeparatorStripped(t *testing.T) {
	src := newLineSource(strings.NewReader("T1,234.56\nU12,500.00\n$-1,000.00\nN1,5\n^\n"))

	record, err := readRecord(src, testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "1234.56", record.Field('T'))
	assert.Equal(t, "12500.00", record.Field('U'))
	assert.Equal(t, "-1000.00", record.Field('$'))
	// Only amount-like tags are normalized.
	assert.Equal(t, "1,5", record.Field('N'))
}

func TestReadRecordImmediateTerminator(t *testing.T) {
	src := newLineSource(strings.NewReader("^\n"))

	record, err := readRecord(src, testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 0, record.Len())
}

func TestReadRecordCleanEndOfInput(t *testing.T) {
	src := newLineSource(strings.NewReader(""))

	record, err := readRecord(src, testFormat)
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestReadRecordPartialRecordDiscarded(t *testing.T) {
	// Input ends mid-record with no terminator.
	src := newLineSource(strings.NewReader("D15/03/2023\nT-10.00\n"))

	record, err := readRecord(src, testFormat)
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestReadRecordSkipsBlankLines(t *testing.T) {
	src := newLineSource(strings.NewReader("PGroceries\n\nT-10.00\n^\n"))

	record, err := readRecord(src, testFormat)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 2, record.Len())
}

func TestReadRecordUnparseableDate(t *testing.T) {
	src := newLineSource(strings.NewReader("D15/33/2023\nT-10.00\n^\n"))

	record, err := readRecord(src, testFormat)
	assert.Nil(t, record)

	var truncated *TruncatedReadError
	require.ErrorAs(t, err, &truncated)
}

func TestReadRecordReadFault(t *testing.T) {
	fault := errors.New("connection reset")
	src := newLineSource(&faultReader{data: []byte("D15/03/2023\n"), err: fault})

	record, err := readRecord(src, testFormat)
	assert.Nil(t, record)

	var truncated *TruncatedReadError
	require.ErrorAs(t, err, &truncated)
	assert.ErrorIs(t, err, fault)
}
