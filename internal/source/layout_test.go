package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 3, l.FirstRow)
	assert.Equal(t, 29, l.LastColumn())
	assert.Equal(t, "PIUTANG!A3:AD", l.A1Range("PIUTANG"))
	assert.Equal(t, "'Piutang 2024'!A3:AD", l.A1Range("Piutang 2024"))

	assert.Equal(t, "po", l.ColumnName(2))
	assert.Equal(t, "dueDate", l.ColumnName(13))
	assert.Equal(t, "bill", l.ColumnName(21))
	assert.Equal(t, "status", l.ColumnName(26))
	assert.Equal(t, "B", l.ColumnName(1))
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout(0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), l)

	l, err = ParseLayout(2, " po=B, bill=h ,Status=K,billingStatus=L")
	require.NoError(t, err)
	assert.Equal(t, 2, l.FirstRow)
	assert.Equal(t, 1, l.PO)
	assert.Equal(t, 7, l.Bill)
	assert.Equal(t, 10, l.Status)
	assert.Equal(t, 11, l.BillingStatus)
	assert.Equal(t, DefaultLayout().Customer, l.Customer)
	assert.Equal(t, "Sheet1!A2:X", l.A1Range("Sheet1"))

	for _, bad := range []string{"po", "price=B", "po=12", "bill="} {
		_, err := ParseLayout(0, bad)
		assert.Error(t, err, bad)
	}
}

func TestDataRows(t *testing.T) {
	rows := [][]string{{"title"}, {"header"}, {"a"}, {"b"}}
	assert.Equal(t, [][]string{{"a"}, {"b"}}, DefaultLayout().dataRows(rows))
	assert.Nil(t, DefaultLayout().dataRows(rows[:2]))

	l := DefaultLayout()
	l.FirstRow = 1
	assert.Equal(t, rows, l.dataRows(rows))
}
