package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("booked_count").
		From("capacity_ledger").
		Where(squirrel.Eq{"booking_date": "2026-10-20"}).
		Where(squirrel.Eq{"service_type": "elder_care"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT booked_count FROM capacity_ledger WHERE booking_date = $1 AND service_type = $2", query)
	assert.Equal(t, []interface{}{"2026-10-20", "elder_care"}, args)
}

func TestInsert_SuffixContinuesNumbering(t *testing.T) {
	query, args, err := Insert("capacity_ledger").
		Columns("booking_date", "service_type", "booked_count").
		Values("2026-10-20", "child_care", 1).
		Suffix("RETURNING booked_count WHERE booked_count < ?", 25).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO capacity_ledger (booking_date,service_type,booked_count) VALUES ($1,$2,$3) RETURNING booked_count WHERE booked_count < $4", query)
	assert.Len(t, args, 4)
}
