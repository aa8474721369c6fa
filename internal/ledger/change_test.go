package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChange_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		change    Change
		magnitude string
		want      string
	}{
		{name: "inc", change: ChangeInc, magnitude: "100", want: "100"},
		{name: "dec", change: ChangeDec, magnitude: "100", want: "-100"},
		{name: "none", change: ChangeNone, magnitude: "100", want: "0"},
		{name: "inc_truncates_to_six_digits", change: ChangeInc, magnitude: "1.23456789", want: "1.234567"},
		{name: "dec_uses_absolute_value", change: ChangeDec, magnitude: "-2.5", want: "-2.5"},
		{name: "unknown_rule_is_noop", change: Change("SIDEWAYS"), magnitude: "5", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.change.Apply(decimal.RequireFromString(tt.magnitude))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseChange(t *testing.T) {
	t.Parallel()

	c, err := ParseChange("dec")
	require.NoError(t, err)
	assert.Equal(t, ChangeDec, c)

	_, err = ParseChange("up")
	require.Error(t, err)
}

func TestChange_Scan(t *testing.T) {
	t.Parallel()

	var c Change

	require.NoError(t, c.Scan("INC"))
	assert.Equal(t, ChangeInc, c)

	require.NoError(t, c.Scan([]byte("NONE")))
	assert.Equal(t, ChangeNone, c)

	require.Error(t, c.Scan(42))
	require.Error(t, c.Scan("bogus"))

	v, err := ChangeDec.Value()
	require.NoError(t, err)
	assert.Equal(t, "DEC", v)
}

func TestActionType_Deltas(t *testing.T) {
	t.Parallel()

	freeze := ActionType{
		AvailableBalance: ChangeDec,
		FrozenBalance:    ChangeInc,
		TotalIncome:      ChangeNone,
		TotalExpense:     ChangeNone,
	}

	d := freeze.Deltas(decimal.RequireFromString("12.5"))

	assert.True(t, d.AvailableBalance.Equal(decimal.RequireFromString("-12.5")))
	assert.True(t, d.FrozenBalance.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, d.TotalIncome.IsZero())
	assert.True(t, d.TotalExpense.IsZero())
}

func TestHasValidScale(t *testing.T) {
	t.Parallel()

	assert.True(t, HasValidScale(decimal.RequireFromString("1.123456")))
	assert.True(t, HasValidScale(decimal.RequireFromString("1.1234560000")))
	assert.True(t, HasValidScale(decimal.RequireFromString("100")))
	assert.False(t, HasValidScale(decimal.RequireFromString("1.1234567")))
}

func TestWithinMax(t *testing.T) {
	t.Parallel()

	assert.True(t, WithinMax(decimal.RequireFromString("999999999999999999999999999999.999999")))
	assert.True(t, WithinMax(decimal.RequireFromString("-5")))
	assert.False(t, WithinMax(decimal.RequireFromString("1000000000000000000000000000000")))
	assert.False(t, WithinMax(decimal.RequireFromString("1e40")))
}
