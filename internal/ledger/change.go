package ledger

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Change is the direction a balance field moves under an action type.
// Values match the change_enum labels in the database.
type Change string

const (
	ChangeInc  Change = "INC"
	ChangeDec  Change = "DEC"
	ChangeNone Change = "NONE"
)

// ParseChange accepts the enum label in any letter case.
func ParseChange(s string) (Change, error) {
	switch c := Change(strings.ToUpper(strings.TrimSpace(s))); c {
	case ChangeInc, ChangeDec, ChangeNone:
		return c, nil
	default:
		return "", fmt.Errorf("invalid change %q", s)
	}
}

// Apply returns the signed delta this rule produces for magnitude.
func (c Change) Apply(magnitude decimal.Decimal) decimal.Decimal {
	m := NormalizeAmount(magnitude)

	switch c {
	case ChangeInc:
		return m
	case ChangeDec:
		return m.Neg()
	default:
		return decimal.Zero
	}
}

// Scan implements sql.Scanner.
func (c *Change) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan change: unsupported type %T", src)
	}

	parsed, err := ParseChange(raw)
	if err != nil {
		return fmt.Errorf("scan change: %w", err)
	}

	*c = parsed

	return nil
}

// Value implements driver.Valuer.
func (c Change) Value() (driver.Value, error) {
	return string(c), nil
}
