package dispatch

import (
	"fmt"
	"strconv"
)

// Kind selects the active member of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindFlag
	KindNumber
	KindText
)

// Value is the scalar payload carried by commands and notifications.
// Only the member selected by Kind is meaningful.
type Value struct {
	Kind   Kind
	Flag   bool
	Number float64
	Text   string
}

// None is the empty payload.
func None() Value { return Value{} }

// Flag wraps a boolean payload.
func Flag(b bool) Value { return Value{Kind: KindFlag, Flag: b} }

// Number wraps a numeric payload.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// Text wraps a string payload.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Equal reports whether both values carry the same kind and member.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindFlag:
		return v.Flag == o.Flag
	case KindNumber:
		return v.Number == o.Number
	case KindText:
		return v.Text == o.Text
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindFlag:
		return strconv.FormatBool(v.Flag)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', 6, 64)
	case KindText:
		return fmt.Sprintf("%q", v.Text)
	default:
		return "-"
	}
}
