package sequence

import (
	"context"
	"fmt"
)

// Known sequence names
const (
	NameClient = "client"
	NameQuote  = "quote"
)

// Counter is a named monotonic counter. One row exists per sequence name;
// the row is created lazily on first allocation and never deleted. Value
// only increases and is never reused, so numbers allocated to operations
// that later fail leave gaps. Gaps are accepted; duplicates are not.
type Counter struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Counter) TableName() string {
	return "counters"
}

// Allocator issues unique, strictly increasing integers per named sequence.
// Implementations must perform the increment-and-fetch as a single atomic
// operation against the store; a read-modify-write pair would hand the same
// number to two racing callers.
type Allocator interface {
	// Next allocates and returns the next value for the named sequence.
	// On failure the error is returned as-is; a previous value is never reused.
	Next(ctx context.Context, name string) (int64, error)
}

// FormatClientCode renders a client sequence number as a human-readable ID
func FormatClientCode(n int64) string {
	return fmt.Sprintf("CL-%06d", n)
}

// FormatQuoteNumber renders a quote sequence number as a human-readable ID
func FormatQuoteNumber(n int64) string {
	return fmt.Sprintf("QT-%06d", n)
}
