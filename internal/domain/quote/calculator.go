package quote

import (
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Supported VAT rates, in percent
var validVATRates = []int64{0, 20}

// IsValidVATRate reports whether the rate is one the console accepts
func IsValidVATRate(rate decimal.Decimal) bool {
	for _, r := range validVATRates {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}

// Totals is the server-computed monetary summary of a quote
type Totals struct {
	AmountBeforeVAT decimal.Decimal
	VATAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
}

// Calculate computes quote totals from line items and a VAT rate.
//
// AmountBeforeVAT is the exact decimal sum of the item amounts. VATAmount
// is AmountBeforeVAT * rate / 100 rounded to 2 decimal places, half away
// from zero (round-half-up for the non-negative amounts handled here).
// Totals are always recomputed server-side; submitted totals are ignored.
func Calculate(items []LineItem, vatRate decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, shared.NewDomainError("INVALID_INPUT", "At least one service is required")
	}
	if !IsValidVATRate(vatRate) {
		return Totals{}, shared.NewDomainError("INVALID_VAT_RATE", "VAT rate must be 0 or 20")
	}

	amountBeforeVAT := decimal.Zero
	for _, item := range items {
		amountBeforeVAT = amountBeforeVAT.Add(item.Amount)
	}

	vatAmount := amountBeforeVAT.Mul(vatRate).Div(decimal.NewFromInt(100)).Round(2)

	return Totals{
		AmountBeforeVAT: amountBeforeVAT,
		VATAmount:       vatAmount,
		TotalAmount:     amountBeforeVAT.Add(vatAmount),
	}, nil
}
