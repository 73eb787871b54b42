package formatters

import "github.com/shopspring/decimal"

// Money renders a price as "$125.00"; an invalid amount renders as N/A.
func Money(d decimal.NullDecimal) string {
	if !d.Valid {
		return NotAvailable
	}
	if d.Decimal.IsNegative() {
		return "-$" + d.Decimal.Abs().StringFixed(2)
	}
	return "$" + d.Decimal.StringFixed(2)
}
