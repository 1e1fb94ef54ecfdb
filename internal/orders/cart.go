package orders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart means a cart-dependent action was attempted with no
	// pending lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingQuantity means a total was requested while some line still
	// has no quantity; the caller must surface this as a validation message.
	ErrMissingQuantity = errors.New("cart line has no quantity")
)

// CartTotal sums price*quantity across the lines, rounded to 2 decimal
// places. Computing it twice without mutation yields the same value.
func CartTotal(lines []CartLine) (decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, ErrEmptyCart
	}
	total := decimal.Zero
	for _, l := range lines {
		if l.Quantity == nil {
			return decimal.Zero, ErrMissingQuantity
		}
		total = total.Add(l.LineTotal)
	}
	return total.Round(2), nil
}

// RenderCart formats the cart the way it appears in chat, one bullet line
// per item showing the unit price:
//
//	• Chicken Rice x2 - $5.00
func RenderCart(lines []CartLine) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity == nil {
			return "", ErrMissingQuantity
		}
		out = append(out, fmt.Sprintf("• %s x%d - $%s", l.Item, *l.Quantity, l.UnitPrice.Round(2).StringFixed(2)))
	}
	return strings.Join(out, "\r\n"), nil
}
