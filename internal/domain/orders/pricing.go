package orders

import (
	"fmt"
	"strings"
)

// PriceOrder computes the charge for an order. Supplies contribute
// their summed prices as the additionals amount; misc is any manual
// adjustment from the front desk.
func PriceOrder(tier string, loads int, supplies []Supply, misc float64) (float64, error) {
	perLoad, ok := TierPrices[tier]
	if !ok {
		return 0, ErrUnknownTier
	}
	if loads < 1 {
		return 0, ErrInvalidLoads
	}

	additionals := SuppliesTotal(supplies)
	return perLoad*float64(loads) + additionals + misc, nil
}

func SuppliesTotal(supplies []Supply) float64 {
	var total float64
	for _, s := range supplies {
		total += s.Price
	}
	return total
}

// SuppliesNote renders the add-on list into the free-text notes line,
// e.g. "Detergent: Surf (12.00); Fabcon: Downy (15.00)".
func SuppliesNote(supplies []Supply) string {
	if len(supplies) == 0 {
		return ""
	}
	parts := make([]string, 0, len(supplies))
	for _, s := range supplies {
		parts = append(parts, fmt.Sprintf("%s: %s (%.2f)", s.Kind, s.Brand, s.Price))
	}
	return strings.Join(parts, "; ")
}
