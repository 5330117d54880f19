package usecase

import (
	"cinema-checkout/internal/data/entity"

	"github.com/shopspring/decimal"
)

// Two discount mechanisms exist side by side, on purpose:
//
//   - the wizard's quantity-based policy: the buyer picks how many tickets
//     are normal and how many discounted, and the discounted lines cost
//     half the showtime's base price (TicketSubtotal / TicketPrices);
//   - the person-flag override on the direct sale path: a buyer marked as
//     a discount holder pays half price regardless of ticket type
//     (DiscountHolderPrice).
//
// They are kept as separately named policies rather than merged so a later
// change can reconcile them deliberately.

var discountFactor = decimal.NewFromFloat(0.5)

// DiscountedTicketPrice is half the showtime's base price.
func DiscountedTicketPrice(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(discountFactor)
}

// DiscountHolderPrice applies the person-flag override used by the direct
// sale path. Eligible buyers pay the discounted price for any seat.
func DiscountHolderPrice(basePrice decimal.Decimal, eligible bool) decimal.Decimal {
	if eligible {
		return DiscountedTicketPrice(basePrice)
	}
	return basePrice
}

// TicketSubtotal is the wizard's quantity-based policy:
// qtyNormal * base + qtyDiscounted * base/2.
func TicketSubtotal(basePrice decimal.Decimal, qtyNormal, qtyDiscounted int) decimal.Decimal {
	normal := basePrice.Mul(decimal.NewFromInt(int64(qtyNormal)))
	discounted := DiscountedTicketPrice(basePrice).Mul(decimal.NewFromInt(int64(qtyDiscounted)))
	return normal.Add(discounted)
}

// TicketPrices assigns a per-seat price for each of count seats: seats keep
// submission order, the first qtyNormal carry the normal price, the rest
// the discounted price.
func TicketPrices(basePrice decimal.Decimal, qtyNormal, count int) []decimal.Decimal {
	prices := make([]decimal.Decimal, count)
	for i := range prices {
		if i < qtyNormal {
			prices[i] = basePrice
		} else {
			prices[i] = DiscountedTicketPrice(basePrice)
		}
	}
	return prices
}

// SnackSubtotal sums quantity * unit price over the draft's snack lines.
func SnackSubtotal(lines []entity.SnackSelection) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// GrandTotal is tickets + snacks.
func GrandTotal(ticketSubtotal, snackSubtotal decimal.Decimal) decimal.Decimal {
	return ticketSubtotal.Add(snackSubtotal)
}
