package output

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

const notAvailable = "n/a"

// money renders a currency amount rounded half away from zero to 2 places
func money(v float64) string {
	return quantity(v, 2)
}

// quantity renders a physical quantity with the given number of decimals.
// NaN and infinities have no decimal form and render as n/a.
func quantity(v float64, places int32) string {
	if !entities.Finite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func percent(v float64) string {
	if !entities.Finite(v) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

func guardedMoney(g entities.Guarded) string {
	if !g.Defined {
		return notAvailable
	}
	return money(g.Value)
}

func guardedPercent(g entities.Guarded) string {
	if !g.Defined {
		return notAvailable
	}
	return percent(g.Value)
}

func guardedQuantity(g entities.Guarded, places int32) string {
	if !g.Defined {
		return notAvailable
	}
	return quantity(g.Value, places)
}
