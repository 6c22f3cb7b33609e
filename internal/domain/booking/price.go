package booking

import (
	"wanderbook/internal/domain/resource"
)

// Quote is the computed price for a validated interval.
type Quote struct {
	Amount   int64
	Currency string
}

type PriceCalculator interface {
	Quote(snap resource.Snapshot, iv Interval) Quote
}

// DailyRateCalculator prices a booking as dailyRate times the ceil-rounded
// number of days. When the snapshot carries no rate, the configured fallback
// applies instead of producing a zero total.
type DailyRateCalculator struct {
	fallbackDailyRate int64
	fallbackCurrency  string
}

func NewDailyRateCalculator(fallbackDailyRate int64, fallbackCurrency string) *DailyRateCalculator {
	return &DailyRateCalculator{
		fallbackDailyRate: fallbackDailyRate,
		fallbackCurrency:  fallbackCurrency,
	}
}

func (c *DailyRateCalculator) Quote(snap resource.Snapshot, iv Interval) Quote {
	rate := snap.DailyRate
	if rate <= 0 {
		rate = c.fallbackDailyRate
	}

	currency := snap.Currency
	if currency == "" {
		currency = c.fallbackCurrency
	}

	return Quote{
		Amount:   rate * int64(iv.Days()),
		Currency: currency,
	}
}
