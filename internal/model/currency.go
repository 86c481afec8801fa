package model

// CurrencyRate is the exchange rate between two currencies on a given day
type CurrencyRate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
	Date string  `json:"date"`
}
