package domain

// RelevantCurrencies is the whitelist of codes exposed by the rates endpoint.
var RelevantCurrencies = []string{"USD", "EUR", "MXN", "GBP", "ARS", "CLP", "COP"}

// RateSnapshot is a single answer from the exchange-rate provider.
type RateSnapshot struct {
	Base      string
	UpdatedAt string
	Rates     map[string]float64
}

// Filter returns a copy of the snapshot keeping only the given codes.
func (s RateSnapshot) Filter(codes []string) RateSnapshot {
	out := RateSnapshot{
		Base:      s.Base,
		UpdatedAt: s.UpdatedAt,
		Rates:     make(map[string]float64, len(codes)),
	}
	for _, code := range codes {
		if rate, ok := s.Rates[code]; ok {
			out.Rates[code] = rate
		}
	}
	return out
}
