package domain

// Performance is the campaign-level roll-up of strategy metrics. CTR and
// ConversionRate are percentages, defined as 0 when their denominator is 0.
type Performance struct {
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
}

// AggregatePerformance folds a strategy set into campaign totals and derived
// rates. The caller distinguishes "no strategies" from valid zero totals;
// this function just sums whatever it is given.
func AggregatePerformance(strategies []Strategy) Performance {
	var p Performance
	for _, s := range strategies {
		p.Impressions += s.Metrics.Impressions
		p.Clicks += s.Metrics.Clicks
		p.Conversions += s.Metrics.Conversions
		p.Spend += s.Metrics.Spend
	}
	if p.Impressions > 0 {
		p.CTR = float64(p.Clicks) / float64(p.Impressions) * 100
	}
	if p.Clicks > 0 {
		p.ConversionRate = float64(p.Conversions) / float64(p.Clicks) * 100
	}
	return p
}
