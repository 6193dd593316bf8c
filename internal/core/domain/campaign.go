package domain

// Campaign represents a marketing campaign with its per-region performance
// breakdown and the creative assets running under it. Campaign ids are
// unique across the dataset.
type Campaign struct {
	ID                  int64                 `json:"id"`
	Name                string                `json:"name"`
	Status              string                `json:"status"`
	Medium              string                `json:"medium"`
	RegionalPerformance []RegionalPerformance `json:"regional_performance"`
	Creatives           []Creative            `json:"creatives"`
}

// RegionalPerformance is a per-region metrics row nested under a campaign.
// It is never addressed on its own, only through its parent campaign.
type RegionalPerformance struct {
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CPC            float64 `json:"cpc"`
	CPA            float64 `json:"cpa"`
	ROAS           float64 `json:"roas"`
}
