package domain

// Creative represents an individual advertising asset. Creative ids are
// unique across the whole dataset, not just within their parent campaign,
// so a creative can be looked up without naming the campaign.
type Creative struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Format           string  `json:"format"`
	URL              string  `json:"url"`
	PerformanceScore float64 `json:"performance_score"`
	IsPrimary        bool    `json:"is_primary"`
	Impressions      int64   `json:"impressions"`
	Clicks           int64   `json:"clicks"`
	CTR              float64 `json:"ctr"`
	// ABTestVariant is null in the document when the creative is not part
	// of an A/B test.
	ABTestVariant *string `json:"a_b_test_variant"`
}
