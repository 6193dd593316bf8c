package port

import (
	"context"

	"adinsight/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the service.
// This interface is the primary port into the application domain; the HTTP
// adapter depends on it rather than on concrete types.
type CampaignUseCase interface {
	// FullData returns the raw campaigns document, unfiltered.
	FullData(ctx context.Context) ([]domain.Campaign, error)

	// CampaignByID returns the single campaign with the given id, or
	// domain.ErrCampaignNotFound.
	CampaignByID(ctx context.Context, id int64) (*domain.Campaign, error)

	// CampaignsByRegion scans every campaign's regional performance rows
	// and returns one summary row per entry whose region matches exactly
	// (case-sensitive), preserving campaign order. Returns
	// domain.ErrNoRegionalData when nothing matches.
	CampaignsByRegion(ctx context.Context, region string) ([]RegionRow, error)

	// CreativesByIDs resolves the given creative ids against every
	// campaign's creatives and returns the matches enriched with their
	// owning campaign's summary fields. Returns domain.ErrNoCreativesFound
	// when no id resolves.
	CreativesByIDs(ctx context.Context, ids []int64) (*CreativeLookup, error)

	// Authenticate checks the supplied credentials against one of the two
	// user datasets and, for admin accounts, returns the full campaigns
	// document. When obfuscated is true the stored and supplied passwords
	// are both run through the obfuscation codec before comparison.
	// Failure modes: domain.ErrUserNotFound, domain.ErrInvalidCredentials,
	// *domain.RoleDeniedError.
	Authenticate(ctx context.Context, username, password string, obfuscated bool) (*AuthGrant, error)
}

// RegionRow is the normalized per-campaign projection of a regional
// performance entry. The queried region itself is not echoed per row.
type RegionRow struct {
	CampaignID     int64   `json:"campaign_id"`
	CampaignName   string  `json:"campaign_name"`
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

// CreativeRow is a creative annotated with its owning campaign's summary
// fields.
type CreativeRow struct {
	domain.Creative
	CampaignID     int64  `json:"campaign_id"`
	CampaignName   string `json:"campaign_name"`
	CampaignStatus string `json:"campaign_status"`
	CampaignMedium string `json:"campaign_medium"`
}

// CreativeLookup summarizes a creative id lookup: the ids that survived
// coercion, how many resolved, and the resolved rows in dataset order.
type CreativeLookup struct {
	RequestedIDs []int64       `json:"requested_ids"`
	MatchedCount int           `json:"matched_count"`
	Creatives    []CreativeRow `json:"creatives"`
}

// AuthGrant is returned on a successful admin authentication.
type AuthGrant struct {
	User domain.UserSummary
	Data []domain.Campaign
}
