package usecase

import (
	"context"
	"fmt"

	"adinsight/internal/core/domain"
	"adinsight/internal/core/port"
	"adinsight/internal/obfuscate"
)

// CampaignUseCase provides the filtering, lookup and credential-check logic
// over the dataset documents. It implements port.CampaignUseCase and holds
// no state of its own; every operation reads fresh data through the store.
type CampaignUseCase struct {
	store port.DataStore
}

// New creates a usecase backed by the provided store.
func New(store port.DataStore) *CampaignUseCase {
	return &CampaignUseCase{store: store}
}

// FullData returns the raw campaigns document, unfiltered.
func (u *CampaignUseCase) FullData(ctx context.Context) ([]domain.Campaign, error) {
	return u.store.Campaigns(ctx)
}

// CampaignByID linearly scans the campaigns document for the given id.
func (u *CampaignUseCase) CampaignByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			return &campaigns[i], nil
		}
	}
	return nil, domain.ErrCampaignNotFound
}

// CampaignsByRegion projects a normalized row for every regional performance
// entry whose region equals the argument exactly. Campaigns without regional
// data are skipped. Rows keep campaign order.
func (u *CampaignUseCase) CampaignsByRegion(ctx context.Context, region string) ([]port.RegionRow, error) {
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	var rows []port.RegionRow
	for i := range campaigns {
		c := &campaigns[i]
		for _, rp := range c.RegionalPerformance {
			if rp.Region != region {
				continue
			}
			rows = append(rows, port.RegionRow{
				CampaignID:     c.ID,
				CampaignName:   c.Name,
				Country:        rp.Country,
				Impressions:    rp.Impressions,
				Clicks:         rp.Clicks,
				Conversions:    rp.Conversions,
				Spend:          rp.Spend,
				Revenue:        rp.Revenue,
				CTR:            rp.CTR,
				ConversionRate: rp.ConversionRate,
				CPC:            rp.CPC,
				CPA:            rp.CPA,
				ROAS:           rp.ROAS,
			})
		}
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoRegionalData
	}
	return rows, nil
}

// CreativesByIDs performs a nested scan over every campaign's creatives and
// collects those whose id is in the requested set, annotated with the owning
// campaign's summary fields. Result order follows the dataset, not the
// request.
func (u *CampaignUseCase) CreativesByIDs(ctx context.Context, ids []int64) (*port.CreativeLookup, error) {
	campaigns, err := u.store.Campaigns(ctx)
	if err != nil {
		return nil, err
	}
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var rows []port.CreativeRow
	for i := range campaigns {
		c := &campaigns[i]
		for _, cr := range c.Creatives {
			if _, ok := wanted[cr.ID]; !ok {
				continue
			}
			rows = append(rows, port.CreativeRow{
				Creative:       cr,
				CampaignID:     c.ID,
				CampaignName:   c.Name,
				CampaignStatus: c.Status,
				CampaignMedium: c.Medium,
			})
		}
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoCreativesFound
	}
	return &port.CreativeLookup{
		RequestedIDs: ids,
		MatchedCount: len(rows),
		Creatives:    rows,
	}, nil
}

// Authenticate looks the username up in the plaintext or obfuscated dataset
// and compares passwords as strings. In the obfuscated variant both the
// stored credential and the supplied candidate are decoded first, so the
// caller presents the obfuscated form. Role branching is a closed three-way
// decision: admin is granted the campaigns document, the user role is denied
// with an explanatory message and account summary, anything else is denied
// generically.
func (u *CampaignUseCase) Authenticate(ctx context.Context, username, password string, obfuscated bool) (*port.AuthGrant, error) {
	var (
		users []domain.User
		err   error
	)
	if obfuscated {
		users, err = u.store.ObfuscatedUsers(ctx)
	} else {
		users, err = u.store.PlainUsers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load user dataset: %w", err)
	}

	var account *domain.User
	for i := range users {
		if users[i].Username == username {
			account = &users[i]
			break
		}
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}

	stored, supplied := account.Password, password
	if obfuscated {
		stored = obfuscate.Decode(stored)
		supplied = obfuscate.Decode(supplied)
	}
	if stored != supplied {
		return nil, domain.ErrInvalidCredentials
	}

	switch account.Role {
	case domain.RoleAdmin:
		campaigns, err := u.store.Campaigns(ctx)
		if err != nil {
			return nil, fmt.Errorf("load campaigns: %w", err)
		}
		return &port.AuthGrant{User: account.Summary(), Data: campaigns}, nil
	case domain.RoleUser:
		return nil, &domain.RoleDeniedError{
			User:    account,
			Message: fmt.Sprintf("Role '%s' does not have access to campaign data", account.Role),
		}
	default:
		return nil, &domain.RoleDeniedError{Message: "Access denied"}
	}
}
