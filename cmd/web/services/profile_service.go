package services

import (
	"context"
	"errors"
	"fmt"

	"congress-tracker/cmd/web/dto"
	"congress-tracker/cmd/web/format"
	"congress-tracker/models"
	"congress-tracker/repositories"
)

// ErrPoliticianNotFound is returned when a profile name matches nobody.
var ErrPoliticianNotFound = errors.New("politician not found")

// PoliticianStore is the politician side of the data provider.
type PoliticianStore interface {
	FindByName(ctx context.Context, name string) (*models.Politician, error)
	Count(ctx context.Context) (int64, error)
	CountCommitteeAssignments(ctx context.Context) (int64, error)
}

// ProfileService serves the per-politician page. Only the page number
// applies; listing filters are not used here.
type ProfileService struct {
	politicians PoliticianStore
	trades      TradeStore
	companies   CompanyResolver
	pageSize    int
}

func NewProfileService(politicians PoliticianStore, trades TradeStore, companies CompanyResolver, pageSize int) *ProfileService {
	return &ProfileService{politicians: politicians, trades: trades, companies: companies, pageSize: pageSize}
}

// Get loads the profile of name with the given page of trades.
func (s *ProfileService) Get(ctx context.Context, name string, page int) (dto.Profile, error) {
	p, err := s.politicians.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.Profile{}, fmt.Errorf("%w: %s", ErrPoliticianNotFound, name)
		}
		return dto.Profile{}, fmt.Errorf("find politician: %w", err)
	}

	opt := repositories.ListTradesOptions{Page: page, PageSize: s.pageSize}
	if p.BioguideID != "" {
		opt.BioguideID = p.BioguideID
	} else {
		opt.PoliticianName = p.Name
	}
	res, err := s.trades.List(ctx, opt)
	if err != nil {
		return dto.Profile{}, fmt.Errorf("list politician trades: %w", err)
	}

	committees := p.Committees
	if committees == nil {
		committees = []string{}
	}
	return dto.Profile{
		Name:       p.Name,
		Party:      format.Party(p.Party),
		Chamber:    p.Chamber,
		State:      p.State,
		Committees: committees,
		Trades:     mapTradePage(ctx, res, s.companies),
	}, nil
}
