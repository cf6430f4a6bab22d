package services

import (
	"context"
	"fmt"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/companyinfo"
	"congress-tracker/cmd/web/dto"
	"congress-tracker/cmd/web/format"
	"congress-tracker/cmd/web/query"
	"congress-tracker/models"
	"congress-tracker/repositories"
)

// TradeStore is the trade side of the data provider.
type TradeStore interface {
	List(ctx context.Context, opt repositories.ListTradesOptions) (repositories.ListResult, error)
	DistinctValues(ctx context.Context, field string) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// CompanyResolver fills in company name and industry for a ticker.
type CompanyResolver interface {
	Lookup(ctx context.Context, ticker string) companyinfo.Info
}

// TradeService serves the listing view: filtered trade pages and the
// option lists of the filter controls.
type TradeService struct {
	trades    TradeStore
	companies CompanyResolver
	pageSize  int
}

func NewTradeService(trades TradeStore, companies CompanyResolver, pageSize int) *TradeService {
	return &TradeService{trades: trades, companies: companies, pageSize: pageSize}
}

// List returns one page of trades matching f.
func (s *TradeService) List(ctx context.Context, f query.FilterState, page int) (dto.PageResult[dto.Trade], error) {
	opt := listOptionsFromFilter(f)
	opt.Page = page
	opt.PageSize = s.pageSize

	res, err := s.trades.List(ctx, opt)
	if err != nil {
		return dto.PageResult[dto.Trade]{}, fmt.Errorf("list trades: %w", err)
	}
	return mapTradePage(ctx, res, s.companies), nil
}

// Options returns the filter choices. Ranges are the fixed size buckets.
func (s *TradeService) Options(ctx context.Context) (dto.FilterOptions, error) {
	var out dto.FilterOptions
	fields := []struct {
		name string
		dst  *[]string
	}{
		{"party", &out.Parties},
		{"state", &out.States},
		{"industry", &out.Industries},
		{"committees", &out.Committees},
		{"transaction", &out.Transactions},
	}
	for _, f := range fields {
		values, err := s.trades.DistinctValues(ctx, f.name)
		if err != nil {
			return dto.FilterOptions{}, fmt.Errorf("distinct %s: %w", f.name, err)
		}
		*f.dst = values
	}
	out.Ranges = format.SizeBuckets()
	return out, nil
}

// listOptionsFromFilter maps a FilterState onto the storage query. Values
// that cannot be interpreted are passed through or dropped, never rejected.
func listOptionsFromFilter(f query.FilterState) repositories.ListTradesOptions {
	opt := repositories.ListTradesOptions{
		NameContains: f.Name,
		Party:        f.Party,
		State:        f.State,
		Industries:   f.Industries,
		Committees:   f.Committees,
		Transaction:  f.Transaction,
	}
	if f.Range != "" {
		if lo, hi, ok := format.BucketBounds(f.Range); ok {
			opt.AmountMin, opt.AmountMax = &lo, &hi
		} else {
			opt.Size = f.Range
		}
	}
	if after, ok := f.AfterTime(); ok {
		opt.TradedAfter = &after
	} else if f.After != "" {
		logger.Log.Debugf("ignoring unparsable after filter %q", f.After)
	}
	return opt
}

func mapTradePage(ctx context.Context, res repositories.ListResult, companies CompanyResolver) dto.PageResult[dto.Trade] {
	items := make([]dto.Trade, 0, len(res.Items))
	for _, t := range res.Items {
		items = append(items, mapTrade(ctx, t, companies))
	}
	return dto.NewPageResult(items, res.Page, res.PageSize, res.Total)
}

// mapTrade converts a stored trade into its display projection.
func mapTrade(ctx context.Context, t models.Trade, companies CompanyResolver) dto.Trade {
	company, industry := t.CompanyName, t.Industry
	if (company == "" || industry == "") && t.Ticker != "" && companies != nil {
		info := companies.Lookup(ctx, t.Ticker)
		if company == "" {
			company = info.Name
		}
		if industry == "" {
			industry = info.Industry
		}
	}
	industryLabel, _ := format.Industry(industry)

	size := format.TradeSize(t.Size)
	if size == format.UnknownSize && t.Amount > 0 {
		size = format.TradeSizeAmount(t.Amount)
	}
	excess, _ := format.ExcessReturn(t.Transaction, t.ExcessReturn)

	return dto.Trade{
		PoliticianName: t.PoliticianName,
		ProfileURL:     query.ProfilePath(t.PoliticianName),
		Party:          format.Party(t.Party),
		State:          t.State,
		Chamber:        t.Chamber,
		CompanyName:    company,
		Ticker:         t.Ticker,
		Industry:       industryLabel,
		Traded:         format.Date(t.Traded),
		Filed:          format.Date(t.Filed),
		Transaction:    t.Transaction,
		Size:           size,
		Price:          format.Price(t.Price),
		ExcessReturn:   excess,
	}
}
