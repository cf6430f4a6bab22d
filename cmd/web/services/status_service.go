package services

import (
	"context"
	"fmt"

	"congress-tracker/cmd/web/dto"
)

// TickerCounter reports how many tickers are cached.
type TickerCounter interface {
	Len() int
}

// StatusService reports the amount of loaded data.
type StatusService struct {
	trades      TradeStore
	politicians PoliticianStore
	tickers     TickerCounter
}

func NewStatusService(trades TradeStore, politicians PoliticianStore, tickers TickerCounter) *StatusService {
	return &StatusService{trades: trades, politicians: politicians, tickers: tickers}
}

func (s *StatusService) Status(ctx context.Context) (dto.Status, error) {
	var out dto.Status
	var err error

	if out.DataLoaded.Trades, err = s.trades.Count(ctx); err != nil {
		return dto.Status{}, fmt.Errorf("count trades: %w", err)
	}
	if out.DataLoaded.Politicians, err = s.politicians.Count(ctx); err != nil {
		return dto.Status{}, fmt.Errorf("count politicians: %w", err)
	}
	if out.DataLoaded.CommitteeAssignments, err = s.politicians.CountCommitteeAssignments(ctx); err != nil {
		return dto.Status{}, fmt.Errorf("count committee assignments: %w", err)
	}
	if s.tickers != nil {
		out.DataLoaded.CachedTickers = s.tickers.Len()
	}
	out.Status = "success"
	return out, nil
}
