package market

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

type fakeQuotes struct {
	getKline func(ctx context.Context, symbol, rng string) (*models.PriceSeries, error)
}

func (f *fakeQuotes) GetKline(ctx context.Context, symbol, rng string) (*models.PriceSeries, error) {
	return f.getKline(ctx, symbol, rng)
}

func (f *fakeQuotes) GetRealTimePrice(ctx context.Context, symbol string) (float64, error) {
	return 0, errors.New("not stubbed")
}

func seriesOf(symbol string, closes ...float64) *models.PriceSeries {
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{Date: fmt.Sprintf("2026-08-%02d", i+1), Close: c}
	}
	return &models.PriceSeries{
		Symbol:       symbol,
		Bars:         bars,
		CurrentPrice: closes[len(closes)-1],
	}
}

func TestOverview(t *testing.T) {
	quotes := &fakeQuotes{
		getKline: func(ctx context.Context, symbol, rng string) (*models.PriceSeries, error) {
			if rng != "1mo" {
				t.Errorf("range = %s, want 1mo", rng)
			}
			switch symbol {
			case "512400":
				return seriesOf(symbol, 2.40, 2.42, 2.45, 2.44, 2.50), nil
			case "159995":
				return nil, errors.New("provider down")
			default:
				return seriesOf(symbol, 1.00, 1.02), nil
			}
		},
	}
	s := NewService(quotes, common.NewSilentLogger())

	snaps, err := s.Overview(context.Background(), []string{"512400", "159995", "512480"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}

	ok := snaps[0]
	if ok.Symbol != "512400" || ok.Price != 2.50 {
		t.Errorf("first snapshot = %+v", ok)
	}
	// change vs previous close: (2.50 - 2.44) / 2.44
	wantChange := (2.50 - 2.44) / 2.44 * 100
	if math.Abs(ok.ChangePct-wantChange) > 1e-9 {
		t.Errorf("ChangePct = %v, want %v", ok.ChangePct, wantChange)
	}
	if ok.Profile == nil {
		t.Error("five closes should yield a volatility profile")
	}
	if ok.Err != "" {
		t.Errorf("unexpected error field: %q", ok.Err)
	}

	failed := snaps[1]
	if failed.Err == "" {
		t.Error("failed symbol must carry an error note")
	}
	if failed.Price != 0 {
		t.Errorf("failed snapshot should have zero price, got %v", failed.Price)
	}

	// the symbol after the failure is unaffected
	if snaps[2].Symbol != "512480" || snaps[2].Err != "" {
		t.Errorf("third snapshot = %+v", snaps[2])
	}
}

func TestOverview_ShortSeriesHasNoProfile(t *testing.T) {
	quotes := &fakeQuotes{
		getKline: func(ctx context.Context, symbol, rng string) (*models.PriceSeries, error) {
			return seriesOf(symbol, 2.50), nil
		},
	}
	s := NewService(quotes, common.NewSilentLogger())

	snaps, err := s.Overview(context.Background(), []string{"512400"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := snaps[0]
	if snap.Profile != nil {
		t.Error("single close cannot yield a profile")
	}
	if snap.ChangePct != 0 {
		t.Errorf("ChangePct = %v, want 0 without a previous close", snap.ChangePct)
	}
}

func TestOverview_EmptySymbols(t *testing.T) {
	s := NewService(&fakeQuotes{}, common.NewSilentLogger())
	snaps, err := s.Overview(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("got %d snapshots, want 0", len(snaps))
	}
}
