package grid

import (
	"bytes"
	"testing"

	"github.com/weihan/gridmate/internal/common"
	"github.com/weihan/gridmate/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderBoundsChart(t *testing.T) {
	s := NewService(&fakeQuotes{}, &fakeBroker{}, testConfig(), common.NewSilentLogger())

	series := &models.PriceSeries{
		Symbol: "512400",
		Bars: []models.Bar{
			{Date: "2026-08-24", Close: 2.45},
			{Date: "2026-08-25", Close: 2.52},
			{Date: "2026-08-26", Close: 2.48},
			{Date: "2026-08-27", Close: 2.55},
		},
	}
	bounds := &models.GridBounds{
		Symbol:       "512400",
		CurrentPrice: 2.55,
		Upper:        3.0,
		Lower:        2.0,
	}

	png, err := s.RenderBoundsChart(series, bounds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderBoundsChart_SkipsUnparseableDates(t *testing.T) {
	s := NewService(&fakeQuotes{}, &fakeBroker{}, testConfig(), common.NewSilentLogger())

	series := &models.PriceSeries{
		Symbol: "512400",
		Bars: []models.Bar{
			{Date: "not-a-date", Close: 2.45},
			{Date: "2026-08-26", Close: 2.48},
			{Date: "2026-08-27", Close: 2.55},
		},
	}
	bounds := &models.GridBounds{Symbol: "512400", Upper: 3.0, Lower: 2.0}

	if _, err := s.RenderBoundsChart(series, bounds); err != nil {
		t.Fatalf("two parseable bars should render: %v", err)
	}
}

func TestRenderBoundsChart_Errors(t *testing.T) {
	s := NewService(&fakeQuotes{}, &fakeBroker{}, testConfig(), common.NewSilentLogger())

	if _, err := s.RenderBoundsChart(nil, &models.GridBounds{}); err == nil {
		t.Error("expected error for nil series")
	}
	if _, err := s.RenderBoundsChart(&models.PriceSeries{}, nil); err == nil {
		t.Error("expected error for nil bounds")
	}

	short := &models.PriceSeries{Bars: []models.Bar{{Date: "2026-08-27", Close: 2.5}}}
	if _, err := s.RenderBoundsChart(short, &models.GridBounds{Upper: 3, Lower: 2}); err == nil {
		t.Error("expected error for fewer than 2 dated bars")
	}
}
