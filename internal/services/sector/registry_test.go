package sector

import (
	"testing"

	"github.com/weihan/gridmate/internal/models"
)

func TestDefaultRegistry_Lookups(t *testing.T) {
	reg := DefaultRegistry()

	cases := []struct {
		sector   string
		wantCode string
	}{
		{"有色金属冶炼和压延加工业", "512400"},
		{"计算机、通信和其他电子设备制造业", "515260"}, // 电子 declared before 计算机 and 通信
		{"铁路、船舶、航空航天和其他运输设备制造业", "512660"}, // 船舶 beats 铁路 and 运输 by declared order
		{"医药制造业", "512010"},
		{"Nonferrous Metals", "512400"},
	}
	for _, c := range cases {
		entry, ok := reg.Match(c.sector)
		if !ok {
			t.Errorf("no match for %q", c.sector)
			continue
		}
		if entry.Candidates[0].Code != c.wantCode {
			t.Errorf("Match(%q) = %s, want %s", c.sector, entry.Candidates[0].Code, c.wantCode)
		}
	}
}

func TestDefaultRegistry_SpecificBeforeBroad(t *testing.T) {
	reg := DefaultRegistry()

	// 稀土 must be declared before the broader 有色金属 so a name carrying
	// both resolves to the rare-earth fund.
	entry, ok := reg.Match("稀土及有色金属加工业")
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.Keyword != "稀土" || entry.Candidates[0].Code != "516780" {
		t.Errorf("matched %q (%s), want 稀土 (516780)", entry.Keyword, entry.Candidates[0].Code)
	}

	// Same for 半导体 before 电子.
	entry, ok = reg.Match("半导体及电子元件制造")
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.Candidates[0].Code != "512480" {
		t.Errorf("matched %s, want 512480", entry.Candidates[0].Code)
	}
}

func TestDefaultRegistry_NoMatch(t *testing.T) {
	if _, ok := DefaultRegistry().Match("家具制造业"); ok {
		t.Error("expected no match for an uncovered sector")
	}
}

func TestDefaultRegistry_WellFormed(t *testing.T) {
	for _, e := range DefaultRegistry().Entries() {
		if e.Keyword == "" {
			t.Error("entry with empty keyword")
		}
		if len(e.Candidates) == 0 {
			t.Errorf("keyword %q has no candidates", e.Keyword)
		}
		for _, c := range e.Candidates {
			if len(c.Code) != 6 {
				t.Errorf("keyword %q: candidate code %q is not 6 digits", e.Keyword, c.Code)
			}
			if c.Name == "" {
				t.Errorf("keyword %q: candidate %s has no name", e.Keyword, c.Code)
			}
		}
	}
}

func TestSectorRegistry_FirstMatchWins(t *testing.T) {
	// Two entries whose keywords both appear in the sector name: declared
	// order decides, not specificity or position in the name.
	reg := models.NewSectorRegistry([]models.RegistryEntry{
		{Keyword: "beta", Candidates: []models.ETFCandidate{{Code: "000002", Name: "Beta"}}},
		{Keyword: "alpha", Candidates: []models.ETFCandidate{{Code: "000001", Name: "Alpha"}}},
	})

	entry, ok := reg.Match("alpha beta industries")
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.Keyword != "beta" {
		t.Errorf("matched %q, want the first declared keyword beta", entry.Keyword)
	}
}

func TestSectorRegistry_CopiesEntries(t *testing.T) {
	entries := []models.RegistryEntry{
		{Keyword: "one", Candidates: []models.ETFCandidate{{Code: "000001", Name: "One"}}},
	}
	reg := models.NewSectorRegistry(entries)

	entries[0].Keyword = "mutated"
	if _, ok := reg.Match("one fine sector"); !ok {
		t.Error("registry must not observe mutation of the source slice")
	}
}
