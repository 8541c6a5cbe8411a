package pricing

import "testing"

func mustQuote(t *testing.T, selection []string) Quote {
	t.Helper()
	q, err := NewQuote(selection)
	if err != nil {
		t.Fatalf("NewQuote(%v): %v", selection, err)
	}
	return q
}

func TestCatalog_HasFiveFixedModules(t *testing.T) {
	mods := Catalog()
	if len(mods) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(mods))
	}

	byKey := make(map[string]Module, len(mods))
	for _, m := range mods {
		byKey[m.Key] = m
	}

	if byKey["core"].BasePrice != 2000 || !byKey["core"].PromoEligible {
		t.Errorf("core: got %+v", byKey["core"])
	}
	if byKey["meta"].BasePrice != 1000 || !byKey["meta"].PromoEligible {
		t.Errorf("meta: got %+v", byKey["meta"])
	}
	if byKey["wa"].BasePrice != 500 || byKey["wa"].PromoEligible {
		t.Errorf("wa: got %+v", byKey["wa"])
	}
}

func TestCatalog_ReturnsACopy(t *testing.T) {
	mods := Catalog()
	mods[0].BasePrice = 9999
	if Catalog()[0].BasePrice == 9999 {
		t.Fatal("mutating the returned slice must not affect the catalog")
	}
}

func TestQuote_SingleEligibleModuleNoDiscount(t *testing.T) {
	q := mustQuote(t, []string{"core"})
	if q.Total != 2000 {
		t.Errorf("total: got %d, want 2000", q.Total)
	}
	if len(q.Lines) != 1 || q.Lines[0].Discounted {
		t.Errorf("lines: got %+v", q.Lines)
	}
}

func TestQuote_TwoEligibleModulesBothHalved(t *testing.T) {
	q := mustQuote(t, []string{"core", "meta"})
	if q.Total != 1500 {
		t.Errorf("total: got %d, want 1500", q.Total)
	}
	for _, line := range q.Lines {
		if !line.Discounted {
			t.Errorf("%s should be discounted", line.Key)
		}
	}
	prices := map[string]int64{}
	for _, line := range q.Lines {
		prices[line.Key] = line.Price
	}
	if prices["core"] != 1000 {
		t.Errorf("core price: got %d, want 1000", prices["core"])
	}
	if prices["meta"] != 500 {
		t.Errorf("meta price: got %d, want 500", prices["meta"])
	}
}

func TestQuote_NonEligibleModuleStaysFullPrice(t *testing.T) {
	q := mustQuote(t, []string{"core", "meta", "wa"})
	if q.Total != 2000 {
		t.Errorf("total: got %d, want 2000", q.Total)
	}
	for _, line := range q.Lines {
		if line.Key == "wa" {
			if line.Discounted || line.Price != 500 {
				t.Errorf("wa: got %+v", line)
			}
		}
	}
}

func TestQuote_DiscountIsPerModuleNotBundle(t *testing.T) {
	// core+meta+ecom: each halved independently, each rounded before summing.
	q := mustQuote(t, []string{"core", "meta", "ecom"})
	want := int64(1000 + 500 + 750)
	if q.Total != want {
		t.Errorf("total: got %d, want %d", q.Total, want)
	}
}

func TestQuote_NonPromoPairGetsNoDiscount(t *testing.T) {
	// Two modules selected, but only one is promo-eligible.
	q := mustQuote(t, []string{"core", "wa"})
	if q.Total != 2500 {
		t.Errorf("total: got %d, want 2500", q.Total)
	}
}

func TestQuote_DuplicateKeysCountOnce(t *testing.T) {
	q := mustQuote(t, []string{"core", "core"})
	if q.Total != 2000 {
		t.Errorf("total: got %d, want 2000", q.Total)
	}
	if len(q.Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(q.Lines))
	}
}

func TestQuote_UnknownModuleIsAnError(t *testing.T) {
	if _, err := NewQuote([]string{"core", "nope"}); err == nil {
		t.Fatal("expected an error for an unknown module key")
	}
}

func TestQuote_LinesFollowCatalogOrder(t *testing.T) {
	q := mustQuote(t, []string{"wa", "core"}) // selection order reversed
	if q.Lines[0].Key != "core" || q.Lines[1].Key != "wa" {
		t.Errorf("lines out of catalog order: %+v", q.Lines)
	}
}

func TestToggle(t *testing.T) {
	sel := []string{"core"}

	sel = Toggle(sel, "meta")
	if len(sel) != 2 {
		t.Fatalf("after adding meta: %v", sel)
	}

	sel = Toggle(sel, "meta")
	if len(sel) != 1 || sel[0] != "core" {
		t.Fatalf("after removing meta: %v", sel)
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	sel := []string{"core"}
	_ = Toggle(sel, "meta")
	if len(sel) != 1 {
		t.Fatalf("input slice was mutated: %v", sel)
	}
}
