// Package pricing holds the fixed module catalog and the bundle discount
// rule. Everything here is pure: no clock, no I/O, no mutable state.
package pricing

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Module is one catalog entry. Prices are whole MXN (tax excluded).
type Module struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	BasePrice     int64  `json:"basePrice"`
	PromoEligible bool   `json:"promoEligible"`
	Description   string `json:"description"`
}

// catalog is the full offer. Five entries, defined once, never edited at
// runtime.
var catalog = []Module{
	{
		Key:           "core",
		Name:          "Lumen Core",
		BasePrice:     2000,
		PromoEligible: true,
		Description:   "Asistente conversacional base con entrenamiento sobre tu negocio.",
	},
	{
		Key:           "meta",
		Name:          "Meta Ads",
		BasePrice:     1000,
		PromoEligible: true,
		Description:   "Integración con Facebook e Instagram: mensajes y campañas.",
	},
	{
		Key:           "ecom",
		Name:          "e-Commerce",
		BasePrice:     1500,
		PromoEligible: true,
		Description:   "Catálogo, carrito y seguimiento de pedidos dentro del chat.",
	},
	{
		Key:           "wa",
		Name:          "WhatsApp Business",
		BasePrice:     500,
		PromoEligible: false,
		Description:   "Canal de WhatsApp con número dedicado.",
	},
	{
		Key:           "crm",
		Name:          "CRM Sync",
		BasePrice:     500,
		PromoEligible: false,
		Description:   "Sincronización de contactos y conversaciones con tu CRM.",
	},
}

// promoRate is the flat per-module discount applied when the bundle rule
// fires.
var promoRate = decimal.NewFromFloat(0.5)

// Catalog returns a copy of the module catalog in display order.
func Catalog() []Module {
	out := make([]Module, len(catalog))
	copy(out, catalog)
	return out
}

// Line is one priced entry of a quote. Price already reflects any discount.
type Line struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Discounted bool   `json:"discounted"`
}

// Quote is the derived pricing for a selection of modules.
type Quote struct {
	Lines []Line `json:"lines"`
	Total int64  `json:"total"`
}

// Toggle flips key's membership in the selection: add if absent, remove if
// present. The input slice is not modified.
func Toggle(selection []string, key string) []string {
	if lo.Contains(selection, key) {
		return lo.Without(selection, key)
	}
	return append(append([]string(nil), selection...), key)
}

// NewQuote prices a selection of module keys.
//
// Discount rule: a module contributes its discounted price if and only if it
// is promo-eligible AND at least two promo-eligible modules are selected.
// The discount is a flat 50%, applied per module (never to the bundle
// total), with each discounted price rounded to the nearest integer before
// summing. Duplicate keys count once; unknown keys are an error.
func NewQuote(selection []string) (Quote, error) {
	keys := lo.Uniq(selection)

	known := lo.SliceToMap(catalog, func(m Module) (string, Module) { return m.Key, m })
	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return Quote{}, fmt.Errorf("pricing: unknown module %q", key)
		}
	}

	// Iterate the catalog, not the selection, so quote lines come out in
	// display order.
	selected := lo.Filter(catalog, func(m Module, _ int) bool {
		return lo.Contains(keys, m.Key)
	})

	eligible := lo.CountBy(selected, func(m Module) bool { return m.PromoEligible })
	promoActive := eligible >= 2

	q := Quote{Lines: make([]Line, 0, len(selected))}
	for _, m := range selected {
		price := m.BasePrice
		discounted := false
		if promoActive && m.PromoEligible {
			price = discountedPrice(m.BasePrice)
			discounted = true
		}
		q.Lines = append(q.Lines, Line{
			Key:        m.Key,
			Name:       m.Name,
			Price:      price,
			Discounted: discounted,
		})
		q.Total += price
	}

	return q, nil
}

// discountedPrice halves a base price and rounds to the nearest integer.
func discountedPrice(base int64) int64 {
	return decimal.NewFromInt(base).Mul(promoRate).Round(0).IntPart()
}
