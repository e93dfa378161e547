// Package normalize converts raw trade-index items into their canonical
// form: resolved category and subtype, chaos-equivalent price, aggregated
// property maps, parsed modifiers, and the relative day of the observation.
package normalize

import (
	"errors"
	"fmt"
	"time"

	"github.com/exilemarket/item-price-scanner/pkg/catalog"
	"github.com/exilemarket/item-price-scanner/pkg/currency"
	"github.com/exilemarket/item-price-scanner/pkg/feature"
	"github.com/exilemarket/item-price-scanner/pkg/modifier"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// Epoch anchors the relative day counter. Day 0 is the first day of data
// collection; all models are trained against this offset.
const Epoch int64 = 1480915460

// MinDwell is the shortest listing lifetime treated as a real sale signal.
// Listings that vanish within it were almost certainly never purchasable at
// the listed price.
const MinDwell = 10 * time.Second

// ErrShortDwell rejects listings removed too quickly after their last update.
var ErrShortDwell = errors.New("listing dwell too short")

// Day converts a unix timestamp to the relative day counter.
func Day(unixSeconds int64) int {
	return int((unixSeconds - Epoch) / 86400)
}

// Normalizer turns RawItems into NormalizedItems. Safe for concurrent use.
type Normalizer struct {
	registry *catalog.Registry
	mods     *modifier.Parser
	now      func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the wall clock used for items without a removal time.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New returns a Normalizer over the given catalog and modifier parser.
func New(registry *catalog.Registry, mods *modifier.Parser, opts ...Option) *Normalizer {
	n := &Normalizer{
		registry: registry,
		mods:     mods,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts one raw item. The returned error is one of the typed
// reject reasons: ErrShortDwell, catalog.ErrUnknownItemType,
// currency.ErrUnparsablePrice, or currency.ErrUnknownCurrency. Items without
// any price pass through with PriceChaos 0; callers that need a price filter
// on it.
func (n *Normalizer) Normalize(raw *domain.RawItem) (*domain.NormalizedItem, error) {
	if raw.Removed != 0 && raw.LastUpdated != 0 && raw.Dwell() <= MinDwell {
		return nil, fmt.Errorf("%w: %s", ErrShortDwell, raw.Dwell())
	}

	category, subType, err := n.registry.Resolve(raw.TypeLine)
	if err != nil {
		return nil, err
	}

	price := raw.PriceChaos
	if price == 0 && raw.Price != "" {
		price, err = currency.ParseListedPrice(raw.Price)
		if err != nil {
			return nil, err
		}
	}

	day := Day(n.now().Unix())
	if raw.Removed != 0 {
		day = Day(raw.Removed)
	}

	return &domain.NormalizedItem{
		ItemType:    category,
		ItemSubType: subType,
		PriceChaos:  price,
		Day:         day,

		Ilvl:      raw.Ilvl,
		FrameType: raw.FrameType,
		Corrupted: raw.Corrupted,

		Properties:           feature.AggregateProperties(raw.Properties),
		Requirements:         feature.AggregateProperties(raw.Requirements),
		AdditionalProperties: feature.AggregateProperties(raw.AdditionalProperties),

		ImplicitMods: n.mods.ParseAll(raw.ImplicitMods),
		ExplicitMods: n.mods.ParseAll(raw.ExplicitMods),
		CraftedMods:  n.mods.ParseAll(raw.CraftedMods),

		Sockets: raw.Sockets,
	}, nil
}

// RejectReason maps a Normalize error onto its stable metric label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, ErrShortDwell):
		return "short_dwell"
	case errors.Is(err, catalog.ErrUnknownItemType):
		return "unknown_item_type"
	case errors.Is(err, currency.ErrUnknownCurrency):
		return "unknown_currency"
	case errors.Is(err, currency.ErrUnparsablePrice):
		return "unparsable_price"
	default:
		return "other"
	}
}
