package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"sync"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/method"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/zone"
	"shipping/internal/pkg/errs"
)

// ErrNoCoverage is returned when no active zone covers the destination
// address. It is distinct from an empty option list: coverage without any
// eligible method yields a successful result with zero options.
var ErrNoCoverage = errors.New("no shipping coverage for destination")

// Option is one priced shipping choice: a method offered through a matched
// zone, with its final cost and delivery window.
type Option struct {
	ZoneID         kernel.UUID
	ZoneName       string
	MethodID       kernel.UUID
	MethodCode     string
	MethodName     string
	Description    string
	CarrierName    string
	CarrierService string
	Features       []string
	RateType       string
	Cost           float64
	Estimate       method.DeliveryEstimate
}

// Result is a completed calculation: the ranked options plus the aggregated
// parcel the prices were derived from.
type Result struct {
	Options []Option
	Package parcel.Parcel
}

// ShippingCalculator is the domain service running the end-to-end quote
// pipeline: aggregate the items into a parcel, match zones, filter methods
// by restrictions, price every eligible zone-method pair, and rank the
// surviving options.
//
// Business rules:
//   - Every zone-method pair is priced independently and concurrently
//   - A pair that fails (carrier outage, bad configuration) is dropped;
//     one broken method never fails the calculation
//   - Options are ranked by cost, then earliest delivery, then catalog order
type ShippingCalculator struct {
	matcher      ZoneMatcher
	restrictions RestrictionValidator
	rates        RateCalculator
	logger       *slog.Logger
}

// NewShippingCalculator creates a ShippingCalculator. The carrier gateway
// may be nil when no method uses the carrier-API strategy; a nil logger
// falls back to slog.Default().
func NewShippingCalculator(carriers CarrierGateway, logger *slog.Logger) ShippingCalculator {
	if logger == nil {
		logger = slog.Default()
	}
	return ShippingCalculator{
		matcher:      NewZoneMatcher(),
		restrictions: NewRestrictionValidator(),
		rates:        NewRateCalculator(carriers),
		logger:       logger,
	}
}

// Calculate produces the ranked shipping options for the items shipped to
// the address, using the catalog snapshot as seen by the requesting store.
//
// Returns ErrNoCoverage when no active zone covers the address, and a
// validation error when the address or items are invalid.
func (c ShippingCalculator) Calculate(
	ctx context.Context,
	catalog Catalog,
	store kernel.Owner,
	address kernel.Address,
	items []parcel.LineItem,
) (Result, error) {
	if err := address.Validate(); err != nil {
		return Result{}, err
	}
	if len(items) == 0 {
		return Result{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Result{}, err
		}
	}

	visible := catalog.VisibleTo(store)
	pkg := parcel.Aggregate(items)

	matched := c.matcher.Match(visible.Zones(), address)
	if len(matched) == 0 {
		return Result{}, ErrNoCoverage
	}

	candidates := c.collectCandidates(visible, matched, address, pkg, items)
	options := c.priceCandidates(ctx, candidates, address, pkg)

	rankOptions(options)

	ranked := make([]Option, 0, len(options))
	for _, opt := range options {
		ranked = append(ranked, opt.Option)
	}

	return Result{Options: ranked, Package: pkg}, nil
}

// candidate is one zone-method pair that survived the eligibility gates,
// with the strategy to price it under and its catalog traversal index.
type candidate struct {
	index    int
	zoneID   kernel.UUID
	zoneName string
	m        *method.Method
	strategy method.RateCalculation
}

// rankedOption keeps the traversal index next to the priced option so ties
// rank deterministically.
type rankedOption struct {
	Option
	index int
}

func (c ShippingCalculator) collectCandidates(
	catalog Catalog,
	matched []*zone.Zone,
	address kernel.Address,
	pkg parcel.Parcel,
	items []parcel.LineItem,
) []candidate {
	candidates := make([]candidate, 0)
	index := 0

	for _, z := range matched {
		for _, link := range z.MethodLinks() {
			if !link.IsActive() {
				continue
			}

			m, ok := catalog.MethodByID(link.MethodID())
			if !ok || !m.IsActive() {
				continue
			}

			if !c.restrictions.IsEligible(m, address, pkg, items) {
				continue
			}

			strategy := m.RateCalculation()
			if link.CustomRates() != nil {
				strategy = link.CustomRates()
			}

			candidates = append(candidates, candidate{
				index:    index,
				zoneID:   z.ID(),
				zoneName: z.Name(),
				m:        m,
				strategy: strategy,
			})
			index++
		}
	}

	return candidates
}

func (c ShippingCalculator) priceCandidates(
	ctx context.Context,
	candidates []candidate,
	address kernel.Address,
	pkg parcel.Parcel,
) []rankedOption {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		options = make([]rankedOption, 0, len(candidates))
	)

	for _, cand := range candidates {
		wg.Add(1)
		go func(cand candidate) {
			defer wg.Done()
			// A panicking strategy drops its own option only.
			defer func() {
				if r := recover(); r != nil {
					c.logger.Error("rate evaluation panicked",
						"method", cand.m.Code(), "zone", cand.zoneName, "panic", r)
				}
			}()

			cost, estimate, err := c.rates.Calculate(ctx, cand.m, cand.strategy, address, pkg)
			if err != nil {
				c.logger.Warn("shipping method unavailable",
					"method", cand.m.Code(), "zone", cand.zoneName, "error", err)
				return
			}

			opt := rankedOption{
				Option: Option{
					ZoneID:         cand.zoneID,
					ZoneName:       cand.zoneName,
					MethodID:       cand.m.ID(),
					MethodCode:     cand.m.Code(),
					MethodName:     cand.m.Name(),
					Description:    cand.m.Description(),
					CarrierName:    cand.m.CarrierName(),
					CarrierService: cand.m.CarrierService(),
					Features:       cand.m.Features(),
					RateType:       cand.strategy.Type(),
					Cost:           cost,
					Estimate:       estimate,
				},
				index: cand.index,
			}

			mu.Lock()
			options = append(options, opt)
			mu.Unlock()
		}(cand)
	}

	wg.Wait()
	return options
}

// rankOptions orders options by cost ascending, breaking ties by earliest
// promised delivery and finally by catalog traversal order.
func rankOptions(options []rankedOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Cost != options[j].Cost {
			return options[i].Cost < options[j].Cost
		}
		if options[i].Estimate.MinDays() != options[j].Estimate.MinDays() {
			return options[i].Estimate.MinDays() < options[j].Estimate.MinDays()
		}
		return options[i].index < options[j].index
	})
}

// roundCost rounds a monetary amount to two decimal places.
func roundCost(cost float64) float64 {
	return math.Round(cost*100) / 100
}
