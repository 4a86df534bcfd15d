package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"wardrobe_pricing/internal/domain/cutlist"
	"wardrobe_pricing/internal/domain/doors"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/domain/geometry"
	"wardrobe_pricing/internal/domain/rules"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidWardrobeConfig  = errors.New("invalid wardrobe config")
	ErrPriceCalculationFailed = errors.New("price calculation failed")
)

// QuoteInput is one pricing request. Customer and order facts feed the rule
// conditions only.
type QuoteInput struct {
	Config       entities.WardrobeConfig
	Email        string
	CustomerTags []string
	ShippingCity string
}

// Quote is a server-side price for one wardrobe snapshot. BaseTotal is the
// cut list cost and FinalPrice the clamped total after every adjustment.
type Quote struct {
	Layout        geometry.WardrobeLayout
	CutList       entities.CutList
	DoorMetrics   doors.Metrics
	Context       rules.Context
	Adjustments   []entities.RuleAdjustment
	AdjustedTotal *float64
	BaseTotal     float64
	FinalPrice    float64
}

// IPricingUseCase computes layouts and authoritative quotes.
//
//   - POST /v1/layouts => Layout()
//   - POST /v1/quotes  => Quote()
//   - order confirmation recomputes through Quote() and ignores client totals

type IPricingUseCase interface {
	Layout(cfg entities.WardrobeConfig) (geometry.WardrobeLayout, error)
	Quote(ctx context.Context, in QuoteInput) (Quote, error)
}

type PricingUseCase struct {
	catalog interfaces.ICatalogRepository
	rules   interfaces.IRuleRepository
	orders  interfaces.IOrderRepository
	builder *cutlist.Builder
	engine  *rules.Engine
	log     zerolog.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.ICatalogRepository, ruleRepo interfaces.IRuleRepository, orders interfaces.IOrderRepository, logger zerolog.Logger) *PricingUseCase {
	return &PricingUseCase{
		catalog: catalog,
		rules:   ruleRepo,
		orders:  orders,
		builder: cutlist.NewBuilder(logger),
		engine:  rules.NewEngine(logger),
		log:     logger,
	}
}

func validateConfig(cfg entities.WardrobeConfig) error {
	dims := []struct {
		name  string
		value float64
	}{{"width", cfg.Width}, {"height", cfg.Height}, {"depth", cfg.Depth}}
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) || d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidWardrobeConfig, d.name)
		}
	}
	if cfg.PanelThicknessMM < 0 || math.IsNaN(cfg.PanelThicknessMM) || math.IsInf(cfg.PanelThicknessMM, 0) {
		return fmt.Errorf("%w: panel_thickness_mm", ErrInvalidWardrobeConfig)
	}
	return nil
}

func (u *PricingUseCase) Layout(cfg entities.WardrobeConfig) (geometry.WardrobeLayout, error) {
	if err := validateConfig(cfg); err != nil {
		return geometry.WardrobeLayout{}, err
	}
	return geometry.LayoutFromConfig(cfg), nil
}

func (u *PricingUseCase) Quote(ctx context.Context, in QuoteInput) (Quote, error) {
	cfg := in.Config
	if err := validateConfig(cfg); err != nil {
		return Quote{}, err
	}
	if u.catalog == nil || u.rules == nil {
		return Quote{}, errors.New("pricing repositories not configured")
	}

	catalog, err := u.catalog.Snapshot(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("[pricing][usecase] catalog snapshot failed")
		return Quote{}, err
	}
	active, err := u.rules.ListEnabled(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("[pricing][usecase] rule list failed")
		return Quote{}, err
	}

	layout := geometry.LayoutFromConfig(cfg)
	cl, err := u.builder.Build(cfg, layout, catalog)
	if err != nil {
		u.log.Warn().Err(err).Msg("[pricing][usecase] cut list failed")
		return Quote{}, fmt.Errorf("%w: %w", ErrPriceCalculationFailed, err)
	}
	metrics := doors.Resolve(cfg, catalog)

	customer, err := u.customerFacts(ctx, in)
	if err != nil {
		return Quote{}, err
	}
	rctx := rules.Context{
		Wardrobe: rules.WardrobeFactsFrom(cfg, layout, cl, metrics, catalog),
		Customer: customer,
		Order:    &rules.OrderFacts{Total: cl.TotalCost, ShippingCity: strings.TrimSpace(in.ShippingCity)},
	}

	res := u.engine.Apply(active, rctx, cl.TotalCost)
	final := rules.FinalPrice(cl.TotalCost, res.Adjustments)
	if math.IsNaN(final) || math.IsInf(final, 0) || final <= 0 {
		u.log.Warn().Float64("base_total", cl.TotalCost).Float64("final_price", final).Msg("[pricing][usecase] non-positive final price")
		return Quote{}, fmt.Errorf("%w: final price %.2f", ErrPriceCalculationFailed, final)
	}

	u.log.Debug().
		Float64("base_total", cl.TotalCost).
		Float64("final_price", final).
		Int("adjustments", len(res.Adjustments)).
		Msg("[pricing][usecase] quote computed")

	return Quote{
		Layout:        layout,
		CutList:       cl,
		DoorMetrics:   metrics,
		Context:       rctx,
		Adjustments:   res.Adjustments,
		AdjustedTotal: res.AdjustedTotal,
		BaseTotal:     cl.TotalCost,
		FinalPrice:    final,
	}, nil
}

func (u *PricingUseCase) customerFacts(ctx context.Context, in QuoteInput) (*rules.CustomerFacts, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	tags := make([]string, 0, len(in.CustomerTags))
	for _, t := range in.CustomerTags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	facts := &rules.CustomerFacts{Email: email, Tags: tags}
	if email == "" || u.orders == nil {
		return facts, nil
	}
	n, err := u.orders.CountByEmail(ctx, email)
	if err != nil {
		u.log.Error().Err(err).Msg("[pricing][usecase] order count failed")
		return nil, err
	}
	facts.OrderCount = n
	return facts, nil
}
