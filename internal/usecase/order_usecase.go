package usecase

import (
	"context"
	"errors"
	"math"
	"net/mail"
	"strings"
	"time"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrOrderNotConfirmed    = errors.New("order not confirmed")
	ErrExporterNotAvailable = errors.New("cut list exporter not configured")
)

// ConfirmOrderInput is the checkout command. ClientTotal is what the browser
// displayed; it is only compared against the server-side price.
type ConfirmOrderInput struct {
	Email        string
	ShippingCity string
	CustomerTags []string
	Config       entities.WardrobeConfig
	ClientTotal  *float64
}

// IOrderUseCase exposes order confirmation and read operations.
//
//   - POST /v1/orders                => Confirm()
//   - GET  /v1/orders/:id            => GetByID()
//   - GET  /v1/orders?email=         => ListByEmail()
//   - GET  /v1/orders/:id/cutlist.xlsx => ExportCutList()
//   - approved payment (PaymentUseCase) => MarkPaid()

type IOrderUseCase interface {
	Confirm(ctx context.Context, in ConfirmOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Order, error)
	MarkPaid(ctx context.Context, id string) (entities.Order, error)
	ExportCutList(ctx context.Context, id string) ([]byte, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	pricing  IPricingUseCase
	exporter interfaces.ICutListExporter
	log      zerolog.Logger
}

var (
	_ IOrderUseCase    = (*OrderUseCase)(nil)
	_ IOrderPaidMarker = (*OrderUseCase)(nil)
)

func NewOrderUseCase(repo interfaces.IOrderRepository, pricing IPricingUseCase, exporter interfaces.ICutListExporter, logger zerolog.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, pricing: pricing, exporter: exporter, log: logger}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (u *OrderUseCase) Confirm(ctx context.Context, in ConfirmOrderInput) (entities.Order, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.Order{}, err
	}

	quote, err := u.pricing.Quote(ctx, QuoteInput{
		Config:       in.Config,
		Email:        email,
		CustomerTags: in.CustomerTags,
		ShippingCity: in.ShippingCity,
	})
	if err != nil {
		u.log.Warn().Err(err).Str("email", email).Msg("[order][usecase] quote failed")
		return entities.Order{}, err
	}

	if in.ClientTotal != nil && math.Abs(*in.ClientTotal-quote.FinalPrice) >= 0.01 {
		u.log.Warn().
			Float64("client_total", *in.ClientTotal).
			Float64("server_total", quote.FinalPrice).
			Str("email", email).
			Msg("[order][usecase] client total discarded")
	}

	adjustments := quote.Adjustments
	if adjustments == nil {
		adjustments = []entities.RuleAdjustment{}
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:           uuid.NewString(),
		Email:        email,
		ShippingCity: strings.TrimSpace(in.ShippingCity),
		Status:       entities.OrderStatusConfirmed,
		Config:       in.Config,
		CutList:      quote.CutList,
		Adjustments:  adjustments,
		BaseTotal:    quote.BaseTotal,
		FinalTotal:   quote.FinalPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", o.ID).Msg("[order][usecase] create failed")
		return entities.Order{}, err
	}
	u.log.Info().Str("order_id", created.ID).Float64("final_total", created.FinalTotal).Msg("[order][usecase] order confirmed")
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Order, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByEmail(ctx, email)
}

// MarkPaid moves a confirmed order to paid. Marking a paid order again is a
// no-op.
func (u *OrderUseCase) MarkPaid(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	switch o.Status {
	case entities.OrderStatusPaid:
		return o, nil
	case entities.OrderStatusConfirmed:
	default:
		return entities.Order{}, ErrOrderNotConfirmed
	}

	updated, err := u.repo.UpdateStatus(ctx, o.ID, entities.OrderStatusPaid)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) ExportCutList(ctx context.Context, id string) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExporterNotAvailable
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.exporter.Export(o)
}
