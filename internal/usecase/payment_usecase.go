package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"wardrobe_pricing/internal/domain/entities"
	"wardrobe_pricing/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges confirmed orders.
//
// The charged amount is always the order's frozen final total; any amount in
// the client payload is overwritten.

type IPaymentUseCase interface {
	CreateForOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

// IOrderPaidMarker moves an order to paid once its payment is approved.
// OrderUseCase implements it.

type IOrderPaidMarker interface {
	MarkPaid(ctx context.Context, id string) (entities.Order, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	orders    IOrderPaidMarker
	log       zerolog.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, orders IOrderPaidMarker, logger zerolog.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, orders: orders, log: logger}
}

func (u *PaymentUseCase) CreateForOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	u.log.Info().Str("raw_order_id", orderID).Int("payload_len", len(mpPayload)).Msg("[payment][usecase] create start")
	mockMode := isPaymentGatewayMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warn().Str("order_id", orderID).Msg("[payment][usecase] invalid payload")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.log.Error().Str("order_id", orderID).Msg("[payment][usecase] gateway not configured")
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.orderRepo == nil || u.repo == nil || u.orders == nil {
		return entities.OrderPayment{}, errors.New("payment repositories not configured")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", orderID).Msg("[payment][usecase] failed loading order")
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	switch order.Status {
	case entities.OrderStatusConfirmed:
	case entities.OrderStatusPaid:
		return entities.OrderPayment{}, ErrOrderAlreadyPaid
	default:
		u.log.Warn().Str("order_id", orderID).Str("status", string(order.Status)).Msg("[payment][usecase] order not payable")
		return entities.OrderPayment{}, ErrOrderNotConfirmed
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Warn().Str("order_id", orderID).Msg("[payment][usecase] missing payment_method_id")
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
		if normalizeSandboxPayerFromUserID(reqMap) {
			u.log.Debug().Str("order_id", orderID).Msg("[payment][usecase] mapped sandbox payer user_id to payer.email")
		}
		ensurePayerDefaults(reqMap, order.Email)
		if !hasPayer(reqMap) {
			return entities.OrderPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Wardrobe order %s", orderID)
	}
	reqMap["transaction_amount"] = order.FinalTotal
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		u.log.Info().Str("order_id", orderID).Msg("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockGatewayResponse(reqMap)
		if err != nil {
			return entities.OrderPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.log.Error().Err(err).Str("order_id", orderID).Msg("[payment][usecase] payment gateway failed")
			return entities.OrderPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("order_id", orderID).Msg("[payment][usecase] provider response unmarshal failed")
	}

	p := entities.OrderPayment{
		ID:           providerPaymentID,
		OrderID:      orderID,
		Amount:       order.FinalTotal,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error().Err(err).Str("order_id", orderID).Str("payment_id", p.ID).Msg("[payment][usecase] payment repository create failed")
		return entities.OrderPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.orders.MarkPaid(ctx, orderID); err != nil {
			u.log.Error().Err(err).Str("order_id", orderID).Msg("[payment][usecase] mark order paid failed")
			return entities.OrderPayment{}, err
		}
	}
	u.log.Info().Str("order_id", orderID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("[payment][usecase] create success")
	return created, nil
}

func mockGatewayResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the payer from the order email when the client
// sent neither a payer id nor an email.
func ensurePayerDefaults(m map[string]any, orderEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case orderEmail != "":
		payer["email"] = orderEmail
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return false
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return false
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return false
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return false
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	return true
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, "\"error\":\"bad_request\"", "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, "\"error\":\"unauthorized\"", "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", "\"code\":2002")
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.OrderPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if p.ID == "" {
		return entities.OrderPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
