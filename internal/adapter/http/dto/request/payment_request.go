package request

import "encoding/json"

// PaymentCreateRequest is the payload for charging a confirmed order.
//
// `mp_payload` is forwarded to Mercado Pago as-is (raw JSON); the amount is
// always replaced by the order's final total.

type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
