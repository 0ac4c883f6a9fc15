package api

import (
	"context"

	"github.com/davidpereyra2016/cv-generador/internal/mercadopago"
)

// PaymentGateway is the slice of the MercadoPago client the handlers use.
// Constructed once at startup and injected, so tests swap in a double.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
	PublicKey() string
}
