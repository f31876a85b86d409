package payment_id

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "PAY-"

type Factory struct{}

func New() *Factory {
	return &Factory{}
}

// NewPaymentID returns an opaque unique id. Payments are the one collection
// without sequential ids; receipts only need uniqueness.
func (f *Factory) NewPaymentID() string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}
