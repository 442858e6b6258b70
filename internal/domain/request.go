package domain

// TransferRequest accumulates a reference, a type and legs before validation.
// It is never persisted; a successful transfer consumes it and produces a
// Transaction. Building one performs no business validation, so a request
// being constructible says nothing about it being permitted.
type TransferRequest struct {
	Reference string
	Type      string
	Legs      []Leg
}

// TransferRequestBuilder assembles a TransferRequest leg by leg. Account and
// Amount calls pair up: each Amount closes the leg opened by the preceding
// Account call.
type TransferRequestBuilder struct {
	request    TransferRequest
	pendingRef string
}

// BuildTransferRequest starts a new builder.
func BuildTransferRequest() *TransferRequestBuilder {
	return &TransferRequestBuilder{}
}

// Reference sets the transfer reference.
func (b *TransferRequestBuilder) Reference(ref string) *TransferRequestBuilder {
	b.request.Reference = ref
	return b
}

// Type sets the transfer type.
func (b *TransferRequestBuilder) Type(t string) *TransferRequestBuilder {
	b.request.Type = t
	return b
}

// Account opens a leg for the given account reference.
func (b *TransferRequestBuilder) Account(ref string) *TransferRequestBuilder {
	b.pendingRef = ref
	return b
}

// Amount closes the open leg with the given amount.
func (b *TransferRequestBuilder) Amount(m Money) *TransferRequestBuilder {
	b.request.Legs = append(b.request.Legs, Leg{AccountRef: b.pendingRef, Amount: m})
	b.pendingRef = ""

	return b
}

// Build returns the assembled request. Structural assembly only; the
// validator decides whether the request is acceptable.
func (b *TransferRequestBuilder) Build() *TransferRequest {
	req := b.request
	req.Legs = make([]Leg, len(b.request.Legs))
	copy(req.Legs, b.request.Legs)

	return &req
}
