package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationRule checks one aspect of a TransferRequest.
type ValidationRule func(req *TransferRequest) error

// TransferValidator runs an ordered, short-circuiting rule pipeline over a
// TransferRequest. It never touches storage; checks that need account state
// (currency-vs-account, overdraft) belong to the transfer use case.
type TransferValidator struct {
	rules []ValidationRule
}

// NewTransferValidator creates the validator with the standard rule order:
// reference, type, leg count, leg fields, single currency, balanced legs.
func NewTransferValidator() *TransferValidator {
	return &TransferValidator{
		rules: []ValidationRule{
			validateReference,
			validateType,
			validateLegCount,
			validateLegFields,
			validateSingleCurrency,
			validateBalancedLegs,
		},
	}
}

// Validate runs the rules in order and returns the first failure.
func (v *TransferValidator) Validate(req *TransferRequest) error {
	for _, rule := range v.rules {
		if err := rule(req); err != nil {
			return err
		}
	}

	return nil
}

func validateReference(req *TransferRequest) error {
	if strings.TrimSpace(req.Reference) == "" {
		return NewInvalidArgument("transfer reference is required")
	}

	return nil
}

func validateType(req *TransferRequest) error {
	if strings.TrimSpace(req.Type) == "" {
		return NewInvalidArgument("transfer type is required")
	}

	return nil
}

func validateLegCount(req *TransferRequest) error {
	if len(req.Legs) < 2 {
		return NewIllegalState("a transfer needs at least two legs")
	}

	return nil
}

func validateLegFields(req *TransferRequest) error {
	for i, leg := range req.Legs {
		if strings.TrimSpace(leg.AccountRef) == "" {
			return NewTransferValidation(i, "account reference is missing")
		}

		if !leg.Amount.IsSet() {
			return NewTransferValidation(i, "amount is missing")
		}
	}

	return nil
}

func validateSingleCurrency(req *TransferRequest) error {
	currency := req.Legs[0].Amount.Currency()

	for i, leg := range req.Legs {
		if leg.Amount.Currency() != currency {
			return NewTransferValidation(i, "currency "+leg.Amount.Currency()+" differs from "+currency)
		}
	}

	return nil
}

func validateBalancedLegs(req *TransferRequest) error {
	// The single-currency rule ran already, so plain decimal summation is
	// safe here.
	sum := decimal.Zero
	for _, leg := range req.Legs {
		sum = sum.Add(leg.Amount.Amount())
	}

	if !sum.IsZero() {
		imbalance, _ := NewMoney(sum, req.Legs[0].Amount.Currency())
		return NewUnbalancedLegs(imbalance)
	}

	return nil
}
