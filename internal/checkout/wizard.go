package checkout

import (
	"strings"

	"shopflow/internal/domain"
)

// ShippingComplete reports whether every field gating the shipping step is
// filled in. Country never blocks; it always has a default. Validation is
// presence-only: no format checks gate navigation.
func ShippingComplete(s Shipping) bool {
	required := []string{s.Email, s.FirstName, s.LastName, s.Address, s.City, s.State, s.ZipCode}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// PaymentComplete reports whether the payment step may be left. Card payments
// require all four card fields; paypal requires nothing further.
func PaymentComplete(p Payment) bool {
	if p.Method == MethodPaypal {
		return true
	}
	required := []string{p.CardNumber, p.ExpiryDate, p.CVV, p.NameOnCard}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Advance moves the form one step forward. It returns domain.ErrIncompleteStep
// when the current step's required fields are not all filled, in which case
// the returned form is unchanged. There is no skip-ahead.
func Advance(f Form) (Form, error) {
	switch f.Step {
	case StepShipping:
		if !ShippingComplete(f.Shipping) {
			return f, domain.ErrIncompleteStep
		}
		f.Step = StepPayment
		return f, nil
	case StepPayment:
		if !PaymentComplete(f.Payment) {
			return f, domain.ErrIncompleteStep
		}
		f.Step = StepReview
		return f, nil
	case StepReview:
		f.Step = StepSubmitted
		return f, nil
	case StepSubmitted:
		return f, domain.ErrSubmitted
	default:
		return f, domain.ErrInvalidTransition
	}
}

// Retreat moves the form one step back. Backward transitions never
// re-validate. Shipping has no predecessor and submitted is terminal.
func Retreat(f Form) (Form, error) {
	switch f.Step {
	case StepPayment:
		f.Step = StepShipping
		return f, nil
	case StepReview:
		f.Step = StepPayment
		return f, nil
	case StepSubmitted:
		return f, domain.ErrSubmitted
	default:
		return f, domain.ErrInvalidTransition
	}
}
