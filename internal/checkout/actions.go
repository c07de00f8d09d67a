package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a single field-change event applied to the form, mirroring the
// storefront's per-keystroke updates. Unknown actions and fields are
// rejected rather than ignored.
type Action struct {
	Action string `json:"action"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
}

// ApplyAction is the reducer for field-change events: it returns a new Form
// with the action applied, leaving the input untouched. Step transitions are
// not actions; they go through Advance and Retreat.
func ApplyAction(f Form, a Action) (Form, error) {
	if f.Step.IsTerminal() {
		return f, errors.New("form already submitted")
	}
	switch strings.ToLower(strings.TrimSpace(a.Action)) {
	case "setshippingfield":
		return setShippingField(f, a.Field, a.Value)
	case "setcardfield":
		return setCardField(f, a.Field, a.Value)
	case "setpaymentmethod":
		switch PaymentMethod(a.Value) {
		case MethodCard, MethodPaypal:
			f.Payment.Method = PaymentMethod(a.Value)
			return f, nil
		default:
			return f, fmt.Errorf("unknown payment method %q", a.Value)
		}
	default:
		return f, fmt.Errorf("unsupported action %q", a.Action)
	}
}

func setShippingField(f Form, field, value string) (Form, error) {
	switch field {
	case "email":
		f.Shipping.Email = value
	case "firstName":
		f.Shipping.FirstName = value
	case "lastName":
		f.Shipping.LastName = value
	case "address":
		f.Shipping.Address = value
	case "city":
		f.Shipping.City = value
	case "state":
		f.Shipping.State = value
	case "zipCode":
		f.Shipping.ZipCode = value
	case "country":
		f.Shipping.Country = value
	default:
		return f, fmt.Errorf("unknown shipping field %q", field)
	}
	return f, nil
}

func setCardField(f Form, field, value string) (Form, error) {
	switch field {
	case "cardNumber":
		f.Payment.CardNumber = value
	case "expiryDate":
		f.Payment.ExpiryDate = value
	case "cvv":
		f.Payment.CVV = value
	case "nameOnCard":
		f.Payment.NameOnCard = value
	default:
		return f, fmt.Errorf("unknown card field %q", field)
	}
	return f, nil
}
