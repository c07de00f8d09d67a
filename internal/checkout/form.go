package checkout

// Step is the wizard's position. Transitions are strictly linear:
// shipping → payment → review → submitted, with free backward movement
// and submitted as a terminal state.
type Step string

const (
	StepShipping  Step = "shipping"
	StepPayment   Step = "payment"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"
)

// IsTerminal reports whether the wizard can move at all from s.
func (s Step) IsTerminal() bool {
	return s == StepSubmitted
}

func (s Step) String() string {
	return string(s)
}

// PaymentMethod selects which payment fields gate the payment step.
type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPaypal PaymentMethod = "paypal"
)

// DefaultCountry pre-fills the shipping country; the country field never
// blocks the shipping step.
const DefaultCountry = "US"

type Shipping struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

type Payment struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"cardNumber"`
	ExpiryDate string        `json:"expiryDate"`
	CVV        string        `json:"cvv"`
	NameOnCard string        `json:"nameOnCard"`
}

// Form is the wizard state: the collected field data plus the current step.
// It is a value; every change produces a new Form.
type Form struct {
	Step     Step     `json:"step"`
	Shipping Shipping `json:"shipping"`
	Payment  Payment  `json:"payment"`
}

// NewForm returns an empty form at the shipping step.
func NewForm() Form {
	return Form{
		Step:     StepShipping,
		Shipping: Shipping{Country: DefaultCountry},
		Payment:  Payment{Method: MethodCard},
	}
}
