package checkout

import (
	"context"
	"errors"
	"testing"

	"shopflow/internal/checkout"
	"shopflow/internal/domain"
)

type stubPlacer struct {
	err    error
	placed []domain.Order
}

func (s *stubPlacer) Place(_ context.Context, order domain.Order) error {
	if s.err != nil {
		return s.err
	}
	s.placed = append(s.placed, order)
	return nil
}

func fillShipping(t *testing.T, svc *Service, id string) {
	t.Helper()
	fields := map[string]string{
		"email":     "jo@example.com",
		"firstName": "Jo",
		"lastName":  "Doe",
		"address":   "1 Main St",
		"city":      "Springfield",
		"state":     "IL",
		"zipCode":   "62701",
	}
	var actions []checkout.Action
	for field, value := range fields {
		actions = append(actions, checkout.Action{Action: "setShippingField", Field: field, Value: value})
	}
	if _, err := svc.Apply(id, actions); err != nil {
		t.Fatalf("fill shipping: %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()
	if sess.ID == "" || sess.Form.Step != checkout.StepShipping {
		t.Fatalf("unexpected session %+v", sess)
	}

	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("unexpected session id %s", got.ID)
	}

	if _, err := svc.Get("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplyRequiresActions(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()
	if _, err := svc.Apply(sess.ID, nil); err == nil || err.Error() != "actions required" {
		t.Fatalf("expected actions error, got %v", err)
	}
}

func TestApplyIsAtomic(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()

	_, err := svc.Apply(sess.ID, []checkout.Action{
		{Action: "setShippingField", Field: "city", Value: "Springfield"},
		{Action: "setShippingField", Field: "fax", Value: "nope"},
	})
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}

	got, _ := svc.Get(sess.ID)
	if got.Form.Shipping.City != "" {
		t.Fatalf("partial action batch was persisted: %+v", got.Form.Shipping)
	}
}

func TestAdvanceGatedUntilComplete(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()

	got, err := svc.Advance(sess.ID)
	if !errors.Is(err, domain.ErrIncompleteStep) {
		t.Fatalf("expected incomplete step, got %v", err)
	}
	if got.Form.Step != checkout.StepShipping {
		t.Fatalf("gated advance changed step to %s", got.Form.Step)
	}

	fillShipping(t, svc, sess.ID)
	got, err = svc.Advance(sess.ID)
	if err != nil || got.Form.Step != checkout.StepPayment {
		t.Fatalf("expected payment step, got %s err=%v", got.Form.Step, err)
	}
}

func TestRetreatAndReAdvance(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()
	fillShipping(t, svc, sess.ID)
	if _, err := svc.Advance(sess.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}

	got, err := svc.Retreat(sess.ID)
	if err != nil || got.Form.Step != checkout.StepShipping {
		t.Fatalf("expected shipping after retreat, got %s err=%v", got.Form.Step, err)
	}

	// Fields survive a round trip.
	if got.Form.Shipping.City != "Springfield" {
		t.Fatalf("shipping data lost on retreat: %+v", got.Form.Shipping)
	}
}

func TestSubmitFullFlow(t *testing.T) {
	placer := &stubPlacer{}
	svc := New(placer, nil)
	sess := svc.Create()
	fillShipping(t, svc, sess.ID)

	if _, err := svc.Apply(sess.ID, []checkout.Action{{Action: "setPaymentMethod", Value: "paypal"}}); err != nil {
		t.Fatalf("set method: %v", err)
	}
	if _, err := svc.Advance(sess.ID); err != nil {
		t.Fatalf("to payment: %v", err)
	}
	if _, err := svc.Advance(sess.ID); err != nil {
		t.Fatalf("to review: %v", err)
	}

	order, err := svc.Submit(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.ID == "" || order.Email != "jo@example.com" || order.PaymentMethod != "paypal" {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(placer.placed) != 1 {
		t.Fatalf("placer not called")
	}

	// The session is discarded after submit.
	if _, err := svc.Get(sess.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestSubmitRequiresReview(t *testing.T) {
	svc := New(&stubPlacer{}, nil)
	sess := svc.Create()
	if _, err := svc.Submit(context.Background(), sess.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestSubmitPlacerErrorKeepsSession(t *testing.T) {
	placer := &stubPlacer{err: errors.New("downstream down")}
	svc := New(placer, nil)
	sess := svc.Create()
	fillShipping(t, svc, sess.ID)
	if _, err := svc.Apply(sess.ID, []checkout.Action{{Action: "setPaymentMethod", Value: "paypal"}}); err != nil {
		t.Fatalf("set method: %v", err)
	}
	svc.Advance(sess.ID)
	svc.Advance(sess.ID)

	if _, err := svc.Submit(context.Background(), sess.ID); err == nil {
		t.Fatalf("expected placer error")
	}

	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatalf("session discarded despite failed hand-off: %v", err)
	}
	if got.Form.Step != checkout.StepReview {
		t.Fatalf("expected review step preserved, got %s", got.Form.Step)
	}
}
