package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopflow/internal/checkout"
	"shopflow/internal/domain"
	checkoutsvc "shopflow/internal/service/checkout"
)

type stubCheckoutSvc struct {
	session     checkoutsvc.Session
	getErr      error
	applyErr    error
	advanceErr  error
	retreatErr  error
	order       domain.Order
	submitErr   error
	lastActions []checkout.Action
}

func (s *stubCheckoutSvc) Create() checkoutsvc.Session {
	return s.session
}

func (s *stubCheckoutSvc) Get(_ string) (checkoutsvc.Session, error) {
	return s.session, s.getErr
}

func (s *stubCheckoutSvc) Apply(_ string, actions []checkout.Action) (checkoutsvc.Session, error) {
	s.lastActions = actions
	return s.session, s.applyErr
}

func (s *stubCheckoutSvc) Advance(_ string) (checkoutsvc.Session, error) {
	return s.session, s.advanceErr
}

func (s *stubCheckoutSvc) Retreat(_ string) (checkoutsvc.Session, error) {
	return s.session, s.retreatErr
}

func (s *stubCheckoutSvc) Submit(_ context.Context, _ string) (domain.Order, error) {
	return s.order, s.submitErr
}

func TestCreateCheckout(t *testing.T) {
	svc := &stubCheckoutSvc{session: checkoutsvc.Session{ID: "s1", Form: checkout.NewForm()}}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"step":"shipping"`) {
		t.Fatalf("expected shipping step in body: %s", rec.Body.String())
	}
}

func TestGetCheckoutNotFound(t *testing.T) {
	svc := &stubCheckoutSvc{getErr: domain.ErrNotFound}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateCheckoutDispatchesActions(t *testing.T) {
	svc := &stubCheckoutSvc{session: checkoutsvc.Session{ID: "s1"}}
	router := testRouter(Deps{CheckoutSvc: svc})

	body := `{"actions":[{"action":"setShippingField","field":"email","value":"jo@example.com"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.lastActions) != 1 || svc.lastActions[0].Field != "email" {
		t.Fatalf("actions not dispatched: %+v", svc.lastActions)
	}
}

func TestUpdateCheckoutBadBody(t *testing.T) {
	router := testRouter(Deps{CheckoutSvc: &stubCheckoutSvc{}})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdvanceCheckoutGated(t *testing.T) {
	svc := &stubCheckoutSvc{advanceErr: domain.ErrIncompleteStep}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1/advance", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestBackCheckoutInvalid(t *testing.T) {
	svc := &stubCheckoutSvc{retreatErr: domain.ErrInvalidTransition}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1/back", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSubmitCheckout(t *testing.T) {
	svc := &stubCheckoutSvc{order: domain.Order{ID: "o1", Email: "jo@example.com"}}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"o1"`) {
		t.Fatalf("expected order in body: %s", rec.Body.String())
	}
}

func TestSubmitCheckoutWrongStep(t *testing.T) {
	svc := &stubCheckoutSvc{submitErr: domain.ErrInvalidTransition}
	router := testRouter(Deps{CheckoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/s1/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
