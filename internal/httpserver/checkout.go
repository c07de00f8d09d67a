package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopflow/internal/checkout"
	"shopflow/internal/domain"
)

type checkoutUpdateRequest struct {
	Actions []checkout.Action `json:"actions"`
}

func createCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, svc.Create())
	}
}

func getCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Get(c.Param("id"))
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func updateCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sess, err := svc.Apply(c.Param("id"), req.Actions)
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func advanceCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Advance(c.Param("id"))
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func backCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Retreat(c.Param("id"))
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func submitCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Submit(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

// writeCheckoutError maps wizard errors to status codes. The incomplete-step
// rejection carries no per-field detail: the storefront only ever disabled
// its Continue control, so the API reports the step, not the field.
func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
	case errors.Is(err, domain.ErrIncompleteStep):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "current step is incomplete"})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrSubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
