package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roamly/services/booking"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc      booking.BookingService
	Payments booking.PaymentService
	Logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, payments booking.PaymentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Payments: payments, Logger: logger}
}

func (h *BookingHandler) respondErr(c *gin.Context, err error, action string) {
	var vErr booking.ValidationError
	var nfErr booking.NotFoundError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
	case errors.As(err, &nfErr):
		utils.JSONError(c, http.StatusNotFound, nfErr.Error(), "")
	default:
		h.Logger.Error(action+" failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error "+action, "")
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	b, err := h.Svc.Create(userID, input)
	if err != nil {
		h.respondErr(c, err, "creating booking")
		return
	}
	respondCreated(c, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, pagination, err := h.Svc.List(userID, booking.ListBookingsQuery{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.respondErr(c, err, "fetching bookings")
		return
	}
	respondPage(c, items, pagination)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	b, err := h.Svc.Get(userID, c.Param("id"))
	if err != nil {
		h.respondErr(c, err, "fetching booking")
		return
	}
	respondOK(c, b)
}

// UpdateBookingHandler handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	var input booking.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	b, err := h.Svc.Update(userID, c.Param("id"), input)
	if err != nil {
		h.respondErr(c, err, "updating booking")
		return
	}
	respondOK(c, b)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	b, err := h.Svc.Cancel(userID, c.Param("id"))
	if err != nil {
		h.respondErr(c, err, "cancelling booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled successfully", "data": b})
}

// CreatePaymentIntentHandler handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	intent, err := h.Payments.CreateIntent(userID, c.Param("id"))
	if err != nil {
		h.respondErr(c, err, "creating payment intent")
		return
	}
	respondCreated(c, intent)
}

// ConfirmPaymentHandler handles POST /api/bookings/:id/payment-confirm.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authorization required", "")
		return
	}

	b, err := h.Payments.MarkPaid(userID, c.Param("id"))
	if err != nil {
		h.respondErr(c, err, "confirming payment")
		return
	}
	respondOK(c, b)
}
