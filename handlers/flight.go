package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"roamly/services/flight"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FlightHandler proxies flight search calls to the external GDS.
type FlightHandler struct {
	Svc    flight.FlightService
	Logger *zap.Logger
}

// NewFlightHandler creates a FlightHandler.
func NewFlightHandler(svc flight.FlightService, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{Svc: svc, Logger: logger}
}

func (h *FlightHandler) respondErr(c *gin.Context, err error, action string) {
	var vErr flight.ValidationError
	var authErr flight.AuthError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
	case errors.As(err, &authErr):
		h.Logger.Error("flight provider auth failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Flight provider authentication failed", "")
	default:
		h.Logger.Error(action+" failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error "+action, "")
	}
}

// SearchLocationsHandler handles GET /api/flights/locations.
func (h *FlightHandler) SearchLocationsHandler(c *gin.Context) {
	data, err := h.Svc.SearchLocations(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.respondErr(c, err, "searching locations")
		return
	}
	respondOK(c, data)
}

// SearchFlightsHandler handles GET /api/flights/search.
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "1"))

	offers, err := h.Svc.SearchFlights(c.Request.Context(), flight.FlightSearchQuery{
		Origin:        c.Query("originLocationCode"),
		Destination:   c.Query("destinationLocationCode"),
		DepartureDate: c.Query("departureDate"),
		ReturnDate:    c.Query("returnDate"),
		Adults:        adults,
		TravelClass:   c.DefaultQuery("travelClass", "ECONOMY"),
	})
	if err != nil {
		h.respondErr(c, err, "searching flights")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": offers.Data, "meta": offers.Meta})
}

// PriceOffersHandler handles POST /api/flights/price.
func (h *FlightHandler) PriceOffersHandler(c *gin.Context) {
	var input struct {
		FlightOffers json.RawMessage `json:"flightOffers"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Flight offers are required", err.Error())
		return
	}

	data, err := h.Svc.PriceOffers(c.Request.Context(), input.FlightOffers)
	if err != nil {
		h.respondErr(c, err, "getting flight pricing")
		return
	}
	respondOK(c, data)
}
