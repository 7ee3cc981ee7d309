package handlers

import (
	"errors"
	"net/http"
	"strconv"

	hotelRepo "roamly/database/repository/hotel"
	"roamly/models"
	"roamly/services/hotel"
	"roamly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler exposes the hotel catalog over HTTP.
type HotelHandler struct {
	Svc    hotel.HotelService
	Logger *zap.Logger
}

// NewHotelHandler creates a HotelHandler.
func NewHotelHandler(svc hotel.HotelService, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{Svc: svc, Logger: logger}
}

func (h *HotelHandler) respondErr(c *gin.Context, err error, action string) {
	var vErr hotel.ValidationError
	var nfErr hotel.NotFoundError
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

// parseFloatParam returns a pointer to the parsed value, or nil when the
// parameter is absent or malformed (absent filter means no constraint).
func parseFloatParam(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ListHotelsHandler handles GET /api/hotels.
func (h *HotelHandler) ListHotelsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := hotelRepo.HotelQuery{
		Location:  c.Query("location"),
		MinPrice:  parseFloatParam(c, "minPrice"),
		MaxPrice:  parseFloatParam(c, "maxPrice"),
		MinRating: parseFloatParam(c, "rating"),
		SortBy:    c.DefaultQuery("sortBy", hotelRepo.SortPriceAsc),
		Page:      page,
		Limit:     limit,
	}

	items, pagination, err := h.Svc.List(q)
	if err != nil {
		h.respondErr(c, err, "fetching hotels")
		return
	}
	respondPage(c, items, pagination)
}

// GetHotelHandler handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotelHandler(c *gin.Context) {
	hotelDoc, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		h.respondErr(c, err, "fetching hotel")
		return
	}
	respondOK(c, hotelDoc)
}

// CreateHotelHandler handles POST /api/hotels.
func (h *HotelHandler) CreateHotelHandler(c *gin.Context) {
	var input models.Hotel
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel payload", err.Error())
		return
	}

	created, err := h.Svc.Create(&input)
	if err != nil {
		h.respondErr(c, err, "creating hotel")
		return
	}
	respondCreated(c, created)
}

// UpdateHotelHandler handles PUT /api/hotels/:id.
func (h *HotelHandler) UpdateHotelHandler(c *gin.Context) {
	var input hotel.UpdateHotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel payload", err.Error())
		return
	}

	updated, err := h.Svc.Update(c.Param("id"), input)
	if err != nil {
		h.respondErr(c, err, "updating hotel")
		return
	}
	respondOK(c, updated)
}

// DeleteHotelHandler handles DELETE /api/hotels/:id (soft delete).
func (h *HotelHandler) DeleteHotelHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		h.respondErr(c, err, "deleting hotel")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hotel deleted successfully"})
}
