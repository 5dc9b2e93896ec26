package handlers

import (
	"net/http"

	"moi/internal/models"
	"moi/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetMerchantPOI searches merchants around a point
// @Summary Search nearby merchants
// @Description Runs a 15 km radius search (first 10 results) around lat/lng and relays the provider response unchanged
// @Tags Places
// @Produce json
// @Param lat query string true "Origin latitude"
// @Param lng query string true "Origin longitude"
// @Param countryCode query string false "ISO country code of the origin"
// @Success 200 {object} models.MerchantPOIEnvelope "Provider search response"
// @Failure 400 {object} response.ErrorBody "Missing or invalid coordinates"
// @Failure 500 {object} response.ErrorBody "Provider failure"
// @Router /places/merchantPOI [get]
func (h *HandlerService) GetMerchantPOI(c *gin.Context) {
	var q models.PlaceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleError(c, NewBadRequestError("Invalid query parameters", err))
		return
	}
	if err := h.validate.Struct(q); err != nil {
		HandleError(c, NewBadRequestError("Invalid query parameters", err))
		return
	}

	body, err := h.provider.SearchNearbyMerchants(c.Request.Context(), q)
	if err != nil {
		HandleError(c, err)
		return
	}
	response.WriteRawJSON(c, http.StatusOK, body)
}

// GetMerchantCategoryCodes lists merchant category codes
// @Summary List merchant category codes
// @Description Relays the provider's merchant category code table unchanged
// @Tags Places
// @Produce json
// @Success 200 {object} models.CategoryListEnvelope "Provider category code list"
// @Failure 500 {object} response.ErrorBody "Provider failure"
// @Router /places/merchantCategoryCodes [get]
func (h *HandlerService) GetMerchantCategoryCodes(c *gin.Context) {
	body, err := h.provider.ListMerchantCategoryCodes(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	response.WriteRawJSON(c, http.StatusOK, body)
}

// GetMerchantIndustries lists merchant industries
// @Summary List merchant industries
// @Description Relays the provider's merchant industry table unchanged
// @Tags Places
// @Produce json
// @Success 200 {object} models.IndustryListEnvelope "Provider industry list"
// @Failure 500 {object} response.ErrorBody "Provider failure"
// @Router /places/merchantIndustries [get]
func (h *HandlerService) GetMerchantIndustries(c *gin.Context) {
	body, err := h.provider.ListMerchantIndustries(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	response.WriteRawJSON(c, http.StatusOK, body)
}
