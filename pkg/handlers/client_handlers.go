package handlers

import (
	"net/http"

	"moi/pkg/config"
	"moi/pkg/mapclient"
	"moi/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClientSettings tells the browser client how to behave
type ClientSettings struct {
	Production  bool    `json:"production"`
	DefaultLat  float64 `json:"defaultLat"`
	DefaultLng  float64 `json:"defaultLng"`
	DefaultZoom int     `json:"defaultZoom"`
}

// GetClientSettings returns the deployment mode and default map view
// @Summary Browser client settings
// @Description Deployment mode and default map view for the web client
// @Tags Client
// @Produce json
// @Success 200 {object} ClientSettings "Client settings"
// @Router /client/settings [get]
func (h *HandlerService) GetClientSettings(c *gin.Context) {
	clientCfg := config.NewClientConfig()
	production := false
	if h.config != nil {
		clientCfg = h.config.GetClientConfig()
		production = h.config.IsProduction()
	}

	settings := ClientSettings{
		Production:  production,
		DefaultLat:  clientCfg.DefaultLat,
		DefaultLng:  clientCfg.DefaultLng,
		DefaultZoom: clientCfg.DefaultZoom,
	}
	if settings.DefaultZoom <= 0 {
		settings.DefaultZoom = mapclient.DefaultZoom
	}
	response.WriteJSONResponse(c, http.StatusOK, settings)
}

// GetSampleResponse serves the bundled merchant search response
// @Summary Bundled sample search response
// @Description Merchant search response the web client renders outside production
// @Tags Client
// @Produce json
// @Success 200 {object} models.MerchantPOIEnvelope "Sample search response"
// @Router /client/sample [get]
func (h *HandlerService) GetSampleResponse(c *gin.Context) {
	response.WriteRawJSON(c, http.StatusOK, mapclient.SampleResponse())
}
