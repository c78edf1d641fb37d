package handlers

import (
	"net/http"

	"cornerstone_backend/internal/middleware"
	"cornerstone_backend/internal/services"
	"cornerstone_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	*BaseHandler
	preferenceService services.PreferenceService
}

func NewPreferenceHandler(base *BaseHandler, preferenceService services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		BaseHandler:       base,
		preferenceService: preferenceService,
	}
}

func (h *PreferenceHandler) RegisterRoutes(r *gin.RouterGroup) {
	preferences := r.Group("/preferences")
	preferences.Use(middleware.Auth())
	{
		preferences.GET("", h.Get)
		preferences.PUT("", h.Update)
	}
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	prefs, err := h.preferenceService.Get(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferenceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	prefs, err := h.preferenceService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
