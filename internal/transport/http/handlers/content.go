package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/transport/http/middleware"
	"github.com/abh6007/job-board-app/internal/usecase"
)

// ContentHandler exposes the site content endpoints: social links, automation
// links, the about section, and design settings.
type ContentHandler struct {
	content *usecase.ContentService
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(content *usecase.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

var linkErrorCases = []ErrorCase{
	{Err: usecase.ErrLinkNotFound, Status: http.StatusNotFound, Message: "link not found"},
	{Err: usecase.ErrInvalidLink, Status: http.StatusBadRequest, Message: "invalid link payload"},
}

// ListSocialLinks godoc
// @Summary List social links
// @Description Anonymous visitors see visible links only; admin sessions see the full set.
// @Tags Content
// @Produce json
// @Success 200 {array} SocialLinkResponse
// @Router /api/social-links [get]
func (h *ContentHandler) ListSocialLinks(c *gin.Context) {
	links, err := h.content.ListSocialLinks(c.Request.Context(), !isAdminSession(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list social links"))
		return
	}

	out := make([]SocialLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, newSocialLinkResponse(link))
	}
	c.JSON(http.StatusOK, out)
}

// CreateSocialLink godoc
// @Summary Create a social link
// @Tags Content
// @Accept json
// @Produce json
// @Param request body SocialLinkRequest true "Link payload"
// @Success 201 {object} SocialLinkResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/social-links [post]
func (h *ContentHandler) CreateSocialLink(c *gin.Context) {
	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "platform and url are required"))
		return
	}

	link, err := h.content.CreateSocialLink(c.Request.Context(), usecase.SocialLinkInput{
		Platform:  strings.TrimSpace(req.Platform),
		URL:       strings.TrimSpace(req.URL),
		IsVisible: req.IsVisible,
	})
	if err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to create social link")
		return
	}

	c.JSON(http.StatusCreated, newSocialLinkResponse(*link))
}

// UpdateSocialLink godoc
// @Summary Update a social link
// @Tags Content
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param request body SocialLinkRequest true "Link payload"
// @Success 200 {object} SocialLinkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/social-links/{id} [put]
func (h *ContentHandler) UpdateSocialLink(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	var req SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "platform and url are required"))
		return
	}

	link, err := h.content.UpdateSocialLink(c.Request.Context(), id, usecase.SocialLinkInput{
		Platform:  strings.TrimSpace(req.Platform),
		URL:       strings.TrimSpace(req.URL),
		IsVisible: req.IsVisible,
	})
	if err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to update social link")
		return
	}

	c.JSON(http.StatusOK, newSocialLinkResponse(*link))
}

// DeleteSocialLink godoc
// @Summary Delete a social link
// @Tags Content
// @Produce json
// @Param id path int true "Link ID"
// @Success 204 {string} string ""
// @Failure 404 {object} ErrorResponse
// @Router /api/social-links/{id} [delete]
func (h *ContentHandler) DeleteSocialLink(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	if err := h.content.DeleteSocialLink(c.Request.Context(), id); err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to delete social link")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAutomationLinks godoc
// @Summary List automation links
// @Description Dashboard shortcuts for administrators.
// @Tags Content
// @Produce json
// @Success 200 {array} AutomationLinkResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/automation-links [get]
func (h *ContentHandler) ListAutomationLinks(c *gin.Context) {
	links, err := h.content.ListAutomationLinks(c.Request.Context(), !isAdminSession(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list automation links"))
		return
	}

	out := make([]AutomationLinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, newAutomationLinkResponse(link))
	}
	c.JSON(http.StatusOK, out)
}

// CreateAutomationLink godoc
// @Summary Create an automation link
// @Tags Content
// @Accept json
// @Produce json
// @Param request body AutomationLinkRequest true "Link payload"
// @Success 201 {object} AutomationLinkResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/automation-links [post]
func (h *ContentHandler) CreateAutomationLink(c *gin.Context) {
	var req AutomationLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "name and url are required"))
		return
	}

	link, err := h.content.CreateAutomationLink(c.Request.Context(), usecase.AutomationLinkInput{
		Name:      strings.TrimSpace(req.Name),
		URL:       strings.TrimSpace(req.URL),
		IsVisible: req.IsVisible,
	})
	if err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to create automation link")
		return
	}

	c.JSON(http.StatusCreated, newAutomationLinkResponse(*link))
}

// UpdateAutomationLink godoc
// @Summary Update an automation link
// @Tags Content
// @Accept json
// @Produce json
// @Param id path int true "Link ID"
// @Param request body AutomationLinkRequest true "Link payload"
// @Success 200 {object} AutomationLinkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/automation-links/{id} [put]
func (h *ContentHandler) UpdateAutomationLink(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	var req AutomationLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "name and url are required"))
		return
	}

	link, err := h.content.UpdateAutomationLink(c.Request.Context(), id, usecase.AutomationLinkInput{
		Name:      strings.TrimSpace(req.Name),
		URL:       strings.TrimSpace(req.URL),
		IsVisible: req.IsVisible,
	})
	if err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to update automation link")
		return
	}

	c.JSON(http.StatusOK, newAutomationLinkResponse(*link))
}

// DeleteAutomationLink godoc
// @Summary Delete an automation link
// @Tags Content
// @Produce json
// @Param id path int true "Link ID"
// @Success 204 {string} string ""
// @Failure 404 {object} ErrorResponse
// @Router /api/automation-links/{id} [delete]
func (h *ContentHandler) DeleteAutomationLink(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	if err := h.content.DeleteAutomationLink(c.Request.Context(), id); err != nil {
		RespondWithMappedError(c, err, linkErrorCases, http.StatusInternalServerError, "failed to delete automation link")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAboutMe godoc
// @Summary Fetch the about section
// @Tags Content
// @Produce json
// @Success 200 {object} AboutMeResponse
// @Router /api/about-me [get]
func (h *ContentHandler) GetAboutMe(c *gin.Context) {
	about, err := h.content.GetAboutMe(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to fetch about section"))
		return
	}

	c.JSON(http.StatusOK, AboutMeResponse{Content: about.Content})
}

// UpdateAboutMe godoc
// @Summary Replace the about section
// @Tags Content
// @Accept json
// @Produce json
// @Param request body AboutMeRequest true "About payload"
// @Success 200 {object} AboutMeResponse
// @Router /api/about-me [post]
func (h *ContentHandler) UpdateAboutMe(c *gin.Context) {
	var req AboutMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid about payload"))
		return
	}

	about, err := h.content.UpdateAboutMe(c.Request.Context(), req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to update about section"))
		return
	}

	c.JSON(http.StatusOK, AboutMeResponse{Content: about.Content})
}

// GetDesignSettings godoc
// @Summary Fetch the site theme
// @Tags Content
// @Produce json
// @Success 200 {object} DesignSettingsPayload
// @Router /api/design-settings [get]
func (h *ContentHandler) GetDesignSettings(c *gin.Context) {
	settings, err := h.content.GetDesignSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to fetch design settings"))
		return
	}

	c.JSON(http.StatusOK, newDesignSettingsPayload(*settings))
}

// UpdateDesignSettings godoc
// @Summary Replace the site theme
// @Tags Content
// @Accept json
// @Produce json
// @Param request body DesignSettingsPayload true "Theme payload"
// @Success 200 {object} DesignSettingsPayload
// @Router /api/design-settings [put]
func (h *ContentHandler) UpdateDesignSettings(c *gin.Context) {
	var req DesignSettingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid design settings payload"))
		return
	}

	settings, err := h.content.UpdateDesignSettings(c.Request.Context(), designSettingsFromPayload(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to update design settings"))
		return
	}

	c.JSON(http.StatusOK, newDesignSettingsPayload(*settings))
}

func linkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid link id"))
		return 0, false
	}
	return id, true
}

func isAdminSession(c *gin.Context) bool {
	user, ok := middleware.CurrentUser(c)
	return ok && user.IsAdmin
}
