package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abh6007/job-board-app/internal/core/domain"
	"github.com/abh6007/job-board-app/internal/transport/http/middleware"
	"github.com/abh6007/job-board-app/internal/usecase"
)

// JobHandler exposes listing browse and management endpoints.
type JobHandler struct {
	jobs *usecase.JobService
}

// NewJobHandler constructs JobHandler.
func NewJobHandler(jobs *usecase.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

var jobErrorCases = []ErrorCase{
	{Err: usecase.ErrJobNotFound, Status: http.StatusNotFound, Message: "job not found"},
	{Err: usecase.ErrInvalidJob, Status: http.StatusBadRequest, Message: "invalid job payload"},
}

// List godoc
// @Summary Browse job listings
// @Description Returns active listings filtered by search, location, and type. Administrators with a session see every status when includeAll=true.
// @Tags Jobs
// @Produce json
// @Param search query string false "Match against title, description, and location"
// @Param location query string false "Location filter"
// @Param type query string false "Employment type filter"
// @Param includeAll query bool false "Include inactive and hidden listings (admin sessions only)"
// @Success 200 {object} JobListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := usecase.BrowseFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
		Type:     strings.TrimSpace(c.Query("type")),
	}

	if raw := c.Query("includeAll"); raw != "" {
		if include, err := strconv.ParseBool(raw); err == nil && include {
			// Only administrators may see non-active listings.
			if user, ok := middleware.CurrentUser(c); ok && user.IsAdmin {
				filter.IncludeAll = true
			}
		}
	}

	jobs, err := h.jobs.Browse(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to list jobs"))
		return
	}

	c.JSON(http.StatusOK, JobListResponse{
		Jobs:  newJobResponses(jobs),
		Total: len(jobs),
	})
}

// Get godoc
// @Summary Fetch a single listing
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} JobResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		RespondWithMappedError(c, err, jobErrorCases, http.StatusInternalServerError, "failed to fetch job")
		return
	}

	c.JSON(http.StatusOK, newJobResponse(*job))
}

// Create godoc
// @Summary Create a listing
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body JobRequest true "Job payload"
// @Success 201 {object} JobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	input, ok := bindJobRequest(c)
	if !ok {
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), input)
	if err != nil {
		RespondWithMappedError(c, err, jobErrorCases, http.StatusInternalServerError, "failed to create job")
		return
	}

	c.JSON(http.StatusCreated, newJobResponse(*job))
}

// Update godoc
// @Summary Update a listing
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body JobRequest true "Job payload"
// @Success 200 {object} JobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	input, ok := bindJobRequest(c)
	if !ok {
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondWithMappedError(c, err, jobErrorCases, http.StatusInternalServerError, "failed to update job")
		return
	}

	c.JSON(http.StatusOK, newJobResponse(*job))
}

// Delete godoc
// @Summary Delete a listing
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		RespondWithMappedError(c, err, jobErrorCases, http.StatusInternalServerError, "failed to delete job")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "job deleted"})
}

// RecordClick godoc
// @Summary Record a click on a listing
// @Description Increments the listing's click counter. Open to anonymous visitors.
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} ClickResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/jobs/{id}/click [post]
func (h *JobHandler) RecordClick(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	if err := h.jobs.RecordClick(c.Request.Context(), id); err != nil {
		RespondWithMappedError(c, err, jobErrorCases, http.StatusInternalServerError, "failed to record click")
		return
	}

	c.JSON(http.StatusOK, ClickResponse{Success: true})
}

// Stats godoc
// @Summary Board activity statistics
// @Description Aggregated counters plus the most searched and most clicked listings.
// @Tags Jobs
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/admin/stats [get]
func (h *JobHandler) Stats(c *gin.Context) {
	stats, err := h.jobs.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(c, "failed to compute stats"))
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		JobsPosted:   stats.JobsPosted,
		JobsActive:   stats.JobsActive,
		JobsInactive: stats.JobsInactive,
		MostSearched: newJobResponses(stats.MostSearched),
		MostClicked:  newJobResponses(stats.MostClicked),
	})
}

func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "invalid job id"))
		return 0, false
	}
	return id, true
}

func bindJobRequest(c *gin.Context) (usecase.JobInput, bool) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(c, "title, description, location, and type are required"))
		return usecase.JobInput{}, false
	}

	return usecase.JobInput{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Type:        strings.TrimSpace(req.Type),
		Status:      domain.JobStatus(strings.TrimSpace(req.Status)),
	}, true
}
