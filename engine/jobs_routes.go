package engine

import (
	"net/http"
	"strconv"

	"github.com/drummonds/pdf2jpg/database"
	"github.com/labstack/echo/v4"
)

// jobResponse is a registry entry along with the links to its pages
type jobResponse struct {
	database.ConversionJob
	DownloadLinks []string `json:"download_links"`
}

func newJobResponse(job *database.ConversionJob) jobResponse {
	return jobResponse{ConversionJob: *job, DownloadLinks: job.DownloadLinks()}
}

// GetJob retrieves a conversion by ID
// @Summary Get conversion by ID
// @Description Retrieve the registry entry of a conversion and its download links
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Conversion file_id"
// @Param api_key query string true "API key"
// @Success 200 {object} jobResponse "Conversion details"
// @Failure 401 {object} errorDetail "Invalid API Key"
// @Failure 404 {object} errorDetail "Conversion not found"
// @Router /api/jobs/{id} [get]
func (serverHandler *ServerHandler) GetJob(c echo.Context) error {
	if err := CheckAPIKey(serverHandler.ServerConfig.APIKey, c.QueryParam("api_key")); err != nil {
		return err
	}
	jobID := c.Param("id")

	job, err := serverHandler.DB.GetJob(jobID)
	if err != nil {
		Logger.Debug("Failed to get job", "jobID", jobID, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, newJobResponse(job))
}

// GetRecentJobs retrieves recent conversions with pagination
// @Summary Get recent conversions
// @Description Retrieve the most recent conversions, newest first
// @Tags Jobs
// @Accept json
// @Produce json
// @Param api_key query string true "API key"
// @Param limit query int false "Number of jobs to return (default: 20)"
// @Param offset query int false "Offset for pagination (default: 0)"
// @Success 200 {array} jobResponse "List of conversions"
// @Failure 401 {object} errorDetail "Invalid API Key"
// @Failure 500 {object} errorDetail "Internal server error"
// @Router /api/jobs [get]
func (serverHandler *ServerHandler) GetRecentJobs(c echo.Context) error {
	if err := CheckAPIKey(serverHandler.ServerConfig.APIKey, c.QueryParam("api_key")); err != nil {
		return err
	}
	limit := 20
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	jobs, err := serverHandler.DB.GetRecentJobs(limit, offset)
	if err != nil {
		Logger.Error("Failed to get recent jobs", "error", err)
		return err
	}

	response := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		response = append(response, newJobResponse(&jobs[i]))
	}

	return c.JSON(http.StatusOK, response)
}
