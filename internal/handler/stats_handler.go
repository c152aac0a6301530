package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/models"
	"github.com/trailstats/trailstats/internal/service"
	"github.com/trailstats/trailstats/pkg/response"
)

// StatsHandler handles HTTP requests for track statistics
type StatsHandler struct {
	statsService *service.StatsService
	cfg          *config.Config
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService, cfg *config.Config) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		cfg:          cfg,
	}
}

// AnalyzeTrack handles POST /api/v1/tracks/stats. The GPX document is the
// request body (or a multipart "file" field); engine settings come from
// query parameters and default to the server configuration.
func (h *StatsHandler) AnalyzeTrack(c *gin.Context) {
	var opts models.AnalyzeOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	body, name, err := requestDocument(c, opts.Name)
	if err != nil {
		response.BadRequest(c, "Missing GPX document")
		return
	}
	defer body.Close()

	cfg := h.requestConfig(opts)

	var results []models.Stats
	if opts.Store {
		results, err = h.statsService.AnalyzeAndStore(body, name, cfg)
	} else {
		results, err = h.statsService.AnalyzeGPX(body, name, cfg)
	}
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, results)
}

// ListSummaries handles GET /api/v1/tracks/summaries
func (h *StatsHandler) ListSummaries(c *gin.Context) {
	var filter models.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	summaries, total, err := h.statsService.ListSummaries(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  summaries,
		"total": total,
	})
}

// requestDocument returns the GPX payload and a display name for it.
func requestDocument(c *gin.Context, name string) (io.ReadCloser, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		if name == "" {
			name = file.Filename
		}
		return f, name, nil
	}

	if name == "" {
		name = "upload.gpx"
	}
	return c.Request.Body, name, nil
}

// requestConfig merges per-request options over the server defaults.
func (h *StatsHandler) requestConfig(opts models.AnalyzeOptions) *config.Config {
	cfg := *h.cfg
	if opts.MinElevationGain != nil {
		cfg.MinElevationGain = *opts.MinElevationGain
	}
	if opts.MinDistance != nil {
		cfg.MinDistance = *opts.MinDistance
	}
	if opts.StandstillTimeS != nil {
		cfg.StandstillTime = time.Duration(*opts.StandstillTimeS) * time.Second
	}
	cfg.JoinSegments = opts.JoinSegments
	cfg.JoinTracks = opts.JoinTracks
	cfg.FilterZeroElevation = opts.FilterZeroElevation
	cfg.FilterElevationBelow = opts.FilterElevationBelow
	return cfg.Normalize()
}
