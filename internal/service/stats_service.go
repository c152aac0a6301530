package service

import (
	"fmt"
	"io"
	"log"

	"github.com/trailstats/trailstats/internal/analysis"
	"github.com/trailstats/trailstats/internal/config"
	"github.com/trailstats/trailstats/internal/gpx"
	"github.com/trailstats/trailstats/internal/models"
	"github.com/trailstats/trailstats/internal/repository"
)

// StatsService handles business logic for track statistics
type StatsService struct {
	summaryRepo *repository.SummaryRepository
}

// NewStatsService creates a new stats service
func NewStatsService(summaryRepo *repository.SummaryRepository) *StatsService {
	return &StatsService{
		summaryRepo: summaryRepo,
	}
}

// AnalyzeGPX decodes one GPX document and runs the statistics engine over it.
func (s *StatsService) AnalyzeGPX(r io.Reader, name string, cfg *config.Config) ([]models.Stats, error) {
	file, err := gpx.ParseReader(r, name)
	if err != nil {
		return nil, fmt.Errorf("failed to decode GPX: %w", err)
	}

	return analysis.Run([]models.File{file}, cfg), nil
}

// AnalyzeAndStore analyses a GPX document and persists one summary row per
// group. The returned stats keep group-resolution order.
func (s *StatsService) AnalyzeAndStore(r io.Reader, name string, cfg *config.Config) ([]models.Stats, error) {
	results, err := s.AnalyzeGPX(r, name, cfg)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TrackSummary, 0, len(results))
	for _, st := range results {
		summaries = append(summaries, ToSummary(st, name))
	}
	if err := s.summaryRepo.InsertAll(summaries); err != nil {
		return nil, fmt.Errorf("failed to store summaries: %w", err)
	}

	log.Printf("[StatsService] Analysed %s: %d group(s) stored", name, len(results))
	return results, nil
}

// ListSummaries retrieves stored summaries with filtering.
func (s *StatsService) ListSummaries(filter models.SummaryFilter) ([]models.TrackSummary, int64, error) {
	summaries, total, err := s.summaryRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list summaries: %w", err)
	}
	return summaries, total, nil
}

// ToSummary converts engine output to its persisted form. Durations become
// whole seconds; undefined fields stay NULL.
func ToSummary(st models.Stats, fileName string) models.TrackSummary {
	summary := models.TrackSummary{
		FileName:       fileName,
		Label:          st.Source.Label,
		PointCount:     st.PointCount,
		StartElevation: st.StartElevation,
		EndElevation:   st.EndElevation,
		MinElevation:   st.MinElevation,
		MaxElevation:   st.MaxElevation,
		ElevationGain:  st.ElevationGain,
		TotalDistance:  st.TotalDistance,
	}
	if st.TotalTime != nil {
		secs := int64(st.TotalTime.Seconds())
		summary.TotalTimeS = &secs
	}
	if st.MovingTime != nil {
		secs := int64(st.MovingTime.Seconds())
		summary.MovingTimeS = &secs
	}
	return summary
}
