package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/trailstats/trailstats/internal/database"
	"github.com/trailstats/trailstats/internal/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// SummaryRepository handles database operations for track summaries
type SummaryRepository struct {
	db *sql.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Insert stores one computed summary and returns its row ID.
func (r *SummaryRepository) Insert(s models.TrackSummary) (int64, error) {
	return insertSummary(r.db, s)
}

// InsertAll stores a batch of summaries in a single transaction. Either
// every row lands or none do.
func (r *SummaryRepository) InsertAll(summaries []models.TrackSummary) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		for _, s := range summaries {
			if _, err := insertSummary(tx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertSummary(e execer, s models.TrackSummary) (int64, error) {
	query := `
		INSERT INTO track_summaries (
			file_name, label, point_count,
			start_elevation, end_elevation, min_elevation, max_elevation,
			elevation_gain, total_distance, total_time_s, moving_time_s
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := e.Exec(query,
		s.FileName, s.Label, s.PointCount,
		nullFloat(s.StartElevation), nullFloat(s.EndElevation),
		nullFloat(s.MinElevation), nullFloat(s.MaxElevation),
		s.ElevationGain, s.TotalDistance,
		nullInt(s.TotalTimeS), nullInt(s.MovingTimeS),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert track summary: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted summary id: %w", err)
	}
	return id, nil
}

// List retrieves stored summaries, newest first, with optional filtering.
func (r *SummaryRepository) List(filter models.SummaryFilter) ([]models.TrackSummary, int64, error) {
	query := `SELECT id, file_name, label, point_count,
		start_elevation, end_elevation, min_elevation, max_elevation,
		elevation_gain, total_distance, total_time_s, moving_time_s, created_at
		FROM track_summaries`

	var conditions []string
	var args []interface{}

	if filter.FileName != "" {
		conditions = append(conditions, "file_name = ?")
		args = append(args, filter.FileName)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM track_summaries"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count track summaries: %w", err)
	}

	if filter.Limit < 1 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query track summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.TrackSummary
	for rows.Next() {
		var s models.TrackSummary
		var startElev, endElev, minElev, maxElev sql.NullFloat64
		var totalTime, movingTime sql.NullInt64
		var createdAt sql.NullString

		if err := rows.Scan(
			&s.ID, &s.FileName, &s.Label, &s.PointCount,
			&startElev, &endElev, &minElev, &maxElev,
			&s.ElevationGain, &s.TotalDistance, &totalTime, &movingTime, &createdAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan track summary: %w", err)
		}

		s.StartElevation = floatPtr(startElev)
		s.EndElevation = floatPtr(endElev)
		s.MinElevation = floatPtr(minElev)
		s.MaxElevation = floatPtr(maxElev)
		s.TotalTimeS = intPtr(totalTime)
		s.MovingTimeS = intPtr(movingTime)
		if createdAt.Valid {
			s.CreatedAt = createdAt.String
		}

		summaries = append(summaries, s)
	}

	return summaries, total, rows.Err()
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
