// Package store is the reference persistence adapter for analysis results.
// The engine returns value objects and never persists anything itself; this
// package is the caller-side collaborator that saves them per user and
// reads them back for progress summaries.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-insight/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id                   UUID PRIMARY KEY,
			user_id              UUID NOT NULL,
			overall_score        DOUBLE PRECISION NOT NULL,
			action_verb_score    DOUBLE PRECISION NOT NULL,
			quantification_score DOUBLE PRECISION NOT NULL,
			keyword_score        DOUBLE PRECISION NOT NULL,
			missing_keywords     JSONB NOT NULL DEFAULT '[]',
			matched_keywords     JSONB NOT NULL DEFAULT '[]',
			level                TEXT NOT NULL DEFAULT '',
			recommendations      JSONB NOT NULL DEFAULT '[]',
			qualitative_feedback TEXT,
			created_at           TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS analyses_user_created_idx
			ON analyses (user_id, created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveAnalysis stores one analysis result for a user.
func (s *Store) SaveAnalysis(ctx context.Context, userID uuid.UUID, res types.AnalysisResult) error {
	missing, err := json.Marshal(emptyIfNil(res.MissingKeywords))
	if err != nil {
		return fmt.Errorf("failed to marshal missing keywords: %w", err)
	}
	matched, err := json.Marshal(emptyIfNil(res.MatchedKeywords))
	if err != nil {
		return fmt.Errorf("failed to marshal matched keywords: %w", err)
	}
	recs, err := json.Marshal(emptyIfNil(res.Recommendations))
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (
			id, user_id, overall_score, action_verb_score, quantification_score,
			keyword_score, missing_keywords, matched_keywords, level,
			recommendations, qualitative_feedback, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		res.ID, userID, res.OverallScore, res.ActionVerbScore,
		res.QuantificationScore, res.KeywordScore, missing, matched,
		res.Level, recs, res.QualitativeFeedback, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", res.ID, err)
	}
	return nil
}

// ListAnalyses returns a user's analyses ordered ascending by creation time.
// Filter bounds are pushed into the query; every bound is inclusive.
func (s *Store) ListAnalyses(ctx context.Context, userID uuid.UUID, opts types.FilterOptions) ([]types.AnalysisResult, error) {
	query := `SELECT id, overall_score, action_verb_score, quantification_score,
			keyword_score, missing_keywords, matched_keywords, level,
			recommendations, qualitative_feedback, created_at
		FROM analyses WHERE user_id = $1`
	args := []any{userID}

	if opts.StartDate != nil {
		args = append(args, *opts.StartDate)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if opts.EndDate != nil {
		args = append(args, *opts.EndDate)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	if opts.MinScore != nil {
		args = append(args, *opts.MinScore)
		query += fmt.Sprintf(" AND overall_score >= $%d", len(args))
	}
	if opts.MaxScore != nil {
		args = append(args, *opts.MaxScore)
		query += fmt.Sprintf(" AND overall_score <= $%d", len(args))
	}
	query += " ORDER BY created_at ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []types.AnalysisResult
	for rows.Next() {
		var (
			res                    types.AnalysisResult
			missing, matched, recs []byte
		)
		err := rows.Scan(&res.ID, &res.OverallScore, &res.ActionVerbScore,
			&res.QuantificationScore, &res.KeywordScore, &missing, &matched,
			&res.Level, &recs, &res.QualitativeFeedback, &res.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		if err := json.Unmarshal(missing, &res.MissingKeywords); err != nil {
			return nil, fmt.Errorf("failed to decode missing keywords: %w", err)
		}
		if err := json.Unmarshal(matched, &res.MatchedKeywords); err != nil {
			return nil, fmt.Errorf("failed to decode matched keywords: %w", err)
		}
		if err := json.Unmarshal(recs, &res.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return out, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
