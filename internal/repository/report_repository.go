package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// ReportRepository encapsulates abuse report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context, limit int) ([]domain.Report, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus) error
	CountByStatus(ctx context.Context, status domain.ReportStatus) (int, error)
	CountByReportedUser(ctx context.Context, userID string) (int, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

const reportColumns = `id, reported_user_id, reported_user_name, reporter_id, reason, description, status, created_at`

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO user_reports (id, reported_user_id, reported_user_name, reporter_id, reason, description, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		report.ID,
		report.ReportedUserID,
		report.ReportedUserName,
		report.ReporterID,
		report.Reason,
		report.Description,
		report.Status,
	).Scan(&report.CreatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	const query = `SELECT ` + reportColumns + ` FROM user_reports WHERE id=$1`

	var report domain.Report
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.ReportedUserID,
		&report.ReportedUserName,
		&report.ReporterID,
		&report.Reason,
		&report.Description,
		&report.Status,
		&report.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, limit int) ([]domain.Report, error) {
	const query = `SELECT ` + reportColumns + ` FROM user_reports ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE user_reports SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportRepository) CountByStatus(ctx context.Context, status domain.ReportStatus) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_reports WHERE status=$1`, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountByReportedUser(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM user_reports WHERE reported_user_id=$1`, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanReports(rows pgx.Rows) ([]domain.Report, error) {
	var result []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.ReportedUserID,
			&report.ReportedUserName,
			&report.ReporterID,
			&report.Reason,
			&report.Description,
			&report.Status,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}
