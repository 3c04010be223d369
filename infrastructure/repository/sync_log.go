package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/linkedin-ads-center/infrastructure/database/postgres"
	"github.com/vfg2006/linkedin-ads-center/internal/config"
	"github.com/vfg2006/linkedin-ads-center/internal/domain"
	"github.com/vfg2006/linkedin-ads-center/pkg/log"
)

const syncLogTable = "sync_log"

// SyncLogRepository implementa o portão de frescor e o bracketing de
// tentativas de sincronização sobre a tabela sync_log.
type SyncLogRepository interface {
	ShouldSync(ctx context.Context, accountID string, force bool) (bool, string, error)
	StartSync(ctx context.Context, accountID, trigger string) (int64, error)
	FinishSync(ctx context.Context, runID int64, status domain.SyncStatus, stats domain.SyncStats) error
	LastSuccessful(ctx context.Context, accountID string) (*domain.SyncLogEntry, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncLogEntry, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
	cfg  *config.Config
}

func NewSyncLogRepository(conn *postgres.Connection, cfg *config.Config) SyncLogRepository {
	return &syncLogRepository{conn: conn, cfg: cfg}
}

// ShouldSync decide se uma nova sincronização vale a pena. Devolve
// sempre um motivo legível, gravado no log de quem chamou.
func (r *syncLogRepository) ShouldSync(ctx context.Context, accountID string, force bool) (bool, string, error) {
	if force {
		return true, "force=True", nil
	}

	last, err := r.LastSuccessful(ctx, accountID)
	if err != nil {
		return false, "", err
	}

	if last == nil || last.FinishedAt == nil {
		return true, "no previous successful sync", nil
	}

	ttl := r.cfg.Sync.FreshnessTTLMinutes
	elapsed := time.Since(*last.FinishedAt).Minutes()

	if elapsed >= float64(ttl) {
		return true, fmt.Sprintf("last sync %.0fm ago (ttl=%dm)", elapsed, ttl), nil
	}

	return false, fmt.Sprintf("fresh (%.0fm ago, ttl=%dm)", elapsed, ttl), nil
}

// StartSync grava a linha de abertura com status running e devolve o
// id da tentativa.
func (r *syncLogRepository) StartSync(ctx context.Context, accountID, trigger string) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(syncLogTable).
		Columns("account_id", "started_at", "status", "trigger").
		Values(accountID, squirrel.Expr("NOW()"), domain.SyncStatusRunning, trigger).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var runID int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&runID); err != nil {
		return 0, &domain.StorageError{Op: "insert", Table: syncLogTable, Err: err}
	}

	log.ForContext(ctx).WithFields(log.Fields{"run_id": runID, "account_id": accountID}).
		Info("Tentativa de sincronização registrada")

	return runID, nil
}

// FinishSync fecha a tentativa com o status final e as estatísticas.
func (r *syncLogRepository) FinishSync(ctx context.Context, runID int64, status domain.SyncStatus, stats domain.SyncStats) error {
	query, args, err := squirrel.StatementBuilder.
		Update(syncLogTable).
		Set("finished_at", squirrel.Expr("NOW()")).
		Set("status", status).
		Set("campaigns_fetched", stats.CampaignsFetched).
		Set("creatives_fetched", stats.CreativesFetched).
		Set("api_calls_made", stats.APICallsMade).
		Set("errors", nullableString(stats.Errors)).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.StorageError{Op: "update", Table: syncLogTable, Err: err}
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.ForContext(ctx).WithField("run_id", runID).Warn("Tentativa de sincronização não encontrada para finalizar")
	}

	return nil
}

// LastSuccessful devolve a última tentativa com sucesso, ou nil se
// nunca houve uma.
func (r *syncLogRepository) LastSuccessful(ctx context.Context, accountID string) (*domain.SyncLogEntry, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "started_at", "finished_at", "status", "trigger",
			"campaigns_fetched", "creatives_fetched", "api_calls_made", "COALESCE(errors, '')").
		From(syncLogTable).
		Where(squirrel.Eq{"account_id": accountID, "status": domain.SyncStatusSuccess}).
		OrderBy("finished_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	entry, err := r.scanEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "select", Table: syncLogTable, Err: err}
	}

	return entry, nil
}

// ListRecent devolve as tentativas mais recentes, novas primeiro.
func (r *syncLogRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncLogEntry, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "started_at", "finished_at", "status", "trigger",
			"campaigns_fetched", "creatives_fetched", "api_calls_made", "COALESCE(errors, '')").
		From(syncLogTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StorageError{Op: "select", Table: syncLogTable, Err: err}
	}
	defer rows.Close()

	entries := make([]*domain.SyncLogEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan", Table: syncLogTable, Err: err}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "select", Table: syncLogTable, Err: err}
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *syncLogRepository) scanEntry(row rowScanner) (*domain.SyncLogEntry, error) {
	entry := &domain.SyncLogEntry{}
	var trigger sql.NullString

	if err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.StartedAt,
		&entry.FinishedAt,
		&entry.Status,
		&trigger,
		&entry.CampaignsFetched,
		&entry.CreativesFetched,
		&entry.APICallsMade,
		&entry.Errors,
	); err != nil {
		return nil, err
	}

	entry.Trigger = trigger.String

	return entry, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
