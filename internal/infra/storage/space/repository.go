package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	"github.com/cimillas/CML-SpaceService/pkg/dbmetrics"
	"github.com/cimillas/CML-SpaceService/pkg/psqlbuilder"
)

var spaceColumns = []string{
	"id",
	"name",
	"description",
	"category",
	"capacity",
	"price_half_day",
	"price_day",
	"price_month",
	"is_quote",
	"currency",
	"min_duration",
	"max_duration",
	"available_slots",
	"auto_approve",
	"show_in_calendar",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога пространств
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, s *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"id",
			"name",
			"description",
			"category",
			"capacity",
			"price_half_day",
			"price_day",
			"price_month",
			"is_quote",
			"currency",
			"min_duration",
			"max_duration",
			"available_slots",
			"auto_approve",
			"show_in_calendar",
		).
		Values(
			s.ID,
			s.Name,
			s.Description,
			s.Category,
			s.Capacity,
			s.Pricing.HalfDay,
			s.Pricing.Day,
			s.Pricing.Month,
			s.Pricing.IsQuote,
			s.Pricing.Currency,
			s.MinDuration,
			s.MaxDuration,
			slotsToArray(s.AvailableSlots),
			s.AutoApprove,
			s.ShowInCalendar,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrSpaceAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Update обновляет пространство целиком
func (r *Repository) Update(ctx context.Context, s *domain.Space) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("category", s.Category).
		Set("capacity", s.Capacity).
		Set("price_half_day", s.Pricing.HalfDay).
		Set("price_day", s.Pricing.Day).
		Set("price_month", s.Pricing.Month).
		Set("is_quote", s.Pricing.IsQuote).
		Set("currency", s.Pricing.Currency).
		Set("min_duration", s.MinDuration).
		Set("max_duration", s.MaxDuration).
		Set("available_slots", slotsToArray(s.AvailableSlots)).
		Set("auto_approve", s.AutoApprove).
		Set("show_in_calendar", s.ShowInCalendar).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// GetByID получает пространство по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	s, err := scanSpace(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает каталог пространств, отсортированный по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		s, err := scanSpace(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// slotsToArray конвертирует whitelist слотов в text[] для lib/pq.
// nil (без ограничений) сохраняется как NULL.
func slotsToArray(slots []domain.Slot) interface{} {
	if slots == nil {
		return nil
	}
	values := make([]string, len(slots))
	for i, s := range slots {
		values[i] = string(s)
	}
	return pq.Array(values)
}

// scanSpace сканирует одну строку в пространство
func scanSpace(scan func(dest ...interface{}) error) (*domain.Space, error) {
	var s domain.Space
	var slots pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Category,
		&s.Capacity,
		&s.Pricing.HalfDay,
		&s.Pricing.Day,
		&s.Pricing.Month,
		&s.Pricing.IsQuote,
		&s.Pricing.Currency,
		&s.MinDuration,
		&s.MaxDuration,
		&slots,
		&s.AutoApprove,
		&s.ShowInCalendar,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if slots != nil {
		s.AvailableSlots = make([]domain.Slot, len(slots))
		for i, v := range slots {
			s.AvailableSlots[i] = domain.Slot(v)
		}
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
