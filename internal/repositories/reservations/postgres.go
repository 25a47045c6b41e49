package reservations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/flightbook/internal/common"
	"github.com/dmitrijs2005/flightbook/internal/dbx"
	"github.com/dmitrijs2005/flightbook/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FirstLegDays(ctx context.Context, username string) ([]int, error) {

	query :=
		`SELECT f.day_of_month
		 FROM reservations AS res
		 JOIN flights AS f ON f.fid = res.first_flight_id
		 WHERE res.username = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var days []int
	for rows.Next() {
		var day int
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return days, nil
}

func (r *PostgresRepository) SeatsTaken(ctx context.Context, fid int) (int, error) {
	query :=
		`SELECT COUNT(*) FROM reservations
		 WHERE first_flight_id = $1 OR second_flight_id = $1
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, fid).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, res *models.Reservation) error {

	query :=
		`INSERT INTO reservations (reservation_id, username, is_paid, total_price, first_flight_id, second_flight_id)
         VALUES ($1, $2, $3, $4, $5, $6)
		 `

	var second sql.NullInt64
	if res.SecondFlightID != nil {
		second = sql.NullInt64{Int64: int64(*res.SecondFlightID), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.Username, res.Paid, res.TotalPrice, res.FirstFlightID, second)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetUnpaid(ctx context.Context, id int, username string) (*models.Reservation, error) {
	query :=
		`SELECT reservation_id, username, is_paid, total_price, first_flight_id, second_flight_id
		 FROM reservations
		 WHERE reservation_id = $1 AND username = $2 AND is_paid = FALSE
		 `

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}

func (r *PostgresRepository) MarkPaid(ctx context.Context, id int) error {
	query :=
		`UPDATE reservations SET is_paid = TRUE
		 WHERE reservation_id = $1
		 `

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, username string) ([]models.Reservation, error) {
	query :=
		`SELECT reservation_id, username, is_paid, total_price, first_flight_id, second_flight_id
		 FROM reservations
		 WHERE username = $1
		 ORDER BY reservation_id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Clear removes every reservation. Administrative/test use only.
func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*models.Reservation, error) {
	res := &models.Reservation{}
	var second sql.NullInt64
	if err := row.Scan(&res.ID, &res.Username, &res.Paid, &res.TotalPrice, &res.FirstFlightID, &second); err != nil {
		return nil, err
	}
	if second.Valid {
		fid := int(second.Int64)
		res.SecondFlightID = &fid
	}
	return res, nil
}
