package flights

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

func (r *PostgresRepository) FindDirect(ctx context.Context, origin, dest string, day, limit int) ([]models.Flight, error) {

	query :=
		`SELECT fid, day_of_month, carrier_id, flight_num, origin_city, dest_city, actual_time, capacity, price
		 FROM flights
		 WHERE origin_city = $1 AND dest_city = $2 AND day_of_month = $3 AND canceled = 0
		 ORDER BY actual_time ASC
		 LIMIT $4
		 `

	rows, err := r.db.QueryContext(ctx, query, origin, dest, day, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Flight
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(&f.FID, &f.DayOfMonth, &f.CarrierID, &f.FlightNum,
			&f.OriginCity, &f.DestCity, &f.Time, &f.Capacity, &f.Price); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindConnecting(ctx context.Context, origin, dest string, day, limit int) ([]Pair, error) {

	query :=
		`SELECT f1.fid, f1.day_of_month, f1.carrier_id, f1.flight_num, f1.origin_city, f1.dest_city, f1.actual_time, f1.capacity, f1.price,
		        f2.fid, f2.day_of_month, f2.carrier_id, f2.flight_num, f2.origin_city, f2.dest_city, f2.actual_time, f2.capacity, f2.price
		 FROM flights AS f1
		 JOIN flights AS f2 ON f1.dest_city = f2.origin_city AND f1.day_of_month = f2.day_of_month
		 WHERE f1.origin_city = $1 AND f2.dest_city = $2 AND f1.day_of_month = $3
		   AND f1.canceled = 0 AND f2.canceled = 0
		 ORDER BY f1.actual_time + f2.actual_time ASC
		 LIMIT $4
		 `

	rows, err := r.db.QueryContext(ctx, query, origin, dest, day, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []Pair
	for rows.Next() {
		var p Pair
		if err := rows.Scan(
			&p.First.FID, &p.First.DayOfMonth, &p.First.CarrierID, &p.First.FlightNum,
			&p.First.OriginCity, &p.First.DestCity, &p.First.Time, &p.First.Capacity, &p.First.Price,
			&p.Second.FID, &p.Second.DayOfMonth, &p.Second.CarrierID, &p.Second.FlightNum,
			&p.Second.OriginCity, &p.Second.DestCity, &p.Second.Time, &p.Second.Capacity, &p.Second.Price,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, fid int) (*models.Flight, error) {
	query :=
		`SELECT fid, day_of_month, carrier_id, flight_num, origin_city, dest_city, actual_time, capacity, price
		 FROM flights
		 WHERE fid = $1
		 `

	f := &models.Flight{}
	err := r.db.QueryRowContext(ctx, query, fid).Scan(&f.FID, &f.DayOfMonth, &f.CarrierID, &f.FlightNum,
		&f.OriginCity, &f.DestCity, &f.Time, &f.Capacity, &f.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}
