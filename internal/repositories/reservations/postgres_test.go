package reservations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/flightbook/internal/common"
	"github.com/dmitrijs2005/flightbook/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var resCols = []string{"reservation_id", "username", "is_paid", "total_price", "first_flight_id", "second_flight_id"}

func TestFirstLegDays(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+f\.day_of_month\s+FROM\s+reservations\s+AS\s+res\s+JOIN\s+flights\s+AS\s+f\s+ON\s+f\.fid\s*=\s*res\.first_flight_id\s+WHERE\s+res\.username\s*=\s*\$1`

	rows := sqlmock.NewRows([]string{"day_of_month"}).AddRow(5).AddRow(12)
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.FirstLegDays(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FirstLegDays error: %v", err)
	}
	if len(got) != 2 || got[0] != 5 || got[1] != 12 {
		t.Fatalf("unexpected days: %v", got)
	}
}

func TestSeatsTaken_CountsBothLegs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+reservations\s+WHERE\s+first_flight_id\s*=\s*\$1\s+OR\s+second_flight_id\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := repo.SeatsTaken(context.Background(), 7)
	if err != nil {
		t.Fatalf("SeatsTaken error: %v", err)
	}
	if got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
}

func TestCreate_Direct(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+reservations`).
		WithArgs(1, "alice", false, 120, 7, sql.NullInt64{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res := &models.Reservation{ID: 1, Username: "alice", TotalPrice: 120, FirstFlightID: 7}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_Connecting(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+reservations`).
		WithArgs(2, "alice", false, 210, 7, sql.NullInt64{Int64: 9, Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	second := 9
	res := &models.Reservation{ID: 2, Username: "alice", TotalPrice: 210, FirstFlightID: 7, SecondFlightID: &second}
	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestGetUnpaid_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+reservation_id\s*=\s*\$1\s+AND\s+username\s*=\s*\$2\s+AND\s+is_paid\s*=\s*FALSE`

	rows := sqlmock.NewRows(resCols).AddRow(3, "alice", false, 300, 7, nil)
	mock.ExpectQuery(q).WithArgs(3, "alice").WillReturnRows(rows)

	got, err := repo.GetUnpaid(context.Background(), 3, "alice")
	if err != nil {
		t.Fatalf("GetUnpaid error: %v", err)
	}
	if got.ID != 3 || got.TotalPrice != 300 || got.SecondFlightID != nil {
		t.Fatalf("unexpected reservation: %+v", got)
	}
}

func TestGetUnpaid_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`is_paid\s*=\s*FALSE`).
		WithArgs(404, "alice").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUnpaid(context.Background(), 404, "alice")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+reservations\s+SET\s+is_paid\s*=\s*TRUE\s+WHERE\s+reservation_id\s*=\s*\$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkPaid(context.Background(), 3); err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
}

func TestListByUser_SecondLegNullable(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(resCols).
		AddRow(1, "alice", true, 120, 7, nil).
		AddRow(2, "alice", false, 210, 7, 9)
	mock.ExpectQuery(`ORDER\s+BY\s+reservation_id\s+ASC`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reservations, got %d", len(got))
	}
	if got[0].SecondFlightID != nil {
		t.Fatalf("first reservation should be direct: %+v", got[0])
	}
	if got[1].SecondFlightID == nil || *got[1].SecondFlightID != 9 {
		t.Fatalf("second reservation should have second leg 9: %+v", got[1])
	}
}

func TestClear(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+reservations$`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
}
