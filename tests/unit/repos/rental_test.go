package repos

import (
	"context"
	"testing"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := &domain.Rental{
			ItemID:     "item-1",
			RenterID:   "renter-1",
			StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			TotalPrice: 300,
		}

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(sqlmock.AnyArg(), "item-1", "renter-1", rental.StartDate, rental.EndDate,
				300.0, domain.RentalStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.ID)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "item_id", "renter_id", "start_date", "end_date", "total_price", "status", "denial_reason", "created_at", "updated_at"}).
			AddRow("rental-1", "item-1", "renter-1", now, now.Add(48*time.Hour), 300.0, "pending", nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("rental-1").
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, "rental-1")
		assert.NoError(t, err)
		assert.Equal(t, "rental-1", rental.ID)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
		assert.Empty(t, rental.DenialReason)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rental, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, rental)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Transition applies when status matches", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET status = \\$1, denial_reason = \\$2, updated_at = \\$3 WHERE id = \\$4 AND status = \\$5").
			WithArgs(domain.RentalStatusApproved, sqlmock.AnyArg(), sqlmock.AnyArg(), "rental-1", domain.RentalStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateStatus(ctx, "rental-1", domain.RentalStatusPending, domain.RentalStatusApproved, "")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("No rows means the transition lost", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(domain.RentalStatusDeclined, sqlmock.AnyArg(), sqlmock.AnyArg(), "rental-1", domain.RentalStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateStatus(ctx, "rental-1", domain.RentalStatusPending, domain.RentalStatusDeclined, domain.AutoRejectReason)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRentalRepository_ListPendingOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Returns expired ids", func(t *testing.T) {
		cutoff := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id"}).AddRow("r1").AddRow("r2")

		mock.ExpectQuery("SELECT id FROM rentals WHERE status = \\$1 AND created_at < \\$2").
			WithArgs(domain.RentalStatusPending, cutoff).
			WillReturnRows(rows)

		ids, err := repo.ListPendingOlderThan(ctx, cutoff)
		assert.NoError(t, err)
		assert.Equal(t, []string{"r1", "r2"}, ids)
	})

	t.Run("Empty result", func(t *testing.T) {
		cutoff := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT id FROM rentals WHERE status = \\$1 AND created_at < \\$2").
			WithArgs(domain.RentalStatusPending, cutoff).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ids, err := repo.ListPendingOlderThan(ctx, cutoff)
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}
