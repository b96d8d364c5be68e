package postgres_test

import (
	"context"
	"testing"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
	"givehope-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var donationCols = []string{"id", "donor_id", "full_name", "title", "description", "category", "quantity", "condition",
	"pickup_available", "delivery_available", "status", "approved_by", "approved_on", "created_on", "updated_on"}

func donationRow() *sqlmock.Rows {
	return sqlmock.NewRows(donationCols).
		AddRow("d1", "u1", "Donor Name", "Winter coats", "Five coats", "clothing", int32(5), "good",
			true, false, "approved", nil, nil, time.Now(), time.Now())
}

func TestDonationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donations d JOIN users u ON u.id = d.donor_id WHERE d.id = \\$1").
			WithArgs("d1").
			WillReturnRows(donationRow())

		d, err := repo.GetByID(ctx, "d1")
		assert.NoError(t, err)
		assert.Equal(t, "d1", d.ID)
		assert.Equal(t, "Donor Name", d.DonorName)
		assert.Equal(t, domain.DonationStatusApproved, d.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donations d JOIN users u ON u.id = d.donor_id WHERE d.id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(donationCols))

		d, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, d)
	})
}

func TestDonationRepository_GetByIDForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM donations WHERE id = \\$1 FOR UPDATE").
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(donationCols).
			AddRow("d1", "u1", "", "Winter coats", "Five coats", "clothing", int32(5), "good",
				true, false, "approved", nil, nil, time.Now(), time.Now()))

	d, err := repo.GetByIDForUpdate(ctx, "d1")
	assert.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
}

func TestDonationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	d := &domain.Donation{
		ID:       "d1",
		DonorID:  "u1",
		Title:    "Winter coats",
		Category: domain.CategoryClothing,
		Quantity: 5,
		Status:   domain.DonationStatusPending,
	}

	mock.ExpectExec("INSERT INTO donations").
		WithArgs(d.ID, d.DonorID, d.Title, d.Description, d.Category, d.Quantity, d.Condition,
			d.PickupAvailable, d.DeliveryAvailable, d.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, d)
	assert.NoError(t, err)
	assert.False(t, d.CreatedOn.IsZero())
}

func TestDonationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		d := &domain.Donation{ID: "missing", Status: domain.DonationStatusApproved}

		mock.ExpectExec("UPDATE donations SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, d)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDonationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int32(1)))

	mock.ExpectQuery("SELECT (.+) FROM donations d JOIN users u ON u.id = d.donor_id WHERE 1=1 AND d.status = \\$1").
		WithArgs("approved", int32(20), int32(0)).
		WillReturnRows(donationRow())

	donations, total, err := repo.List(ctx, repository.DonationFilter{Status: domain.DonationStatusApproved})
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, donations, 1)
	assert.Equal(t, "Winter coats", donations[0].Title)
}
