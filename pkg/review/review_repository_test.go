package review_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/review"
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	countReviews = regexp.QuoteMeta(`SELECT count(*) FROM "reviews" WHERE user_id = $1 AND recipe_id = $2`)
	insertReview = regexp.QuoteMeta(`INSERT INTO "reviews"`)
	deleteReview = regexp.QuoteMeta(`DELETE FROM "reviews" WHERE "reviews"."id" = $1`)
)

func newTestReview() *entities.Review {
	return &entities.Review{Title: "Yummy", Text: "Loved it", Rating: 5, UserID: 2, RecipeID: 3}
}

func TestReviewRepositoryCreateReview(t *testing.T) {
	t.Run("inserts when the user has no review yet", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := review.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(countReviews).WithArgs(2, 3).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(insertReview).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		r := newTestReview()
		require.NoError(t, repo.CreateReview(context.Background(), r))
		assert.Equal(t, uint(7), r.ID)
	})

	t.Run("existing review aborts the transaction", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := review.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(countReviews).WithArgs(2, 3).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateReview(context.Background(), newTestReview())
		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
	})

	t.Run("unique index violation from a concurrent insert", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := review.NewReviewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(countReviews).WithArgs(2, 3).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(insertReview).WillReturnError(testutil.UniqueViolation())
		mock.ExpectRollback()

		err := repo.CreateReview(context.Background(), newTestReview())
		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
		assert.Equal(t, domain.CodeDuplicateReview, domain.CodeOf(err))
	})
}

func TestReviewRepositoryDeleteReview(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := review.NewReviewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(deleteReview).WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	assert.ErrorIs(t, repo.DeleteReview(context.Background(), 4), gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(deleteReview).WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	assert.NoError(t, repo.DeleteReview(context.Background(), 5))
}
