package category_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/category"
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCategoryRepositoryDuplicateName(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := category.NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "categories"`)).WillReturnError(testutil.UniqueViolation())
	mock.ExpectRollback()

	err := repo.CreateCategory(context.Background(), &entities.Category{Name: "French"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
}

func TestCategoryRepositoryDelete(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := category.NewCategoryRepository(db)
	deleteCategory := regexp.QuoteMeta(`DELETE FROM "categories" WHERE "categories"."id" = $1`)

	mock.ExpectBegin()
	mock.ExpectExec(deleteCategory).WithArgs(8).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), 8), gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(deleteCategory).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	assert.NoError(t, repo.DeleteCategory(context.Background(), 2))
}
