package ingredient_test

import (
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/ingredient"
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIngredientRepositoryDeleteMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := ingredient.NewIngredientRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ingredients" WHERE "ingredients"."id" = $1`)).
		WithArgs(6).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.DeleteIngredient(context.Background(), 6), gorm.ErrRecordNotFound)
}
