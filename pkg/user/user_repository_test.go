package user_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/user"
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryCreateUser(t *testing.T) {
	newUser := func() *entities.User {
		return &entities.User{Name: "Ulrik Meginrat", Email: "ulrik@gmail.com", Password: "hash", Role: entities.RoleCook}
	}

	t.Run("taken email", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := user.NewUserRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnError(testutil.UniqueViolation())
		mock.ExpectRollback()

		err := repo.CreateUser(context.Background(), newUser())
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("stored", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := user.NewUserRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		u := newUser()
		require.NoError(t, repo.CreateUser(context.Background(), u))
		assert.Equal(t, uint(11), u.ID)
	})
}

func TestUserRepositoryDeleteMissingUser(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := user.NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 3), gorm.ErrRecordNotFound)
}
