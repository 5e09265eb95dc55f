package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/talent-screen/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestResponseCreateRejectsDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResponseRepository(db)

	assessmentID := uuid.New()
	questionID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "question_responses"`).
		WithArgs(assessmentID, questionID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.Create(&models.QuestionResponse{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		QuestionID:   questionID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateResponse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseCreateWrapsCountError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResponseRepository(db)

	assessmentID := uuid.New()
	questionID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "question_responses"`).
		WithArgs(assessmentID, questionID).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(&models.QuestionResponse{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		QuestionID:   questionID,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateResponse)
	assert.Contains(t, err.Error(), "failed to check existing response")
	assert.NoError(t, mock.ExpectationsWereMet())
}
