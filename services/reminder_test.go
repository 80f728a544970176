package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return sqlDB, mock, db
}

func reminderColumns() []string {
	return []string{"id", "name", "facility_name", "document_type", "type", "frequency", "due_date", "status", "created_at", "updated_at"}
}

func reminderRow(id int, name interface{}, frequency int, dueDate time.Time, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(reminderColumns()).
		AddRow(id, name, "Sunrise Manor", "tb-test", "resident", frequency, dueDate, status, now, now)
}

func TestCreateReminder_MissingNameForResident(t *testing.T) {
	_, err := CreateReminder(nil, CreateReminderInput{
		FacilityName: "Sunrise Manor",
		DocumentType: "tb-test",
		Type:         "resident",
		Frequency:    6,
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)
}

func TestCreateReminder_MissingNameForEmployee(t *testing.T) {
	_, err := CreateReminder(nil, CreateReminderInput{
		FacilityName: "Sunrise Manor",
		DocumentType: "cpr-first-aid",
		Type:         "employee",
		Frequency:    12,
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestCreateReminder_AllFieldsMissing(t *testing.T) {
	_, err := CreateReminder(nil, CreateReminderInput{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"facilityName", "documentType", "type", "frequency", "dueDate"}, verr.Fields)
}

func TestCreateReminder_DocumentTypeMustMatchKind(t *testing.T) {
	// fire-extinguisher is a facility document, not a resident one.
	_, err := CreateReminder(nil, CreateReminderInput{
		Name:         "Alice Smith",
		FacilityName: "Sunrise Manor",
		DocumentType: "fire-extinguisher",
		Type:         "resident",
		Frequency:    12,
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"documentType"}, verr.Fields)
}

func TestCreateReminder_FrequencyMustBePositive(t *testing.T) {
	_, err := CreateReminder(nil, CreateReminderInput{
		Name:         "Alice Smith",
		FacilityName: "Sunrise Manor",
		DocumentType: "tb-test",
		Type:         "resident",
		Frequency:    0,
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"frequency"}, verr.Fields)
}

func TestCreateReminder_FacilityWithoutName(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reminders`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	created, err := CreateReminder(db, CreateReminderInput{
		FacilityName: "Sunrise Manor",
		DocumentType: "fire-extinguisher",
		Type:         "facility",
		Frequency:    6,
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Nil(t, created.Name)
	assert.Equal(t, StatusNotCompleted, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReminder_MarksAndSpawnsSuccessor(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	dueDate := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(reminderRow(1, "Alice Smith", 3, dueDate, StatusNotCompleted))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `reminders`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	completed, successor, err := CompleteReminder(db, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, completed.Status)
	assert.Equal(t, StatusNotCompleted, successor.Status)
	assert.Equal(t, 2, successor.ID)
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), successor.DueDate)
	require.NotNil(t, successor.Name)
	assert.Equal(t, "Alice Smith", *successor.Name)
	assert.Equal(t, completed.Frequency, successor.Frequency)
	assert.Equal(t, completed.FacilityName, successor.FacilityName)
	assert.Equal(t, completed.DocumentType, successor.DocumentType)
	assert.Equal(t, completed.Type, successor.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReminder_NotFound(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(sqlmock.NewRows(reminderColumns()))

	_, _, err := CompleteReminder(db, 42)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReminder_AlreadyCompleted(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	dueDate := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(reminderRow(1, "Alice Smith", 3, dueDate, StatusCompleted))

	// The guarded update flips nothing, so the whole operation rolls back.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, _, err := CompleteReminder(db, 1)
	assert.ErrorIs(t, err, ErrReminderCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReminder_RollsBackWhenInsertFails(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	dueDate := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(reminderRow(1, "Alice Smith", 3, dueDate, StatusNotCompleted))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `reminders` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `reminders`").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, _, err := CompleteReminder(db, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrReminderCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReminder_RemovesRow(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	dueDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(reminderRow(9, nil, 6, dueDate, StatusNotCompleted))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reminders`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := DeleteReminder(db, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, deleted.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReminder_RowVanishedBeforeDelete(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	dueDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(reminderRow(9, nil, 6, dueDate, StatusNotCompleted))

	// Someone else deleted the row after the read; the delete hits nothing.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `reminders`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := DeleteReminder(db, 9)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReminder_NotFound(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery("SELECT (.+) FROM `reminders` WHERE id = (.+)").
		WillReturnRows(sqlmock.NewRows(reminderColumns()))

	_, err := DeleteReminder(db, 404)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReminders_OrdersNotCompletedFirst(t *testing.T) {
	sqlDB, mock, db := setupMockDB(t)
	defer sqlDB.Close()

	now := time.Now()
	rows := sqlmock.NewRows(reminderColumns()).
		AddRow(2, "Alice Smith", "Sunrise Manor", "tb-test", "resident", 3, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), StatusNotCompleted, now, now).
		AddRow(1, "Alice Smith", "Sunrise Manor", "tb-test", "resident", 3, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), StatusNotCompleted, now, now).
		AddRow(3, nil, "Sunrise Manor", "fire-extinguisher", "facility", 6, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), StatusCompleted, now, now)

	mock.ExpectQuery("SELECT (.+) FROM `reminders` ORDER BY status DESC, due_date DESC").
		WillReturnRows(rows)

	reminders, err := ListReminders(db)
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Equal(t, StatusNotCompleted, reminders[0].Status)
	assert.Equal(t, StatusNotCompleted, reminders[1].Status)
	assert.Equal(t, StatusCompleted, reminders[2].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextDueDate(t *testing.T) {
	cases := []struct {
		name     string
		due      time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain month addition",
			due:      time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to leap february",
			due:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jan 31 clamps to non-leap february",
			due:      time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "aug 31 clamps across year boundary",
			due:      time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
			months:   6,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "twelve months keeps the day",
			due:      time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			months:   12,
			expected: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			due:      time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			months:   2,
			expected: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextDueDate(tc.due, tc.months))
		})
	}
}
