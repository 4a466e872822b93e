package posgrest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/repository/posgrest"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.New[models.Artist](db)

	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	artist, err := repo.GetByID(context.Background(), 7)

	assert.Nil(t, artist)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_Found(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.New[models.Artist](db)

	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "genre"}).AddRow(3, "Daft Punk", "electro"))

	artist, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), artist.ID)
	assert.Equal(t, "Daft Punk", artist.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_MissingRow(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.New[models.Stand](db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "stands" WHERE "stands"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_UpdateStatusByIntent(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewParticipationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "participations" SET "payment_status"=\$1,"updated_at"=\$2 WHERE payment_intent_id = \$3`).
		WithArgs(models.StatusPaid, sqlmock.AnyArg(), "pi_123").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatusByIntent(context.Background(), "pi_123", models.StatusPaid)

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_MarkSent(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewReminderRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "scheduled_notifications" SET .* WHERE id = \$\d+ AND is_sent = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.MarkSent(context.Background(), 5, time.Now())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBy(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.New[models.Stand](db)

	mock.ExpectQuery(`SELECT \* FROM "stands" WHERE exhibitor = \$1 ORDER BY id ASC`).
		WithArgs("Pulse Food Co").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "exhibitor"}).
			AddRow(1, "Tacos", "Pulse Food Co").
			AddRow(4, "Crepes", "Pulse Food Co"))

	stands, err := repo.GetBy(context.Background(), "exhibitor = ?", "Pulse Food Co")

	require.NoError(t, err)
	require.Len(t, stands, 2)
	assert.Equal(t, uint(4), stands[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_FindByUserAndEvent(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewParticipationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "participations" WHERE user_id = \$1 AND event_id = \$2 ORDER BY id ASC`).
		WithArgs(uint(9), uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "payment_status"}).
			AddRow(5, 9, 3, "FAILED"))

	participation, err := repo.FindByUserAndEvent(context.Background(), 9, 3)

	require.NoError(t, err)
	assert.Equal(t, uint(5), participation.ID)
	assert.Equal(t, models.StatusFailed, participation.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepository_FindByUserAndEvent_NotFound(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewParticipationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "participations" WHERE user_id = \$1 AND event_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	participation, err := repo.FindByUserAndEvent(context.Background(), 9, 3)

	assert.Nil(t, participation)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_Due(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewReminderRepository(db)
	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "scheduled_notifications" WHERE is_sent = \$1 AND scheduled_for <= \$2 ORDER BY scheduled_for ASC`).
		WithArgs(false, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "trigger_type", "scheduled_for", "is_sent"}).
			AddRow(1, 9, "ONE_HOUR_BEFORE", now.Add(-time.Minute), false))
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"."id" = \$1`).
		WithArgs(uint(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(9, "Jazz Night"))

	due, err := repo.Due(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, models.TriggerOneHourBefore, due[0].TriggerType)
	require.NotNil(t, due[0].Event)
	assert.Equal(t, "Jazz Night", due[0].Event.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateWithReminders(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)
	start := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "scheduled_notifications" .* VALUES \(.*\),\(.*\) RETURNING "id"`).
		WithArgs(
			uint(9), "ONE_HOUR_BEFORE", start.Add(-time.Hour), false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			uint(9), "TEN_MINUTES_BEFORE", start.Add(-10*time.Minute), false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	event := &models.Event{Title: "Jazz Night", Price: 19.99, Currency: "EUR", StartDate: start}
	reminders, err := repo.CreateWithReminders(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, uint(9), event.ID)
	require.Len(t, reminders, 2)
	assert.Equal(t, start.Add(-time.Hour), reminders[0].ScheduledFor)
	assert.Equal(t, start.Add(-10*time.Minute), reminders[1].ScheduledFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_CreateWithReminders_RollsBack(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "scheduled_notifications"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	event := &models.Event{Title: "Jazz Night", StartDate: time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)}
	reminders, err := repo.CreateWithReminders(context.Background(), event)

	assert.Error(t, err)
	assert.Nil(t, reminders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateWithReminders_SkipsSentTriggers(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)
	start := time.Date(2026, 6, 2, 21, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET .* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "trigger_type" FROM "scheduled_notifications" WHERE event_id = \$1 AND is_sent = \$2`).
		WithArgs(uint(9), true).
		WillReturnRows(sqlmock.NewRows([]string{"trigger_type"}).AddRow("ONE_HOUR_BEFORE"))
	mock.ExpectExec(`DELETE FROM "scheduled_notifications" WHERE event_id = \$1 AND is_sent = \$2`).
		WithArgs(uint(9), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "scheduled_notifications" .* VALUES \([^)]*\) RETURNING "id"`).
		WithArgs(uint(9), "TEN_MINUTES_BEFORE", start.Add(-10*time.Minute), false, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	event := &models.Event{ID: 9, Title: "Jazz Night", Price: 19.99, Currency: "EUR", StartDate: start}
	err := repo.UpdateWithReminders(context.Background(), event, 9, true)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateWithReminders_KeepsRemindersWithoutReschedule(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET .* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	event := &models.Event{ID: 9, Title: "Jazz Night (late show)", StartDate: time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)}
	err := repo.UpdateWithReminders(context.Background(), event, 9, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_UpdateWithReminders_MissingEvent(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET .* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	event := &models.Event{ID: 9, Title: "Jazz Night", StartDate: time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)}
	err := repo.UpdateWithReminders(context.Background(), event, 9, true)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "scheduled_notifications" WHERE event_id = \$1`).
		WithArgs(uint(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "events" WHERE "events"."id" = \$1`).
		WithArgs(uint(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 9)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete_MissingEvent(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "scheduled_notifications" WHERE event_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "events" WHERE "events"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepository_ApplyPaymentStatus(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewWebhookEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "processed_webhook_events" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "participations" SET "payment_status"=\$1,"updated_at"=\$2 WHERE payment_intent_id = \$3`).
		WithArgs(models.StatusPaid, sqlmock.AnyArg(), "pi_1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	event := &models.ProcessedWebhookEvent{ID: "evt_1", Type: "payment_intent.succeeded", ProcessedAt: time.Now().UTC()}
	claimed, affected, err := repo.ApplyPaymentStatus(context.Background(), event, "pi_1", models.StatusPaid)

	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepository_ApplyPaymentStatus_AlreadyRecorded(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewWebhookEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "processed_webhook_events" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	event := &models.ProcessedWebhookEvent{ID: "evt_1", Type: "payment_intent.succeeded", ProcessedAt: time.Now().UTC()}
	claimed, affected, err := repo.ApplyPaymentStatus(context.Background(), event, "pi_1", models.StatusPaid)

	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepository_ApplyPaymentStatus_RollsBackOnUpdateError(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewWebhookEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "processed_webhook_events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "participations"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	event := &models.ProcessedWebhookEvent{ID: "evt_1", Type: "payment_intent.succeeded", ProcessedAt: time.Now().UTC()}
	claimed, _, err := repo.ApplyPaymentStatus(context.Background(), event, "pi_1", models.StatusPaid)

	assert.Error(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookEventRepository_Release(t *testing.T) {
	db, mock := setupDB(t)
	repo := posgrest.NewWebhookEventRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "processed_webhook_events" WHERE id = \$1`).
		WithArgs("evt_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Release(context.Background(), "evt_1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
