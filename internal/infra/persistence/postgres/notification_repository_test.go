package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gestcondo/internal/domain/entity"
	"gestcondo/internal/domain/repository"
	"gestcondo/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestNotificationRepository(t *testing.T) (repository.NotificationRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(notificationTables()...))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewNotificationRepository(db, logger), db
}

func seedNotification(t *testing.T, repo repository.NotificationRepository, condominiumID *int64, title string) *entity.Notification {
	t.Helper()

	notification := &entity.Notification{
		Type:          entity.TypeOccurrence,
		Title:         title,
		Message:       "seeded",
		CondominiumID: condominiumID,
	}
	require.NoError(t, repo.CreateNotification(context.Background(), notification))
	require.NotZero(t, notification.ID)

	return notification
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNotificationRepository_LinkAdmin_ReplayIsIdempotent(t *testing.T) {
	repo, db := newTestNotificationRepository(t)
	ctx := context.Background()

	notification := seedNotification(t, repo, int64Ptr(5), "first")

	created, err := repo.LinkAdmin(ctx, notification.ID, 7)
	require.NoError(t, err)
	assert.True(t, created)

	// Replaying the same link hits the unique pair index and must report
	// nothing new instead of erroring.
	created, err = repo.LinkAdmin(ctx, notification.ID, 7)
	require.NoError(t, err)
	assert.False(t, created)

	var linkCount int64
	require.NoError(t, db.Model(&model.AdminNotificationLinkModel{}).Count(&linkCount).Error)
	assert.Equal(t, int64(1), linkCount)
}

func TestNotificationRepository_LinkUser_ReplayIsIdempotent(t *testing.T) {
	repo, db := newTestNotificationRepository(t)
	ctx := context.Background()

	notification := seedNotification(t, repo, int64Ptr(5), "first")

	created, err := repo.LinkUser(ctx, notification.ID, 30)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.LinkUser(ctx, notification.ID, 30)
	require.NoError(t, err)
	assert.False(t, created)

	var linkCount int64
	require.NoError(t, db.Model(&model.UserNotificationLinkModel{}).Count(&linkCount).Error)
	assert.Equal(t, int64(1), linkCount)
}

func TestNotificationRepository_ListForAdmin_RefiltersOnScopeChange(t *testing.T) {
	repo, _ := newTestNotificationRepository(t)
	ctx := context.Background()

	const adminID = int64(7)

	inCondoFive := seedNotification(t, repo, int64Ptr(5), "condo five")
	inCondoEight := seedNotification(t, repo, int64Ptr(8), "condo eight")
	systemWide := seedNotification(t, repo, nil, "system wide")

	for _, n := range []*entity.Notification{inCondoFive, inCondoEight, systemWide} {
		created, err := repo.LinkAdmin(ctx, n.ID, adminID)
		require.NoError(t, err)
		require.True(t, created)
	}

	listedIDs := func(scope entity.AccessScope) []int64 {
		states, err := repo.ListForAdmin(ctx, adminID, scope, 0)
		require.NoError(t, err)

		ids := make([]int64, 0, len(states))
		for _, state := range states {
			ids = append(ids, state.Notification.ID)
		}

		return ids
	}

	// The links were written once; only the scope passed at read time
	// changes below.
	assert.ElementsMatch(t, []int64{inCondoFive.ID, inCondoEight.ID, systemWide.ID},
		listedIDs(entity.FullScope()))
	assert.ElementsMatch(t, []int64{inCondoFive.ID, inCondoEight.ID, systemWide.ID},
		listedIDs(entity.LimitedScope([]int64{5, 8})))

	// Allow-list shrank to condominium 5: the condominium 8 row disappears
	// while its link row is untouched.
	assert.ElementsMatch(t, []int64{inCondoFive.ID, systemWide.ID},
		listedIDs(entity.LimitedScope([]int64{5})))

	// Empty allow-list keeps only the rows with no condominium anchor.
	assert.ElementsMatch(t, []int64{systemWide.ID},
		listedIDs(entity.LimitedScope(nil)))
}

func TestNotificationRepository_ListForAdmin_NewestFirstWithLimit(t *testing.T) {
	repo, _ := newTestNotificationRepository(t)
	ctx := context.Background()

	const adminID = int64(7)

	first := seedNotification(t, repo, int64Ptr(5), "first")
	second := seedNotification(t, repo, int64Ptr(5), "second")
	third := seedNotification(t, repo, int64Ptr(5), "third")

	for _, n := range []*entity.Notification{first, second, third} {
		_, err := repo.LinkAdmin(ctx, n.ID, adminID)
		require.NoError(t, err)
	}

	states, err := repo.ListForAdmin(ctx, adminID, entity.FullScope(), 2)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, third.ID, states[0].Notification.ID)
	assert.Equal(t, second.ID, states[1].Notification.ID)
}

func TestNotificationRepository_UnreadCountForAdmin_RefiltersOnScopeChange(t *testing.T) {
	repo, _ := newTestNotificationRepository(t)
	ctx := context.Background()

	const adminID = int64(7)

	inCondoFive := seedNotification(t, repo, int64Ptr(5), "condo five")
	inCondoEight := seedNotification(t, repo, int64Ptr(8), "condo eight")
	systemWide := seedNotification(t, repo, nil, "system wide")

	for _, n := range []*entity.Notification{inCondoFive, inCondoEight, systemWide} {
		_, err := repo.LinkAdmin(ctx, n.ID, adminID)
		require.NoError(t, err)
	}

	count, err := repo.UnreadCountForAdmin(ctx, adminID, entity.FullScope())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.UnreadCountForAdmin(ctx, adminID, entity.LimitedScope([]int64{8}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.UnreadCountForAdmin(ctx, adminID, entity.LimitedScope(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Reading one inside the allow-list drops the count under the same scope.
	require.NoError(t, repo.MarkReadForAdmin(ctx, adminID, inCondoEight.ID))

	count, err = repo.UnreadCountForAdmin(ctx, adminID, entity.LimitedScope([]int64{8}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationRepository_MarkReadForAdmin_UnknownLink(t *testing.T) {
	repo, _ := newTestNotificationRepository(t)

	err := repo.MarkReadForAdmin(context.Background(), 7, 999)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
