package utils

import (
	"fmt"
	"testing"
	"time"

	"talyouth/database"
	"talyouth/models"

	"github.com/jinzhu/now"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSchedulerTestDb(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func seedParticipantWithProgress(t *testing.T, db *gorm.DB, percentages []int, startedAt time.Time) models.ParticipantProfile {
	participant := models.ParticipantProfile{UserID: 1, ChosenSDG: 2, CurrentWeek: 1}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("failed to seed participant: %v", err)
	}
	for i, pct := range percentages {
		row := models.CourseProgress{
			ParticipantID:        participant.ID,
			CourseID:             uint(i + 1),
			CompletionPercentage: pct,
			CurrentWeek:          1,
			StartedAt:            startedAt,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed course progress: %v", err)
		}
	}
	return participant
}

func TestProgressSweepAggregatesAndAwards(t *testing.T) {
	db := openSchedulerTestDb(t)
	participant := seedParticipantWithProgress(t, db, []int{50, 100}, time.Now())

	processParticipantProgress()

	var refreshed models.ParticipantProfile
	assert.NoError(t, db.First(&refreshed, participant.ID).Error)
	assert.Equal(t, 75, refreshed.ProgressPercentage)
	assert.Equal(t, 1, refreshed.CurrentWeek)

	var badges []models.Achievement
	db.Where("participant_id = ?", participant.ID).Order("id asc").Find(&badges)
	assert.Len(t, badges, 3)
	names := make([]string, 0, len(badges))
	for _, badge := range badges {
		names = append(names, badge.BadgeName)
	}
	assert.Equal(t, []string{"Getting Started", "Halfway There", "Almost There"}, names)

	// A second sweep must not duplicate badges
	processParticipantProgress()
	var count int64
	db.Model(&models.Achievement{}).Where("participant_id = ?", participant.ID).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestProgressSweepFullCompletion(t *testing.T) {
	db := openSchedulerTestDb(t)
	participant := seedParticipantWithProgress(t, db, []int{100}, time.Now())

	processParticipantProgress()

	var count int64
	db.Model(&models.Achievement{}).Where("participant_id = ?", participant.ID).Count(&count)
	assert.Equal(t, int64(4), count)
}

func TestCurrentWeekCappedAtProgramLength(t *testing.T) {
	db := openSchedulerTestDb(t)
	participant := seedParticipantWithProgress(t, db, []int{10}, time.Now().AddDate(0, 0, -70))

	processParticipantProgress()

	var refreshed models.ParticipantProfile
	assert.NoError(t, db.First(&refreshed, participant.ID).Error)
	assert.Equal(t, programWeeks, refreshed.CurrentWeek)
}

func TestWeeksBeginOnMonday(t *testing.T) {
	sunday := time.Date(2026, time.August, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, time.Monday, now.With(sunday).BeginningOfWeek().Weekday())
}

func TestPruneRevokedTokens(t *testing.T) {
	db := openSchedulerTestDb(t)

	expired := models.RevokedToken{JTI: "11111111-1111-1111-1111-111111111111", UserID: 1, ExpiresAt: time.Now().Add(-time.Hour)}
	live := models.RevokedToken{JTI: "22222222-2222-2222-2222-222222222222", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}
	assert.NoError(t, db.Create(&expired).Error)
	assert.NoError(t, db.Create(&live).Error)

	pruneRevokedTokens()

	var remaining []models.RevokedToken
	db.Unscoped().Find(&remaining)
	assert.Len(t, remaining, 1)
	assert.Equal(t, live.JTI, remaining[0].JTI)
}
