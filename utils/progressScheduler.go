package utils

import (
	"log"
	"time"

	"talyouth/database"
	"talyouth/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

const programWeeks = 4

// Program weeks run Monday to Sunday.
func init() {
	now.WeekStartDay = time.Monday
}

// achievementTiers are the fixed badges unlocked at progress thresholds
var achievementTiers = []struct {
	Threshold int
	Name      string
	Desc      string
}{
	{25, "Getting Started", "Completed Week 1"},
	{50, "Halfway There", "Completed Week 2"},
	{75, "Almost There", "Completed Week 3"},
	{100, "Course Complete", "Complete all 4 weeks"},
}

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// refreshParticipantProgress recomputes a participant's stored aggregates from
// their course progress rows: overall percentage is the average across courses,
// current week advances by calendar weeks since the first course was started.
func refreshParticipantProgress(participant *models.ParticipantProfile) {
	db := database.Database.Db

	var progressRows []models.CourseProgress
	if err := db.Where("participant_id = ?", participant.ID).Find(&progressRows).Error; err != nil {
		logScheduler("Error fetching course progress: " + err.Error())
		return
	}
	if len(progressRows) == 0 {
		return
	}

	total := 0
	earliest := progressRows[0].StartedAt
	for _, row := range progressRows {
		total += row.CompletionPercentage
		if row.StartedAt.Before(earliest) {
			earliest = row.StartedAt
		}
	}

	participant.ProgressPercentage = total / len(progressRows)

	// Calendar week of the program, counted from the Monday of the week the
	// participant first opened a course.
	startOfFirstWeek := now.With(earliest).BeginningOfWeek()
	week := int(time.Since(startOfFirstWeek)/(7*24*time.Hour)) + 1
	if week < 1 {
		week = 1
	}
	if week > programWeeks {
		week = programWeeks
	}
	participant.CurrentWeek = week

	if err := db.Save(participant).Error; err != nil {
		logScheduler("Error saving participant progress: " + err.Error())
		return
	}

	awardAchievements(participant)
}

// awardAchievements persists threshold badges the participant has newly earned
func awardAchievements(participant *models.ParticipantProfile) {
	db := database.Database.Db

	for _, tier := range achievementTiers {
		if participant.ProgressPercentage < tier.Threshold {
			continue
		}

		var existing models.Achievement
		if err := db.Where("participant_id = ? AND badge_name = ?", participant.ID, tier.Name).First(&existing).Error; err == nil {
			continue
		}

		achievement := models.Achievement{
			ParticipantID:    participant.ID,
			BadgeName:        tier.Name,
			BadgeDescription: tier.Desc,
			EarnedAt:         time.Now(),
			WeekEarned:       participant.CurrentWeek,
		}
		if err := db.Create(&achievement).Error; err != nil {
			logScheduler("Error creating achievement: " + err.Error())
		}
	}
}

// processParticipantProgress refreshes aggregates for every participant
func processParticipantProgress() {
	var participants []models.ParticipantProfile
	if err := database.Database.Db.Find(&participants).Error; err != nil {
		logScheduler("Error fetching participants: " + err.Error())
		return
	}

	for i := range participants {
		refreshParticipantProgress(&participants[i])
	}

	logScheduler("Participant progress refresh complete")
}

// pruneRevokedTokens drops logout records for tokens that have since expired
func pruneRevokedTokens() {
	result := database.Database.Db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&models.RevokedToken{})
	if result.Error != nil {
		logScheduler("Error pruning revoked tokens: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Pruned expired revoked tokens")
	}
}

// StartProgressScheduler runs the nightly participant aggregate refresh and
// token prune. Returns the cron runner so callers can stop it.
func StartProgressScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("30 2 * * *", func() {
		processParticipantProgress()
		pruneRevokedTokens()
	}); err != nil {
		log.Fatalf("Failed to schedule progress refresh: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
