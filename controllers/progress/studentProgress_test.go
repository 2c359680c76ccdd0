package progressController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"talyouth/config"
	"talyouth/database"
	"talyouth/models"
	authRoutes "talyouth/routers/authRoutes"
	progressRoutes "talyouth/routers/progressRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{
		Port:          "5000",
		SessionSecret: "testsecret",
		SaltRound:     4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	return app
}

func registerAndLogin(t *testing.T, app *fiber.App, email, userType string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Test",
		"last_name":  "User",
		"user_type":  userType,
		"chosen_sdg": 13,
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, _ = json.Marshal(map[string]interface{}{"email": email, "password": "password123"})
	req = httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["data"].(map[string]interface{})["token"].(string)
}

func getProgress(t *testing.T, app *fiber.App, token string) (map[string]interface{}, int) {
	req := httptest.NewRequest("GET", "/student-progress", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func TestStudentProgressFresh(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "fresh@example.com", "participant")

	result, status := getProgress(t, app, token)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["overall_progress"])
	assert.Equal(t, float64(0), data["completed_videos"])
	assert.Equal(t, float64(1), data["current_week"])

	achievements := data["achievements"].([]interface{})
	assert.Len(t, achievements, 4)
	for _, entry := range achievements {
		assert.Equal(t, false, entry.(map[string]interface{})["earned"])
	}
}

func TestStudentProgressTiers(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "tiers@example.com", "participant")

	database.Database.Db.Model(&models.ParticipantProfile{}).
		Where("1 = 1").Update("progress_percentage", 75)

	result, _ := getProgress(t, app, token)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(75), data["overall_progress"])

	achievements := data["achievements"].([]interface{})
	earned := make([]bool, 0, len(achievements))
	for _, entry := range achievements {
		earned = append(earned, entry.(map[string]interface{})["earned"].(bool))
	}
	assert.Equal(t, []bool{true, true, true, false}, earned)
}

func TestStudentProgressRejectsMentor(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "coach@example.com", "mentor")

	_, status := getProgress(t, app, token)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestSubmitReflection(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "writer@example.com", "participant")

	body, _ := json.Marshal(map[string]interface{}{
		"week_number":       1,
		"theme":             "discover",
		"what_learned":      "How SDG targets are measured.",
		"challenges_faced":  "Finding local data sources.",
		"team_contribution": "Led the brainstorm session.",
		"additional_notes":  "Want to explore water quality next.",
		"uploaded_files":    []string{"notes.pdf"},
	})
	req := httptest.NewRequest("POST", "/submit-reflection", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var reflection models.WeeklyReflection
	err = database.Database.Db.Where("week_number = ?", 1).First(&reflection).Error
	assert.NoError(t, err)
	assert.True(t, reflection.IsComplete)
	assert.Contains(t, reflection.UploadedFiles, "_notes.pdf")
}

func TestSubmitReflectionPartial(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "partial@example.com", "participant")

	body, _ := json.Marshal(map[string]interface{}{
		"week_number":  2,
		"theme":        "act",
		"what_learned": "Project planning basics.",
	})
	req := httptest.NewRequest("POST", "/submit-reflection", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var reflection models.WeeklyReflection
	err = database.Database.Db.Where("week_number = ?", 2).First(&reflection).Error
	assert.NoError(t, err)
	assert.False(t, reflection.IsComplete)
	assert.Empty(t, reflection.UploadedFiles)
}

func TestSubmitReflectionMissingTheme(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "notheme@example.com", "participant")

	body, _ := json.Marshal(map[string]interface{}{"week_number": 1})
	req := httptest.NewRequest("POST", "/submit-reflection", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
