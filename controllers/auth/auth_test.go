package authController_test

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
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (map[string]interface{}, int) {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result, resp.StatusCode
}

func participantPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":               email,
		"password":            "password123",
		"first_name":          "Amina",
		"last_name":           "Diallo",
		"user_type":           "participant",
		"chosen_sdg":          3,
		"school_organization": "Green Valley High",
	}
}

func TestRegisterParticipant(t *testing.T) {
	app := setupTestApp(t)

	result, status := postJSON(t, app, "/register", participantPayload("amina@example.com"))
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, result["status"])

	var user models.User
	err := database.Database.Db.Where("email = ?", "amina@example.com").First(&user).Error
	assert.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, user.Role)

	var profile models.ParticipantProfile
	err = database.Database.Db.Where("user_id = ?", user.ID).First(&profile).Error
	assert.NoError(t, err)
	assert.Equal(t, 3, profile.ChosenSDG)
	assert.Equal(t, 1, profile.CurrentWeek)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)

	_, status := postJSON(t, app, "/register", participantPayload("dup@example.com"))
	assert.Equal(t, fiber.StatusCreated, status)

	_, status = postJSON(t, app, "/register", participantPayload("dup@example.com"))
	assert.Equal(t, fiber.StatusConflict, status)

	var count int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupTestApp(t)

	_, status := postJSON(t, app, "/register", map[string]interface{}{
		"email":    "incomplete@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestRegisterUnknownRole(t *testing.T) {
	app := setupTestApp(t)

	payload := participantPayload("who@example.com")
	payload["user_type"] = "chapter_head"
	_, status := postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestLoginSuccess(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/register", participantPayload("login@example.com"))

	result, status := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "login@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	var user models.User
	database.Database.Db.Where("email = ?", "login@example.com").First(&user)
	assert.NotNil(t, user.LastLogin)

	var tracking int64
	database.Database.Db.Model(&models.LoginTracking{}).Where("user_id = ?", user.ID).Count(&tracking)
	assert.Equal(t, int64(1), tracking)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/register", participantPayload("wrongpw@example.com"))

	_, status := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "wrongpw@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/register", participantPayload("inactive@example.com"))

	database.Database.Db.Model(&models.User{}).
		Where("email = ?", "inactive@example.com").Update("is_active", false)

	_, status := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "inactive@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginUnapprovedMentor(t *testing.T) {
	app := setupTestApp(t)

	postJSON(t, app, "/register", map[string]interface{}{
		"email":           "mentor@example.com",
		"password":        "password123",
		"first_name":      "Sofia",
		"last_name":       "Martins",
		"user_type":       "mentor",
		"expertise_areas": "Public health",
	})

	database.Database.Db.Model(&models.MentorProfile{}).
		Where("1 = 1").Update("is_approved", false)

	result, status := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "mentor@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, result["message"], "pending approval")
}

func TestLogoutRevokesToken(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/register", participantPayload("logout@example.com"))

	result, _ := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "logout@example.com",
		"password": "password123",
	})
	token := result["data"].(map[string]interface{})["token"].(string)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Same token is refused afterwards
	req = httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterDuplicateBypassingPrecheck(t *testing.T) {
	app := setupTestApp(t)

	_, status := postJSON(t, app, "/register", participantPayload("gone@example.com"))
	assert.Equal(t, fiber.StatusCreated, status)

	// A soft-deleted user escapes the pre-insert lookup but still holds the
	// unique index, same as a concurrent insert would
	err := database.Database.Db.Where("email = ?", "gone@example.com").Delete(&models.User{}).Error
	assert.NoError(t, err)

	_, status = postJSON(t, app, "/register", participantPayload("gone@example.com"))
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestRevocationCheckFailsClosed(t *testing.T) {
	app := setupTestApp(t)
	postJSON(t, app, "/register", participantPayload("outage@example.com"))

	result, _ := postJSON(t, app, "/login", map[string]interface{}{
		"email":    "outage@example.com",
		"password": "password123",
	})
	token := result["data"].(map[string]interface{})["token"].(string)

	// With the logout list unreadable, tokens must be refused, not waved through
	assert.NoError(t, database.Database.Db.Migrator().DropTable(&models.RevokedToken{}))

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
