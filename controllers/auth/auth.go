package authController

import (
	"errors"
	"log"
	"time"

	"talyouth/config"
	"talyouth/database"
	"talyouth/middleware"
	"talyouth/models"
	"talyouth/utils"
	authValidator "talyouth/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered. Please use a different email or login.", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	role, _ := models.ParseRole(reqData.UserType)

	newUser := models.User{
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    reqData.FirstName,
		LastName:     reqData.LastName,
		Age:          reqData.Age,
		Location:     reqData.Location,
		Role:         role,
		IsActive:     true,
	}

	// Create user and role profile together
	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		// The existence check above races with concurrent registrations;
		// the unique index on email is the arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered. Please use a different email or login.", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
	}

	switch role {
	case models.RoleParticipant:
		chosenSDG := reqData.ChosenSDG
		if chosenSDG == 0 {
			chosenSDG = 1
		}
		profile := models.ParticipantProfile{
			UserID:             newUser.ID,
			ChosenSDG:          chosenSDG,
			SchoolOrganization: reqData.SchoolOrganization,
			Availability:       reqData.Availability,
			CurrentWeek:        1,
		}
		if err := tx.Create(&profile).Error; err != nil {
			tx.Rollback()
			log.Printf("Error saving participant profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
		}
	case models.RoleMentor:
		profile := models.MentorProfile{
			UserID:         newUser.ID,
			ExpertiseAreas: reqData.ExpertiseAreas,
			Organization:   reqData.Organization,
			Bio:            reqData.Bio,
			Phone:          reqData.Phone,
			LinkedinURL:    reqData.LinkedinURL,
			IsApproved:     true, // auto-approve, no manual review step
		}
		if err := tx.Create(&profile).Error; err != nil {
			tx.Rollback()
			log.Printf("Error saving mentor profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
		}
	case models.RoleOther:
		// No profile for other account types
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing registration: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
	}

	go func(email, firstName, role string) {
		if err := utils.SendWelcomeEmail(email, firstName, role); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}(newUser.Email, newUser.FirstName, role.String())

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! Please login to continue.", fiber.Map{
		"id":         newUser.ID,
		"email":      newUser.Email,
		"first_name": newUser.FirstName,
		"last_name":  newUser.LastName,
		"role":       newUser.Role,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password.", nil)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your account has been deactivated. Please contact support.", nil)
	}

	// Mentors additionally need an approved profile
	if user.Role == models.RoleMentor {
		var mentor models.MentorProfile
		if err := db.Where("user_id = ?", user.ID).First(&mentor).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Mentor profile not found. Please contact admin.", nil)
		}
		if !mentor.IsApproved {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your mentor account is pending approval. Please contact admin.", nil)
		}
	}

	// Update last login time
	nowTime := time.Now()
	user.LastLogin = &nowTime
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateJWT(&user, reqData.RememberMe)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome back, "+user.FirstName+"!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the presented token so it is refused from now on
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token cannot be revoked!", nil)
	}

	expiresAt, _ := c.Locals("tokenExpiresAt").(time.Time)

	revoked := models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := database.Database.Db.Create(&revoked).Error; err != nil {
		log.Printf("Error revoking token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Logout failed. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been logged out.", nil)
}
