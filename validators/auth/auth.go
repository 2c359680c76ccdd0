package authValidator

import (
	"strings"

	"talyouth/middleware"
	"talyouth/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the registration payload. Role-specific fields are only
// consulted for the matching role.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Age       *int   `json:"age" validate:"omitempty,gte=13,lte=120"`
	Location  string `json:"location"`
	UserType  string `json:"user_type" validate:"required"`

	// Participant fields
	ChosenSDG          int    `json:"chosen_sdg" validate:"omitempty,gte=1,lte=17"`
	SchoolOrganization string `json:"school_organization"`
	Availability       string `json:"availability"`

	// Mentor fields
	ExpertiseAreas string `json:"expertise_areas"`
	Organization   string `json:"organization"`
	Bio            string `json:"bio"`
	Phone          string `json:"phone"`
	LinkedinURL    string `json:"linkedin_url"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Email":
					errors["email"] = "A valid email is required!"
				case "Password":
					errors["password"] = "Password must be at least 8 characters long!"
				case "FirstName":
					errors["first_name"] = "First name is required!"
				case "LastName":
					errors["last_name"] = "Last name is required!"
				case "Age":
					errors["age"] = "Age must be between 13 and 120!"
				case "UserType":
					errors["user_type"] = "Account type is required!"
				case "ChosenSDG":
					errors["chosen_sdg"] = "Chosen SDG must be between 1 and 17!"
				}
			}
		}

		if reqData.UserType != "" {
			if _, ok := models.ParseRole(reqData.UserType); !ok {
				errors["user_type"] = "Account type must be participant, mentor or other!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
