package courseValidator

import (
	"strconv"

	"talyouth/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stores it as an int
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

// VideoID validates the :id route parameter for video routes
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video ID!", nil)
		}

		c.Locals("videoID", id)
		return c.Next()
	}
}

// MarkVideoComplete validates the completion payload. A missing video_id is a
// 400 per the API contract.
func MarkVideoComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoID uint `json:"video_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.VideoID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID required!", nil)
		}

		c.Locals("validatedVideoID", reqData.VideoID)
		return c.Next()
	}
}
