package httpx

import (
	"errors"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ErrorHandler renders err as {"detail": ...}. A *fiber.Error keeps its code
// and message; anything else is a 500 with a generic detail. 401 responses
// carry a WWW-Authenticate challenge.
func ErrorHandler(logger logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		detail := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			detail = fe.Message
		} else {
			logger.Error(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
		}

		if code == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, common.AuthScheme)
		}

		return c.Status(code).JSON(ErrorBody{Detail: detail})
	}
}
