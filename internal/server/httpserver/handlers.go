package httpserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/server/auth"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
)

const (
	detailBadCredentials = "Incorrect username or password"
	detailBadToken       = "Could not validate credentials"
)

const userKey = "user"

// loginPayload accepts both JSON and form-encoded bodies.
type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (p loginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

type userResponse struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (s *HTTPServer) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *HTTPServer) login(c *fiber.Ctx) error {
	var p loginPayload
	if err := c.BodyParser(&p); err != nil {
		s.logger.Warn(c.UserContext(), "login body rejected", "error", err, "content_type", c.Get(fiber.HeaderContentType))
		return fiber.NewError(fiber.StatusUnprocessableEntity, "request body must be JSON or form data with username and password")
	}
	if err := p.Validate(); err != nil {
		s.logger.Warn(c.UserContext(), "login payload invalid", "error", err)
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	token, err := s.auth.Authenticate(c.UserContext(), p.Username, p.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, detailBadCredentials)
		}
		return internalError(err)
	}

	return c.JSON(token)
}

// requireToken admits a request only with a valid bearer token for a user
// that still exists in the credential store.
func (s *HTTPServer) requireToken(c *fiber.Ctx) error {
	token, err := auth.ParseBearer(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		s.logger.Warn(c.UserContext(), "bearer token missing", "path", c.Path(), "error", err)
		return fiber.NewError(fiber.StatusUnauthorized, detailBadToken)
	}

	user, err := s.auth.VerifyToken(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			s.logger.Warn(c.UserContext(), "token rejected", "path", c.Path(), "error", err)
			return fiber.NewError(fiber.StatusUnauthorized, detailBadToken)
		}
		return internalError(err)
	}

	c.Locals(userKey, user)
	return c.Next()
}

func (s *HTTPServer) getSalesData(c *fiber.Ctx) error {
	records, err := s.sales.GetSalesData(c.UserContext())
	if err != nil {
		if errors.Is(err, common.ErrDataUnavailable) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("File %s not found.", s.sales.SourceName()))
		}
		return internalError(err)
	}
	return c.JSON(records)
}

func (s *HTTPServer) currentUser(c *fiber.Ctx) error {
	user, ok := c.Locals(userKey).(*models.User)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, detailBadToken)
	}
	return c.JSON(userResponse{Username: user.UserName, FullName: user.FullName, Email: user.Email})
}

func internalError(err error) error {
	msg := strings.TrimPrefix(err.Error(), common.ErrorInternal.Error()+": ")
	return fiber.NewError(fiber.StatusInternalServerError, "Internal server error: "+msg)
}
