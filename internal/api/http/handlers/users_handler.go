package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util/errorutil"
)

// UsersHandler exposes member endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Create handles POST /user.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.SaveUser(c.UserContext(), req.Name, req.Age)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.UserResponse{ID: user.ID, Name: user.Name, Age: user.Age},
	})
}

// List handles GET /user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.GetUsers(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, dto.UserResponse{ID: user.ID, Name: user.Name, Age: user.Age})
	}
	return c.JSON(fiber.Map{"data": response})
}

// UpdateName handles PUT /user.
func (h *UsersHandler) UpdateName(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.users.UpdateUserName(c.UserContext(), req.ID, req.Name); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// Delete handles DELETE /user?name=.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return apperrors.NewValidationError("name query parameter required", nil)
	}

	if err := h.users.DeleteUser(c.UserContext(), name); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// LoanHistories handles GET /user/loan.
func (h *UsersHandler) LoanHistories(c *fiber.Ctx) error {
	views, err := h.users.GetUserLoanHistories(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]dto.UserHistoryResponse, 0, len(views))
	for _, view := range views {
		books := make([]dto.BookHistoryResponse, 0, len(view.Books))
		for _, book := range view.Books {
			books = append(books, dto.BookHistoryResponse{Name: book.Name, IsReturn: book.IsReturn})
		}
		response = append(response, dto.UserHistoryResponse{Name: view.Name, Books: books})
	}
	return c.JSON(fiber.Map{"data": response})
}
