package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util/errorutil"
)

// BooksHandler exposes catalog and loan endpoints.
type BooksHandler struct {
	books *service.BookService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(bookService *service.BookService) *BooksHandler {
	return &BooksHandler{books: bookService}
}

// Create handles POST /book.
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	category, err := domain.ParseBookCategory(req.Category)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"category": req.Category})
	}

	book, err := h.books.SaveBook(c.UserContext(), req.Name, category)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":       book.ID,
			"name":     book.Name,
			"category": string(book.Category),
		},
	})
}

// Loan handles POST /book/loan.
func (h *BooksHandler) Loan(c *fiber.Ctx) error {
	var req dto.LoanBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.books.LoanBook(c.UserContext(), req.UserName, req.BookName); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// Return handles PUT /book/return.
func (h *BooksHandler) Return(c *fiber.Ctx) error {
	var req dto.ReturnBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.books.ReturnBook(c.UserContext(), req.UserName, req.BookName); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// CountLoaned handles GET /book/loan.
func (h *BooksHandler) CountLoaned(c *fiber.Ctx) error {
	count, err := h.books.CountLoanedBook(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"count": count}})
}

// Statistics handles GET /book/stat.
func (h *BooksHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.books.GetBookStatistics(c.UserContext())
	if err != nil {
		return err
	}

	response := make([]dto.BookStatResponse, 0, len(stats))
	for _, stat := range stats {
		response = append(response, dto.BookStatResponse{
			Category: string(stat.Category),
			Count:    stat.Count,
		})
	}
	return c.JSON(fiber.Map{"data": response})
}
