package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookSvc interface {
	Create(ctx context.Context, input domain.CreateBookInput) (*domain.Book, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, id string, input domain.UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	bookService        BookSvc
	userService        UserSvc
	reservationService ReservationSvc
}

func NewHandler(bookService BookSvc, userService UserSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		bookService:        bookService,
		userService:        userService,
		reservationService: reservationService,
	}
}

// Books

func (h *Handler) CreateBook(c *ginext.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), domain.CreateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Category:        req.Category,
		PublicationYear: req.PublicationYear,
		ISBN:            req.ISBN,
		Price:           req.Price,
		Stock:           req.Stock,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

func (h *Handler) GetBook(c *ginext.Context) {
	id, ok := pathID(c, "invalid book id")
	if !ok {
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

func (h *Handler) ListBooks(c *ginext.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.ToBookResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateBook(c *ginext.Context) {
	id, ok := pathID(c, "invalid book id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), id, domain.UpdateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Category:        req.Category,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		Stock:           req.Stock,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

func (h *Handler) DeleteBook(c *ginext.Context) {
	id, ok := pathID(c, "invalid book id")
	if !ok {
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: message(err)})

	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: message(err)})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: message(err)})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: message(err)})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message(err)})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// message prefers the display text of the first domain error in the chain
// over the wrapped operation context.
func message(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Error()
	}
	return err.Error()
}
