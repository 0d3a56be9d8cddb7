package dto

import (
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
)

type BookResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	PublicationYear int     `json:"publication_year"`
	ISBN            string  `json:"isbn"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ReservationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BookID    string `json:"book_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ReservationUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ReservationDetailsResponse struct {
	ReservationResponse
	Book BookResponse            `json:"book"`
	User ReservationUserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Category:        b.Category,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
		Price:           b.Price,
		Stock:           b.Stock,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		StartDate: r.StartDate.Format(time.RFC3339),
		EndDate:   r.EndDate.Format(time.RFC3339),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationDetailsResponse(d *domain.ReservationDetails) ReservationDetailsResponse {
	return ReservationDetailsResponse{
		ReservationResponse: ToReservationResponse(&d.Reservation),
		Book:                ToBookResponse(&d.Book),
		User: ReservationUserResponse{
			ID:       d.User.ID,
			Username: d.User.Username,
			Email:    d.User.Email,
		},
	}
}

func ToReservationDetailsList(list []domain.ReservationDetails) []ReservationDetailsResponse {
	resp := make([]ReservationDetailsResponse, 0, len(list))
	for i := range list {
		resp = append(resp, ToReservationDetailsResponse(&list[i]))
	}
	return resp
}
