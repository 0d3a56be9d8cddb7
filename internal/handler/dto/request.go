package dto

type CreateBookRequest struct {
	Title           string  `json:"title" binding:"required"`
	Author          string  `json:"author" binding:"required"`
	Category        string  `json:"category"`
	PublicationYear int     `json:"publication_year" binding:"gte=0"`
	ISBN            string  `json:"isbn" binding:"required"`
	Price           float64 `json:"price" binding:"gte=0"`
	Stock           int     `json:"stock" binding:"gte=0"`
}

// UpdateBookRequest fields left out of the body are not changed.
type UpdateBookRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=1"`
	Author          *string  `json:"author" binding:"omitempty,min=1"`
	Category        *string  `json:"category"`
	PublicationYear *int     `json:"publication_year" binding:"omitempty,gte=0"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock           *int     `json:"stock" binding:"omitempty,gte=0"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role" binding:"omitempty,oneof=user admin"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// CreateReservationRequest dates are RFC 3339 timestamps or YYYY-MM-DD.
type CreateReservationRequest struct {
	BookID    string `json:"book_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
