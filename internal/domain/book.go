package domain

import "time"

type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	PublicationYear int       `json:"publication_year"`
	ISBN            string    `json:"isbn"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateBookInput struct {
	Title           string
	Author          string
	Category        string
	PublicationYear int
	ISBN            string
	Price           float64
	Stock           int
}

// UpdateBookInput is a partial update. Nil fields are left untouched.
type UpdateBookInput struct {
	Title           *string
	Author          *string
	Category        *string
	PublicationYear *int
	Price           *float64
	Stock           *int
}

func (in UpdateBookInput) Empty() bool {
	return in.Title == nil && in.Author == nil && in.Category == nil &&
		in.PublicationYear == nil && in.Price == nil && in.Stock == nil
}

// Apply writes the set fields of in onto b.
func (in UpdateBookInput) Apply(b *Book) {
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.PublicationYear != nil {
		b.PublicationYear = *in.PublicationYear
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	if in.Stock != nil {
		b.Stock = *in.Stock
	}
}
