package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	// ReservationStatusPending is accepted from storage but never produced by the ledger.
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// InitialReservationStatus is the status of every newly created reservation.
const InitialReservationStatus = ReservationStatusActive

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case ReservationStatusPending, ReservationStatusActive,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown reservation status %q", ErrValidation, s)
	}
}

// StockEffect is the change applied to the referenced book's stock by a transition.
type StockEffect int

const (
	StockUnchanged StockEffect = 0
	StockRestore   StockEffect = 1
	StockConsume   StockEffect = -1
)

type transition struct {
	from, to ReservationStatus
}

// transitions is the single source of truth for status changes.
var transitions = map[transition]StockEffect{
	{ReservationStatusActive, ReservationStatusCancelled}: StockRestore,
	{ReservationStatusActive, ReservationStatusCompleted}: StockUnchanged,
}

// Transition reports the stock effect of moving from s to to, or
// ErrIllegalTransition when the table has no such edge.
func (s ReservationStatus) Transition(to ReservationStatus) (StockEffect, error) {
	effect, ok := transitions[transition{from: s, to: to}]
	if !ok {
		return StockUnchanged, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, to)
	}
	return effect, nil
}

// OverwriteEffect is the stock effect of an unconditional status overwrite:
// stock comes back only when an active reservation becomes cancelled.
func (s ReservationStatus) OverwriteEffect(to ReservationStatus) StockEffect {
	if s == ReservationStatusActive && to == ReservationStatusCancelled {
		return StockRestore
	}
	return StockUnchanged
}

func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

type Reservation struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	BookID    string            `json:"book_id"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UserSummary is the part of a user exposed next to a reservation.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ReservationDetails is a reservation joined with snapshots of its book and user taken at read time.
type ReservationDetails struct {
	Reservation Reservation `json:"reservation"`
	Book        Book        `json:"book"`
	User        UserSummary `json:"user"`
}

// ReservationFilter narrows a listing. Zero fields do not filter.
type ReservationFilter struct {
	UserID    string
	Status    ReservationStatus
	EndBefore time.Time
}

func (f ReservationFilter) Match(r Reservation) bool {
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !f.EndBefore.IsZero() && !r.EndDate.Before(f.EndBefore) {
		return false
	}
	return true
}

// ExpiryCutoff is the start of the UTC day containing now. An end date
// covers its whole calendar day, so a reservation expires only once
// its end date is before the cutoff.
func ExpiryCutoff(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type CreateReservationInput struct {
	BookID    string
	StartDate time.Time
	EndDate   time.Time
}
