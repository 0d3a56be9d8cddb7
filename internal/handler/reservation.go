package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/stpnv0/LibraryBooker/internal/handler/dto"
	"github.com/stpnv0/LibraryBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Reservation, error)
	Complete(ctx context.Context, actor domain.Actor, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ReservationDetails, error)
	ListAll(ctx context.Context) ([]domain.ReservationDetails, error)
}

const dateOnly = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date format, expected RFC3339 or YYYY-MM-DD"})
		return
	}
	end, ok := parseDate(req.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date format, expected RFC3339 or YYYY-MM-DD"})
		return
	}

	r, err := h.reservationService.Create(c.Request.Context(), middleware.ActorFromContext(c), domain.CreateReservationInput{
		BookID:    req.BookID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) MyReservations(c *ginext.Context) {
	actor := middleware.ActorFromContext(c)

	list, err := h.reservationService.ListByUser(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationDetailsList(list))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	list, err := h.reservationService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationDetailsList(list))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	r, err := h.reservationService.Cancel(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) CompleteReservation(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	r, err := h.reservationService.Complete(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.UpdateStatus(
		c.Request.Context(), middleware.ActorFromContext(c), id, domain.ReservationStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}
