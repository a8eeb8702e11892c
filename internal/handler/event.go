package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Date:            date,
		Location:        req.Location,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		MaxParticipants: req.MaxParticipants,
		Spots:           req.Spots,
	}

	event, err := h.directoryService.CreateEvent(c.Request.Context(), input, c.GetString("userID"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.directoryService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.directoryService.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:           req.Title,
		Location:        req.Location,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		MaxParticipants: req.MaxParticipants,
		Spots:           req.Spots,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		input.Date = &date
	}

	event, err := h.directoryService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.directoryService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ListEventsWithStatus(c *ginext.Context) {
	events, err := h.directoryService.ListEventsWithStatus(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventStatusResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventStatusResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UserEvents(c *ginext.Context) {
	events, err := h.directoryService.UserEvents(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventStatusResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventStatusResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.directoryService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	if err := h.directoryService.DeleteUser(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}
