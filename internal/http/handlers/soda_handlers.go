package handlers

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/soda-stock/internal/models"
)

// Create godoc
// @Summary Register a new soda
// @Description Adds a soda to the stock. Names are unique.
// @Tags sodas
// @Accept json
// @Produce json
// @Param soda body models.SodaDTO true "Soda to register"
// @Success 201 {object} models.SodaDTO
// @Failure 400 {object} ValidationErrorsResponse "Validation failed"
// @Failure 400 {object} ErrorResponse "Soda already exists"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas [post]
func (h *SodaHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto models.SodaDTO
	if err := readJSON(w, r, &dto); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidInput, "invalid input")
		return
	}

	if errs := validateSoda(dto); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.svc.Create(ctx, dto)
	if err != nil {
		writeServiceError(ctx, h.log, w, err)
		return
	}

	h.respond(ctx, w, http.StatusCreated, created)
}

// GetByName godoc
// @Summary Find a soda by name
// @Tags sodas
// @Produce json
// @Param name path string true "Soda name"
// @Success 200 {object} models.SodaDTO
// @Failure 400 {object} ErrorResponse "Invalid name encoding"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas/{name} [get]
func (h *SodaHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := nameParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	soda, err := h.svc.FindByName(ctx, name)
	if err != nil {
		writeServiceError(ctx, h.log, w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, soda)
}

// List godoc
// @Summary List all sodas
// @Tags sodas
// @Produce json
// @Success 200 {array} models.SodaDTO
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas [get]
func (h *SodaHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sodas, err := h.svc.ListAll(ctx)
	if err != nil {
		writeServiceError(ctx, h.log, w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, sodas)
}

// Delete godoc
// @Summary Delete a soda by ID
// @Tags sodas
// @Param id path int true "Soda ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas/{id} [delete]
func (h *SodaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	if err := h.svc.DeleteByID(ctx, id); err != nil {
		writeServiceError(ctx, h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Increment godoc
// @Summary Add stock to a soda
// @Description Fails when the resulting quantity would exceed the soda's max.
// @Tags sodas
// @Accept json
// @Produce json
// @Param id path int true "Soda ID"
// @Param adjustment body QuantityRequest true "Units to add"
// @Success 200 {object} models.SodaDTO
// @Failure 400 {object} ErrorResponse "Invalid ID, invalid body or stock exceeded"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas/{id}/increment [patch]
func (h *SodaHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.svc.Increment)
}

// Decrement godoc
// @Summary Remove stock from a soda
// @Description Fails when the resulting quantity would drop below zero.
// @Tags sodas
// @Accept json
// @Produce json
// @Param id path int true "Soda ID"
// @Param adjustment body QuantityRequest true "Units to remove"
// @Success 200 {object} models.SodaDTO
// @Failure 400 {object} ErrorResponse "Invalid ID, invalid body or stock exceeded"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sodas/{id}/decrement [patch]
func (h *SodaHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.svc.Decrement)
}

type adjustFunc func(ctx context.Context, id int64, amount int) (models.SodaDTO, error)

func (h *SodaHandler) adjust(w http.ResponseWriter, r *http.Request, apply adjustFunc) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidInput, err.Error())
		return
	}

	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, CodeInvalidInput, "invalid input")
		return
	}

	if errs := validateQuantity(req); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := apply(ctx, id, *req.Quantity)
	if err != nil {
		writeServiceError(ctx, h.log, w, err)
		return
	}

	h.respond(ctx, w, http.StatusOK, updated)
}

// Sizes godoc
// @Summary List the soda size catalogue
// @Tags sodas
// @Produce json
// @Success 200 {array} SizeResponse
// @Router /api/v1/soda-sizes [get]
func (h *SodaHandler) Sizes(w http.ResponseWriter, r *http.Request) {
	sizes := models.AllSizes()
	resp := make([]SizeResponse, len(sizes))
	for i, s := range sizes {
		resp[i] = SizeResponse{Name: string(s), Label: s.Label()}
	}
	h.respond(r.Context(), w, http.StatusOK, resp)
}
