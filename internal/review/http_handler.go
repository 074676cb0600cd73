package review

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookdrop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReviewReq struct {
	Name   string `json:"name" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}

// ListByBook handles GET /books/{id}/reviews
// @Summary List reviews for a book
// @Tags reviews
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.DataResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id}/reviews [get]
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	bookID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", raw))
		return
	}

	reviews, err := h.service.ListByBook(r.Context(), bookID)
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONData(w, http.StatusOK, "Reviews successfully retrieved", reviews)
}

// Create handles POST /books/{id}/reviews
// @Summary Review a book
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param request body createReviewReq true "New review"
// @Success 201 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /books/{id}/reviews [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if errs := httpx.Bind(r, &req); len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	raw := r.PathValue("id")
	bookID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", raw))
		return
	}

	_, err = h.service.Create(r.Context(), NewReview{
		BookID: bookID,
		Name:   req.Name,
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", raw))
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, "Review created")
}
