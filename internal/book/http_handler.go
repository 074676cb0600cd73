package book

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

type createBookReq struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	GenreID   int64  `json:"genre_id" validate:"required"`
	Blurb     string `json:"blurb"`
	Image     string `json:"image" validate:"omitempty,url"`
	PageCount int    `json:"page_count" validate:"omitempty,gte=0"`
	Year      int    `json:"year"`
	ISBN10    string `json:"isbn10"`
	ISBN13    string `json:"isbn13"`
	Language  string `json:"language"`
}

type claimBookReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type returnBookReq struct {
	Email string `json:"email" validate:"required,email"`
}

// List handles GET /books
// @Summary List books
// @Description List books, optionally filtered by claimed flag, genre id and title search
// @Tags books
// @Produce json
// @Param claimed query bool false "Filter by claimed state (0/1)"
// @Param genre query int false "Filter by genre id"
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} httpx.DataResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q, errs := ParseListQuery(r.URL.Query())
	if len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	books, err := h.service.List(r.Context(), q)
	if err != nil {
		if errors.Is(err, ErrNoBooks) {
			httpx.JSONMessage(w, http.StatusNotFound, "No books found")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONData(w, http.StatusOK, "Books successfully retrieved", books)
}

// GetByID handles GET /books/{id}
// @Summary Get one book
// @Description Full book detail including genre and reviews
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.DataResponse
// @Failure 404 {object} httpx.MessageResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", raw))
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book with id %s not found", raw))
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONData(w, http.StatusOK, "Book successfully retrieved", detail)
}

// Create handles POST /books
// @Summary Create a book
// @Description Add a new, unclaimed book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param request body createBookReq true "New book"
// @Success 201 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if errs := httpx.Bind(r, &req); len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	_, err := h.service.Create(r.Context(), NewBook{
		Title:     req.Title,
		Author:    req.Author,
		GenreID:   req.GenreID,
		Blurb:     req.Blurb,
		Image:     req.Image,
		PageCount: req.PageCount,
		Year:      req.Year,
		ISBN10:    req.ISBN10,
		ISBN13:    req.ISBN13,
		Language:  req.Language,
	})
	if err != nil {
		if errors.Is(err, ErrGenreNotFound) {
			errs := httpx.FieldErrors{}
			errs.Add("genre_id", "The selected genre_id is invalid.")
			httpx.JSONValidationError(w, errs)
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, "Book created")
}

// Claim handles PUT /books/claim/{id}
// @Summary Claim a book
// @Description Associate a person with an unclaimed book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param request body claimBookReq true "Claimer"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /books/claim/{id} [put]
func (h *HTTPHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req claimBookReq
	if errs := httpx.Bind(r, &req); len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s was not found", raw))
		return
	}

	if err := h.service.Claim(r.Context(), id, req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s was not found", raw))
		case errors.Is(err, ErrAlreadyClaimed):
			httpx.JSONMessage(w, http.StatusBadRequest, fmt.Sprintf("Book %s is already claimed", raw))
		default:
			httpx.JSONInternalError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("Book %s was claimed", raw))
}

// Return handles PUT /books/return/{id}
// @Summary Return a claimed book
// @Description Release a claimed book, authorized by the claimer's email
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book id"
// @Param request body returnBookReq true "Claimer email"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /books/return/{id} [put]
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	var req returnBookReq
	if errs := httpx.Bind(r, &req); len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s was not found", raw))
		return
	}

	if err := h.service.Return(r.Context(), id, req.Email); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONMessage(w, http.StatusNotFound, fmt.Sprintf("Book %s was not found", raw))
		case errors.Is(err, ErrNotClaimed):
			httpx.JSONMessage(w, http.StatusBadRequest, fmt.Sprintf("Book %s is not currently claimed", raw))
		case errors.Is(err, ErrClaimerMismatch):
			httpx.JSONMessage(w, http.StatusBadRequest,
				fmt.Sprintf("Book %s was not returned. %s did not claim this book.", raw, req.Email))
		default:
			httpx.JSONInternalError(w)
		}
		return
	}

	httpx.JSONMessage(w, http.StatusOK, fmt.Sprintf("Book %s was returned", raw))
}
