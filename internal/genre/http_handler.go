package genre

import (
	"errors"
	"net/http"

	"bookdrop/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createGenreReq struct {
	Name string `json:"name" validate:"required"`
}

// List handles GET /genres
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {object} httpx.DataResponse
// @Router /genres [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONData(w, http.StatusOK, "Genres successfully retrieved", genres)
}

// Create handles POST /genres
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param request body createGenreReq true "New genre"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.MessageResponse
// @Failure 422 {object} httpx.ValidationResponse
// @Router /genres [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGenreReq
	if errs := httpx.Bind(r, &req); len(errs) > 0 {
		httpx.JSONValidationError(w, errs)
		return
	}

	if _, err := h.service.Create(r.Context(), req.Name); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONMessage(w, http.StatusBadRequest, "Genre already exists")
			return
		}
		httpx.JSONInternalError(w)
		return
	}

	httpx.JSONMessage(w, http.StatusCreated, "Genre created")
}
