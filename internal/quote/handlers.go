package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/seatrans/pda-api/internal/common"
	"github.com/seatrans/pda-api/internal/resilience"
)

// Handler exposes the quote rendering endpoints.
type Handler struct {
	Service  *Service
	Validate *validator.Validate
}

type renderRequest struct {
	Variant  string `json:"variant" validate:"required,oneof=hcm qn"`
	Template string `json:"template"`
	Data     Input  `json:"data"`
}

// Render handles POST /api/v1/quotes/render and returns the rendered HTML
// inside the JSON envelope.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, err := h.Service.Render(r.Context(), req.Variant, req.Template, req.Data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusOK, res)
}

// Preview handles POST /api/v1/quotes/preview and returns the document
// itself so a browser can show it directly.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, err := h.Service.Render(r.Context(), req.Variant, req.Template, req.Data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(res.HTML))
}

// CreateDocument handles POST /api/v1/quotes/{inquiryId}/documents: render
// plus hand-off to the document archive.
func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	inquiryID := chi.URLParam(r, "inquiryId")
	res, err := h.Service.RenderAndArchive(r.Context(), inquiryID, req.Variant, req.Template, req.Data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusCreated, res)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (renderRequest, bool) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return renderRequest{}, false
	}
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return renderRequest{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			var fields []string
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					fields = append(fields, fe.Field())
				}
			}
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request", fields)
			return renderRequest{}, false
		}
	}
	return req, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, resilience.ErrOpenCircuit) {
		common.JSONError(w, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "document service unavailable", nil)
		return
	}
	common.JSONAppError(w, err)
}
