// AngelaMos | 2026
// handler.go

package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Handler struct {
	asker     Asker
	validator *validator.Validate
}

func NewHandler(asker Asker) *Handler {
	return &Handler{
		asker:     asker,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/assistant", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/ask", h.Ask)
	})
}

// Ask proxies the question upstream. Upstream failure is a 503, never a
// crash; everything else about the platform keeps working.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	answer, err := h.asker.Ask(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, core.ErrExternalService) {
			core.ServiceUnavailable(w, "knowledge assistant")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AskResponse{Question: req.Question, Answer: answer})
}
