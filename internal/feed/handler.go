// AngelaMos | 2026
// handler.go

package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thoriumlabs/platform-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/feeds", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/india-energy", h.IndiaEnergy)
		r.Get("/weather", h.Weather)
		r.Get("/economic", h.Economic)
		r.Get("/global-trends", h.GlobalTrends)
		r.Get("/insights", h.Insights)
	})
}

func (h *Handler) IndiaEnergy(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.service.IndiaEnergy(r.Context()))
}

func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	core.OK(w, h.service.Weather(r.Context(), city))
}

func (h *Handler) Economic(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.service.Economic(r.Context()))
}

func (h *Handler) GlobalTrends(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.service.GlobalTrends(r.Context()))
}

func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.service.Insights(r.Context()))
}
