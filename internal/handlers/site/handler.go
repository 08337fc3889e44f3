package site

import (
	"corais/config"
	"corais/content"
	"corais/infras/otel"
	"corais/internal/domains/booking/notify"
	"corais/shared/constant"
	"corais/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ContactResponse struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	WhatsAppURL string `json:"whatsapp_url"`
}

type Handler struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/site", func(routerGroup chi.Router) {
		routerGroup.Get("/contact", handler.GetContact)
		routerGroup.Get("/experiences", handler.GetExperiences)
		routerGroup.Get("/highlights", handler.GetHighlights)
	})
}

// GetContact returns the public contact details.
// @Summary Contact details
// @Tags Site
// @Produce json
// @Success 200 {object} response.Data[ContactResponse] "Contact details"
// @Router /v1/site/contact [get]
func (handler *Handler) GetContact(w http.ResponseWriter, _ *http.Request) {
	contact := handler.cfg.App.Contact

	response.WithJSON(w, http.StatusOK, ContactResponse{
		Phone:       contact.Phone,
		Email:       contact.Email,
		Location:    contact.Location,
		WhatsAppURL: notify.WhatsAppLink(handler.cfg.App.Booking.WhatsAppNumber, contact.Greeting),
	})
}

// GetExperiences returns the local attractions.
// @Summary Local experiences
// @Tags Site
// @Produce json
// @Success 200 {object} response.Data[content.Section] "Experiences"
// @Failure 500 {object} response.Error
// @Router /v1/site/experiences [get]
func (handler *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	handler.section(w, r, "GetExperiences", func(site *content.Site) content.Section { return site.Experiences })
}

// GetHighlights returns the home page features.
// @Summary Home highlights
// @Tags Site
// @Produce json
// @Success 200 {object} response.Data[content.Section] "Highlights"
// @Failure 500 {object} response.Error
// @Router /v1/site/highlights [get]
func (handler *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	handler.section(w, r, "GetHighlights", func(site *content.Site) content.Section { return site.Highlights })
}

func (handler *Handler) section(w http.ResponseWriter, r *http.Request, name string, pick func(*content.Site) content.Section) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	site, err := content.Get()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load site content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pick(site))
}
