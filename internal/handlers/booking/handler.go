package booking

import (
	"context"
	"corais/infras/otel"
	"corais/internal/domains/booking/controller"
	"corais/internal/domains/booking/model/dto"
	"corais/internal/domains/booking/service"
	roomService "corais/internal/domains/room/service"
	"corais/shared/constant"
	"corais/shared/validator"
	"corais/transport/http/middleware"
	"corais/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	rooms      roomService.Room
	bookings   service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(rooms roomService.Room, bookings service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		rooms:      rooms,
		bookings:   bookings,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/form", handler.GetForm)
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.With(handler.middleware.Throttle()).Post("/", handler.Submit)
	})
}

// enter opens a form controller for this request with the catalog loaded.
func (handler *Handler) enter(ctx context.Context, preselect string) (*controller.Controller, error) {
	c := controller.New(handler.rooms, handler.bookings)

	if err := c.OnEnter(ctx, preselect); err != nil {
		return nil, err
	}

	return c, nil
}

// GetForm returns the initial reservation form.
// @Summary Open the reservation form
// @Description Loads the room catalog and applies the optional room preselection.
// @Tags Reservation
// @Produce json
// @Param room query string false "Room ID to preselect"
// @Success 200 {object} response.Data[dto.FormStateResponse] "Form state"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/form [get]
func (handler *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	c, err := handler.enter(ctx, r.URL.Query().Get(constant.RequestParamRoom))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open reservation form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, c.State())
}

// Quote prices a draft without storing it.
// @Summary Quote a reservation
// @Description Nights, nightly rate, total and guests hint for the given draft.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.DraftRequest true "Reservation draft"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote"
// @Failure 400 {object} response.Error
// @Router /v1/reservations/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	c, err := handler.prepare(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to quote reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, c.Quote())
}

// Submit stores a reservation request.
// @Summary Submit a reservation
// @Description Validates the draft, stores it as a pending booking and returns the WhatsApp link for the owner.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.DraftRequest true "Reservation draft"
// @Success 201 {object} response.Data[dto.Confirmation] "Booking requested"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	c, err := handler.prepare(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to prepare reservation")

		response.WithError(w, err)

		return
	}

	confirmation, err := c.Submit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to submit reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking requested " + confirmation.BookingID)

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// prepare decodes the draft and loads it into a fresh controller. When the
// catalog cannot be fetched the controller carries an empty one, so the room
// reads as unselected.
func (handler *Handler) prepare(ctx context.Context, r *http.Request) (*controller.Controller, error) {
	req := dto.DraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		return nil, err
	}

	c, err := handler.enter(ctx, "")
	if err != nil {
		return nil, err
	}

	c.Apply(req.ToDraft())

	return c, nil
}
