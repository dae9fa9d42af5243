package view

import (
	"net/http"

	"eventrix/infras/otel"
	"eventrix/internal/domains/view/service"
	"eventrix/shared/constant"
	"eventrix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.View
	otel    otel.Otel
}

func New(service service.View, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/views", func(routerGroup chi.Router) {
		routerGroup.Get("/events", handler.GetFullEvents)
		routerGroup.Get("/users", handler.GetFullUsers)
		routerGroup.Get("/equipment", handler.GetFullEquipment)
	})
}

// GetFullEvents serves the enriched event projection.
// @Summary Get enriched events
// @Description Every event with organizer name, check-ins, bookings, and attendee count, sorted newest first.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} model.FullEvent "Enriched events"
// @Failure 500 {object} response.Error
// @Router /v1/views/events [get]
func (handler *Handler) GetFullEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFullEvents")
	defer scope.End()

	events, err := handler.service.FullEvents(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build event view")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event view built successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// GetFullUsers serves the enriched user projection.
// @Summary Get enriched users
// @Description Every user with organized events, attended events, and annotated bookings.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} model.FullUser "Enriched users"
// @Failure 500 {object} response.Error
// @Router /v1/views/users [get]
func (handler *Handler) GetFullUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFullUsers")
	defer scope.End()

	users, err := handler.service.FullUsers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build user view")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User view built successfully")

	response.WithJSON(w, http.StatusOK, users)
}

// GetFullEquipment serves the enriched equipment projection.
// @Summary Get enriched equipment
// @Description Every equipment item with its annotated booking history, newest borrow first.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} model.FullEquipment "Enriched equipment"
// @Failure 500 {object} response.Error
// @Router /v1/views/equipment [get]
func (handler *Handler) GetFullEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFullEquipment")
	defer scope.End()

	equipment, err := handler.service.FullEquipment(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build equipment view")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment view built successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}
