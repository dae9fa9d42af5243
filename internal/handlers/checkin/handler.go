package checkin

import (
	"net/http"
	"strconv"

	"eventrix/infras/otel"
	"eventrix/internal/domains/checkin/model"
	"eventrix/internal/domains/checkin/model/dto"
	"eventrix/internal/domains/checkin/service"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	"eventrix/shared/failure"
	"eventrix/shared/validator"
	"eventrix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCheckIn)
		routerGroup.Get("/", handler.GetCheckIns)
		routerGroup.Get("/{id}", handler.GetCheckInByID)
		routerGroup.Patch("/{id}", handler.UpdateCheckIn)
		routerGroup.Delete("/{id}", handler.DeleteCheckIn)
	})
}

// CreateCheckIn records an attendance entry.
// @Summary Create a new check-in
// @Description Record that a user attended an event; status defaults to Present.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckInRequest true "Create CheckIn Request"
// @Success 201 {object} response.Message "CheckIn created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins [post]
// @Security BearerAuth
func (handler *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckIn")
	defer scope.End()

	req := dto.CreateCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checkin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("CheckIn created successfully")

	response.WithMessage(w, http.StatusCreated, "CheckIn created successfully")
}

// GetCheckIns retrieves all check-ins based on query parameters.
// @Summary Get all check-ins
// @Description Retrieve all check-ins with optional filtering and pagination.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param event_id query int false "Filter by event"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetCheckInsResponse "List of check-ins"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins [get]
func (handler *Handler) GetCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{model.FieldUserID, model.FieldEventID} {
		if value, err := strconv.ParseInt(r.URL.Query().Get(field), 10, 64); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	checkins, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("CheckIns retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkins)
}

// GetCheckInByID retrieves a check-in by its ID.
// @Summary Get a check-in by ID
// @Description Retrieve a check-in by its unique identifier.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path int true "CheckIn ID"
// @Success 200 {object} dto.CheckInResponse "CheckIn details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins/{id} [get]
func (handler *Handler) GetCheckInByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckInByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	checkin, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get checkin by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("CheckIn retrieved successfully")

	response.WithJSON(w, http.StatusOK, checkin)
}

// UpdateCheckIn updates an existing check-in by its ID.
// @Summary Update a check-in by ID
// @Description Update the details of an existing check-in.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path int true "CheckIn ID"
// @Param request body dto.UpdateCheckInRequest true "Update CheckIn Request"
// @Success 200 {object} response.Message "CheckIn updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckIn")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateCheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update checkin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("CheckIn updated successfully")

	response.WithMessage(w, http.StatusOK, "CheckIn updated successfully")
}

// DeleteCheckIn deletes a check-in by its ID.
// @Summary Delete a check-in by ID
// @Description Delete a check-in using its unique identifier.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param id path int true "CheckIn ID"
// @Success 200 {object} response.Message "CheckIn deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckIn")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete checkin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("CheckIn deleted successfully")

	response.WithMessage(w, http.StatusOK, "CheckIn deleted successfully")
}
