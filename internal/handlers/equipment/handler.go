package equipment

import (
	"net/http"
	"strconv"

	"eventrix/infras/otel"
	"eventrix/internal/domains/equipment/model"
	"eventrix/internal/domains/equipment/model/dto"
	"eventrix/internal/domains/equipment/service"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	"eventrix/shared/failure"
	"eventrix/shared/validator"
	"eventrix/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/equipment", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEquipment)
		routerGroup.Get("/", handler.GetEquipments)
		routerGroup.Get("/{id}", handler.GetEquipmentByID)
		routerGroup.Patch("/{id}", handler.UpdateEquipment)
		routerGroup.Delete("/{id}", handler.DeleteEquipment)
		routerGroup.Post("/{id}/return", handler.ReturnEquipment)
		routerGroup.Post("/{id}/damaged", handler.MarkEquipmentDamaged)
	})
}

// CreateEquipment handles the creation of a new equipment item.
// @Summary Create a new equipment item
// @Description Create a new equipment item; status defaults to Available.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param request body dto.CreateEquipmentRequest true "Create Equipment Request"
// @Success 201 {object} response.Message "Equipment created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [post]
// @Security BearerAuth
func (handler *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	req := dto.CreateEquipmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment created successfully")

	response.WithMessage(w, http.StatusCreated, "Equipment created successfully")
}

// GetEquipments retrieves all equipment items based on query parameters.
// @Summary Get all equipment items
// @Description Retrieve all equipment items with optional filtering and pagination.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.GetEquipmentsResponse "List of equipment items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment [get]
func (handler *Handler) GetEquipments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	equipments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipments retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipments)
}

// GetEquipmentByID retrieves an equipment item by its ID.
// @Summary Get an equipment item by ID
// @Description Retrieve an equipment item by its unique identifier.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} dto.EquipmentResponse "Equipment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [get]
func (handler *Handler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	equipment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment retrieved successfully")

	response.WithJSON(w, http.StatusOK, equipment)
}

// UpdateEquipment updates an existing equipment item by its ID.
// @Summary Update an equipment item by ID
// @Description Update the details of an existing equipment item.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Param request body dto.UpdateEquipmentRequest true "Update Equipment Request"
// @Success 200 {object} response.Message "Equipment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	req := dto.UpdateEquipmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment updated successfully")

	response.WithMessage(w, http.StatusOK, "Equipment updated successfully")
}

// DeleteEquipment deletes an equipment item by its ID.
// @Summary Delete an equipment item by ID
// @Description Delete an equipment item; its booking history keeps dangling references.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} response.Message "Equipment deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEquipment")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Equipment deleted successfully")
}

// ReturnEquipment closes the open booking and reverts the status to Available.
// @Summary Return an equipment item
// @Description Stamp the open booking's return date with today and revert the equipment status to Available.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} response.Message "Equipment returned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id}/return [post]
// @Security BearerAuth
func (handler *Handler) ReturnEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReturnEquipment")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.Return(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to return equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment returned successfully")

	response.WithMessage(w, http.StatusOK, "Equipment returned successfully")
}

// MarkEquipmentDamaged flips an equipment item's status to Damaged.
// @Summary Mark an equipment item as damaged
// @Description Set the equipment status to Damaged regardless of its current state.
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} response.Message "Equipment marked as damaged"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/equipment/{id}/damaged [post]
// @Security BearerAuth
func (handler *Handler) MarkEquipmentDamaged(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkEquipmentDamaged")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("invalid id parameter"))

		return
	}

	if err := handler.service.MarkDamaged(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark equipment as damaged")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment marked as damaged")

	response.WithMessage(w, http.StatusOK, "Equipment marked as damaged")
}
