// Package http adapts the generated ServerInterface onto the application's
// command and query handlers. Domain failures are mapped onto the API error
// taxonomy here; handlers below never leak raw persistence errors.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/ndr"
	"logistics/internal/core/domain/model/partner"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler      commands.CreateShipmentCommandHandler
	assignPartnerHandler       commands.AssignPartnerCommandHandler
	transitionShipmentHandler  commands.TransitionShipmentCommandHandler
	recordFailedAttemptHandler commands.RecordFailedAttemptCommandHandler
	logNDRContactHandler       commands.LogNDRContactCommandHandler
	resolveNDRHandler          commands.ResolveNDRCommandHandler

	// Query handlers
	selectPartnerHandler         queries.SelectPartnerQueryHandler
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler
	getStatusHistoryHandler      queries.GetStatusHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	transitionShipmentHandler commands.TransitionShipmentCommandHandler,
	recordFailedAttemptHandler commands.RecordFailedAttemptCommandHandler,
	logNDRContactHandler commands.LogNDRContactCommandHandler,
	resolveNDRHandler commands.ResolveNDRCommandHandler,
	selectPartnerHandler queries.SelectPartnerQueryHandler,
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:        createShipmentHandler,
		assignPartnerHandler:         assignPartnerHandler,
		transitionShipmentHandler:    transitionShipmentHandler,
		recordFailedAttemptHandler:   recordFailedAttemptHandler,
		logNDRContactHandler:         logNDRContactHandler,
		resolveNDRHandler:            resolveNDRHandler,
		selectPartnerHandler:         selectPartnerHandler,
		getAllowedTransitionsHandler: getAllowedTransitionsHandler,
		getStatusHistoryHandler:      getStatusHistoryHandler,
	}
}

// SelectPartner handles POST /api/v1/partner-selection - ranks partners for a
// route without touching any shipment.
func (s *Server) SelectPartner(ctx echo.Context) error {
	var request servers.PartnerSelectionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewPincode(request.OriginPincode)
	if err != nil {
		return s.writeError(ctx, err)
	}
	destination, err := kernel.NewPincode(request.DestinationPincode)
	if err != nil {
		return s.writeError(ctx, err)
	}

	isCOD := request.IsCod != nil && *request.IsCod
	var codAmount float64
	if request.CodAmount != nil {
		codAmount = *request.CodAmount
	}

	query, err := queries.NewSelectPartnerQuery(
		origin, destination, request.WeightKg, isCOD, codAmount,
		selectionWeightsFromAPI(request.Weights),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.selectPartnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := servers.SelectionResult{
		Alternatives: make([]servers.PartnerOption, 0, len(result.Alternatives)),
	}
	if result.Recommended != nil {
		recommended := partnerOptionToAPI(*result.Recommended)
		response.Recommended = &recommended
	}
	for _, option := range result.Alternatives {
		response.Alternatives = append(response.Alternatives, partnerOptionToAPI(option))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments - books a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request servers.NewShipment
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewPincode(request.OriginPincode)
	if err != nil {
		return s.writeError(ctx, err)
	}
	destination, err := kernel.NewPincode(request.DestinationPincode)
	if err != nil {
		return s.writeError(ctx, err)
	}
	paymentMode, err := shipment.PaymentModeFromString(string(request.PaymentMode))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var codAmount float64
	if request.CodAmount != nil {
		codAmount = *request.CodAmount
	}

	var dimensions commands.Dimensions
	if request.Dimensions != nil {
		dimensions = commands.Dimensions{
			LengthCm: request.Dimensions.LengthCm,
			WidthCm:  request.Dimensions.WidthCm,
			HeightCm: request.Dimensions.HeightCm,
		}
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, request.OrderNumber, origin, destination,
		paymentMode, codAmount, request.WeightKg, dimensions,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.ShipmentCreated{Id: shipmentID.Bytes()})
}

// AssignPartner handles POST /api/v1/shipments/{shipmentId}/assign-partner -
// runs the selection engine and binds the winner to the shipment.
func (s *Server) AssignPartner(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var request servers.AssignPartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignPartnerCommand(id, selectionWeightsFromAPI(request.Weights))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionShipment handles POST /api/v1/shipments/{shipmentId}/transitions -
// requests one lifecycle transition.
func (s *Server) TransitionShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var request servers.TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}
	newStatus, err := shipment.StatusFromString(request.NewStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}
	actorRole, err := shipment.RoleFromString(request.ActorRole)
	if err != nil {
		return s.writeError(ctx, err)
	}

	statusText := request.NewStatus
	if request.StatusText != nil {
		statusText = *request.StatusText
	}

	cmd, err := commands.NewTransitionShipmentCommand(
		id, newStatus, actorRole, "api",
		statusText, request.Location, request.Remarks, request.AwbNumber,
		metadataFromAPI(request.Metadata),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllowedTransitions handles GET /api/v1/shipments/{shipmentId}/allowed-transitions.
func (s *Server) GetAllowedTransitions(
	ctx echo.Context, shipmentId openapi_types.UUID, params servers.GetAllowedTransitionsParams,
) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}
	actorRole, err := shipment.RoleFromString(params.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetAllowedTransitionsQuery(id, actorRole)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getAllowedTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	allowed := make([]string, 0, len(result.AllowedTransitions))
	for _, status := range result.AllowedTransitions {
		allowed = append(allowed, status.String())
	}

	return ctx.JSON(http.StatusOK, servers.AllowedTransitions{
		CurrentStatus:      result.CurrentStatus.String(),
		AllowedTransitions: allowed,
	})
}

// GetStatusHistory handles GET /api/v1/shipments/{shipmentId}/history.
func (s *Server) GetStatusHistory(ctx echo.Context, shipmentId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	events, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.StatusEvent, 0, len(events))
	for _, event := range events {
		apiEvent := servers.StatusEvent{
			Id:             event.ID.Bytes(),
			PreviousStatus: event.PreviousStatus.String(),
			NewStatus:      event.NewStatus.String(),
			Source:         event.Source.String(),
			SourceRef:      event.SourceRef,
			StatusText:     event.StatusText,
			Location:       event.Location,
			Remarks:        event.Remarks,
			OccurredAt:     event.OccurredAt,
		}
		if len(event.Metadata) > 0 {
			metadata := event.Metadata
			apiEvent.Metadata = &metadata
		}
		response = append(response, apiEvent)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordFailedAttempt handles POST /api/v1/shipments/{shipmentId}/failed-attempts.
func (s *Server) RecordFailedAttempt(ctx echo.Context, shipmentId openapi_types.UUID) error {
	var request servers.FailedAttemptRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRecordFailedAttemptCommand(id, request.ReasonCode, request.Remarks)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.recordFailedAttemptHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LogNdrContact handles POST /api/v1/ndr-reports/{reportId}/calls.
func (s *Server) LogNdrContact(ctx echo.Context, reportId openapi_types.UUID) error {
	var request servers.NdrCallRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(reportId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}
	callStatus, err := ndr.CallStatusFromString(request.CallStatus)
	if err != nil {
		return s.writeError(ctx, err)
	}

	callOutcome := ndr.CallOutcomeUnknown
	if request.CallOutcome != nil {
		callOutcome, err = ndr.CallOutcomeFromString(*request.CallOutcome)
		if err != nil {
			return s.writeError(ctx, err)
		}
	}

	var newPincode *kernel.Pincode
	if request.NewPincode != nil {
		pincode, pincodeErr := kernel.NewPincode(*request.NewPincode)
		if pincodeErr != nil {
			return s.writeError(ctx, pincodeErr)
		}
		newPincode = &pincode
	}

	cmd, err := commands.NewLogNDRContactCommand(
		id, callStatus, callOutcome,
		request.CustomerResponse, request.NewAddress, newPincode, request.NewPhone,
		request.PreferredDate, request.PreferredSlot,
		metadataFromAPI(request.Metadata),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.logNDRContactHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveNdr handles POST /api/v1/ndr-reports/{reportId}/resolve.
func (s *Server) ResolveNdr(ctx echo.Context, reportId openapi_types.UUID) error {
	var request servers.ResolveNdrRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(reportId[:])
	if err != nil {
		return s.writeError(ctx, err)
	}
	resolution, err := ndr.ResolutionTypeFromString(string(request.ResolutionType))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewResolveNDRCommand(id, resolution)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if handleErr := s.resolveNDRHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain and application failures onto the API error taxonomy:
// 400 validation, 403 forbidden role, 404 unknown id, 409 lost concurrency
// race or already-closed report, 422 transition/selection rejected.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var invalidTransition *shipment.InvalidTransitionError
	switch {
	case errors.As(err, &invalidTransition):
		allowed := make([]string, 0, len(invalidTransition.Allowed))
		for _, status := range invalidTransition.Allowed {
			allowed = append(allowed, status.String())
		}
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:               http.StatusUnprocessableEntity,
			Message:            err.Error(),
			AllowedTransitions: &allowed,
		})

	case errors.Is(err, shipment.ErrTransitionForbidden):
		return jsonError(ctx, http.StatusForbidden, err)

	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err)

	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, ndr.ErrReportIsClosed):
		return jsonError(ctx, http.StatusConflict, err)

	case errors.Is(err, commands.ErrNoPartnerServiceable):
		return jsonError(ctx, http.StatusUnprocessableEntity, err)

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err)

	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func selectionWeightsFromAPI(weights *servers.SelectionWeights) *services.SelectionWeights {
	if weights == nil {
		return nil
	}
	return &services.SelectionWeights{
		Cost:        weights.Cost,
		Speed:       weights.Speed,
		Reliability: weights.Reliability,
	}
}

func metadataFromAPI(metadata *map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	return *metadata
}

func partnerOptionToAPI(option partner.Option) servers.PartnerOption {
	return servers.PartnerOption{
		PartnerId:        option.PartnerID.Bytes(),
		PartnerCode:      option.PartnerCode,
		PartnerName:      option.PartnerName,
		Rate:             option.Rate,
		EstimatedTatDays: option.EstimatedTATDays,
		CostScore:        option.Scores.Cost,
		SpeedScore:       option.Scores.Speed,
		ReliabilityScore: option.Scores.Reliability,
		FinalScore:       option.FinalScore,
	}
}
