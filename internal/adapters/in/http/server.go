// Package http contains the inbound HTTP adapter: an echo server exposing
// the order pipeline operations. Handlers translate requests into commands
// and queries and domain errors into HTTP status codes; no business rules
// live here.
package http

import (
	"errors"
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the acting worker's identity. Authentication itself
// is handled upstream; this service trusts the header.
const UserIDHeader = "X-User-ID"

// Server exposes the order pipeline over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	startOrderHandler          commands.StartOrderCommandHandler
	stopOrderHandler           commands.StopOrderCommandHandler
	completeReclamationHandler commands.CompleteReclamationOrderCommandHandler
	hideOrderHandler           commands.HideOrderCommandHandler
	restoreOrderHandler        commands.RestoreOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	setRatingHandler           commands.SetRatingCommandHandler
	setResourceStatusHandler   commands.SetResourceStatusCommandHandler
	claimStageHandler          commands.ClaimStageCommandHandler
	advanceStageHandler        commands.AdvanceStageCommandHandler
	recordBreakHandler         commands.RecordBreakCommandHandler

	// Query handlers
	getOrderStagesHandler        queries.GetOrderStagesQueryHandler
	getActiveStagesHandler       queries.GetActiveStagesQueryHandler
	getClaimableStagesHandler    queries.GetClaimableStagesQueryHandler
	getEligibleBreakDeptsHandler queries.GetEligibleBreakDepartmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	stopOrderHandler commands.StopOrderCommandHandler,
	completeReclamationHandler commands.CompleteReclamationOrderCommandHandler,
	hideOrderHandler commands.HideOrderCommandHandler,
	restoreOrderHandler commands.RestoreOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	setRatingHandler commands.SetRatingCommandHandler,
	setResourceStatusHandler commands.SetResourceStatusCommandHandler,
	claimStageHandler commands.ClaimStageCommandHandler,
	advanceStageHandler commands.AdvanceStageCommandHandler,
	recordBreakHandler commands.RecordBreakCommandHandler,
	getOrderStagesHandler queries.GetOrderStagesQueryHandler,
	getActiveStagesHandler queries.GetActiveStagesQueryHandler,
	getClaimableStagesHandler queries.GetClaimableStagesQueryHandler,
	getEligibleBreakDeptsHandler queries.GetEligibleBreakDepartmentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		startOrderHandler:            startOrderHandler,
		stopOrderHandler:             stopOrderHandler,
		completeReclamationHandler:   completeReclamationHandler,
		hideOrderHandler:             hideOrderHandler,
		restoreOrderHandler:          restoreOrderHandler,
		deleteOrderHandler:           deleteOrderHandler,
		setRatingHandler:             setRatingHandler,
		setResourceStatusHandler:     setResourceStatusHandler,
		claimStageHandler:            claimStageHandler,
		advanceStageHandler:          advanceStageHandler,
		recordBreakHandler:           recordBreakHandler,
		getOrderStagesHandler:        getOrderStagesHandler,
		getActiveStagesHandler:       getActiveStagesHandler,
		getClaimableStagesHandler:    getClaimableStagesHandler,
		getEligibleBreakDeptsHandler: getEligibleBreakDeptsHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id/stages", s.GetOrderStages)
	api.POST("/orders/:id/set-work", s.StartOrder)
	api.POST("/orders/:id/stop", s.StopOrder)
	api.POST("/orders/:id/complete-reclamation", s.CompleteReclamationOrder)
	api.POST("/orders/:id/hide", s.HideOrder)
	api.PATCH("/orders/:id/restore", s.RestoreOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/rating", s.SetRating)
	api.POST("/orders/:id/resources", s.SetResourceStatus)
	api.POST("/orders/:id/break", s.RecordBreak)

	api.POST("/stages/:id/claim", s.ClaimStage)
	api.POST("/stages/:id/ready", s.AdvanceStage)
	api.GET("/stages/:id/breaks", s.GetEligibleBreakDepartments)

	api.GET("/departments/:id/stages", s.GetActiveStages)
	api.GET("/users/me/stages", s.GetClaimableStages)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderIDResponse{ID: orderID.String()})
}

// StartOrder handles POST /api/v1/orders/:id/set-work - puts an order into work.
func (s *Server) StartOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StopOrder handles POST /api/v1/orders/:id/stop - pauses work on an order.
func (s *Server) StopOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStopOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.stopOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteReclamationOrder handles POST /api/v1/orders/:id/complete-reclamation.
func (s *Server) CompleteReclamationOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteReclamationOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeReclamationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HideOrder handles POST /api/v1/orders/:id/hide - soft-deletes an order.
func (s *Server) HideOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewHideOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.hideOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreOrder handles PATCH /api/v1/orders/:id/restore - brings a hidden
// order back to the status it was hidden from.
func (s *Server) RestoreOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRestoreOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - permanently removes an
// order and its stage ledger.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRating handles POST /api/v1/orders/:id/rating - rates a finished order.
func (s *Server) SetRating(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body setRatingRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRatingCommand(orderID, body.Rating)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetResourceStatus handles POST /api/v1/orders/:id/resources - records a
// material readiness check by the acting storage worker.
func (s *Server) SetResourceStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := headerUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body setResourceStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	resourceStatus, ok := resourceStatusFromString(body.Status)
	if !ok {
		return badRequest(ctx, "unknown resource status: "+body.Status)
	}

	cmd, err := commands.NewSetResourceStatusCommand(orderID, resourceStatus, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setResourceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordBreak handles POST /api/v1/orders/:id/break - attributes a defect.
func (s *Server) RecordBreak(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body recordBreakRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	departmentID, err := kernel.UUIDFromString(body.DepartmentID)
	if err != nil {
		return badRequest(ctx, "invalid department id")
	}
	breakID, err := kernel.UUIDFromString(body.BreakID)
	if err != nil {
		return badRequest(ctx, "invalid break id")
	}

	cmd, err := commands.NewRecordBreakCommand(orderID, departmentID, breakID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.recordBreakHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimStage handles POST /api/v1/stages/:id/claim - claims the active stage.
func (s *Server) ClaimStage(ctx echo.Context) error {
	stageID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := headerUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClaimStageCommand(stageID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.claimStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStage handles POST /api/v1/stages/:id/ready - finishes the claimed
// stage and reports where the pipeline moved.
func (s *Server) AdvanceStage(ctx echo.Context) error {
	stageID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	userID, err := headerUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceStageCommand(stageID, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.advanceStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := advanceStageResponse{
		OrderID:        result.OrderID.String(),
		OrderCompleted: result.OrderCompleted,
	}
	if result.NextStageID != nil {
		nextStageID := result.NextStageID.String()
		response.NextStageID = &nextStageID
	}
	if result.NextDepartmentID != nil {
		nextDepartmentID := result.NextDepartmentID.String()
		response.NextDepartmentID = &nextDepartmentID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStages handles GET /api/v1/orders/:id/stages - lists an order's
// ledger; ?active=true narrows to the active stage.
func (s *Server) GetOrderStages(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	activeOnly := ctx.QueryParam("active") == "true"
	query, err := queries.NewGetOrderStagesQuery(orderID, activeOnly)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stages, err := s.getOrderStagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]stageResponse, len(stages))
	for i, stage := range stages {
		response[i] = stageResponse{
			ID:             stage.ID.String(),
			DepartmentID:   stage.DepartmentID.String(),
			DepartmentName: stage.DepartmentName,
			InOrder:        stage.InOrder,
			IsActive:       stage.IsActive,
			UserID:         optionalString(stage.UserID),
			BreakID:        optionalString(stage.BreakID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveStages handles GET /api/v1/departments/:id/stages - a
// department's work queue.
func (s *Server) GetActiveStages(ctx echo.Context) error {
	departmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetActiveStagesQuery(departmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stages, err := s.getActiveStagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]activeStageResponse, len(stages))
	for i, stage := range stages {
		response[i] = activeStageResponse{
			StageID:        stage.StageID.String(),
			OrderID:        stage.OrderID.String(),
			InOrder:        stage.InOrder,
			OrderStatus:    stage.OrderStatus.String(),
			ResourceStatus: stage.ResourceStatus.String(),
			UserID:         optionalString(stage.UserID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClaimableStages handles GET /api/v1/users/me/stages - the stages the
// acting worker can claim.
func (s *Server) GetClaimableStages(ctx echo.Context) error {
	userID, err := headerUserID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetClaimableStagesQuery(userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	stages, err := s.getClaimableStagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]claimableStageResponse, len(stages))
	for i, stage := range stages {
		response[i] = claimableStageResponse{
			StageID:        stage.StageID.String(),
			OrderID:        stage.OrderID.String(),
			DepartmentID:   stage.DepartmentID.String(),
			DepartmentName: stage.DepartmentName,
			InOrder:        stage.InOrder,
			ResourceStatus: stage.ResourceStatus.String(),
			ClaimedBySelf:  stage.ClaimedBySelf,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetEligibleBreakDepartments handles GET /api/v1/stages/:id/breaks - the
// departments a defect found at this stage may be attributed to.
func (s *Server) GetEligibleBreakDepartments(ctx echo.Context) error {
	stageID, err := pathUUID(ctx, "id")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetEligibleBreakDepartmentsQuery(stageID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	departments, err := s.getEligibleBreakDeptsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]eligibleBreakDepartmentResponse, len(departments))
	for i, department := range departments {
		breaks := make([]breakReasonResponse, len(department.Breaks))
		for j, reason := range department.Breaks {
			breaks[j] = breakReasonResponse{
				ID:   reason.ID.String(),
				Name: reason.Name,
			}
		}
		response[i] = eligibleBreakDepartmentResponse{
			DepartmentID:   department.DepartmentID.String(),
			DepartmentName: department.DepartmentName,
			InOrder:        department.InOrder,
			Breaks:         breaks,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// headerUserID parses the acting worker's identity from the request header.
func headerUserID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(UserIDHeader + " header")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(UserIDHeader+" header", err)
	}
	return id, nil
}

// resourceStatusFromString maps the wire representation to the domain value.
func resourceStatusFromString(s string) (order.ResourceStatus, bool) {
	switch s {
	case "Enough":
		return order.ResourceEnough, true
	case "NotEnough":
		return order.ResourceNotEnough, true
	case "Null":
		return order.ResourceNull, true
	default:
		return order.ResourceUnknown, false
	}
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
