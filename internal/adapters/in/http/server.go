package http

import (
	"context"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CommandHandler is satisfied by every command handler without a result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by query handlers and by commands that return a value.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder        QueryHandler[commands.CreateOrderCommand, uint64]
	ConfirmOrder       CommandHandler[commands.ConfirmOrderCommand]
	StartPreparing     CommandHandler[commands.StartPreparingCommand]
	MarkReady          CommandHandler[commands.MarkReadyCommand]
	RemakeOrder        CommandHandler[commands.RemakeOrderCommand]
	UpdatePrepTime     CommandHandler[commands.UpdatePrepTimeCommand]
	AcceptDelivery     CommandHandler[commands.AcceptDeliveryCommand]
	MarkDelivered      CommandHandler[commands.MarkDeliveredCommand]
	UpdateDeliveryTime CommandHandler[commands.UpdateDeliveryTimeCommand]
	CancelOrder        CommandHandler[commands.CancelOrderCommand]
	RefundOrder        CommandHandler[commands.RefundOrderCommand]

	UpdateLimits         CommandHandler[commands.UpdateLimitsCommand]
	UpdateOperatingHours CommandHandler[commands.UpdateOperatingHoursCommand]
	ActivateClosure      CommandHandler[commands.ActivateClosureCommand]
	DeactivateClosure    CommandHandler[commands.DeactivateClosureCommand]

	GetOrder         QueryHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	GetWaitingOrders QueryHandler[queries.GetWaitingOrdersQuery, []queries.GetWaitingOrdersQueryResponse]
	GetOverdueOrders QueryHandler[queries.GetOverdueOrdersQuery, []queries.GetOverdueOrdersQueryResponse]
	GetSettings      QueryHandler[queries.GetSettingsQuery, queries.GetSettingsQueryResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// CreateOrder handles POST /api/v1/orders - admits and creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	draft, err := draftFromRequest(body, ctx.RealIP())
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(ctx), draft)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: int64(id)})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(actorFrom(ctx), uint64(orderId))
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm. Only the
// internal token resolves to the system actor allowed to call it.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ConfirmOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(uint64(orderId), actorFrom(ctx), deref(body.PaymentId))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd))
}

// StartPreparing handles POST /api/v1/orders/{orderId}/start-preparing.
func (s *Server) StartPreparing(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.StartPreparingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartPreparingCommand(uint64(orderId), actorFrom(ctx), body.EstimatedMinutes)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.StartPreparing.Handle(ctx.Request().Context(), cmd))
}

// MarkReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkReady(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewMarkReadyCommand(uint64(orderId), actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.MarkReady.Handle(ctx.Request().Context(), cmd))
}

// RemakeOrder handles POST /api/v1/orders/{orderId}/remake.
func (s *Server) RemakeOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RemakeOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemakeOrderCommand(uint64(orderId), actorFrom(ctx), deref(body.Reason))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.RemakeOrder.Handle(ctx.Request().Context(), cmd))
}

// UpdatePrepTime handles PATCH /api/v1/orders/{orderId}/prep-time.
func (s *Server) UpdatePrepTime(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdatePrepTimeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePrepTimeCommand(uint64(orderId), actorFrom(ctx), body.EstimatedMinutes)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.UpdatePrepTime.Handle(ctx.Request().Context(), cmd))
}

// AcceptDelivery handles POST /api/v1/orders/{orderId}/accept-delivery.
func (s *Server) AcceptDelivery(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AcceptDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(uint64(orderId), actorFrom(ctx), body.EstimatedMinutes)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.AcceptDelivery.Handle(ctx.Request().Context(), cmd))
}

// MarkDelivered handles POST /api/v1/orders/{orderId}/delivered.
func (s *Server) MarkDelivered(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewMarkDeliveredCommand(uint64(orderId), actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.MarkDelivered.Handle(ctx.Request().Context(), cmd))
}

// UpdateDeliveryTime handles PATCH /api/v1/orders/{orderId}/delivery-time.
func (s *Server) UpdateDeliveryTime(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateDeliveryTimeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryTimeCommand(uint64(orderId), actorFrom(ctx), body.EstimatedMinutes)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.UpdateDeliveryTime.Handle(ctx.Request().Context(), cmd))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(uint64(orderId), actorFrom(ctx), deref(body.Reason))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

// RefundOrder handles POST /api/v1/orders/{orderId}/refund. Without an
// amount the remaining refundable balance is refunded.
func (s *Server) RefundOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RefundOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := refundAmount(body.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRefundOrderCommand(uint64(orderId), actorFrom(ctx), amount, deref(body.Reason))
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.RefundOrder.Handle(ctx.Request().Context(), cmd))
}

// GetWaitingOrders handles GET /api/v1/alerts/waiting.
func (s *Server) GetWaitingOrders(ctx echo.Context, params servers.GetWaitingOrdersParams) error {
	role, err := kernel.ParseRole(string(params.Role))
	if err != nil {
		return writeError(ctx, err)
	}
	minWait := 0
	if params.MinWaitMinutes != nil {
		minWait = *params.MinWaitMinutes
	}

	query, err := queries.NewGetWaitingOrdersQuery(actorFrom(ctx), role, minWait)
	if err != nil {
		return writeError(ctx, err)
	}

	waiting, err := s.h.GetWaitingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.WaitingOrder, len(waiting))
	for i, w := range waiting {
		response[i] = servers.WaitingOrder{
			OrderId:       int64(w.OrderID),
			Status:        w.Status,
			WaitingSince:  w.WaitingSince,
			WaitedMinutes: w.WaitedMinutes,
			TotalAmount:   w.TotalAmount.String(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueOrders handles GET /api/v1/alerts/overdue.
func (s *Server) GetOverdueOrders(ctx echo.Context) error {
	overdue, err := s.h.GetOverdueOrders.Handle(ctx.Request().Context(), queries.NewGetOverdueOrdersQuery(actorFrom(ctx)))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.OverdueOrder, len(overdue))
	for i, o := range overdue {
		response[i] = servers.OverdueOrder{
			OrderId:          int64(o.OrderID),
			Status:           o.Status,
			AssigneeId:       toInt64(o.AssigneeID),
			StartedAt:        o.StartedAt,
			EstimatedMinutes: o.EstimatedMinutes,
			DueAt:            o.DueAt,
			OverdueMinutes:   o.OverdueMinutes,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	current, err := s.h.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery(actorFrom(ctx)))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, settingsResponse(current))
}

// UpdateLimits handles PUT /api/v1/settings/limits.
func (s *Server) UpdateLimits(ctx echo.Context) error {
	var body servers.UpdateLimitsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateLimitsCommand(actorFrom(ctx), settings.Limits{
		MaxCartItems:     body.MaxCartItems,
		MaxOrdersPerHour: body.MaxOrdersPerHour,
		MaxActiveOrders:  body.MaxActiveOrders,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.UpdateLimits.Handle(ctx.Request().Context(), cmd))
}

// UpdateOperatingHours handles PUT /api/v1/settings/operating-hours.
func (s *Server) UpdateOperatingHours(ctx echo.Context) error {
	var body servers.UpdateOperatingHoursJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOperatingHoursCommand(actorFrom(ctx), body.OpenTime, body.LastOrderTime)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.UpdateOperatingHours.Handle(ctx.Request().Context(), cmd))
}

// ActivateEmergencyClosure handles POST /api/v1/settings/emergency-closure.
func (s *Server) ActivateEmergencyClosure(ctx echo.Context) error {
	var body servers.ActivateEmergencyClosureJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewActivateClosureCommand(actorFrom(ctx), deref(body.Reason), body.Message, body.Until)
	if err != nil {
		return writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.ActivateClosure.Handle(ctx.Request().Context(), cmd))
}

// DeactivateEmergencyClosure handles DELETE /api/v1/settings/emergency-closure.
func (s *Server) DeactivateEmergencyClosure(ctx echo.Context) error {
	cmd := commands.NewDeactivateClosureCommand(actorFrom(ctx))
	return s.noContent(ctx, s.h.DeactivateClosure.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) noContent(ctx echo.Context, err error) error {
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func draftFromRequest(body servers.NewOrder, clientIP string) (order.Draft, error) {
	items := make([]order.Item, 0, len(body.Items))
	for _, it := range body.Items {
		price, err := kernel.ParseMoney(it.UnitPrice)
		if err != nil {
			return order.Draft{}, err
		}
		item, err := order.NewItem(it.Name, it.Quantity, price)
		if err != nil {
			return order.Draft{}, err
		}
		items = append(items, item)
	}

	total, err := kernel.ParseMoney(body.TotalAmount)
	if err != nil {
		return order.Draft{}, err
	}

	return order.Draft{
		Items:        items,
		TotalAmount:  total,
		PaymentID:    deref(body.PaymentId),
		ClientIP:     clientIP,
		IsDemo:       body.IsDemo != nil && *body.IsDemo,
		DemoScenario: deref(body.DemoScenario),
	}, nil
}
