// Package servers provides primitives to interact with the openapi HTTP API.
//
// The types and the echo server wrapper follow the oapi-codegen echo-server
// layout and are maintained by hand against openapi.yaml; swagger_test.go
// fails when the two drift apart.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for GetWaitingOrdersParamsRole.
const (
	GetWaitingOrdersParamsRoleCOURIER GetWaitingOrdersParamsRole = "COURIER"
	GetWaitingOrdersParamsRoleKITCHEN GetWaitingOrdersParamsRole = "KITCHEN"
	GetWaitingOrdersParamsRoleCourier GetWaitingOrdersParamsRole = "courier"
	GetWaitingOrdersParamsRoleKitchen GetWaitingOrdersParamsRole = "kitchen"
)

// ClosureState defines model for ClosureState.
type ClosureState struct {
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	ActivatedBy *int64     `json:"activatedBy,omitempty"`
	Active      bool       `json:"active"`
	InForce     bool       `json:"inForce"`
	Message     *string    `json:"message,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	Until       *time.Time `json:"until,omitempty"`
}

// ConfirmPayment defines model for ConfirmPayment.
type ConfirmPayment struct {
	PaymentId *string `json:"paymentId,omitempty"`
}

// EmergencyClosure defines model for EmergencyClosure.
type EmergencyClosure struct {
	Message string     `json:"message"`
	Reason  *string    `json:"reason,omitempty"`
	Until   *time.Time `json:"until,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code       int        `json:"code"`
	Message    string     `json:"message"`
	NextOpenAt *time.Time `json:"nextOpenAt,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
}

// Estimate defines model for Estimate.
type Estimate struct {
	EstimatedMinutes int `json:"estimatedMinutes"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId   *int64    `json:"actorId,omitempty"`
	Note      *string   `json:"note,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Limits defines model for Limits.
type Limits struct {
	MaxActiveOrders  int `json:"maxActiveOrders"`
	MaxCartItems     int `json:"maxCartItems"`
	MaxOrdersPerHour int `json:"maxOrdersPerHour"`
}

// Money defines model for Money.
type Money = string

// NewOrder defines model for NewOrder.
type NewOrder struct {
	DemoScenario *string     `json:"demoScenario,omitempty"`
	IsDemo       *bool       `json:"isDemo,omitempty"`
	Items        []OrderItem `json:"items"`
	PaymentId    *string     `json:"paymentId,omitempty"`
	TotalAmount  Money       `json:"totalAmount"`
}

// OperatingHours defines model for OperatingHours.
type OperatingHours struct {
	LastOrderTime string `json:"lastOrderTime"`
	OpenTime      string `json:"openTime"`
}

// Order defines model for Order.
type Order struct {
	CourierId                *int64         `json:"courierId,omitempty"`
	CreatedAt                time.Time      `json:"createdAt"`
	CustomerId               *int64         `json:"customerId,omitempty"`
	DeliveryEstimatedMinutes *int           `json:"deliveryEstimatedMinutes,omitempty"`
	DeliveryStartedAt        *time.Time     `json:"deliveryStartedAt,omitempty"`
	History                  []HistoryEntry `json:"history"`
	Id                       int64          `json:"id"`
	IsDemo                   bool           `json:"isDemo"`
	Items                    []OrderItem    `json:"items"`
	KitchenId                *int64         `json:"kitchenId,omitempty"`
	PaymentId                *string        `json:"paymentId,omitempty"`
	PrepEstimatedMinutes     *int           `json:"prepEstimatedMinutes,omitempty"`
	PrepStartedAt            *time.Time     `json:"prepStartedAt,omitempty"`
	RefundId                 *string        `json:"refundId,omitempty"`
	RefundedAmount           Money          `json:"refundedAmount"`
	Status                   string         `json:"status"`
	StatusChangedAt          time.Time      `json:"statusChangedAt"`
	TotalAmount              Money          `json:"totalAmount"`
	UpdatedAt                time.Time      `json:"updatedAt"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id int64 `json:"id"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
}

// OverdueOrder defines model for OverdueOrder.
type OverdueOrder struct {
	AssigneeId       *int64    `json:"assigneeId,omitempty"`
	DueAt            time.Time `json:"dueAt"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	OrderId          int64     `json:"orderId"`
	OverdueMinutes   int       `json:"overdueMinutes"`
	StartedAt        time.Time `json:"startedAt"`
	Status           string    `json:"status"`
}

// Reason defines model for Reason.
type Reason struct {
	Reason *string `json:"reason,omitempty"`
}

// Refund defines model for Refund.
type Refund struct {
	Amount *RefundAmount `json:"amount,omitempty"`
	Reason *string       `json:"reason,omitempty"`
}

// RefundAmount Amount to refund. Zero or negative amounts are rejected by the refund rules.
type RefundAmount = string

// Settings defines model for Settings.
type Settings struct {
	EmergencyClosure ClosureState `json:"emergencyClosure"`
	LastOrderTime    string       `json:"lastOrderTime"`
	Limits           Limits       `json:"limits"`
	OpenTime         string       `json:"openTime"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	UpdatedBy        *int64       `json:"updatedBy,omitempty"`
}

// WaitingOrder defines model for WaitingOrder.
type WaitingOrder struct {
	OrderId       int64     `json:"orderId"`
	Status        string    `json:"status"`
	TotalAmount   Money     `json:"totalAmount"`
	WaitedMinutes int       `json:"waitedMinutes"`
	WaitingSince  time.Time `json:"waitingSince"`
}

// OrderId defines model for OrderId.
type OrderId = int64

// GetWaitingOrdersParams defines parameters for GetWaitingOrders.
type GetWaitingOrdersParams struct {
	Role           GetWaitingOrdersParamsRole `form:"role" json:"role"`
	MinWaitMinutes *int                       `form:"min_wait_minutes,omitempty" json:"min_wait_minutes,omitempty"`
}

// GetWaitingOrdersParamsRole defines parameters for GetWaitingOrders.
type GetWaitingOrdersParamsRole string

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AcceptDeliveryJSONRequestBody defines body for AcceptDelivery for application/json ContentType.
type AcceptDeliveryJSONRequestBody = Estimate

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = Reason

// ConfirmOrderJSONRequestBody defines body for ConfirmOrder for application/json ContentType.
type ConfirmOrderJSONRequestBody = ConfirmPayment

// UpdateDeliveryTimeJSONRequestBody defines body for UpdateDeliveryTime for application/json ContentType.
type UpdateDeliveryTimeJSONRequestBody = Estimate

// UpdatePrepTimeJSONRequestBody defines body for UpdatePrepTime for application/json ContentType.
type UpdatePrepTimeJSONRequestBody = Estimate

// RefundOrderJSONRequestBody defines body for RefundOrder for application/json ContentType.
type RefundOrderJSONRequestBody = Refund

// RemakeOrderJSONRequestBody defines body for RemakeOrder for application/json ContentType.
type RemakeOrderJSONRequestBody = Reason

// StartPreparingJSONRequestBody defines body for StartPreparing for application/json ContentType.
type StartPreparingJSONRequestBody = Estimate

// ActivateEmergencyClosureJSONRequestBody defines body for ActivateEmergencyClosure for application/json ContentType.
type ActivateEmergencyClosureJSONRequestBody = EmergencyClosure

// UpdateLimitsJSONRequestBody defines body for UpdateLimits for application/json ContentType.
type UpdateLimitsJSONRequestBody = Limits

// UpdateOperatingHoursJSONRequestBody defines body for UpdateOperatingHours for application/json ContentType.
type UpdateOperatingHoursJSONRequestBody = OperatingHours

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/v1/alerts/overdue)
	GetOverdueOrders(ctx echo.Context) error

	// (GET /api/v1/alerts/waiting)
	GetWaitingOrders(ctx echo.Context, params GetWaitingOrdersParams) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/accept-delivery)
	AcceptDelivery(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/delivered)
	MarkDelivered(ctx echo.Context, orderId OrderId) error

	// (PATCH /api/v1/orders/{orderId}/delivery-time)
	UpdateDeliveryTime(ctx echo.Context, orderId OrderId) error

	// (PATCH /api/v1/orders/{orderId}/prep-time)
	UpdatePrepTime(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/ready)
	MarkReady(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/refund)
	RefundOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/remake)
	RemakeOrder(ctx echo.Context, orderId OrderId) error

	// (POST /api/v1/orders/{orderId}/start-preparing)
	StartPreparing(ctx echo.Context, orderId OrderId) error

	// (GET /api/v1/settings)
	GetSettings(ctx echo.Context) error

	// (DELETE /api/v1/settings/emergency-closure)
	DeactivateEmergencyClosure(ctx echo.Context) error

	// (POST /api/v1/settings/emergency-closure)
	ActivateEmergencyClosure(ctx echo.Context) error

	// (PUT /api/v1/settings/limits)
	UpdateLimits(ctx echo.Context) error

	// (PUT /api/v1/settings/operating-hours)
	UpdateOperatingHours(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetOverdueOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOverdueOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOverdueOrders(ctx)
	return err
}

// GetWaitingOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetWaitingOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetWaitingOrdersParams
	// ------------- Required query parameter "role" -------------

	err = runtime.BindQueryParameter("form", true, true, "role", ctx.QueryParams(), &params.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// ------------- Optional query parameter "min_wait_minutes" -------------

	err = runtime.BindQueryParameter("form", true, false, "min_wait_minutes", ctx.QueryParams(), &params.MinWaitMinutes)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter min_wait_minutes: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWaitingOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// bindOrderId binds the "orderId" path parameter shared by the order routes.
func bindOrderId(ctx echo.Context) (OrderId, error) {
	var orderId OrderId

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AcceptDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptDelivery(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AcceptDelivery(ctx, orderId)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId)
	return err
}

// ConfirmOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfirmOrder(ctx, orderId)
	return err
}

// MarkDelivered converts echo context to params.
func (w *ServerInterfaceWrapper) MarkDelivered(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkDelivered(ctx, orderId)
	return err
}

// UpdateDeliveryTime converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateDeliveryTime(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateDeliveryTime(ctx, orderId)
	return err
}

// UpdatePrepTime converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePrepTime(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdatePrepTime(ctx, orderId)
	return err
}

// MarkReady converts echo context to params.
func (w *ServerInterfaceWrapper) MarkReady(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.MarkReady(ctx, orderId)
	return err
}

// RefundOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RefundOrder(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RefundOrder(ctx, orderId)
	return err
}

// RemakeOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RemakeOrder(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemakeOrder(ctx, orderId)
	return err
}

// StartPreparing converts echo context to params.
func (w *ServerInterfaceWrapper) StartPreparing(ctx echo.Context) error {
	// ------------- Path parameter "orderId" -------------
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StartPreparing(ctx, orderId)
	return err
}

// GetSettings converts echo context to params.
func (w *ServerInterfaceWrapper) GetSettings(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSettings(ctx)
	return err
}

// DeactivateEmergencyClosure converts echo context to params.
func (w *ServerInterfaceWrapper) DeactivateEmergencyClosure(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeactivateEmergencyClosure(ctx)
	return err
}

// ActivateEmergencyClosure converts echo context to params.
func (w *ServerInterfaceWrapper) ActivateEmergencyClosure(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ActivateEmergencyClosure(ctx)
	return err
}

// UpdateLimits converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateLimits(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateLimits(ctx)
	return err
}

// UpdateOperatingHours converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOperatingHours(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOperatingHours(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/alerts/overdue", wrapper.GetOverdueOrders)
	router.GET(baseURL+"/api/v1/alerts/waiting", wrapper.GetWaitingOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/accept-delivery", wrapper.AcceptDelivery)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/confirm", wrapper.ConfirmOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/delivered", wrapper.MarkDelivered)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/delivery-time", wrapper.UpdateDeliveryTime)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/prep-time", wrapper.UpdatePrepTime)
	router.POST(baseURL+"/api/v1/orders/:orderId/ready", wrapper.MarkReady)
	router.POST(baseURL+"/api/v1/orders/:orderId/refund", wrapper.RefundOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/remake", wrapper.RemakeOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/start-preparing", wrapper.StartPreparing)
	router.GET(baseURL+"/api/v1/settings", wrapper.GetSettings)
	router.DELETE(baseURL+"/api/v1/settings/emergency-closure", wrapper.DeactivateEmergencyClosure)
	router.POST(baseURL+"/api/v1/settings/emergency-closure", wrapper.ActivateEmergencyClosure)
	router.PUT(baseURL+"/api/v1/settings/limits", wrapper.UpdateLimits)
	router.PUT(baseURL+"/api/v1/settings/operating-hours", wrapper.UpdateOperatingHours)

}
