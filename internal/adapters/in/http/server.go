// Package http exposes the order workflow over a REST API.
// Customer endpoints are identified by the X-Customer-Id header; staff
// endpoints require the shared X-Staff-Key and attribute transitions to the
// user named in X-Staff-User.
package http

import (
	"errors"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultActor is recorded when a staff request does not name its user.
const defaultActor = "system"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	transitionHandler  commands.TransitionOrderCommandHandler

	// Query handlers
	getOrderStatusHandler  queries.GetOrderStatusQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler

	staffKey string
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The staffKey guards the staff-only endpoints.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	staffKey string,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionHandler:      transitionHandler,
		getOrderStatusHandler:  getOrderStatusHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		staffKey:               staffKey,
	}
}

// RegisterRoutes wires the API endpoints onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id/status", s.GetOrderStatus)

	// Payment confirmation arrives from the payment gateway callback, which
	// carries no staff key.
	api.POST("/orders/:id/mark-paid", s.transitionTo(order.Preparing))

	staff := api.Group("", s.requireStaffKey)
	staff.GET("/orders/active", s.GetActiveOrders)
	staff.POST("/orders/:id/transition", s.TransitionOrder)
	staff.POST("/orders/:id/mark-ready", s.transitionTo(order.Ready))
	staff.POST("/orders/:id/start-shipping", s.transitionTo(order.ShippingPreparation))
	staff.POST("/orders/:id/mark-transit", s.transitionTo(order.InTransit))
}

// requireStaffKey rejects staff endpoint requests without the shared key.
func (s *Server) requireStaffKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if ctx.Request().Header.Get("X-Staff-Key") != s.staffKey {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Success: false,
				Error:   "staff key is missing or invalid",
			})
		}
		return next(ctx)
	}
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID     string          `json:"customer_id"`
	DeliveryMethod string          `json:"delivery_method"`
	Address        *AddressRequest `json:"address,omitempty"`
}

// AddressRequest carries the shipping address for postal orders.
type AddressRequest struct {
	Text       string `json:"text"`
	PostalCode string `json:"postal_code"`
}

// CreateOrderResponse is returned after a successful order registration.
type CreateOrderResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
}

// TransitionRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionRequest struct {
	Target string `json:"target"`
}

// TransitionResponse reports the outcome of an applied transition.
type TransitionResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	StatusColor   string `json:"status_color"`
	Message       string `json:"message"`
}

// StatusResponse is returned by the customer status poll.
type StatusResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	StatusDisplay string `json:"status_display"`
	StatusColor   string `json:"status_color"`
	Terminal      bool   `json:"terminal"`
}

// ActiveOrderResponse is one row of the staff dashboard listing.
type ActiveOrderResponse struct {
	OrderID        string `json:"order_id"`
	CustomerID     string `json:"customer_id"`
	DeliveryMethod string `json:"delivery_method"`
	Status         string `json:"status"`
	StatusDisplay  string `json:"status_display"`
	StatusColor    string `json:"status_color"`
}

// ErrorResponse is the uniform error body of all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CreateOrder handles POST /api/v1/orders - registers a new order at checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "customer_id is not a valid UUID")
	}

	method, err := order.DeliveryMethodFromString(req.DeliveryMethod)
	if err != nil {
		return badRequest(ctx, "delivery_method must be \"pickup\" or \"postal\"")
	}

	var address *kernel.Address
	if req.Address != nil {
		addr, addrErr := kernel.NewAddress(req.Address.Text, req.Address.PostalCode)
		if addrErr != nil {
			return badRequest(ctx, "invalid address: "+addrErr.Error())
		}
		address = &addr
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, method, address)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success:       true,
		OrderID:       orderID.String(),
		Status:        order.PendingPayment.String(),
		StatusDisplay: order.PendingPayment.Display(),
	})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - moves an order
// to the target status named in the request body.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "target is not a valid status")
	}

	return s.applyTransition(ctx, target)
}

// transitionTo builds the handler for a fixed-target convenience endpoint.
func (s *Server) transitionTo(target order.Status) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return s.applyTransition(ctx, target)
	}
}

func (s *Server) applyTransition(ctx echo.Context, target order.Status) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "order id is not a valid UUID")
	}

	actor := ctx.Request().Header.Get("X-Staff-User")
	if actor == "" {
		actor = defaultActor
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return badRequest(ctx, "invalid transition request: "+err.Error())
	}

	changes, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	final := changes[len(changes)-1].To
	return ctx.JSON(http.StatusOK, TransitionResponse{
		Success:       true,
		Status:        final.String(),
		StatusDisplay: final.Display(),
		StatusColor:   final.Color(),
		Message:       final.Display(),
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id/status - the customer status
// poll. The caller must present the owning customer's ID.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "order id is not a valid UUID")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, "invalid status request: "+err.Error())
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	// Orders are only visible to their owner
	if ctx.Request().Header.Get("X-Customer-Id") != result.CustomerID.String() {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Success: false,
			Error:   "order belongs to another customer",
		})
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		Success:       true,
		OrderID:       result.OrderID.String(),
		Status:        result.Status.String(),
		StatusDisplay: result.StatusDisplay,
		StatusColor:   result.StatusColor,
		Terminal:      result.Terminal,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - the staff dashboard
// listing of orders that have not reached a terminal status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:        o.OrderID.String(),
			CustomerID:     o.CustomerID.String(),
			DeliveryMethod: o.DeliveryMethod.String(),
			Status:         o.Status.String(),
			StatusDisplay:  o.StatusDisplay,
			StatusColor:    o.StatusColor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeError maps application errors onto HTTP status codes.
// Invalid transitions answer 409 with the localized description so staff UIs
// can show it verbatim.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Success: false,
			Error:   transitionErr.Display(),
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Success: false,
			Error:   "order not found",
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error:   "internal error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
