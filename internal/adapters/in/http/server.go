// Package http exposes the order pipeline over an echo server: the
// storefront endpoints (create order, quote delivery), the admin board
// endpoints (board, status transitions, cancel, items, pause flag) and the
// long-poll event feed both UIs use to refresh.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/application/usecases/queries"
	"pizzaria/internal/core/domain/model/event"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	// defaultPollTimeout is how long GET /api/events holds a request open
	// waiting for new entries before returning an empty batch.
	defaultPollTimeout = 30 * time.Second

	// defaultPollInterval is the sleep between event log checks while a
	// long-poll request is held open.
	defaultPollInterval = 300 * time.Millisecond
)

// Server wires the HTTP endpoints to the command and query handlers.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	changeStatusHandler  commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	replaceItemsHandler  commands.ReplaceOrderItemsCommandHandler
	setPauseHandler      commands.SetOrdersPauseCommandHandler
	quoteDeliveryHandler commands.QuoteDeliveryCommandHandler

	boardOrdersHandler queries.GetBoardOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler

	settings ports.SettingsStore
	eventLog ports.EventLog
	logger   *slog.Logger

	pollTimeout  time.Duration
	pollInterval time.Duration
}

// NewServer creates the HTTP server with the required handlers and ports.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	replaceItemsHandler commands.ReplaceOrderItemsCommandHandler,
	setPauseHandler commands.SetOrdersPauseCommandHandler,
	quoteDeliveryHandler commands.QuoteDeliveryCommandHandler,
	boardOrdersHandler queries.GetBoardOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	settings ports.SettingsStore,
	eventLog ports.EventLog,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		changeStatusHandler:  changeStatusHandler,
		cancelOrderHandler:   cancelOrderHandler,
		replaceItemsHandler:  replaceItemsHandler,
		setPauseHandler:      setPauseHandler,
		quoteDeliveryHandler: quoteDeliveryHandler,
		boardOrdersHandler:   boardOrdersHandler,
		getOrderHandler:      getOrderHandler,
		settings:             settings,
		eventLog:             eventLog,
		logger:               logger.With("component", "http_server"),
		pollTimeout:          defaultPollTimeout,
		pollInterval:         defaultPollInterval,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetBoardOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PUT("/orders/:id/items", s.ReplaceOrderItems)

	api.POST("/delivery/quote", s.QuoteDelivery)

	api.GET("/events", s.PollEvents)

	api.GET("/settings/pause", s.GetOrdersPause)
	api.PUT("/settings/pause", s.SetOrdersPause)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		order.Customer{
			Name:         req.CustomerName,
			Phone:        req.CustomerPhone,
			Address:      req.CustomerAddress,
			Neighborhood: req.CustomerNeighborhood,
			Reference:    req.CustomerReference,
		},
		order.Type(req.OrderType),
		req.PaymentMethod,
		req.PaymentValue,
		itemInputsFromRequest(req.Items),
		req.DeliveryFee,
		req.Notes,
		req.EstimatedDeliveryTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		Success: true,
		Data: orderCreatedData{
			OrderID:     created.ID().String(),
			OrderNumber: created.Number(),
			TotalAmount: created.TotalAmount(),
		},
	})
}

// GetBoardOrders handles GET /api/orders.
func (s *Server) GetBoardOrders(ctx echo.Context) error {
	orders, err := s.boardOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetBoardOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderResponseFromQuery(resp))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req cancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(cancelled))
}

// ReplaceOrderItems handles PUT /api/orders/:id/items.
func (s *Server) ReplaceOrderItems(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req replaceItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReplaceOrderItemsCommand(id, itemInputsFromRequest(req.Items))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.replaceItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// QuoteDelivery handles POST /api/delivery/quote.
func (s *Server) QuoteDelivery(ctx echo.Context) error {
	var req quoteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd := commands.NewQuoteDeliveryCommand(
		req.Zip, req.Street, req.Number, req.Neighborhood, req.City)

	result, err := s.quoteDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteResponse{
		Success:    true,
		Cached:     result.Cached,
		DistanceKm: result.DistanceKm(),
		Fee:        result.Fee,
	})
}

// GetOrdersPause handles GET /api/settings/pause.
func (s *Server) GetOrdersPause(ctx echo.Context) error {
	flag, err := s.settings.GetPauseFlag(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pauseResponse{Paused: flag.Paused, Message: flag.Message})
}

// SetOrdersPause handles PUT /api/settings/pause.
func (s *Server) SetOrdersPause(ctx echo.Context) error {
	var req pauseRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	flag, err := s.setPauseHandler.Handle(
		ctx.Request().Context(), commands.NewSetOrdersPauseCommand(req.Paused, req.Message))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pauseResponse{Paused: flag.Paused, Message: flag.Message})
}

type eventsResponse struct {
	Events     []event.Entry `json:"events"`
	NextOffset int64         `json:"next_offset"`
}

// PollEvents handles GET /api/events?offset=N with long-polling: the
// request is held open until the log grows past the offset or the poll
// timeout elapses. The server keeps no per-client state; the offset in the
// response is the client's only cursor.
func (s *Server) PollEvents(ctx echo.Context) error {
	offset := int64(0)
	if raw := ctx.QueryParam("offset"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return respondBadRequest(ctx, "invalid offset")
		}
		offset = parsed
	}

	requestCtx := ctx.Request().Context()
	deadline := time.NewTimer(s.pollTimeout)
	defer deadline.Stop()

	for {
		entries, next, err := s.eventLog.ReadSince(requestCtx, offset)
		if err != nil {
			if requestCtx.Err() != nil {
				// Client went away mid-poll; nothing to answer.
				return nil
			}
			return respondError(ctx, err)
		}
		if len(entries) > 0 {
			return ctx.JSON(http.StatusOK, eventsResponse{Events: entries, NextOffset: next})
		}
		// A past-EOF offset resyncs immediately instead of idling for the
		// whole poll window on a cursor that can never match.
		if next != offset {
			return ctx.JSON(http.StatusOK, eventsResponse{Events: []event.Entry{}, NextOffset: next})
		}

		select {
		case <-requestCtx.Done():
			return nil
		case <-deadline.C:
			return ctx.JSON(http.StatusOK, eventsResponse{Events: []event.Entry{}, NextOffset: offset})
		case <-time.After(s.pollInterval):
		}
	}
}
