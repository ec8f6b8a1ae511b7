package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultSyncConcurrency bounds parallel status lookups during sync-all
const DefaultSyncConcurrency = 5

// CourierService creates Steadfast consignments and reconciles order
// statuses with the courier
type CourierService struct {
	queries     db.Querier
	tx          helpers.TxRunner
	client      interfaces.SteadfastClient
	concurrency int
	logger      *zap.Logger
	tracer      trace.Tracer
}

// NewCourierService creates a new courier service
func NewCourierService(queries db.Querier, tx helpers.TxRunner, client interfaces.SteadfastClient, concurrency int) *CourierService {
	if concurrency <= 0 {
		concurrency = DefaultSyncConcurrency
	}
	return &CourierService{
		queries:     queries,
		tx:          tx,
		client:      client,
		concurrency: concurrency,
		logger:      logger.Log,
		tracer:      otel.Tracer("chokka/services/courier"),
	}
}

// InvoiceFor is the invoice reference sent to the courier for an order
func InvoiceFor(orderID int64) string {
	return "INV-" + strconv.FormatInt(orderID, 10)
}

// CreateShipment creates one consignment. When the courier accepts it and
// the request names an order, the order is marked Steadfast_Posted and the
// tracking code and consignment id are stored.
func (s *CourierService) CreateShipment(ctx context.Context, p params.CreateShipmentParams) (*steadfast.CreateOrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CourierService.CreateShipment")
	defer span.End()

	if strings.TrimSpace(p.Invoice) == "" || strings.TrimSpace(p.RecipientName) == "" ||
		strings.TrimSpace(p.RecipientPhone) == "" || strings.TrimSpace(p.RecipientAddress) == "" {
		return nil, invalidf("invoice and recipient name, phone and address are required")
	}
	if p.CODAmount.IsNegative() {
		return nil, invalidf("cod amount must not be negative")
	}
	note := strings.TrimSpace(p.Note)
	if note == "" {
		note = steadfast.DefaultNote
	}

	resp, err := s.client.CreateOrder(ctx, steadfast.CreateOrderRequest{
		Invoice:          strings.TrimSpace(p.Invoice),
		RecipientName:    strings.TrimSpace(p.RecipientName),
		RecipientPhone:   helpers.NormalizePhone(p.RecipientPhone),
		RecipientAddress: strings.TrimSpace(p.RecipientAddress),
		CODAmount:        steadfast.NewAmount(p.CODAmount),
		Note:             note,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if resp.Status != 200 || resp.Consignment == nil || p.OrderID == nil {
		return resp, nil
	}

	span.SetAttributes(attribute.Int64("order.id", *p.OrderID))
	_, err = s.queries.UpdateOrderCourierInfo(ctx, db.UpdateOrderCourierInfoParams{
		Status:        constants.OrderStatusSteadfastPosted,
		TrackingCode:  helpers.StringToNullableText(resp.Consignment.TrackingCode),
		ConsignmentID: helpers.StringToNullableText(consignmentRef(resp.Consignment.ConsignmentID)),
		ID:            *p.OrderID,
	})
	if err != nil {
		s.logger.Error("Consignment created but order update failed",
			zap.Int64("order_id", *p.OrderID),
			zap.String("tracking_code", resp.Consignment.TrackingCode),
			zap.Error(err))
		return resp, nil
	}

	s.logger.Info("Order posted to Steadfast",
		zap.Int64("order_id", *p.OrderID),
		zap.String("tracking_code", resp.Consignment.TrackingCode))
	return resp, nil
}

// CreateBulkShipments sends the given orders to the courier in one request.
// Accepted orders become Unassigned and any returned tracking codes are
// stored by invoice.
func (s *CourierService) CreateBulkShipments(ctx context.Context, orderIDs []int64) (*business.BulkShipmentResult, error) {
	ctx, span := s.tracer.Start(ctx, "CourierService.CreateBulkShipments",
		trace.WithAttributes(attribute.Int("orders.requested", len(orderIDs))))
	defer span.End()

	if len(orderIDs) == 0 {
		return nil, invalidf("order_ids must not be empty")
	}

	orders, err := s.queries.ListOrdersByIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	if len(orders) != len(orderIDs) {
		s.logger.Warn("Some bulk shipment orders were not found",
			zap.Int("requested", len(orderIDs)),
			zap.Int("found", len(orders)))
	}

	items := make([]steadfast.CreateOrderRequest, 0, len(orders))
	byInvoice := make(map[string]int64, len(orders))
	for _, o := range orders {
		invoice := InvoiceFor(o.ID)
		byInvoice[invoice] = o.ID
		items = append(items, steadfast.CreateOrderRequest{
			Invoice:          invoice,
			RecipientName:    o.CustomerName,
			RecipientPhone:   o.CustomerPhone,
			RecipientAddress: o.CustomerAddress,
			CODAmount:        steadfast.NewAmount(helpers.NumericToDecimal(o.TotalPrice)),
			Note:             steadfast.BulkOrderNote,
		})
	}

	resp, err := s.client.CreateBulkOrders(ctx, items)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !resp.Accepted {
		msg := resp.Message
		if msg == "" {
			msg = "bulk order not accepted"
		}
		return nil, &steadfast.APIError{StatusCode: resp.Status, Message: msg}
	}

	trackingCodes := make(map[int64]string)
	consignments := make(map[int64]string)
	for _, r := range resp.Results {
		id, ok := byInvoice[r.Invoice]
		if !ok {
			continue
		}
		if r.TrackingCode != "" {
			trackingCodes[id] = r.TrackingCode
		}
		if r.ConsignmentID != 0 {
			consignments[id] = consignmentRef(r.ConsignmentID)
		}
	}

	updated := make([]int64, 0, len(orders))
	err = s.tx.RunInTx(ctx, func(q db.Querier) error {
		updated = updated[:0]
		for _, o := range orders {
			_, err := q.UpdateOrderCourierInfo(ctx, db.UpdateOrderCourierInfoParams{
				Status:        constants.OrderStatusUnassigned,
				TrackingCode:  helpers.StringToNullableText(trackingCodes[o.ID]),
				ConsignmentID: helpers.StringToNullableText(consignments[o.ID]),
				ID:            o.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to update order %d: %w", o.ID, err)
			}
			updated = append(updated, o.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bulk shipment accepted",
		zap.Int("orders", len(updated)),
		zap.Int("tracking_codes", len(trackingCodes)))

	return &business.BulkShipmentResult{
		OrderIDs:      updated,
		TrackingCodes: trackingCodes,
		Message:       resp.Message,
	}, nil
}

// GetDeliveryStatus returns the courier's raw delivery_status
func (s *CourierService) GetDeliveryStatus(ctx context.Context, trackingCode string) (string, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return "", invalidf("tracking code is required")
	}
	resp, err := s.client.GetStatusByTrackingCode(ctx, trackingCode)
	if err != nil {
		return "", err
	}
	return resp.DeliveryStatus, nil
}

// SyncOrder reconciles one order with the courier
func (s *CourierService) SyncOrder(ctx context.Context, orderID int64) (*business.SyncResult, error) {
	order, err := s.queries.GetOrder(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound, "failed to get order")
	}
	if !order.TrackingCode.Valid || strings.TrimSpace(order.TrackingCode.String) == "" {
		return nil, ErrMissingTracking
	}
	return s.syncOne(ctx, order)
}

func (s *CourierService) syncOne(ctx context.Context, order db.Order) (*business.SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "CourierService.syncOne",
		trace.WithAttributes(attribute.Int64("order.id", order.ID)))
	defer span.End()

	resp, err := s.client.GetStatusByTrackingCode(ctx, order.TrackingCode.String)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	newStatus, changed := MapCourierStatus(resp.DeliveryStatus, order.Status)
	result := &business.SyncResult{
		OrderID:        order.ID,
		OldStatus:      order.Status,
		NewStatus:      newStatus,
		DeliveryStatus: resp.DeliveryStatus,
	}
	if !changed {
		return result, nil
	}

	if _, err := s.queries.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: order.ID, Status: newStatus}); err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", order.ID, err)
	}
	result.Updated = true

	s.logger.Info("Order status synced from courier",
		zap.Int64("order_id", order.ID),
		zap.String("old_status", order.Status),
		zap.String("new_status", newStatus),
		zap.String("delivery_status", resp.DeliveryStatus))
	return result, nil
}

// SyncAll reconciles every order that has a tracking code and is not yet
// delivered or cancelled. Lookups run concurrently; a failing order is
// reported and does not stop the others.
func (s *CourierService) SyncAll(ctx context.Context) (*business.SyncSummary, error) {
	ctx, span := s.tracer.Start(ctx, "CourierService.SyncAll")
	defer span.End()

	orders, err := s.queries.ListOrdersForCourierSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for sync: %w", err)
	}

	summary := &business.SyncSummary{Errors: []business.SyncError{}}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, order := range orders {
		if IsTerminalStatus(order.Status) || !order.TrackingCode.Valid || order.TrackingCode.String == "" {
			continue
		}
		summary.Total++
		order := order
		g.Go(func() error {
			result, err := s.syncOne(ctx, order)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Errors = append(summary.Errors, business.SyncError{OrderID: order.ID, Error: err.Error()})
				return nil
			}
			if result.Updated {
				summary.Updated++
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(summary.Errors, func(i, j int) bool { return summary.Errors[i].OrderID < summary.Errors[j].OrderID })

	span.SetAttributes(
		attribute.Int("sync.total", summary.Total),
		attribute.Int("sync.updated", summary.Updated),
		attribute.Int("sync.errors", len(summary.Errors)))

	s.logger.Info("Courier sync finished",
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("errors", len(summary.Errors)))
	return summary, nil
}

func consignmentRef(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
