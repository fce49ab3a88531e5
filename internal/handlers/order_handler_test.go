package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant_manager/internal/models"
	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// fakeOrderService implements services.OrderService in memory with the
// same sentinel errors the real service returns.
type fakeOrderService struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderService() *fakeOrderService {
	return &fakeOrderService{orders: make(map[uint]*models.Order), nextID: 1}
}

func (f *fakeOrderService) CreateOrder(input *services.CreateOrderInput) (*models.Order, error) {
	if input.OrderType == string(models.OrderDineIn) && input.TableNumber == nil {
		return nil, services.ErrValidation
	}
	order := &models.Order{
		ID:        f.nextID,
		OrderType: input.OrderType,
		Status:    string(models.OrderPending),
		Priority:  string(models.PriorityMedium),
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	f.nextID++
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderService) GetOrderByID(id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, services.ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeOrderService) GetActiveOrders() ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if !o.IsFinalized() {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderService) GetCompletedOrders() ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.IsFinalized() {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, services.ErrInvalidStatus
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, services.ErrOrderNotFound
	}
	if order.IsFinalized() {
		return nil, services.ErrOrderFinalized
	}
	order.Status = status
	return order, nil
}

func (f *fakeOrderService) UpdateOrderPriority(id uint, priority string) (*models.Order, error) {
	if !models.ValidOrderPriority(priority) {
		return nil, services.ErrInvalidPriority
	}
	order, ok := f.orders[id]
	if !ok {
		return nil, services.ErrOrderNotFound
	}
	order.Priority = priority
	return order, nil
}

func (f *fakeOrderService) UpdateEstimatedReadyTime(id uint, readyTime time.Time) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, services.ErrOrderNotFound
	}
	order.EstimatedReadyTime = &readyTime
	return order, nil
}

type fakeScheduler struct {
	entries []services.QueueEntry
}

func (f *fakeScheduler) KitchenQueue(sortMode string) ([]services.QueueEntry, error) {
	if sortMode != services.SortByPriority && sortMode != services.SortByTime {
		return nil, services.ErrInvalidSortMode
	}
	return f.entries, nil
}

func newOrderRouter(svc services.OrderService, scheduler services.SchedulerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(svc, scheduler)
	r := gin.New()
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
	r.PATCH("/orders/:id/priority", h.UpdatePriority)
	r.PATCH("/orders/:id/estimated-time", h.UpdateEstimatedTime)
	r.GET("/kitchen/queue", h.KitchenQueue)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	code, _ := body["code"].(string)
	return code
}

func TestCreateOrderEndpoint(t *testing.T) {
	svc := newFakeOrderService()
	r := newOrderRouter(svc, &fakeScheduler{})

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"order_type":   "dine_in",
		"table_number": 4,
		"total_amount": 1350,
		"order_items": []gin.H{
			{"menu_item_id": 1, "quantity": 2, "price": 500},
			{"menu_item_id": 2, "quantity": 1, "price": 350},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatal(err)
	}
	if len(order.Items) != 2 {
		t.Errorf("created order has %d items, want 2", len(order.Items))
	}
}

func TestCreateOrderEndpointRejectsBadBody(t *testing.T) {
	r := newOrderRouter(newFakeOrderService(), &fakeScheduler{})

	// Missing order_type fails schema validation at the boundary.
	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"order_items": []gin.H{{"menu_item_id": 1, "quantity": 1, "price": 100}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if errorCode(t, w) != "validation_error" {
		t.Errorf("code = %q, want validation_error", errorCode(t, w))
	}

	// Empty item list fails before any storage call.
	w = doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"order_type":  "takeaway",
		"order_items": []gin.H{},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	r := newOrderRouter(newFakeOrderService(), &fakeScheduler{})

	w := doJSON(t, r, http.MethodGet, "/orders/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if errorCode(t, w) != "not_found" {
		t.Errorf("code = %q, want not_found", errorCode(t, w))
	}

	w = doJSON(t, r, http.MethodGet, "/orders/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: status = %d, want 400", w.Code)
	}
}

func TestListOrdersEndpoint(t *testing.T) {
	svc := newFakeOrderService()
	if _, err := svc.CreateOrder(&services.CreateOrderInput{OrderType: "takeaway"}); err != nil {
		t.Fatal(err)
	}
	done, err := svc.CreateOrder(&services.CreateOrderInput{OrderType: "takeaway"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateOrderStatus(done.ID, string(models.OrderCompleted)); err != nil {
		t.Fatal(err)
	}

	r := newOrderRouter(svc, &fakeScheduler{})

	w := doJSON(t, r, http.MethodGet, "/orders?type=active", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var active []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &active); err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 {
		t.Errorf("active list has %d orders, want 1", len(active))
	}

	w = doJSON(t, r, http.MethodGet, "/orders?type=history", nil)
	var history []models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 {
		t.Errorf("history list has %d orders, want 1", len(history))
	}

	w = doJSON(t, r, http.MethodGet, "/orders?type=everything", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown type: status = %d, want 400", w.Code)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	svc := newFakeOrderService()
	created, err := svc.CreateOrder(&services.CreateOrderInput{OrderType: "takeaway"})
	if err != nil {
		t.Fatal(err)
	}
	r := newOrderRouter(svc, &fakeScheduler{})

	w := doJSON(t, r, http.MethodPatch, "/orders/1/status", gin.H{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/orders/1/status", gin.H{"status": "microwaved"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_status" {
		t.Fatalf("invalid status: got %d %q", w.Code, errorCode(t, w))
	}

	if _, err := svc.UpdateOrderStatus(created.ID, string(models.OrderCancelled)); err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, http.MethodPatch, "/orders/1/status", gin.H{"status": "pending"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "order_finalized" {
		t.Fatalf("finalized order: got %d %q", w.Code, errorCode(t, w))
	}
}

func TestUpdatePriorityAndEstimatedTimeEndpoints(t *testing.T) {
	svc := newFakeOrderService()
	if _, err := svc.CreateOrder(&services.CreateOrderInput{OrderType: "takeaway"}); err != nil {
		t.Fatal(err)
	}
	r := newOrderRouter(svc, &fakeScheduler{})

	w := doJSON(t, r, http.MethodPatch, "/orders/1/priority", gin.H{"priority": "urgent"})
	if w.Code != http.StatusOK {
		t.Fatalf("priority: status = %d, want 200", w.Code)
	}
	w = doJSON(t, r, http.MethodPatch, "/orders/1/priority", gin.H{"priority": "whenever"})
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "invalid_priority" {
		t.Fatalf("invalid priority: got %d %q", w.Code, errorCode(t, w))
	}

	w = doJSON(t, r, http.MethodPatch, "/orders/1/estimated-time", gin.H{
		"estimated_ready_time": time.Now().Add(20 * time.Minute).Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("estimated time: status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestKitchenQueueEndpoint(t *testing.T) {
	scheduler := &fakeScheduler{entries: []services.QueueEntry{
		{Order: models.Order{ID: 1, Status: string(models.OrderPending)}, Overdue: true, NextStatus: "confirmed"},
	}}
	r := newOrderRouter(newFakeOrderService(), scheduler)

	w := doJSON(t, r, http.MethodGet, "/kitchen/queue", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var entries []services.QueueEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].Overdue {
		t.Errorf("queue entries = %+v", entries)
	}

	w = doJSON(t, r, http.MethodGet, "/kitchen/queue?sort=alphabetical", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown sort: status = %d, want 400", w.Code)
	}
}
