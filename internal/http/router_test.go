package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpH "github.com/pickwise/laptop-advisor-backend/internal/http/handlers"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/services"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

type memLaptopRepo struct {
	laptops []types.Laptop
}

func (m *memLaptopRepo) ListAll(_ context.Context) ([]types.Laptop, error) {
	return append([]types.Laptop(nil), m.laptops...), nil
}

func (m *memLaptopRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.laptops)), nil
}

func (m *memLaptopRepo) ReplaceAll(_ context.Context, laptops []types.Laptop) error {
	m.laptops = append([]types.Laptop(nil), laptops...)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	repo := &memLaptopRepo{laptops: []types.Laptop{
		{ID: uuid.New(), Brand: "acer", Model: "Nitro 5", Price: 900, Usage: types.UsageGaming,
			Processor: "Intel i7-12700H", RAMGB: 16, StorageGB: 512, GPU: "NVIDIA RTX 3050",
			ScreenInches: 15.6, BatteryHours: 6, WeightKG: 2.5, OS: "Windows 11"},
		{ID: uuid.New(), Brand: "asus", Model: "ROG Zephyrus", Price: 1400, Usage: types.UsageGaming,
			Processor: "Intel i7-12700H", RAMGB: 16, StorageGB: 1000, GPU: "NVIDIA RTX 3060",
			ScreenInches: 14, BatteryHours: 8, WeightKG: 1.7, OS: "Windows 11"},
		{ID: uuid.New(), Brand: "dell", Model: "XPS 13", Price: 1300, Usage: types.UsageBusiness,
			Processor: "Intel i7-1260P", RAMGB: 16, StorageGB: 512, GPU: "Intel Iris Xe",
			ScreenInches: 13.4, BatteryHours: 12, WeightKG: 1.2, OS: "Windows 11"},
	}}

	catalog := services.NewCatalogService(repo, log)
	if _, err := catalog.Reload(context.Background()); err != nil {
		t.Fatalf("catalog reload: %v", err)
	}
	recommender := services.NewRecommendationService(catalog, log)
	sessions := services.NewSessionService(recommender, 5, log)

	r := NewRouter(RouterConfig{
		Log:              log,
		ChatHandler:      httpH.NewChatHandler(sessions),
		RecommendHandler: httpH.NewRecommendHandler(recommender, 5),
		CatalogHandler:   httpH.NewCatalogHandler(catalog),
		HealthHandler:    httpH.NewHealthHandler("test"),
	})
	return r, sessions
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealthcheck(t *testing.T) {
	r, _ := newTestRouter(t)
	w, body := doJSON(t, r, http.MethodGet, "/healthcheck", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "healthy" {
		t.Fatalf("body = %v", body)
	}
}

func TestChatFlow(t *testing.T) {
	r, sessions := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/conversations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d: %v", w.Code, body)
	}
	convID, _ := body["conversation_id"].(string)
	if convID == "" {
		t.Fatalf("no conversation_id in %v", body)
	}
	if body["message"] == "" {
		t.Fatalf("create should greet")
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"conversation_id": convID,
		"message":         "I want something good",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d: %v", w.Code, body)
	}
	if body["status"] != string(types.StatusCollecting) {
		t.Fatalf("status = %v, want collecting", body["status"])
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"conversation_id": convID,
		"message":         "a gaming laptop under $1500",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d: %v", w.Code, body)
	}
	if body["status"] != string(types.StatusReady) {
		t.Fatalf("status = %v, want ready", body["status"])
	}
	recs, _ := body["recommendations"].([]any)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/conversations/"+convID+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d", w.Code)
	}
	w, body = doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"conversation_id": convID,
		"message":         "anything else?",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("chat on completed conversation: status = %d, want 409", w.Code)
	}
	envelope, _ := body["error"].(map[string]any)
	if envelope["message"] != sessions.ClosedMessage() {
		t.Fatalf("closed-conversation message = %v, want %q", envelope["message"], sessions.ClosedMessage())
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/conversations/"+convID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/api/conversations/"+convID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", w.Code)
	}
}

func TestChatImplicitConversation(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"message": "gaming laptop under $1500",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}
	if body["conversation_id"] == "" {
		t.Fatalf("implicit conversation not created: %v", body)
	}
	if body["status"] != string(types.StatusReady) {
		t.Fatalf("status = %v, want ready", body["status"])
	}
}

func TestChatValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{"message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank message: status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/chat", map[string]any{
		"conversation_id": uuid.New().String(),
		"message":         "hello",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown conversation: status = %d, want 404", w.Code)
	}
}

func TestOneShotRecommendations(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/recommendations", map[string]any{
		"budget":     1500,
		"usage_type": "gaming",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", w.Code, body)
	}
	if body["count"].(float64) != 2 {
		t.Fatalf("count = %v, want 2", body["count"])
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/recommendations", map[string]any{
		"budget":     1500,
		"usage_type": "spaceship",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad usage_type: status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/recommendations", map[string]any{
		"usage_type": "gaming",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing budget: status = %d, want 400", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/laptops", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if body["count"].(float64) != 3 {
		t.Fatalf("count = %v, want 3", body["count"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/laptops?brand=dell", nil)
	if w.Code != http.StatusOK || body["count"].(float64) != 1 {
		t.Fatalf("brand filter: status = %d count = %v", w.Code, body["count"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/laptops?limit=2", nil)
	if w.Code != http.StatusOK || body["count"].(float64) != 2 {
		t.Fatalf("limit: status = %d count = %v", w.Code, body["count"])
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/laptops?limit=zero", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad limit: status = %d, want 400", w.Code)
	}

	laptops, _ := body["laptops"].([]any)
	first, _ := laptops[0].(map[string]any)
	id, _ := first["id"].(string)

	w, body = doJSON(t, r, http.MethodGet, "/api/laptops/"+id, nil)
	if w.Code != http.StatusOK || body["id"] != id {
		t.Fatalf("get by id: status = %d body = %v", w.Code, body)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/api/laptops/"+uuid.New().String(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown laptop: status = %d, want 404", w.Code)
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/brands", nil)
	if w.Code != http.StatusOK || body["count"].(float64) != 3 {
		t.Fatalf("brands: status = %d count = %v", w.Code, body["count"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/usage-types", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("usage types status = %d", w.Code)
	}
	uts, _ := body["usage_types"].([]any)
	if len(uts) != 6 {
		t.Fatalf("got %d usage types, want 6", len(uts))
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/catalog/reload", nil)
	if w.Code != http.StatusOK || body["count"].(float64) != 3 {
		t.Fatalf("reload: status = %d body = %v", w.Code, body)
	}
}
