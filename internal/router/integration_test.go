package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/controller"
	"emperor_bespoke_v1/internal/service"
	"emperor_bespoke_v1/internal/storage/memstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer 组装整条 HTTP 链路：内存后端 + 服务 + 控制器 + 路由
func setupServer() *gin.Engine {
	store := memstore.New()

	userSvc := service.NewUserService(store)
	catalogSvc := service.NewCatalogService(store)
	designSvc := service.NewDesignService(store)
	appointmentSvc := service.NewAppointmentService(store)
	orderSvc := service.NewOrderService(store)
	contentSvc := service.NewContentService(store)

	r := gin.New()
	InitRoutes(r,
		controller.NewUserController(userSvc),
		controller.NewCatalogController(catalogSvc),
		controller.NewDesignController(designSvc),
		controller.NewAppointmentController(appointmentSvc),
		controller.NewOrderController(orderSvc),
		controller.NewContentController(contentSvc),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("解码响应失败: %v, body=%s", err, w.Body.String())
	}
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":   username,
		"password":   "password123",
		"email":      username + "@example.com",
		"first_name": "John",
		"last_name":  "Doe",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("注册失败: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("登录应返回令牌")
	}
	return resp.Token
}

// ==================== 认证 ====================

func TestAuthFlow(t *testing.T) {
	r := setupServer()

	token := registerAndLogin(t, r, "johndoe")

	// 未携带令牌
	w := doJSON(t, r, http.MethodGet, "/api/user/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("未登录应返回 401，实际 %d", w.Code)
	}

	// 携带令牌
	w = doJSON(t, r, http.MethodGet, "/api/user/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("查询资料失败: %d %s", w.Code, w.Body.String())
	}
	var profile struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	decode(t, w, &profile)
	if profile.Username != "johndoe" {
		t.Fatalf("资料错误: %+v", profile)
	}
	if profile.Password != "" {
		t.Fatal("密码不应出现在响应中")
	}

	// 重复注册返回 409
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":   "johndoe",
		"password":   "password123",
		"email":      "second@example.com",
		"first_name": "a",
		"last_name":  "b",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("重复注册应返回 409，实际 %d %s", w.Code, w.Body.String())
	}

	// 校验失败返回字段级错误
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "x",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("校验失败应返回 400，实际 %d", w.Code)
	}
	var bad struct {
		Fields []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"fields"`
	}
	decode(t, w, &bad)
	if len(bad.Fields) == 0 {
		t.Fatalf("应返回字段级错误: %s", w.Body.String())
	}
}

// ==================== 完整定制流程 ====================

func TestBespokeJourney(t *testing.T) {
	r := setupServer()
	token := registerAndLogin(t, r, "amelia")

	// 1. 搭建目录
	var cat struct {
		ID int64 `json:"id"`
	}
	w := doJSON(t, r, http.MethodPost, "/api/categories", "", gin.H{
		"name": "Suits", "slug": "suits",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建分类失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &cat)

	var prod struct {
		ID        int64 `json:"id"`
		BasePrice int64 `json:"base_price"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/products", "", gin.H{
		"category_id": cat.ID,
		"name":        "Executive Suit",
		"base_price":  249900,
		"sku":         "SUIT-EXEC-001",
		"slug":        "executive-suit",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建商品失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &prod)

	var fabric struct {
		ID    int64 `json:"id"`
		Price int64 `json:"price"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/fabrics", "", gin.H{
		"name": "Navy Wool", "type": "Wool", "color": "Navy", "price": 18000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建面料失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &fabric)

	// 2. 保存量体数据
	var m struct {
		ID int64 `json:"id"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/user/measurements", token, gin.H{
		"name": "商务西装", "chest": 102.5, "waist": 88, "is_default": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("保存量体数据失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &m)

	// 3. 保存定制方案，价格由服务端计算
	var design struct {
		ID    int64 `json:"id"`
		Price int64 `json:"price"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/designs", token, gin.H{
		"product_id":     prod.ID,
		"fabric_id":      fabric.ID,
		"measurement_id": m.ID,
		"name":           "Navy Executive",
		"details":        gin.H{"lapel": "peak", "vents": "side"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("保存方案失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &design)
	if design.Price != 249900+18000 {
		t.Fatalf("方案价格应为商品价+面料加价，实际 %d", design.Price)
	}

	// 4. 预约试衣
	var appt struct {
		ID       int64  `json:"id"`
		Status   string `json:"status"`
		Location string `json:"location"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"date":      time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"time_slot": "14:00-15:00",
		"type":      "fitting",
		"design_id": design.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("预约失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &appt)
	if appt.Status != "scheduled" || appt.Location != "London Boutique" {
		t.Fatalf("预约默认值错误: %+v", appt)
	}

	// 5. 下单
	var order struct {
		ID          int64  `json:"id"`
		OrderNumber string `json:"order_number"`
		Subtotal    int64  `json:"subtotal"`
		Tax         int64  `json:"tax"`
		Shipping    int64  `json:"shipping"`
		Discount    int64  `json:"discount"`
		Total       int64  `json:"total"`
		Items       []struct {
			Subtotal int64 `json:"subtotal"`
		} `json:"items"`
	}
	w = doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"items": []gin.H{{"design_id": design.ID, "quantity": 1}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("下单失败: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &order)
	if len(order.Items) != 1 {
		t.Fatalf("订单明细错误: %+v", order)
	}
	if order.Total != order.Subtotal+order.Tax+order.Shipping-order.Discount {
		t.Fatalf("金额不变式被破坏: %+v", order)
	}

	// 6. 按订单号查询
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/number/%s", order.OrderNumber), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("按订单号查询失败: %d %s", w.Code, w.Body.String())
	}

	// 7. 取消预约（幂等）
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/appointments/%d/cancel", appt.ID), token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("取消预约失败: %d %s", w.Code, w.Body.String())
		}
	}
	decode(t, w, &appt)
	if appt.Status != "cancelled" {
		t.Fatalf("预约应已取消: %+v", appt)
	}
}

// ==================== 资源归属 ====================

func TestCrossUserAccess(t *testing.T) {
	r := setupServer()
	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	var m struct {
		ID int64 `json:"id"`
	}
	w := doJSON(t, r, http.MethodPost, "/api/user/measurements", aliceToken, gin.H{"name": "西装"})
	if w.Code != http.StatusCreated {
		t.Fatalf("保存量体数据失败: %d", w.Code)
	}
	decode(t, w, &m)

	// bob 碰不到 alice 的量体记录
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/user/measurements/%d", m.ID), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("他人记录应返回 403，实际 %d %s", w.Code, w.Body.String())
	}

	// 不存在的记录返回 404
	w = doJSON(t, r, http.MethodDelete, "/api/user/measurements/99999", aliceToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("不存在记录应返回 404，实际 %d %s", w.Code, w.Body.String())
	}
}
