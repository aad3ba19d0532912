package storage

import (
	"context"
	"time"

	"emperor_bespoke_v1/internal/model"
)

// 存储层统一契约。两个后端（内存 / 关系型数据库）必须满足完全相同的
// 外部可观察行为，调用方只依赖本接口，不触碰后端内部状态。
//
// 约定：
//   - Get* 未找到返回 (nil, nil)，不抛错误
//   - Create* 由后端分配 ID 与时间戳，仅在约束冲突时失败
//   - Update* 对不存在的 ID 返回 (nil, nil)；成功时返回合并后的记录，
//     UpdatedAt 刷新，ID/CreatedAt 不变
//   - Delete* 返回是否真正删除了记录

// ==================== 用户 ====================

// UserStore 用户存储
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, update *model.UserUpdate) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// ==================== 量体数据 ====================

// MeasurementStore 量体数据存储
type MeasurementStore interface {
	CreateMeasurement(ctx context.Context, m *model.Measurement) error
	GetMeasurement(ctx context.Context, id int64) (*model.Measurement, error)
	ListMeasurementsByUser(ctx context.Context, userID int64) ([]model.Measurement, error)
	UpdateMeasurement(ctx context.Context, id int64, update *model.MeasurementUpdate) (*model.Measurement, error)
	DeleteMeasurement(ctx context.Context, id int64) (bool, error)
}

// ==================== 分类与商品 ====================

// ProductFilter 商品筛选条件
type ProductFilter struct {
	CategoryID   int64 // 0 表示不限
	FeaturedOnly bool
	ActiveOnly   bool
}

// CatalogStore 分类 / 商品 / 面料存储
type CatalogStore interface {
	CreateCategory(ctx context.Context, c *model.ProductCategory) error
	GetCategory(ctx context.Context, id int64) (*model.ProductCategory, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.ProductCategory, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]model.ProductCategory, error)
	UpdateCategory(ctx context.Context, id int64, update *model.CategoryUpdate) (*model.ProductCategory, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)

	CreateProduct(ctx context.Context, p *model.Product) error
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, update *model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	CreateFabric(ctx context.Context, f *model.Fabric) error
	GetFabric(ctx context.Context, id int64) (*model.Fabric, error)
	ListFabrics(ctx context.Context, availableOnly bool) ([]model.Fabric, error)
	UpdateFabric(ctx context.Context, id int64, update *model.FabricUpdate) (*model.Fabric, error)
}

// ==================== 定制方案 ====================

// DesignStore 定制方案存储
type DesignStore interface {
	CreateDesign(ctx context.Context, d *model.CustomDesign) error
	GetDesign(ctx context.Context, id int64) (*model.CustomDesign, error)
	ListDesignsByUser(ctx context.Context, userID int64) ([]model.CustomDesign, error)
	ListPublicDesigns(ctx context.Context) ([]model.CustomDesign, error)
	UpdateDesign(ctx context.Context, id int64, update *model.DesignUpdate) (*model.CustomDesign, error)
	DeleteDesign(ctx context.Context, id int64) (bool, error)
}

// ==================== 预约 ====================

// AppointmentStore 预约存储
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	ListAppointmentsByUser(ctx context.Context, userID int64) ([]model.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, update *model.AppointmentUpdate) (*model.Appointment, error)
	// CancelAppointment scheduled -> cancelled；对已取消预约幂等，返回当前状态
	CancelAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	// CompletePastAppointments 将指定时间之前仍为 scheduled 的预约标记为 completed，
	// 返回受影响行数（定时任务调用）
	CompletePastAppointments(ctx context.Context, before time.Time) (int64, error)
}

// ==================== 订单 ====================

// OrderStore 订单存储
type OrderStore interface {
	// CreateOrder 原子创建订单及其全部明细行
	CreateOrder(ctx context.Context, o *model.Order) error
	// GetOrder 返回订单（含明细行）
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// UpdateOrderStatus 迁移到 completed 时写入 CompletedAt
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Order, error)
}

// ==================== 橱窗内容 ====================

// ContentStore 系列与评价存储
type ContentStore interface {
	CreateCollection(ctx context.Context, c *model.Collection) error
	GetCollection(ctx context.Context, id int64) (*model.Collection, error)
	GetCollectionBySlug(ctx context.Context, slug string) (*model.Collection, error)
	ListCollections(ctx context.Context, featuredOnly bool) ([]model.Collection, error)

	CreateTestimonial(ctx context.Context, t *model.Testimonial) error
	GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error)
	ListTestimonials(ctx context.Context, featuredOnly bool) ([]model.Testimonial, error)
}

// ==================== 聚合 ====================

// Store 完整存储能力集，路由层在启动时注入其中一个实现
type Store interface {
	UserStore
	MeasurementStore
	CatalogStore
	DesignStore
	AppointmentStore
	OrderStore
	ContentStore
}
