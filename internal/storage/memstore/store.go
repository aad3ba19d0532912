// Package memstore 提供存储契约的进程内实现，用于开发与测试，
// 不依赖外部数据库。所有操作在同一把锁内完成，唯一性检查与写入
// 是同一个临界区，并发创建同名记录时恰有一方收到冲突错误。
package memstore

import (
	"sort"
	"sync"
	"time"

	"emperor_bespoke_v1/internal/model"
)

// Store 内存后端
// 每类实体一张 id -> 记录 的表，外加单调递增的 id 计数器。
// 记录出入均做深拷贝，调用方无法通过别名修改存储内部状态。
type Store struct {
	mu sync.RWMutex

	users        map[int64]*model.User
	measurements map[int64]*model.Measurement
	categories   map[int64]*model.ProductCategory
	products     map[int64]*model.Product
	fabrics      map[int64]*model.Fabric
	designs      map[int64]*model.CustomDesign
	appointments map[int64]*model.Appointment
	orders       map[int64]*model.Order
	orderItems   map[int64]*model.OrderItem
	collections  map[int64]*model.Collection
	testimonials map[int64]*model.Testimonial

	nextUserID        int64
	nextMeasurementID int64
	nextCategoryID    int64
	nextProductID     int64
	nextFabricID      int64
	nextDesignID      int64
	nextAppointmentID int64
	nextOrderID       int64
	nextOrderItemID   int64
	nextCollectionID  int64
	nextTestimonialID int64
}

// New 创建空的内存后端（不含示例数据，固定数据见 Seed）
func New() *Store {
	return &Store{
		users:        make(map[int64]*model.User),
		measurements: make(map[int64]*model.Measurement),
		categories:   make(map[int64]*model.ProductCategory),
		products:     make(map[int64]*model.Product),
		fabrics:      make(map[int64]*model.Fabric),
		designs:      make(map[int64]*model.CustomDesign),
		appointments: make(map[int64]*model.Appointment),
		orders:       make(map[int64]*model.Order),
		orderItems:   make(map[int64]*model.OrderItem),
		collections:  make(map[int64]*model.Collection),
		testimonials: make(map[int64]*model.Testimonial),

		nextUserID:        1,
		nextMeasurementID: 1,
		nextCategoryID:    1,
		nextProductID:     1,
		nextFabricID:      1,
		nextDesignID:      1,
		nextAppointmentID: 1,
		nextOrderID:       1,
		nextOrderItemID:   1,
		nextCollectionID:  1,
		nextTestimonialID: 1,
	}
}

// stamp 写入创建时间戳
func stamp(b *model.BaseModel, id int64, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// sortByID 列表查询统一按 ID 升序，保证与关系型后端一致的可观察顺序
func sortByID[T any](list []T, id func(*T) int64) {
	sort.Slice(list, func(i, j int) bool {
		return id(&list[i]) < id(&list[j])
	})
}
