package storage_test

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
	"emperor_bespoke_v1/internal/storage/dbstore"
	"emperor_bespoke_v1/internal/storage/memstore"
)

// 两个后端跑同一组用例，保证外部可观察行为完全一致。

func backends(t *testing.T) map[string]storage.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	// :memory: 每个连接是独立数据库，限制为单连接
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{}, &model.Measurement{},
		&model.ProductCategory{}, &model.Product{}, &model.Fabric{},
		&model.CustomDesign{}, &model.Appointment{},
		&model.Order{}, &model.OrderItem{},
		&model.Collection{}, &model.Testimonial{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	return map[string]storage.Store{
		"memory":   memstore.New(),
		"database": dbstore.New(db),
	}
}

// ==================== 测试数据辅助 ====================

func seedUser(t *testing.T, s storage.Store, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username:  username,
		Password:  "hashed-password",
		Email:     username + "@example.com",
		FirstName: "测试",
		LastName:  "用户",
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, s storage.Store, slug string) *model.ProductCategory {
	t.Helper()
	c := &model.ProductCategory{Name: "分类-" + slug, Slug: slug, IsActive: true}
	if err := s.CreateCategory(context.Background(), c); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	return c
}

func seedProduct(t *testing.T, s storage.Store, categoryID int64, sku string) *model.Product {
	t.Helper()
	p := &model.Product{
		CategoryID: categoryID,
		Name:       "商品-" + sku,
		BasePrice:  249900,
		SKU:        sku,
		Slug:       "slug-" + sku,
		IsActive:   true,
	}
	if err := s.CreateProduct(context.Background(), p); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	return p
}

func seedFabric(t *testing.T, s storage.Store, name string, price int64) *model.Fabric {
	t.Helper()
	f := &model.Fabric{Name: name, Type: "羊毛", Color: "藏青", Price: price, Available: true, MinQuantity: 1}
	if err := s.CreateFabric(context.Background(), f); err != nil {
		t.Fatalf("创建面料失败: %v", err)
	}
	return f
}

func seedDesign(t *testing.T, s storage.Store, userID, productID int64) *model.CustomDesign {
	t.Helper()
	d := &model.CustomDesign{
		UserID:    userID,
		ProductID: productID,
		Name:      "测试方案",
		Details:   []byte(`{"lapel":"peak"}`),
		Price:     249900,
	}
	if err := s.CreateDesign(context.Background(), d); err != nil {
		t.Fatalf("创建定制方案失败: %v", err)
	}
	return d
}

// ==================== 用户 ====================

func TestConformance_UserLifecycle(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "johndoe")
			if u.ID <= 0 {
				t.Fatalf("创建后应分配 ID，实际 %d", u.ID)
			}
			if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
				t.Fatal("创建后应写入时间戳")
			}

			// 按 ID / 用户名 / 邮箱查询
			got, err := s.GetUser(ctx, u.ID)
			if err != nil || got == nil || got.Username != "johndoe" {
				t.Fatalf("按 ID 查询失败: %v, %+v", err, got)
			}
			got, err = s.GetUserByUsername(ctx, "johndoe")
			if err != nil || got == nil || got.ID != u.ID {
				t.Fatalf("按用户名查询失败: %v, %+v", err, got)
			}
			got, err = s.GetUserByEmail(ctx, "johndoe@example.com")
			if err != nil || got == nil || got.ID != u.ID {
				t.Fatalf("按邮箱查询失败: %v, %+v", err, got)
			}

			// 未找到返回 (nil, nil)
			got, err = s.GetUser(ctx, 99999)
			if err != nil || got != nil {
				t.Fatalf("未找到应返回 (nil, nil)，实际 %+v, %v", got, err)
			}

			// 用户名重复
			dup := &model.User{Username: "johndoe", Password: "x", Email: "other@example.com", FirstName: "a", LastName: "b"}
			if err := s.CreateUser(ctx, dup); !storage.IsDuplicate(err) {
				t.Fatalf("重复用户名应返回唯一约束错误，实际 %v", err)
			}

			// 邮箱重复
			dup2 := &model.User{Username: "other", Password: "x", Email: "johndoe@example.com", FirstName: "a", LastName: "b"}
			if err := s.CreateUser(ctx, dup2); !storage.IsDuplicate(err) {
				t.Fatalf("重复邮箱应返回唯一约束错误，实际 %v", err)
			}
		})
	}
}

func TestConformance_UserPartialUpdate(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "amelia")

			first := "Amelia"
			tier := model.TierGold
			updated, err := s.UpdateUser(ctx, u.ID, &model.UserUpdate{FirstName: &first, MembershipTier: &tier})
			if err != nil {
				t.Fatalf("更新失败: %v", err)
			}
			if updated.FirstName != "Amelia" || updated.MembershipTier != model.TierGold {
				t.Fatalf("更新字段未生效: %+v", updated)
			}
			// 未出现的字段保持不变
			if updated.LastName != u.LastName || updated.Email != u.Email {
				t.Fatalf("未更新字段被改动: %+v", updated)
			}
			if updated.ID != u.ID {
				t.Fatalf("更新不应改变 ID")
			}
			if !updated.CreatedAt.Equal(u.CreatedAt) {
				t.Fatalf("更新不应改变创建时间: %v -> %v", u.CreatedAt, updated.CreatedAt)
			}

			// 不存在的 ID 返回 (nil, nil)
			missing, err := s.UpdateUser(ctx, 99999, &model.UserUpdate{FirstName: &first})
			if err != nil || missing != nil {
				t.Fatalf("更新不存在记录应返回 (nil, nil)，实际 %+v, %v", missing, err)
			}

			// 最后登录时间
			at := time.Now()
			if err := s.UpdateLastLogin(ctx, u.ID, at); err != nil {
				t.Fatalf("更新最后登录时间失败: %v", err)
			}
			got, _ := s.GetUser(ctx, u.ID)
			if got.LastLoginAt == nil {
				t.Fatal("最后登录时间未写入")
			}
		})
	}
}

// ==================== 量体数据 ====================

func TestConformance_Measurement(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "tailorfan")

			// 外键：用户必须存在
			orphan := &model.Measurement{UserID: 99999, Name: "无主记录"}
			if err := s.CreateMeasurement(ctx, orphan); !storage.IsForeignKey(err) {
				t.Fatalf("无效用户外键应被拒绝，实际 %v", err)
			}

			m1 := &model.Measurement{UserID: u.ID, Name: "商务西装", Chest: 102, Waist: 88, IsDefault: true}
			if err := s.CreateMeasurement(ctx, m1); err != nil {
				t.Fatalf("创建量体记录失败: %v", err)
			}
			m2 := &model.Measurement{UserID: u.ID, Name: "礼服", Chest: 101}
			if err := s.CreateMeasurement(ctx, m2); err != nil {
				t.Fatalf("创建量体记录失败: %v", err)
			}

			list, err := s.ListMeasurementsByUser(ctx, u.ID)
			if err != nil || len(list) != 2 {
				t.Fatalf("应返回 2 条记录，实际 %d, %v", len(list), err)
			}
			if list[0].ID > list[1].ID {
				t.Fatal("列表应按 ID 升序")
			}

			// 部分更新
			chest := 103.5
			updated, err := s.UpdateMeasurement(ctx, m1.ID, &model.MeasurementUpdate{Chest: &chest})
			if err != nil || updated.Chest != 103.5 {
				t.Fatalf("更新胸围失败: %v, %+v", err, updated)
			}
			if updated.Waist != 88 {
				t.Fatalf("未更新字段被改动: %+v", updated)
			}

			// 删除
			deleted, err := s.DeleteMeasurement(ctx, m2.ID)
			if err != nil || !deleted {
				t.Fatalf("删除失败: %v, %v", deleted, err)
			}
			deleted, err = s.DeleteMeasurement(ctx, m2.ID)
			if err != nil || deleted {
				t.Fatalf("重复删除应返回 false，实际 %v, %v", deleted, err)
			}

			// 被定制方案引用时拒绝删除
			cat := seedCategory(t, s, "suits")
			p := seedProduct(t, s, cat.ID, "SUIT-001")
			d := &model.CustomDesign{
				UserID: u.ID, ProductID: p.ID, MeasurementID: &m1.ID,
				Name: "引用量体", Details: []byte(`{}`),
			}
			if err := s.CreateDesign(ctx, d); err != nil {
				t.Fatalf("创建定制方案失败: %v", err)
			}
			if _, err := s.DeleteMeasurement(ctx, m1.ID); !storage.IsForeignKey(err) {
				t.Fatalf("被引用的量体记录应拒绝删除，实际 %v", err)
			}
		})
	}
}

// ==================== 分类与商品 ====================

func TestConformance_Category(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			parent := seedCategory(t, s, "suits")

			// slug 重复
			dup := &model.ProductCategory{Name: "重复", Slug: "suits"}
			if err := s.CreateCategory(ctx, dup); !storage.IsDuplicate(err) {
				t.Fatalf("重复 slug 应被拒绝，实际 %v", err)
			}

			// 子分类
			child := &model.ProductCategory{Name: "修身西装", Slug: "slim-suits", ParentID: &parent.ID, IsActive: true}
			if err := s.CreateCategory(ctx, child); err != nil {
				t.Fatalf("创建子分类失败: %v", err)
			}

			// 父分类仍有子分类时拒绝删除
			if _, err := s.DeleteCategory(ctx, parent.ID); !storage.IsForeignKey(err) {
				t.Fatalf("有子分类时应拒绝删除，实际 %v", err)
			}

			// slug 查询
			got, err := s.GetCategoryBySlug(ctx, "slim-suits")
			if err != nil || got == nil || got.ID != child.ID {
				t.Fatalf("按 slug 查询失败: %v, %+v", err, got)
			}

			// 删完子分类后父分类可删
			if deleted, err := s.DeleteCategory(ctx, child.ID); err != nil || !deleted {
				t.Fatalf("删除子分类失败: %v", err)
			}
			if deleted, err := s.DeleteCategory(ctx, parent.ID); err != nil || !deleted {
				t.Fatalf("删除父分类失败: %v", err)
			}
		})
	}
}

func TestConformance_Product(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cat := seedCategory(t, s, "suits")
			other := seedCategory(t, s, "shirts")

			// 外键：分类必须存在
			orphan := &model.Product{CategoryID: 99999, Name: "无主商品", BasePrice: 1000, SKU: "X-1", Slug: "x-1"}
			if err := s.CreateProduct(ctx, orphan); !storage.IsForeignKey(err) {
				t.Fatalf("无效分类外键应被拒绝，实际 %v", err)
			}

			p1 := seedProduct(t, s, cat.ID, "SUIT-001")
			p2 := &model.Product{CategoryID: cat.ID, Name: "主推", BasePrice: 329900, SKU: "SUIT-002", Slug: "suit-002", Featured: true, IsActive: true}
			if err := s.CreateProduct(ctx, p2); err != nil {
				t.Fatalf("创建商品失败: %v", err)
			}
			p3 := &model.Product{CategoryID: other.ID, Name: "衬衫", BasePrice: 34900, SKU: "SHIRT-001", Slug: "shirt-001", IsActive: false}
			if err := s.CreateProduct(ctx, p3); err != nil {
				t.Fatalf("创建商品失败: %v", err)
			}

			// SKU / slug 重复
			dup := &model.Product{CategoryID: cat.ID, Name: "重复", BasePrice: 1, SKU: "SUIT-001", Slug: "unique-9"}
			if err := s.CreateProduct(ctx, dup); !storage.IsDuplicate(err) {
				t.Fatalf("重复 SKU 应被拒绝，实际 %v", err)
			}
			dup2 := &model.Product{CategoryID: cat.ID, Name: "重复", BasePrice: 1, SKU: "UNIQ-9", Slug: "slug-SUIT-001"}
			if err := s.CreateProduct(ctx, dup2); !storage.IsDuplicate(err) {
				t.Fatalf("重复 slug 应被拒绝，实际 %v", err)
			}

			// 过滤器
			all, err := s.ListProducts(ctx, storage.ProductFilter{})
			if err != nil || len(all) != 3 {
				t.Fatalf("全量列表应为 3，实际 %d, %v", len(all), err)
			}
			byCat, _ := s.ListProducts(ctx, storage.ProductFilter{CategoryID: cat.ID})
			if len(byCat) != 2 {
				t.Fatalf("分类过滤应为 2，实际 %d", len(byCat))
			}
			featured, _ := s.ListProducts(ctx, storage.ProductFilter{FeaturedOnly: true})
			if len(featured) != 1 || featured[0].ID != p2.ID {
				t.Fatalf("主推过滤结果错误: %+v", featured)
			}
			active, _ := s.ListProducts(ctx, storage.ProductFilter{ActiveOnly: true})
			if len(active) != 2 {
				t.Fatalf("上架过滤应为 2，实际 %d", len(active))
			}

			// SKU / slug 查询
			bySKU, err := s.GetProductBySKU(ctx, "SUIT-002")
			if err != nil || bySKU == nil || bySKU.ID != p2.ID {
				t.Fatalf("按 SKU 查询失败: %v, %+v", err, bySKU)
			}
			bySlug, err := s.GetProductBySlug(ctx, "shirt-001")
			if err != nil || bySlug == nil || bySlug.ID != p3.ID {
				t.Fatalf("按 slug 查询失败: %v, %+v", err, bySlug)
			}

			// 特价生效价
			sale := int64(199900)
			updated, err := s.UpdateProduct(ctx, p1.ID, &model.ProductUpdate{SalePrice: &sale})
			if err != nil {
				t.Fatalf("更新特价失败: %v", err)
			}
			if updated.EffectivePrice() != 199900 {
				t.Fatalf("生效价应取特价，实际 %d", updated.EffectivePrice())
			}
		})
	}
}

func TestConformance_Fabric(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f1 := seedFabric(t, s, "藏青羊毛", 18000)
			f2 := &model.Fabric{Name: "炭灰法兰绒", Type: "法兰绒", Color: "炭灰", Price: 22000}
			if err := s.CreateFabric(ctx, f2); err != nil {
				t.Fatalf("创建面料失败: %v", err)
			}

			// 最小起订量默认 1
			got, _ := s.GetFabric(ctx, f2.ID)
			if got.MinQuantity != 1 {
				t.Fatalf("最小起订量默认应为 1，实际 %d", got.MinQuantity)
			}

			// 可选过滤
			off := false
			if _, err := s.UpdateFabric(ctx, f2.ID, &model.FabricUpdate{Available: &off}); err != nil {
				t.Fatalf("下架面料失败: %v", err)
			}
			available, err := s.ListFabrics(ctx, true)
			if err != nil || len(available) != 1 || available[0].ID != f1.ID {
				t.Fatalf("可选过滤结果错误: %v, %+v", err, available)
			}
			all, _ := s.ListFabrics(ctx, false)
			if len(all) != 2 {
				t.Fatalf("全量列表应为 2，实际 %d", len(all))
			}
		})
	}
}

// 创建时显式传入的 false 必须原样落库：两个后端都不得把停用/下架
// 状态悄悄改写成启用（数据库默认值不参与 Create 语义）
func TestConformance_FalseFlagsPreserved(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			cat := &model.ProductCategory{Name: "停用分类", Slug: "retired", IsActive: false}
			if err := s.CreateCategory(ctx, cat); err != nil {
				t.Fatalf("创建分类失败: %v", err)
			}
			gotCat, err := s.GetCategory(ctx, cat.ID)
			if err != nil || gotCat == nil || gotCat.IsActive {
				t.Fatalf("停用分类读回应为停用，实际 %v, %+v", err, gotCat)
			}

			p := &model.Product{CategoryID: cat.ID, Name: "下架商品", BasePrice: 1000, SKU: "OFF-1", Slug: "off-1", IsActive: false}
			if err := s.CreateProduct(ctx, p); err != nil {
				t.Fatalf("创建商品失败: %v", err)
			}
			gotP, err := s.GetProduct(ctx, p.ID)
			if err != nil || gotP == nil || gotP.IsActive {
				t.Fatalf("下架商品读回应为下架，实际 %v, %+v", err, gotP)
			}

			f := &model.Fabric{Name: "停供面料", Type: "羊毛", Color: "灰", Price: 100, Available: false}
			if err := s.CreateFabric(ctx, f); err != nil {
				t.Fatalf("创建面料失败: %v", err)
			}
			gotF, err := s.GetFabric(ctx, f.ID)
			if err != nil || gotF == nil || gotF.Available {
				t.Fatalf("停供面料读回应为停供，实际 %v, %+v", err, gotF)
			}

			c := &model.Collection{Name: "归档系列", Description: "x", Slug: "archived", Image: "/img/a.jpg", IsActive: false}
			if err := s.CreateCollection(ctx, c); err != nil {
				t.Fatalf("创建系列失败: %v", err)
			}
			gotC, err := s.GetCollection(ctx, c.ID)
			if err != nil || gotC == nil || gotC.IsActive {
				t.Fatalf("归档系列读回应为归档，实际 %v, %+v", err, gotC)
			}
		})
	}
}

// ==================== 定制方案 ====================

func TestConformance_Design(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "designer")
			cat := seedCategory(t, s, "suits")
			p := seedProduct(t, s, cat.ID, "SUIT-001")

			// 外键：商品必须存在
			orphan := &model.CustomDesign{UserID: u.ID, ProductID: 99999, Name: "无主", Details: []byte(`{}`)}
			if err := s.CreateDesign(ctx, orphan); !storage.IsForeignKey(err) {
				t.Fatalf("无效商品外键应被拒绝，实际 %v", err)
			}

			d1 := seedDesign(t, s, u.ID, p.ID)
			d2 := &model.CustomDesign{UserID: u.ID, ProductID: p.ID, Name: "公开方案", Details: []byte(`{}`), IsPublic: true}
			if err := s.CreateDesign(ctx, d2); err != nil {
				t.Fatalf("创建定制方案失败: %v", err)
			}

			mine, err := s.ListDesignsByUser(ctx, u.ID)
			if err != nil || len(mine) != 2 {
				t.Fatalf("用户方案列表应为 2，实际 %d, %v", len(mine), err)
			}
			public, err := s.ListPublicDesigns(ctx)
			if err != nil || len(public) != 1 || public[0].ID != d2.ID {
				t.Fatalf("公开方案列表错误: %v, %+v", err, public)
			}

			// 被预约引用时拒绝删除
			a := &model.Appointment{UserID: u.ID, Date: time.Now().Add(24 * time.Hour), Type: model.AppointmentFitting, DesignID: &d1.ID}
			if err := s.CreateAppointment(ctx, a); err != nil {
				t.Fatalf("创建预约失败: %v", err)
			}
			if _, err := s.DeleteDesign(ctx, d1.ID); !storage.IsForeignKey(err) {
				t.Fatalf("被预约引用的方案应拒绝删除，实际 %v", err)
			}

			// 未被引用的可删
			if deleted, err := s.DeleteDesign(ctx, d2.ID); err != nil || !deleted {
				t.Fatalf("删除方案失败: %v", err)
			}
		})
	}
}

// ==================== 预约 ====================

func TestConformance_Appointment(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "visitor")

			a := &model.Appointment{UserID: u.ID, Date: time.Now().Add(48 * time.Hour), Type: model.AppointmentConsultation}
			if err := s.CreateAppointment(ctx, a); err != nil {
				t.Fatalf("创建预约失败: %v", err)
			}

			got, _ := s.GetAppointment(ctx, a.ID)
			if got.Status != model.AppointmentScheduled {
				t.Fatalf("新预约状态应为 scheduled，实际 %s", got.Status)
			}
			if got.Location != "London Boutique" {
				t.Fatalf("默认门店应为 London Boutique，实际 %q", got.Location)
			}
			if got.Duration != 60 {
				t.Fatalf("默认时长应为 60，实际 %d", got.Duration)
			}

			// 取消 + 幂等重复取消
			cancelled, err := s.CancelAppointment(ctx, a.ID)
			if err != nil || cancelled.Status != model.AppointmentCancelled {
				t.Fatalf("取消失败: %v, %+v", err, cancelled)
			}
			again, err := s.CancelAppointment(ctx, a.ID)
			if err != nil || again.Status != model.AppointmentCancelled {
				t.Fatalf("重复取消应为幂等空操作: %v, %+v", err, again)
			}

			// 不存在的预约
			missing, err := s.CancelAppointment(ctx, 99999)
			if err != nil || missing != nil {
				t.Fatalf("取消不存在预约应返回 (nil, nil)，实际 %+v, %v", missing, err)
			}
		})
	}
}

func TestConformance_CompletePastAppointments(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "regular")

			past := &model.Appointment{UserID: u.ID, Date: time.Now().Add(-24 * time.Hour), Type: model.AppointmentFitting}
			future := &model.Appointment{UserID: u.ID, Date: time.Now().Add(24 * time.Hour), Type: model.AppointmentFitting}
			cancelled := &model.Appointment{UserID: u.ID, Date: time.Now().Add(-48 * time.Hour), Type: model.AppointmentFitting}
			for _, a := range []*model.Appointment{past, future, cancelled} {
				if err := s.CreateAppointment(ctx, a); err != nil {
					t.Fatalf("创建预约失败: %v", err)
				}
			}
			if _, err := s.CancelAppointment(ctx, cancelled.ID); err != nil {
				t.Fatalf("取消预约失败: %v", err)
			}

			n, err := s.CompletePastAppointments(ctx, time.Now())
			if err != nil || n != 1 {
				t.Fatalf("应只收尾 1 条过期预约，实际 %d, %v", n, err)
			}

			got, _ := s.GetAppointment(ctx, past.ID)
			if got.Status != model.AppointmentCompleted {
				t.Fatalf("过期预约应标记为 completed，实际 %s", got.Status)
			}
			got, _ = s.GetAppointment(ctx, future.ID)
			if got.Status != model.AppointmentScheduled {
				t.Fatalf("未到期预约不应被改动，实际 %s", got.Status)
			}
			got, _ = s.GetAppointment(ctx, cancelled.ID)
			if got.Status != model.AppointmentCancelled {
				t.Fatalf("已取消预约不应被改动，实际 %s", got.Status)
			}
		})
	}
}

// ==================== 订单 ====================

func TestConformance_OrderLifecycle(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "buyer")
			cat := seedCategory(t, s, "suits")
			p := seedProduct(t, s, cat.ID, "SUIT-001")

			item := model.OrderItem{ProductID: &p.ID, Quantity: 2, UnitPrice: 249900}
			item.Subtotal = item.ComputeSubtotal()
			o := &model.Order{
				UserID:      u.ID,
				OrderNumber: "ORD-20260829-AAAAAA",
				Subtotal:    item.Subtotal,
				Tax:         99960,
				Shipping:    0,
				Discount:    0,
				Items:       []model.OrderItem{item},
			}
			o.Total = o.ComputeTotal()
			if err := s.CreateOrder(ctx, o); err != nil {
				t.Fatalf("下单失败: %v", err)
			}
			if o.ID <= 0 {
				t.Fatal("订单应分配 ID")
			}

			// 订单号唯一
			dup := &model.Order{UserID: u.ID, OrderNumber: "ORD-20260829-AAAAAA", Subtotal: 1, Total: 1}
			if err := s.CreateOrder(ctx, dup); !storage.IsDuplicate(err) {
				t.Fatalf("重复订单号应被拒绝，实际 %v", err)
			}

			// 查询带明细行
			got, err := s.GetOrder(ctx, o.ID)
			if err != nil || got == nil {
				t.Fatalf("查询订单失败: %v", err)
			}
			if len(got.Items) != 1 || got.Items[0].Subtotal != 499800 {
				t.Fatalf("明细行错误: %+v", got.Items)
			}
			if got.Total != got.Subtotal+got.Tax+got.Shipping-got.Discount {
				t.Fatalf("金额不变式被破坏: %+v", got)
			}

			byNum, err := s.GetOrderByNumber(ctx, "ORD-20260829-AAAAAA")
			if err != nil || byNum == nil || byNum.ID != o.ID {
				t.Fatalf("按订单号查询失败: %v, %+v", err, byNum)
			}

			list, err := s.ListOrdersByUser(ctx, u.ID)
			if err != nil || len(list) != 1 || len(list[0].Items) != 1 {
				t.Fatalf("用户订单列表错误: %v, %+v", err, list)
			}
		})
	}
}

func TestConformance_OrderStatus(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			u := seedUser(t, s, "buyer2")
			o := &model.Order{UserID: u.ID, OrderNumber: "ORD-20260829-BBBBBB", Subtotal: 1000, Total: 1000}
			if err := s.CreateOrder(ctx, o); err != nil {
				t.Fatalf("下单失败: %v", err)
			}

			got, _ := s.GetOrder(ctx, o.ID)
			if got.Status != model.OrderPending || got.PaymentStatus != model.PaymentUnpaid {
				t.Fatalf("新订单默认状态错误: %s / %s", got.Status, got.PaymentStatus)
			}
			if got.CompletedAt != nil {
				t.Fatal("未完成订单不应有完成时间")
			}

			// 支付状态与制作状态相互独立
			paid, err := s.UpdatePaymentStatus(ctx, o.ID, model.PaymentPaid)
			if err != nil || paid.PaymentStatus != model.PaymentPaid || paid.Status != model.OrderPending {
				t.Fatalf("支付状态更新错误: %v, %+v", err, paid)
			}

			// 首次迁移到 completed 写入完成时间
			done, err := s.UpdateOrderStatus(ctx, o.ID, model.OrderCompleted)
			if err != nil || done.Status != model.OrderCompleted {
				t.Fatalf("完成订单失败: %v, %+v", err, done)
			}
			if done.CompletedAt == nil {
				t.Fatal("迁移到 completed 应写入完成时间")
			}
			first := *done.CompletedAt

			// 再次置 completed 不改写完成时间
			again, err := s.UpdateOrderStatus(ctx, o.ID, model.OrderCompleted)
			if err != nil {
				t.Fatalf("重复置完成失败: %v", err)
			}
			if again.CompletedAt == nil || !again.CompletedAt.Equal(first) {
				t.Fatalf("完成时间应只写一次: %v -> %v", first, again.CompletedAt)
			}

			// 不存在的订单
			missing, err := s.UpdateOrderStatus(ctx, 99999, model.OrderCancelled)
			if err != nil || missing != nil {
				t.Fatalf("更新不存在订单应返回 (nil, nil)，实际 %+v, %v", missing, err)
			}
		})
	}
}

// ==================== 橱窗内容 ====================

func TestConformance_Content(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			c1 := &model.Collection{Name: "The Executive", Description: "商务系列", Slug: "the-executive", Image: "/img/exec.jpg", Featured: true, IsActive: true}
			c2 := &model.Collection{Name: "The Sovereign", Description: "礼服系列", Slug: "the-sovereign", Image: "/img/sov.jpg", IsActive: true}
			for _, c := range []*model.Collection{c1, c2} {
				if err := s.CreateCollection(ctx, c); err != nil {
					t.Fatalf("创建系列失败: %v", err)
				}
			}

			// slug 唯一
			dup := &model.Collection{Name: "重复", Description: "x", Slug: "the-executive", Image: "/x.jpg"}
			if err := s.CreateCollection(ctx, dup); !storage.IsDuplicate(err) {
				t.Fatalf("重复 slug 应被拒绝，实际 %v", err)
			}

			featured, err := s.ListCollections(ctx, true)
			if err != nil || len(featured) != 1 || featured[0].ID != c1.ID {
				t.Fatalf("主推系列过滤错误: %v, %+v", err, featured)
			}
			bySlug, err := s.GetCollectionBySlug(ctx, "the-sovereign")
			if err != nil || bySlug == nil || bySlug.ID != c2.ID {
				t.Fatalf("按 slug 查询失败: %v", err)
			}

			// 评价
			t1 := &model.Testimonial{Name: "王先生", Testimonial: "剪裁无可挑剔", Rating: 5, CollectionID: &c1.ID, Featured: true, DisplayOrder: 2}
			t2 := &model.Testimonial{Name: "李女士", Testimonial: "面料出众", Rating: 4, DisplayOrder: 1}
			for _, tm := range []*model.Testimonial{t1, t2} {
				if err := s.CreateTestimonial(ctx, tm); err != nil {
					t.Fatalf("创建评价失败: %v", err)
				}
			}

			// 无效系列外键
			bad := &model.Testimonial{Name: "孤儿", Testimonial: "x", Rating: 3, CollectionID: ptr(int64(99999))}
			if err := s.CreateTestimonial(ctx, bad); !storage.IsForeignKey(err) {
				t.Fatalf("无效系列外键应被拒绝，实际 %v", err)
			}

			featuredT, err := s.ListTestimonials(ctx, true)
			if err != nil || len(featuredT) != 1 || featuredT[0].ID != t1.ID {
				t.Fatalf("精选评价过滤错误: %v, %+v", err, featuredT)
			}

			// 按展示顺序排序
			allT, err := s.ListTestimonials(ctx, false)
			if err != nil || len(allT) != 2 {
				t.Fatalf("评价列表错误: %v, %+v", err, allT)
			}
			if allT[0].ID != t2.ID || allT[1].ID != t1.ID {
				t.Fatalf("评价应按展示顺序排列: %+v", allT)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
