package service

import (
	"context"
	"errors"
	"testing"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage/memstore"
)

type designFixture struct {
	store  *memstore.Store
	svc    *DesignService
	user   *model.User
	other  *model.User
	prod   *model.Product
	fabric *model.Fabric
}

func newDesignFixture(t *testing.T) *designFixture {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()

	user := &model.User{Username: "alice", Password: "x", Email: "alice@example.com", FirstName: "a", LastName: "b"}
	other := &model.User{Username: "bob", Password: "x", Email: "bob@example.com", FirstName: "a", LastName: "b"}
	for _, u := range []*model.User{user, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("创建用户失败: %v", err)
		}
	}
	cat := &model.ProductCategory{Name: "Suits", Slug: "suits", IsActive: true}
	if err := store.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	sale := int64(199900)
	prod := &model.Product{CategoryID: cat.ID, Name: "Executive Suit", BasePrice: 249900, SalePrice: &sale, SKU: "S-1", Slug: "s-1", IsActive: true}
	if err := store.CreateProduct(ctx, prod); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	fabric := &model.Fabric{Name: "Navy Wool", Type: "Wool", Color: "Navy", Price: 18000, Available: true}
	if err := store.CreateFabric(ctx, fabric); err != nil {
		t.Fatalf("创建面料失败: %v", err)
	}

	return &designFixture{store: store, svc: NewDesignService(store), user: user, other: other, prod: prod, fabric: fabric}
}

func TestDesignService_PriceComputed(t *testing.T) {
	f := newDesignFixture(t)
	ctx := context.Background()

	d, err := f.svc.CreateDesign(ctx, f.user.ID, &dto.DesignReq{
		ProductID: f.prod.ID,
		FabricID:  &f.fabric.ID,
		Name:      "Navy Executive",
		Details:   []byte(`{"lapel":"peak"}`),
	})
	if err != nil {
		t.Fatalf("创建方案失败: %v", err)
	}

	// 价格 = 特价 + 面料加价，客户端无法指定
	if d.Price != 199900+18000 {
		t.Fatalf("方案价格应为商品生效价+面料加价，实际 %d", d.Price)
	}

	// 换面料后重算
	expensive := &model.Fabric{Name: "Cashmere", Type: "Cashmere", Color: "Grey", Price: 60000, Available: true}
	if err := f.store.CreateFabric(ctx, expensive); err != nil {
		t.Fatalf("创建面料失败: %v", err)
	}
	updated, err := f.svc.UpdateDesign(ctx, f.user.ID, d.ID, &dto.DesignUpdateReq{FabricID: &expensive.ID})
	if err != nil {
		t.Fatalf("换面料失败: %v", err)
	}
	if updated.Price != 199900+60000 {
		t.Fatalf("换面料后价格应重算，实际 %d", updated.Price)
	}

	// 下架面料不可选
	off := false
	if _, err := f.store.UpdateFabric(ctx, f.fabric.ID, &model.FabricUpdate{Available: &off}); err != nil {
		t.Fatalf("下架面料失败: %v", err)
	}
	_, err = f.svc.CreateDesign(ctx, f.user.ID, &dto.DesignReq{
		ProductID: f.prod.ID, FabricID: &f.fabric.ID, Name: "x", Details: []byte(`{}`),
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("下架面料应被拒绝，实际 %v", err)
	}
}

func TestDesignService_Visibility(t *testing.T) {
	f := newDesignFixture(t)
	ctx := context.Background()

	private, err := f.svc.CreateDesign(ctx, f.user.ID, &dto.DesignReq{
		ProductID: f.prod.ID, Name: "私有", Details: []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("创建方案失败: %v", err)
	}
	public, err := f.svc.CreateDesign(ctx, f.user.ID, &dto.DesignReq{
		ProductID: f.prod.ID, Name: "公开", Details: []byte(`{}`), IsPublic: true,
	})
	if err != nil {
		t.Fatalf("创建方案失败: %v", err)
	}

	// 私有方案他人不可见，公开方案任何人可见
	if _, err := f.svc.GetDesign(ctx, f.other.ID, private.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("私有方案应拒绝他人访问，实际 %v", err)
	}
	if _, err := f.svc.GetDesign(ctx, f.other.ID, public.ID); err != nil {
		t.Fatalf("公开方案应可访问: %v", err)
	}

	list, err := f.svc.ListPublicDesigns(ctx)
	if err != nil || len(list) != 1 || list[0].ID != public.ID {
		t.Fatalf("公开橱窗错误: %v, %+v", err, list)
	}

	// 他人量体记录不可挂到自己的方案上
	m := &model.Measurement{UserID: f.other.ID, Name: "bob 的量体"}
	if err := f.store.CreateMeasurement(ctx, m); err != nil {
		t.Fatalf("创建量体记录失败: %v", err)
	}
	_, err = f.svc.CreateDesign(ctx, f.user.ID, &dto.DesignReq{
		ProductID: f.prod.ID, MeasurementID: &m.ID, Name: "x", Details: []byte(`{}`),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("他人量体记录应被拒绝，实际 %v", err)
	}
}
