package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage"
)

// 读取返回的是深拷贝，调用方改动不应触碰存储内部状态
func TestReadIsolation(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Username: "iso", Password: "x", Email: "iso@example.com", FirstName: "a", LastName: "b"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	got, _ := s.GetUser(ctx, u.ID)
	got.Username = "mutated"
	got.Preferences = []byte(`{"x":1}`)

	fresh, _ := s.GetUser(ctx, u.ID)
	if fresh.Username != "iso" || fresh.Preferences != nil {
		t.Fatalf("外部改动泄漏进存储: %+v", fresh)
	}

	// 创建入参后续改动同样不可见
	u.Username = "mutated-again"
	fresh, _ = s.GetUser(ctx, fresh.ID)
	if fresh.Username != "iso" {
		t.Fatalf("入参别名泄漏进存储: %+v", fresh)
	}
}

// 更新后存储内部状态不得与更新结构共享内存：
// 更新完成后改动更新结构的指针与切片字段，存储内容保持不变
func TestWriteIsolation(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &model.User{Username: "wiso", Password: "x", Email: "wiso@example.com", FirstName: "a", LastName: "b"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	phone := "+44 20 7946 0000"
	prefs := []byte(`{"fit":"slim"}`)
	update := &model.UserUpdate{Phone: &phone, Preferences: prefs}
	if _, err := s.UpdateUser(ctx, u.ID, update); err != nil {
		t.Fatalf("更新用户失败: %v", err)
	}

	// 事后篡改更新结构
	phone = "hacked"
	prefs[0] = 'X'

	fresh, _ := s.GetUser(ctx, u.ID)
	if fresh.Phone == nil || *fresh.Phone != "+44 20 7946 0000" {
		t.Fatalf("更新结构别名泄漏进存储: %+v", fresh.Phone)
	}
	if string(fresh.Preferences) != `{"fit":"slim"}` {
		t.Fatalf("更新结构切片泄漏进存储: %s", fresh.Preferences)
	}

	// 列表字段同样不共享内存
	cat := &model.ProductCategory{Name: "西装", Slug: "suits", IsActive: true}
	if err := s.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("创建分类失败: %v", err)
	}
	p := &model.Product{CategoryID: cat.ID, Name: "行政西装", BasePrice: 249900, SKU: "SUIT-1", Slug: "suit-1", IsActive: true}
	if err := s.CreateProduct(ctx, p); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	features := []string{"half-canvas"}
	if _, err := s.UpdateProduct(ctx, p.ID, &model.ProductUpdate{Features: features}); err != nil {
		t.Fatalf("更新商品失败: %v", err)
	}
	features[0] = "hacked"

	freshP, _ := s.GetProduct(ctx, p.ID)
	if len(freshP.Features) != 1 || freshP.Features[0] != "half-canvas" {
		t.Fatalf("特性列表别名泄漏进存储: %+v", freshP.Features)
	}
}

// 并发创建同名记录时，恰有一方收到唯一约束错误
func TestConcurrentUniqueCreate(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateUser(ctx, &model.User{
				Username:  "racer",
				Password:  "x",
				Email:     fmt.Sprintf("racer%d@example.com", i),
				FirstName: "a",
				LastName:  "b",
			})
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case storage.IsDuplicate(err):
			dup++
		default:
			t.Fatalf("意外错误: %v", err)
		}
	}
	if ok != 1 || dup != n-1 {
		t.Fatalf("应恰有 1 次成功、%d 次冲突，实际 %d / %d", n-1, ok, dup)
	}
}

// ID 单调递增，删除后不复用
func TestIDMonotonic(t *testing.T) {
	s := New()
	ctx := context.Background()

	f1 := &model.Fabric{Name: "A", Type: "t", Color: "c"}
	f2 := &model.Fabric{Name: "B", Type: "t", Color: "c"}
	if err := s.CreateFabric(ctx, f1); err != nil {
		t.Fatalf("创建面料失败: %v", err)
	}
	if err := s.CreateFabric(ctx, f2); err != nil {
		t.Fatalf("创建面料失败: %v", err)
	}
	if f2.ID <= f1.ID {
		t.Fatalf("ID 应单调递增: %d, %d", f1.ID, f2.ID)
	}
}
