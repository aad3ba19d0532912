package service

import (
	"context"
	"errors"
	"testing"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/storage"
	"emperor_bespoke_v1/internal/storage/memstore"
)

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := NewUserService(memstore.New())
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterReq{
		Username:  "johndoe",
		Password:  "password123",
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.ID <= 0 {
		t.Fatal("注册后应分配 ID")
	}
	if user.Password == "password123" {
		t.Fatal("密码应加密存储")
	}

	// 重复注册
	_, err = svc.Register(ctx, &dto.RegisterReq{
		Username:  "johndoe",
		Password:  "password123",
		Email:     "other@example.com",
		FirstName: "John",
		LastName:  "Doe",
	})
	if !storage.IsDuplicate(err) {
		t.Fatalf("重复用户名应返回唯一约束错误，实际 %v", err)
	}

	// 登录
	resp, err := svc.Login(ctx, &dto.LoginReq{Username: "johndoe", Password: "password123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.Token == "" || resp.UserID != user.ID {
		t.Fatalf("登录响应错误: %+v", resp)
	}

	// 登录后写入最后登录时间
	profile, err := svc.GetProfile(ctx, user.ID)
	if err != nil || profile.LastLoginAt == nil {
		t.Fatalf("最后登录时间未写入: %v, %+v", err, profile)
	}

	// 错误密码 / 未知用户
	if _, err := svc.Login(ctx, &dto.LoginReq{Username: "johndoe", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("错误密码应拒绝登录，实际 %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginReq{Username: "nobody", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("未知用户应拒绝登录，实际 %v", err)
	}
}

func TestUserService_DefaultMeasurementExclusive(t *testing.T) {
	svc := NewUserService(memstore.New())
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterReq{
		Username: "fitter", Password: "password123", Email: "fitter@example.com",
		FirstName: "a", LastName: "b",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	m1, err := svc.CreateMeasurement(ctx, user.ID, &dto.MeasurementReq{Name: "商务西装", IsDefault: true})
	if err != nil {
		t.Fatalf("创建量体记录失败: %v", err)
	}
	m2, err := svc.CreateMeasurement(ctx, user.ID, &dto.MeasurementReq{Name: "礼服", IsDefault: true})
	if err != nil {
		t.Fatalf("创建量体记录失败: %v", err)
	}

	list, err := svc.ListMeasurements(ctx, user.ID)
	if err != nil {
		t.Fatalf("查询量体记录失败: %v", err)
	}
	var defaults int
	for _, m := range list {
		if m.IsDefault {
			defaults++
			if m.ID != m2.ID {
				t.Fatalf("默认标记应在最新记录上: %+v", m)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("默认记录应唯一，实际 %d 条", defaults)
	}

	// 把默认标记改回 m1
	on := true
	if _, err := svc.UpdateMeasurement(ctx, user.ID, m1.ID, &dto.MeasurementUpdateReq{IsDefault: &on}); err != nil {
		t.Fatalf("更新默认标记失败: %v", err)
	}
	list, _ = svc.ListMeasurements(ctx, user.ID)
	for _, m := range list {
		if m.IsDefault != (m.ID == m1.ID) {
			t.Fatalf("默认标记互斥被破坏: %+v", list)
		}
	}
}

func TestUserService_MeasurementOwnership(t *testing.T) {
	store := memstore.New()
	svc := NewUserService(store)
	ctx := context.Background()

	alice, _ := svc.Register(ctx, &dto.RegisterReq{Username: "alice", Password: "password123", Email: "alice@example.com", FirstName: "a", LastName: "b"})
	bob, _ := svc.Register(ctx, &dto.RegisterReq{Username: "bob", Password: "password123", Email: "bob@example.com", FirstName: "a", LastName: "b"})

	m, err := svc.CreateMeasurement(ctx, alice.ID, &dto.MeasurementReq{Name: "西装"})
	if err != nil {
		t.Fatalf("创建量体记录失败: %v", err)
	}

	if err := svc.DeleteMeasurement(ctx, bob.ID, m.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("他人记录应拒绝删除，实际 %v", err)
	}
	name := "改名"
	if _, err := svc.UpdateMeasurement(ctx, bob.ID, m.ID, &dto.MeasurementUpdateReq{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("他人记录应拒绝修改，实际 %v", err)
	}
	if err := svc.DeleteMeasurement(ctx, alice.ID, m.ID); err != nil {
		t.Fatalf("本人删除失败: %v", err)
	}
}
