package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"emperor_bespoke_v1/internal/api/dto"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/storage/memstore"
)

func newAppointmentFixture(t *testing.T) (*memstore.Store, *AppointmentService, *model.User) {
	t.Helper()
	store := memstore.New()
	user := &model.User{Username: "visitor", Password: "x", Email: "visitor@example.com", FirstName: "a", LastName: "b"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return store, NewAppointmentService(store), user
}

func TestAppointmentService_Book(t *testing.T) {
	_, svc, user := newAppointmentFixture(t)
	ctx := context.Background()

	// 过去的时间不可预约
	_, err := svc.Book(ctx, user.ID, &dto.AppointmentReq{
		Date: time.Now().Add(-time.Hour), Type: "consultation",
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("过去时间应被拒绝，实际 %v", err)
	}

	a, err := svc.Book(ctx, user.ID, &dto.AppointmentReq{
		Date: time.Now().Add(48 * time.Hour), TimeSlot: "14:00-15:00", Type: "consultation",
	})
	if err != nil {
		t.Fatalf("预约失败: %v", err)
	}
	if a.Status != model.AppointmentScheduled || a.Location != "London Boutique" || a.Duration != 60 {
		t.Fatalf("预约默认值错误: %+v", a)
	}

	// virtual 类型强制线上标记
	v, err := svc.Book(ctx, user.ID, &dto.AppointmentReq{
		Date: time.Now().Add(72 * time.Hour), Type: "virtual",
	})
	if err != nil {
		t.Fatalf("预约失败: %v", err)
	}
	if !v.IsVirtual {
		t.Fatal("virtual 预约应强制 is_virtual")
	}
}

func TestAppointmentService_OwnershipAndCancel(t *testing.T) {
	store, svc, user := newAppointmentFixture(t)
	ctx := context.Background()

	other := &model.User{Username: "other", Password: "x", Email: "other@example.com", FirstName: "a", LastName: "b"}
	if err := store.CreateUser(ctx, other); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	a, err := svc.Book(ctx, user.ID, &dto.AppointmentReq{
		Date: time.Now().Add(48 * time.Hour), Type: "fitting",
	})
	if err != nil {
		t.Fatalf("预约失败: %v", err)
	}

	// 他人预约不可见、不可取消
	if _, err := svc.Get(ctx, other.ID, a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("他人预约应拒绝访问，实际 %v", err)
	}
	if _, err := svc.Cancel(ctx, other.ID, a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("他人预约应拒绝取消，实际 %v", err)
	}

	// 本人取消 + 幂等重复取消
	cancelled, err := svc.Cancel(ctx, user.ID, a.ID)
	if err != nil || cancelled.Status != model.AppointmentCancelled {
		t.Fatalf("取消失败: %v, %+v", err, cancelled)
	}
	again, err := svc.Cancel(ctx, user.ID, a.ID)
	if err != nil || again.Status != model.AppointmentCancelled {
		t.Fatalf("重复取消应幂等: %v, %+v", err, again)
	}

	// 已取消预约不可改期
	slot := "16:00-17:00"
	if _, err := svc.Update(ctx, user.ID, a.ID, &dto.AppointmentUpdateReq{TimeSlot: &slot}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("已取消预约应拒绝修改，实际 %v", err)
	}
}
