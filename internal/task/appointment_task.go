package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"emperor_bespoke_v1/internal/storage"
)

// AppointmentTask 预约收尾任务
// 定时将已过预约时间、仍处于 scheduled 的预约标记为 completed
type AppointmentTask struct {
	store storage.AppointmentStore
	Cron  *cron.Cron
}

func NewAppointmentTask(store storage.AppointmentStore) *AppointmentTask {
	return &AppointmentTask{
		store: store,
		Cron:  cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *AppointmentTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在执行首次预约收尾检查...")
		t.sweepJob(ctx)
	}()

	// 每 30 分钟扫一次
	_, err := t.Cron.AddFunc("0 0/30 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.sweepJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动预约收尾任务: %v", err)
	}

	t.Cron.Start()
	log.Println("预约收尾任务已启动 (每30分钟检查一次)")
}

// Stop 停止定时任务
func (t *AppointmentTask) Stop() {
	if t.Cron != nil {
		t.Cron.Stop()
	}
}

func (t *AppointmentTask) sweepJob(ctx context.Context) {
	n, err := t.store.CompletePastAppointments(ctx, time.Now())
	if err != nil {
		log.Printf("[Task] 预约收尾失败: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Task] 预约收尾完成，标记 %d 条预约为已完成", n)
	}
}
