package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/config"
	"emperor_bespoke_v1/internal/controller"
	"emperor_bespoke_v1/internal/middleware"
	"emperor_bespoke_v1/internal/model"
	"emperor_bespoke_v1/internal/router"
	"emperor_bespoke_v1/internal/service"
	"emperor_bespoke_v1/internal/storage"
	"emperor_bespoke_v1/internal/storage/dbstore"
	"emperor_bespoke_v1/internal/storage/memstore"
	"emperor_bespoke_v1/internal/task"
	"emperor_bespoke_v1/pkg/database"
)

func main() {
	// 1. 加载配置
	cfg := config.Load()
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.SecretKey,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		Issuer:         cfg.JWT.Issuer,
	})

	// 2. 初始化存储后端
	store := initStore(cfg)

	// 3. 初始化依赖
	deps := initDependencies(store)

	// 4. 启动定时任务
	initTasks(store)

	// 5. 初始化路由
	r := gin.Default()
	router.InitRoutes(r,
		deps.Controllers.User,
		deps.Controllers.Catalog,
		deps.Controllers.Design,
		deps.Controllers.Appointment,
		deps.Controllers.Order,
		deps.Controllers.Content,
	)

	// 6. 启动服务
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Store       storage.Store
	Services    *Services
	Controllers *Controllers
}

// Services 服务集合
type Services struct {
	User        *service.UserService
	Catalog     *service.CatalogService
	Design      *service.DesignService
	Appointment *service.AppointmentService
	Order       *service.OrderService
	Content     *service.ContentService
}

// Controllers 控制器集合
type Controllers struct {
	User        *controller.UserController
	Catalog     *controller.CatalogController
	Design      *controller.DesignController
	Appointment *controller.AppointmentController
	Order       *controller.OrderController
	Content     *controller.ContentController
}

// ==================== 初始化函数 ====================

// initStore 按配置选择存储后端
// memory: 进程内存储，可选写入演示数据；postgres: 关系型后端
func initStore(cfg *config.Config) storage.Store {
	switch cfg.Server.StorageBackend {
	case "postgres":
		opts := database.DefaultOptions()
		opts.MaxIdleConns = cfg.Database.MaxIdleConns
		opts.MaxOpenConns = cfg.Database.MaxOpenConns
		opts.ConnMaxLifetime = cfg.Database.ConnMaxLifetime

		db, err := database.InitDB(cfg.Database.DSN, opts,
			// 用户与量体
			&model.User{}, &model.Measurement{},
			// 商品目录
			&model.ProductCategory{}, &model.Product{}, &model.Fabric{},
			// 定制与预约
			&model.CustomDesign{}, &model.Appointment{},
			// 订单
			&model.Order{}, &model.OrderItem{},
			// 橱窗内容
			&model.Collection{}, &model.Testimonial{},
		)
		if err != nil {
			log.Fatalf("数据库初始化失败: %v", err)
		}
		return dbstore.New(db)

	case "memory":
		store := memstore.New()
		if cfg.Server.SeedDemoData {
			if err := store.Seed(); err != nil {
				log.Fatalf("演示数据写入失败: %v", err)
			}
			log.Println("内存后端已写入演示数据")
		}
		return store

	default:
		log.Fatalf("未知存储后端: %s (可选 memory | postgres)", cfg.Server.StorageBackend)
		return nil
	}
}

// initDependencies 初始化所有依赖
func initDependencies(store storage.Store) *Dependencies {
	// -------- 业务服务 --------
	services := &Services{
		User:        service.NewUserService(store),
		Catalog:     service.NewCatalogService(store),
		Design:      service.NewDesignService(store),
		Appointment: service.NewAppointmentService(store),
		Order:       service.NewOrderService(store),
		Content:     service.NewContentService(store),
	}

	// -------- Controller 层 --------
	controllers := &Controllers{
		User:        controller.NewUserController(services.User),
		Catalog:     controller.NewCatalogController(services.Catalog),
		Design:      controller.NewDesignController(services.Design),
		Appointment: controller.NewAppointmentController(services.Appointment),
		Order:       controller.NewOrderController(services.Order),
		Content:     controller.NewContentController(services.Content),
	}

	return &Dependencies{
		Store:       store,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(store storage.Store) {
	// 预约收尾
	appointmentTask := task.NewAppointmentTask(store)
	appointmentTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
