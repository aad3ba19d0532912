package router

import (
	"github.com/gin-gonic/gin"

	"emperor_bespoke_v1/internal/controller"
	"emperor_bespoke_v1/internal/middleware"
)

// InitRoutes 注册所有路由
// 公开路由: 认证、橱窗浏览（分类/商品/面料/系列/评价/公开方案）
// 鉴权路由: 用户资料、量体数据、定制方案、预约、订单
func InitRoutes(r *gin.Engine,
	userCtl *controller.UserController,
	catalogCtl *controller.CatalogController,
	designCtl *controller.DesignController,
	appointmentCtl *controller.AppointmentController,
	orderCtl *controller.OrderController,
	contentCtl *controller.ContentController) {

	api := r.Group("/api")
	{
		// auth 认证组
		auth := api.Group("/auth")
		{
			// POST /api/auth/register
			auth.POST("/register", userCtl.Register)
			// POST /api/auth/login
			auth.POST("/login", userCtl.Login)
		}

		// 分类（公开浏览，写操作留给后台）
		categories := api.Group("/categories")
		{
			categories.GET("", catalogCtl.ListCategories)
			categories.GET("/:id", catalogCtl.GetCategory)
			categories.GET("/slug/:slug", catalogCtl.GetCategoryBySlug)
			categories.POST("", catalogCtl.CreateCategory)
			categories.PUT("/:id", catalogCtl.UpdateCategory)
			categories.DELETE("/:id", catalogCtl.DeleteCategory)
		}

		// 商品
		products := api.Group("/products")
		{
			products.GET("", catalogCtl.ListProducts)
			products.GET("/:id", catalogCtl.GetProduct)
			products.GET("/slug/:slug", catalogCtl.GetProductBySlug)
			products.POST("", catalogCtl.CreateProduct)
			products.PUT("/:id", catalogCtl.UpdateProduct)
			products.DELETE("/:id", catalogCtl.DeleteProduct)
		}

		// 面料
		fabrics := api.Group("/fabrics")
		{
			fabrics.GET("", catalogCtl.ListFabrics)
			fabrics.GET("/:id", catalogCtl.GetFabric)
			fabrics.POST("", catalogCtl.CreateFabric)
			fabrics.PUT("/:id", catalogCtl.UpdateFabric)
		}

		// 系列橱窗
		collections := api.Group("/collections")
		{
			collections.GET("", contentCtl.ListCollections)
			collections.GET("/:id", contentCtl.GetCollection)
			collections.GET("/slug/:slug", contentCtl.GetCollectionBySlug)
			collections.POST("", contentCtl.CreateCollection)
		}

		// 顾客评价
		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", contentCtl.ListTestimonials)
			testimonials.GET("/:id", contentCtl.GetTestimonial)
			testimonials.POST("", contentCtl.CreateTestimonial)
		}

		// 公开定制方案橱窗
		// GET /api/designs/public
		api.GET("/designs/public", designCtl.ListPublicDesigns)

		// ==================== 以下需要登录 ====================
		authed := api.Group("")
		authed.Use(middleware.JWTAuth())
		{
			// 用户资料
			user := authed.Group("/user")
			{
				user.GET("/profile", userCtl.GetProfile)
				user.PUT("/profile", userCtl.UpdateProfile)

				// 量体数据
				user.POST("/measurements", userCtl.CreateMeasurement)
				user.GET("/measurements", userCtl.ListMeasurements)
				user.PUT("/measurements/:id", userCtl.UpdateMeasurement)
				user.DELETE("/measurements/:id", userCtl.DeleteMeasurement)
			}

			// 定制方案
			designs := authed.Group("/designs")
			{
				designs.POST("", designCtl.CreateDesign)
				designs.GET("", designCtl.ListMyDesigns)
				designs.GET("/:id", designCtl.GetDesign)
				designs.PUT("/:id", designCtl.UpdateDesign)
				designs.DELETE("/:id", designCtl.DeleteDesign)
			}

			// 预约
			appointments := authed.Group("/appointments")
			{
				appointments.POST("", appointmentCtl.Book)
				appointments.GET("", appointmentCtl.List)
				appointments.GET("/:id", appointmentCtl.Get)
				appointments.PUT("/:id", appointmentCtl.Update)
				appointments.POST("/:id/cancel", appointmentCtl.Cancel)
			}

			// 订单
			orders := authed.Group("/orders")
			{
				orders.POST("", orderCtl.Create)
				orders.GET("", orderCtl.List)
				orders.GET("/:id", orderCtl.Get)
				orders.GET("/number/:number", orderCtl.GetByNumber)
				orders.PUT("/:id/status", orderCtl.UpdateStatus)
				orders.PUT("/:id/payment", orderCtl.UpdatePaymentStatus)
			}
		}
	}
}
