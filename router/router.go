package router

import (
	"io/fs"
	"net/http"

	"tracker/api"
	"tracker/config"
	_ "tracker/docs"
	"tracker/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 根路径返回存活提示
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "📝 记账服务运行中")
	})

	// 嵌入的静态文件 - 浏览器客户端页面
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.GET("/app", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API 路由组
	apiGroup := r.Group("/api")
	{
		// 收支记录相关
		transactionHandler := api.NewTransactionHandler()
		transactions := apiGroup.Group("/transactions")
		{
			transactions.GET("", transactionHandler.List)
			transactions.POST("", transactionHandler.Create)
			transactions.PUT("/:id", transactionHandler.Update)
			transactions.DELETE("/:id", transactionHandler.Delete)
		}
		apiGroup.GET("/categories", transactionHandler.GetCategories)
		apiGroup.GET("/summary", transactionHandler.GetSummary)

		// AI分析代理
		insightHandler := api.NewInsightHandler(cfg)
		llm := apiGroup.Group("/llm")
		{
			llm.POST("/insights", insightHandler.Insights)
			llm.POST("/goals", insightHandler.Goals)
		}

		// 导出相关
		exportHandler := api.NewExportHandler()
		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
