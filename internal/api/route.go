package api

import (
	"net/http"

	"panganjawara/internal/api/middleware"
	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/pkg/mongo"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, auditRepo mongo.AuditRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AccessLogMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// Semua endpoint publik menyuntikkan kunci viewer, sehingga
		// like dan komentar tetap teratribusi tanpa login.
		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.ViewerMiddleware())
		{
			postGroup.GET("", group.PostHandler.ListFeed)
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/stats", group.PostActionHandler.GetPostStats)
			postGroup.POST("/:post_id/like", group.PostActionHandler.LikePost)
			postGroup.POST("/:post_id/share", group.PostActionHandler.SharePost)
			postGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
			postGroup.POST("/:post_id/comments", group.PostActionHandler.CreateComment)
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.ViewerMiddleware())
		{
			commentGroup.POST("/:comment_id/like", group.PostActionHandler.LikeComment)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
			mediaGroup.GET("/:image_id/view", group.MediaHandler.View)
			mediaGroup.GET("/:image_id/download", group.MediaHandler.Download)
		}

		articleGroup := apiGroup.Group("/articles")
		{
			articleGroup.GET("", group.ArticleHandler.ListPublished)
			articleGroup.GET("/:article_id", group.ArticleHandler.GetPublished)
		}

		eventGroup := apiGroup.Group("/events")
		{
			eventGroup.GET("/upcoming", group.EventHandler.ListUpcoming)
			eventGroup.GET("", group.EventHandler.ListEvents)
			eventGroup.GET("/:event_id", group.EventHandler.GetEvent)
		}

		videoGroup := apiGroup.Group("/videos")
		{
			videoGroup.GET("", group.VideoHandler.ListVideos)
			videoGroup.GET("/:video_id", group.VideoHandler.GetVideo)
		}

		priceGroup := apiGroup.Group("/prices")
		{
			priceGroup.GET("", group.PriceHandler.GetLatestPrices)
			priceGroup.GET("/history", group.PriceHandler.GetPriceHistory)
		}

		apiGroup.GET("/weather", group.LookupHandler.GetWeather)
		apiGroup.GET("/wilayah/search", group.LookupHandler.SearchWilayah)

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/dashboard", group.StatsHandler.GetDashboard)
			statsGroup.GET("/popular/all", group.StatsHandler.GetPopularPosts)
		}

		apiGroup.GET("/search", group.SearchHandler.Search)
		apiGroup.GET("/ws/stats", group.WsHandler.Connect)

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/login", group.UserHandler.Login)

			authGroup := adminGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(), middleware.AdminAuditMiddleware(auditRepo))
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me", group.UserHandler.GetUserInfo)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)

				authGroup.DELETE("/posts/:post_id", group.PostHandler.DeletePost)
				authGroup.DELETE("/comments/:comment_id", group.PostActionHandler.DeleteComment)
				authGroup.DELETE("/media/:image_id", group.MediaHandler.DeleteImage)

				authGroup.GET("/articles", group.ArticleHandler.ListAll)
				authGroup.GET("/articles/:article_id", group.ArticleHandler.GetArticle)
				authGroup.POST("/articles", group.ArticleHandler.CreateArticle)
				authGroup.PUT("/articles/:article_id", group.ArticleHandler.UpdateArticle)
				authGroup.DELETE("/articles/:article_id", group.ArticleHandler.DeleteArticle)

				authGroup.POST("/events", group.EventHandler.CreateEvent)
				authGroup.PUT("/events/:event_id", group.EventHandler.UpdateEvent)
				authGroup.DELETE("/events/:event_id", group.EventHandler.DeleteEvent)

				authGroup.POST("/videos", group.VideoHandler.CreateVideo)
				authGroup.PUT("/videos/:video_id", group.VideoHandler.UpdateVideo)
				authGroup.DELETE("/videos/:video_id", group.VideoHandler.DeleteVideo)

				authGroup.GET("/stats/audit", group.StatsHandler.GetAuditLog)

				authGroup.POST("/prices/refresh", group.PriceHandler.RefreshPrices)
			}

			// Manajemen akun hanya untuk peran admin
			userAdminGroup := authGroup.Group("/users")
			userAdminGroup.Use(middleware.CheckRoles("admin"))
			{
				userAdminGroup.GET("", group.UserHandler.ListUsers)
				userAdminGroup.POST("", group.UserHandler.CreateUser)
				userAdminGroup.PUT("/:user_id", group.UserHandler.UpdateUser)
				userAdminGroup.DELETE("/:user_id", group.UserHandler.DeleteUser)
			}
		}
	}

	return r
}
