package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub-backend/internal/domains/accesscontrol"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.SecureHeaders(),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
		setupUserRoutes(api, c)
		setupPostRoutes(api, c)
		setupCommentRoutes(api, c)
		setupNotificationRoutes(api, c)
		setupLibraryRoutes(api, c)
		setupGroupRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.POST("/logout", c.UserHandler.Logout)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
// Reads are public, writes require authentication
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
	}

	protected := api.Group("/authors")
	protected.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		protected.POST("", c.AuthorHandler.CreateAuthor)
		protected.PUT("/:id", c.AuthorHandler.UpdateAuthor)
		protected.DELETE("/:id", c.AuthorHandler.DeleteAuthor)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:id", c.BookHandler.GetBook)
	}

	protected := api.Group("/books")
	protected.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		protected.GET("/export", c.BookHandler.ExportBooks)
		protected.POST("", c.BookHandler.CreateBook)
		protected.PUT("/:id", c.BookHandler.UpdateBook)
		protected.PATCH("/:id", c.BookHandler.UpdateBook)
		protected.DELETE("/:id", c.BookHandler.DeleteBook)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.Config.JWT.Secret)

	me := api.Group("/users/me")
	me.Use(authRequired)
	{
		me.GET("", c.UserHandler.GetMe)
		me.PATCH("", c.UserHandler.UpdateMe)
		me.POST("/avatar", c.UserHandler.UploadAvatar)
		me.GET("/permissions", c.AccessControlHandler.GetMyPermissions)
	}

	users := api.Group("/users")
	{
		users.GET("/:id", c.UserHandler.GetUser)
		users.GET("/:id/followers", c.UserHandler.GetFollowers)
		users.GET("/:id/following", c.UserHandler.GetFollowing)

		users.GET("/:id/follow", authRequired, c.UserHandler.GetFollowStatus)
		users.POST("/:id/follow", authRequired, c.UserHandler.Follow)
		users.DELETE("/:id/follow", authRequired, c.UserHandler.Unfollow)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(api *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.Config.JWT.Secret)

	posts := api.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/:id", c.PostHandler.GetPost)
		posts.GET("/:id/comments", c.CommentHandler.ListComments)

		posts.POST("", authRequired, c.PostHandler.CreatePost)
		posts.PUT("/:id", authRequired, c.PostHandler.UpdatePost)
		posts.PATCH("/:id", authRequired, c.PostHandler.UpdatePost)
		posts.DELETE("/:id", authRequired, c.PostHandler.DeletePost)

		posts.POST("/:id/like", authRequired, c.PostHandler.LikePost)
		posts.DELETE("/:id/like", authRequired, c.PostHandler.UnlikePost)

		posts.POST("/:id/comments", authRequired, c.CommentHandler.CreateComment)
	}

	// Feed of posts from followed users
	api.GET("/feed", authRequired, c.PostHandler.GetFeed)
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	comments.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		comments.PUT("/:id", c.CommentHandler.UpdateComment)
		comments.DELETE("/:id", c.CommentHandler.DeleteComment)
	}
}

// ========================================
// NOTIFICATION ROUTES
// ========================================
func setupNotificationRoutes(api *gin.RouterGroup, c *container.Container) {
	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		notifications.GET("", c.NotificationHandler.ListNotifications)
		notifications.GET("/unread-count", c.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", c.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", c.NotificationHandler.MarkRead)
	}
}

// ========================================
// LIBRARY ROUTES
// ========================================
// Every route is gated by a group permission on top of authentication:
// Viewers can only read, Editors can create/edit, Admins can also delete.
func setupLibraryRoutes(api *gin.RouterGroup, c *container.Container) {
	library := api.Group("/library")
	library.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))

	canView := middleware.RequirePermission(c.AccessControlService, accesscontrol.PermCanView)
	canCreate := middleware.RequirePermission(c.AccessControlService, accesscontrol.PermCanCreate)
	canEdit := middleware.RequirePermission(c.AccessControlService, accesscontrol.PermCanEdit)
	canDelete := middleware.RequirePermission(c.AccessControlService, accesscontrol.PermCanDelete)

	libraries := library.Group("/libraries")
	{
		libraries.GET("", canView, c.LibraryHandler.ListLibraries)
		libraries.GET("/:id", canView, c.LibraryHandler.GetLibrary)
		libraries.GET("/:id/books", canView, c.LibraryHandler.ListBooks)

		libraries.POST("", canCreate, c.LibraryHandler.CreateLibrary)

		libraries.PUT("/:id", canEdit, c.LibraryHandler.UpdateLibrary)
		libraries.PUT("/:id/librarian", canEdit, c.LibraryHandler.AssignLibrarian)
		libraries.POST("/:id/books/:bookID", canEdit, c.LibraryHandler.AddBook)
		libraries.DELETE("/:id/books/:bookID", canEdit, c.LibraryHandler.RemoveBook)

		libraries.DELETE("/:id", canDelete, c.LibraryHandler.DeleteLibrary)
	}
}

// ========================================
// GROUP ROUTES
// ========================================
// Membership management is restricted to holders of can_delete,
// which only the Admins group carries.
func setupGroupRoutes(api *gin.RouterGroup, c *container.Container) {
	groups := api.Group("/groups")
	groups.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))

	adminOnly := middleware.RequirePermission(c.AccessControlService, accesscontrol.PermCanDelete)

	{
		groups.GET("", c.AccessControlHandler.ListGroups)
		groups.GET("/:name/members", adminOnly, c.AccessControlHandler.ListMembers)
		groups.POST("/:name/members/:userID", adminOnly, c.AccessControlHandler.AddMember)
		groups.DELETE("/:name/members/:userID", adminOnly, c.AccessControlHandler.RemoveMember)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = err.Error()
		} else {
			health["database"] = "up"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			health["cache"] = "down"
		} else {
			health["cache"] = "up"
		}

		ctx.JSON(status, health)
	}
}
