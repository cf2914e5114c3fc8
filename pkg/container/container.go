package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookhub-backend/internal/config"
	infraCache "bookhub-backend/internal/infrastructure/cache"
	"bookhub-backend/internal/infrastructure/database"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/internal/infrastructure/storage"
	"bookhub-backend/pkg/cache"
	"bookhub-backend/pkg/jwt"

	"bookhub-backend/internal/domains/accesscontrol"
	acHandler "bookhub-backend/internal/domains/accesscontrol/handler"
	acRepo "bookhub-backend/internal/domains/accesscontrol/repository"
	acService "bookhub-backend/internal/domains/accesscontrol/service"
	"bookhub-backend/internal/domains/author"
	authorHandler "bookhub-backend/internal/domains/author/handler"
	authorRepo "bookhub-backend/internal/domains/author/repository"
	authorService "bookhub-backend/internal/domains/author/service"
	"bookhub-backend/internal/domains/book"
	bookHandler "bookhub-backend/internal/domains/book/handler"
	bookRepo "bookhub-backend/internal/domains/book/repository"
	bookService "bookhub-backend/internal/domains/book/service"
	"bookhub-backend/internal/domains/comment"
	commentHandler "bookhub-backend/internal/domains/comment/handler"
	commentRepo "bookhub-backend/internal/domains/comment/repository"
	commentService "bookhub-backend/internal/domains/comment/service"
	"bookhub-backend/internal/domains/library"
	libraryHandler "bookhub-backend/internal/domains/library/handler"
	libraryRepo "bookhub-backend/internal/domains/library/repository"
	libraryService "bookhub-backend/internal/domains/library/service"
	"bookhub-backend/internal/domains/notification"
	notificationHandler "bookhub-backend/internal/domains/notification/handler"
	notificationRepo "bookhub-backend/internal/domains/notification/repository"
	notificationService "bookhub-backend/internal/domains/notification/service"
	"bookhub-backend/internal/domains/post"
	postHandler "bookhub-backend/internal/domains/post/handler"
	postRepo "bookhub-backend/internal/domains/post/repository"
	postService "bookhub-backend/internal/domains/post/service"
	"bookhub-backend/internal/domains/user"
	userHandler "bookhub-backend/internal/domains/user/handler"
	userRepo "bookhub-backend/internal/domains/user/repository"
	userService "bookhub-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. Everything in it is a singleton.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Producer   *queue.Producer
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo        author.Repository
	BookRepo          book.Repository
	UserRepo          user.Repository
	PostRepo          post.Repository
	CommentRepo       comment.Repository
	LibraryRepo       library.Repository
	AccessControlRepo accesscontrol.Repository
	NotificationRepo  notification.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService        author.Service
	BookService          book.Service
	UserService          user.Service
	PostService          post.Service
	CommentService       comment.Service
	LibraryService       library.Service
	AccessControlService accesscontrol.Service
	NotificationService  notification.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler        *authorHandler.AuthorHandler
	BookHandler          *bookHandler.BookHandler
	UserHandler          *userHandler.UserHandler
	PostHandler          *postHandler.PostHandler
	CommentHandler       *commentHandler.CommentHandler
	LibraryHandler       *libraryHandler.LibraryHandler
	AccessControlHandler *acHandler.AccessControlHandler
	NotificationHandler  *notificationHandler.NotificationHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
// A wrong order panics on a nil dependency, so keep the steps sorted.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is not critical - log a warning and continue,
	// repositories degrade to uncached reads
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO connected")

	// ========================================
	// STEP 5: INITIALIZE TASK QUEUE + JWT
	// ========================================
	c.Producer = queue.NewProducer(cfg.Redis.Host)

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// ========================================
	// STEP 6: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 7: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 8: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresAuthorRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresBookRepository(pool, c.Cache)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.LibraryRepo = libraryRepo.NewPostgresLibraryRepository(pool)
	c.AccessControlRepo = acRepo.NewPostgresAccessControlRepository(pool)
	c.NotificationRepo = notificationRepo.NewPostgresNotificationRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	// Cross-domain dependency: book creation verifies the author exists
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)

	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Producer,
		c.Storage,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.PostService = postService.NewPostService(c.PostRepo, c.Producer)

	// Comments verify the parent post and notify its author
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo, c.Producer)

	c.LibraryService = libraryService.NewLibraryService(c.LibraryRepo)

	c.AccessControlService = acService.NewAccessControlService(c.AccessControlRepo, c.Cache)

	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.LibraryHandler = libraryHandler.NewLibraryHandler(c.LibraryService)
	c.AccessControlHandler = acHandler.NewAccessControlHandler(c.AccessControlService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
}

// ========================================
// CLEANUP
// ========================================

// Close releases infrastructure resources in reverse init order
func (c *Container) Close() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			log.Printf("⚠️  Error closing queue producer: %v", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Error closing Redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Container cleanup complete")
}
