// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stockee/backend/config"
	"github.com/stockee/backend/internal/application/adapter"
	"github.com/stockee/backend/internal/application/authz"
	"github.com/stockee/backend/internal/application/usecase/auth"
	"github.com/stockee/backend/internal/application/usecase/category"
	"github.com/stockee/backend/internal/application/usecase/group"
	"github.com/stockee/backend/internal/application/usecase/item"
	"github.com/stockee/backend/internal/infra/server/router"
	"github.com/stockee/backend/internal/integration/adapters"
	"github.com/stockee/backend/internal/integration/email"
	"github.com/stockee/backend/internal/integration/email/templates"
	"github.com/stockee/backend/internal/integration/entrypoint/controller"
	"github.com/stockee/backend/internal/integration/entrypoint/middleware"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/integration/ratelimit"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker

	// populated only when rate limits live in process memory
	memoryLimiters []*ratelimit.MemoryLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbCheck controller.HealthCheck) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	groupRepo := persistence.NewGroupRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	itemRepo := persistence.NewItemRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenServiceWithDurations(
		cfg.JWT.Secret,
		tokenRepo,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	authorizer := authz.NewAuthorizer(groupRepo, categoryRepo, itemRepo)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		resendClient, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ResendBaseURL)
		if err != nil {
			return nil, err
		}
		sender = resendClient
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
		sender = email.NewLogSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService, tokenService)

	// Create group use cases
	createGroupUseCase := group.NewCreateGroupUseCase(groupRepo)
	listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
	getGroupUseCase := group.NewGetGroupUseCase(groupRepo, userRepo, categoryRepo, authorizer)
	deleteGroupUseCase := group.NewDeleteGroupUseCase(groupRepo, authorizer)
	leaveGroupUseCase := group.NewLeaveGroupUseCase(groupRepo)
	removeMemberUseCase := group.NewRemoveMemberUseCase(groupRepo, authorizer)
	regenerateInviteCodeUseCase := group.NewRegenerateInviteCodeUseCase(groupRepo, authorizer)
	sendInvitationUseCase := group.NewSendInvitationUseCase(userRepo, emailService, authorizer)
	invitePreviewUseCase := group.NewGetInvitePreviewUseCase(groupRepo, userRepo)
	joinGroupUseCase := group.NewJoinGroupUseCase(groupRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, authorizer)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, authorizer)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, authorizer)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, authorizer)
	reorderCategoriesUseCase := category.NewReorderCategoriesUseCase(categoryRepo, authorizer)

	// Create item use cases
	listItemsUseCase := item.NewListItemsUseCase(itemRepo, authorizer)
	getItemUseCase := item.NewGetItemUseCase(authorizer)
	createItemUseCase := item.NewCreateItemUseCase(itemRepo, categoryRepo, authorizer)
	updateItemUseCase := item.NewUpdateItemUseCase(itemRepo, categoryRepo, authorizer)
	deleteItemUseCase := item.NewDeleteItemUseCase(itemRepo, authorizer)
	adjustStockUseCase := item.NewAdjustStockUseCase(itemRepo, authorizer)
	reorderItemsUseCase := item.NewReorderItemsUseCase(itemRepo, authorizer)

	// Create controllers
	checks := map[string]controller.HealthCheck{"database": dbCheck}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	healthController := controller.NewHealthController(checks)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
	)

	groupController := controller.NewGroupController(
		createGroupUseCase,
		listGroupsUseCase,
		getGroupUseCase,
		deleteGroupUseCase,
		leaveGroupUseCase,
		removeMemberUseCase,
		regenerateInviteCodeUseCase,
		sendInvitationUseCase,
	)

	inviteController := controller.NewInviteController(invitePreviewUseCase, joinGroupUseCase)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoriesUseCase,
	)

	itemController := controller.NewItemController(
		listItemsUseCase,
		getItemUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		adjustStockUseCase,
		reorderItemsUseCase,
	)

	// Create middleware
	loginPolicy := ratelimit.Policy{MaxAttempts: cfg.RateLimit.LoginAttempts, Window: cfg.RateLimit.Window}
	joinPolicy := ratelimit.Policy{MaxAttempts: cfg.RateLimit.JoinAttempts, Window: cfg.RateLimit.Window}
	loginLimiter, joinLimiter, memoryLimiters := newLimiters(redisClient, loginPolicy, joinPolicy)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(router.Controllers{
		Health:   healthController,
		Auth:     authController,
		User:     userController,
		Group:    groupController,
		Invite:   inviteController,
		Category: categoryController,
		Item:     itemController,
	}, authMiddleware, loginLimiter, joinLimiter, cfg.CORS.AllowedOrigins)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,

		memoryLimiters: memoryLimiters,
	}, nil
}

// StartLimiterCleanup evicts expired in-memory rate limit counters every
// interval until ctx is done. It is a no-op when limits are kept in Redis.
func (i *Injector) StartLimiterCleanup(ctx context.Context, interval time.Duration) {
	for _, limiter := range i.memoryLimiters {
		go limiter.StartCleanup(ctx, interval)
	}
}

func newLimiters(client *redis.Client, login, join ratelimit.Policy) (ratelimit.Limiter, ratelimit.Limiter, []*ratelimit.MemoryLimiter) {
	if client == nil {
		loginLimiter, joinLimiter := ratelimit.NewMemoryLimiter(login), ratelimit.NewMemoryLimiter(join)
		return loginLimiter, joinLimiter, []*ratelimit.MemoryLimiter{loginLimiter, joinLimiter}
	}
	return ratelimit.NewRedisLimiter(client, "login", login), ratelimit.NewRedisLimiter(client, "join", join), nil
}

// NewRedisClient parses url and verifies the server answers. An empty url
// returns a nil client.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
