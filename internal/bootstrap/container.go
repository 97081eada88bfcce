package bootstrap

import (
	"log"

	"notely-be/internal/config"
	"notely-be/internal/controller"
	"notely-be/internal/pkg/logger"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/unitofwork"
	"notely-be/internal/service"
	"notely-be/pkg/storage"

	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	NoteController controller.INoteController
	UserController controller.IUserController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokens := token.NewManager(cfg.Auth.JWTSecret)

	avatars, err := storage.NewMinioStorage(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		UseSSL:        cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize media storage: %v", err)
	}

	// 2. Services
	authService := service.NewAuthService(uowFactory, tokens)
	noteService := service.NewNoteService(uowFactory)
	userService := service.NewUserService(uowFactory, avatars, sysLogger)

	// 3. Middleware
	authMiddleware := serverutils.NewAuthMiddleware(tokens, uowFactory)

	// 4. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		NoteController: controller.NewNoteController(noteService, authMiddleware),
		UserController: controller.NewUserController(userService, noteService, authMiddleware),

		Logger: sysLogger,
	}
}
