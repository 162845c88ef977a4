package bootstrap

import (
	"context"
	"log"

	"team-notes-be/internal/config"
	"team-notes-be/internal/controller"
	"team-notes-be/internal/pkg/logger"
	"team-notes-be/internal/repository/implementation"
	"team-notes-be/internal/service"
	"team-notes-be/pkg/blobstore"
	"team-notes-be/pkg/blobstore/gormstore"
	"team-notes-be/pkg/blobstore/memory"
	"team-notes-be/pkg/blobstore/redisstore"
	"team-notes-be/pkg/database"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	TeamController controller.ITeamController
	NoteController controller.INoteController

	// Shared facades
	Logger logger.ILogger
}

// NewContainer wires the store driver, repositories, services and
// controllers. The container is built once per process and handed to the
// server; there is no other store instance.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	store := newStore(cfg, sysLogger)

	// Repositories (one collection each, same store)
	tenantRepo := implementation.NewTenantRepository(store)
	membershipRepo := implementation.NewMembershipRepository(store)
	noteRepo := implementation.NewNoteRepository(store)
	userRepo := implementation.NewUserRepository(store)

	// Services
	membershipService := service.NewMembershipService(membershipRepo, tenantRepo)
	tenantService := service.NewTenantService(tenantRepo, membershipRepo, membershipService)
	noteService := service.NewNoteService(noteRepo, tenantRepo)
	authService := service.NewAuthService(userRepo)

	return &Container{
		AuthController: controller.NewAuthController(authService),
		TeamController: controller.NewTeamController(tenantService, membershipService),
		NoteController: controller.NewNoteController(noteService, membershipService),
		Logger:         sysLogger,
	}
}

func newStore(cfg *config.Config, sysLogger logger.ILogger) blobstore.Store {
	switch cfg.Store.Driver {
	case "redis":
		store, err := redisstore.New(context.Background(), cfg.Store.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to redis store: %v", err)
		}
		sysLogger.Info("bootstrap", "using redis blob store", map[string]interface{}{"url": cfg.Store.RedisURL})
		return store
	case "postgres":
		db, err := database.NewGormDBFromDSN(cfg.Store.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect to postgres store: %v", err)
		}
		store, err := gormstore.New(db)
		if err != nil {
			log.Fatalf("[FATAL] Failed to migrate postgres store: %v", err)
		}
		sysLogger.Info("bootstrap", "using postgres blob store", nil)
		return store
	default:
		sysLogger.Info("bootstrap", "using in-memory blob store", nil)
		return memory.New()
	}
}
