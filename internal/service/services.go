package service

import (
	"github.com/MKhiriev/go-user-posts/internal/config"
	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/store"
	"github.com/MKhiriev/go-user-posts/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewSchemaValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(storages.UserRepository, storages.SessionCache, validator, cfg.App, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionCache, userService, validator, cfg.App, logger),
		UserService:    userService,
		PostService:    NewPostService(storages.PostRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
