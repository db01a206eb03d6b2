package usecase

import (
	"cinerate/internal/data/repository"
	"cinerate/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Review  ReviewService
}

func NewService(repo *repository.Repository, catalog CatalogGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Catalog: NewCatalogService(catalog, log),
		Review:  NewReviewService(repo, log),
	}
}
