package service

import (
	"github.com/sellora/sellora/internal/cache"
	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	"github.com/sellora/sellora/internal/logger"
)

// ServiceParams holds the common dependencies injected into services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	OrderRepo    order.Repository
	ProductRepo  product.Repository
	CustomerRepo customer.Repository
}
