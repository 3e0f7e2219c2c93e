package services

import (
	portsrepo "github.com/SscSPs/share_register/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/platform/config"
	"github.com/SscSPs/share_register/internal/utils/export"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize tenant service first since every other service authorizes through it
	container.Tenant = NewTenantService(repos.TenantRepo)
	authorizer := WithTenantAuthorizer(container.Tenant)

	container.Shareholder = NewShareholderService(repos.ShareholderRepo, repos.PositionRepo, repos.LedgerRepo, authorizer)
	container.ShareClass = NewShareClassService(repos.ShareClassRepo, authorizer)

	validator := NewTransactionValidator(repos.ShareholderRepo, repos.ShareClassRepo, repos.PositionRepo)
	container.ShareTransaction = NewShareTransactionService(repos.LedgerRepo, validator, authorizer)

	container.CapTable = NewCapTableService(repos, export.NewFormatter(cfg.ExportDelimiter), authorizer)

	return container
}
