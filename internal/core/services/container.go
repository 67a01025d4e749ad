package services

import (
	portsrepo "github.com/fintrackhq/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/finance_tracker_app/internal/core/ports/services"
)

// ContainerDeps lists the repositories the service container is built from.
type ContainerDeps struct {
	Account     portsrepo.AccountRepository
	Category    portsrepo.CategoryRepository
	Transaction portsrepo.TransactionRepository
	Budget      portsrepo.BudgetRepository
	Store       portsrepo.StoreDiagnostics
}

// NewServiceContainer wires every application service.
func NewServiceContainer(deps ContainerDeps) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(deps.Account),
		Category:    NewCategoryService(deps.Category),
		Transaction: NewTransactionService(deps.Transaction, deps.Account, deps.Category),
		Budget:      NewBudgetService(deps.Budget, deps.Category),
		Summary:     NewSummaryService(deps.Account, deps.Category, deps.Transaction, deps.Budget),
		Diagnostics: NewDiagnosticsService(deps.Store),
	}
}
