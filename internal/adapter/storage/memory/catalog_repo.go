package memory

import (
	"context"

	"nexbank/internal/core/domain"
)

// CatalogRepo implements ports.CatalogRepository over the seed dataset.
// Catalogs are fully immutable, so no locking is needed.
type CatalogRepo struct {
	providers []domain.Provider
	operators []domain.Operator
	packages  map[string][]domain.RechargePackage
}

// NewCatalogRepo creates a CatalogRepo from the seed.
func NewCatalogRepo(seed *Seed) *CatalogRepo {
	providers := make([]domain.Provider, len(seed.Providers))
	copy(providers, seed.Providers)

	operators := make([]domain.Operator, len(seed.Operators))
	copy(operators, seed.Operators)

	packages := make(map[string][]domain.RechargePackage, len(seed.Packages))
	for op, pkgs := range seed.Packages {
		cp := make([]domain.RechargePackage, len(pkgs))
		copy(cp, pkgs)
		packages[op] = cp
	}

	return &CatalogRepo{
		providers: providers,
		operators: operators,
		packages:  packages,
	}
}

// Providers returns bill providers, optionally filtered by category.
// Category "" or "all" returns everything.
func (r *CatalogRepo) Providers(ctx context.Context, category string) ([]domain.Provider, error) {
	if category == "" || category == "all" {
		out := make([]domain.Provider, len(r.providers))
		copy(out, r.providers)
		return out, nil
	}

	var out []domain.Provider
	for _, p := range r.providers {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetProvider returns the provider with the given id, or nil, nil if absent.
func (r *CatalogRepo) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	for i := range r.providers {
		if r.providers[i].ID == id {
			p := r.providers[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Operators returns all mobile operators.
func (r *CatalogRepo) Operators(ctx context.Context) ([]domain.Operator, error) {
	out := make([]domain.Operator, len(r.operators))
	copy(out, r.operators)
	return out, nil
}

// GetOperator returns the operator with the given id, or nil, nil if absent.
func (r *CatalogRepo) GetOperator(ctx context.Context, id string) (*domain.Operator, error) {
	for i := range r.operators {
		if r.operators[i].ID == id {
			o := r.operators[i]
			return &o, nil
		}
	}
	return nil, nil
}

// Packages returns the recharge packages for an operator. Unknown operator
// yields an empty list.
func (r *CatalogRepo) Packages(ctx context.Context, operatorID string) ([]domain.RechargePackage, error) {
	pkgs := r.packages[operatorID]
	out := make([]domain.RechargePackage, len(pkgs))
	copy(out, pkgs)
	return out, nil
}

// GetPackage returns one of an operator's packages by id, or nil, nil if the
// operator has no such package.
func (r *CatalogRepo) GetPackage(ctx context.Context, operatorID, packageID string) (*domain.RechargePackage, error) {
	for _, p := range r.packages[operatorID] {
		if p.ID == packageID {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, nil
}
