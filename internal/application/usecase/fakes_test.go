package usecase_test

import (
	"context"

	"github.com/Carolinyr9/estocai/internal/domain"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
	"github.com/Carolinyr9/estocai/internal/domain/repository"
)

// Fakes em memória dos portos de persistência, no lugar do PostgreSQL.
// Devolvem cópias para simular a fronteira de persistência.

type fakeCategoryRepo struct {
	store map[string]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{store: make(map[string]entity.Category)}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, other := range f.store {
		if other.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	f.store[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := f.store[id]; ok {
		clone := c
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.store {
		if c.Name == name {
			clone := c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.store[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(f.store))
	for _, c := range f.store {
		clone := c
		all = append(all, &clone)
	}
	return page(all, limit, offset), nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.store, id)
	return nil
}

type fakeProductRepo struct {
	store map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{store: make(map[string]entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	for _, other := range f.store {
		if other.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	f.store[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.store[id]; ok {
		clone := p
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.store {
		if p.Name == name {
			clone := p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.store[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(f.store))
	for _, p := range f.store {
		clone := p
		all = append(all, &clone)
	}
	return page(all, limit, offset), nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.store, id)
	return nil
}

type fakeMovementRepo struct {
	rows []entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{}
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	return f.filter(func(entity.Movement) bool { return true }, limit, offset), nil
}

func (f *fakeMovementRepo) ListByType(movementType string, limit, offset int) ([]*entity.Movement, error) {
	return f.filter(func(m entity.Movement) bool { return m.Type == movementType }, limit, offset), nil
}

func (f *fakeMovementRepo) ListByDescription(description string, limit, offset int) ([]*entity.Movement, error) {
	return f.filter(func(m entity.Movement) bool { return m.Description == description }, limit, offset), nil
}

func (f *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	return f.filter(func(m entity.Movement) bool { return m.ProductID == productID }, limit, offset), nil
}

func (f *fakeMovementRepo) filter(keep func(entity.Movement) bool, limit, offset int) []*entity.Movement {
	var all []*entity.Movement
	for i := range f.rows {
		if keep(f.rows[i]) {
			clone := f.rows[i]
			all = append(all, &clone)
		}
	}
	return page(all, limit, offset)
}

// last devolve a movimentação mais recente gravada, ou nil.
func (f *fakeMovementRepo) last() *entity.Movement {
	if len(f.rows) == 0 {
		return nil
	}
	clone := f.rows[len(f.rows)-1]
	return &clone
}

type fakeUserRepo struct {
	store map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{store: make(map[string]entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, other := range f.store {
		if other.Username == u.Username || other.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	f.store[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.store[id]; ok {
		clone := u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.store {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.store {
		if u.Email == email {
			clone := u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.store[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.store, id)
	return nil
}

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	movements *fakeMovementRepo
	products  *fakeProductRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.movements, f.products)
}

func page[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
