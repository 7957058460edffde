package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumaran/petti-kadai-api/internal/application/usecase"
	"github.com/skumaran/petti-kadai-api/internal/domain"
	"github.com/skumaran/petti-kadai-api/internal/domain/entity"
	"github.com/skumaran/petti-kadai-api/internal/domain/repository"
)

// memCustomerRepo is a map-backed CustomerRepository. It counts Update and
// SettleCredit calls so tests can assert which write path a use case took.
type memCustomerRepo struct {
	byID        map[string]*entity.Customer
	updateCalls int
	settleCalls int
}

var _ repository.CustomerRepository = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	for _, c := range r.byID {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) { return r.GetByID(id) }

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	r.updateCalls++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) List(string, int, int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomerRepo) SettleCredit(id string, amount decimal.Decimal) (*entity.Customer, error) {
	r.settleCalls++
	c, ok := r.byID[id]
	if !ok || c.OutstandingBalance.LessThan(amount) {
		return nil, nil
	}
	c.OutstandingBalance = c.OutstandingBalance.Sub(amount)
	cp := *c
	return &cp, nil
}

func newCustomerUC() (*usecase.CustomerUseCase, *memCustomerRepo) {
	repo := &memCustomerRepo{byID: map[string]*entity.Customer{}}
	return usecase.NewCustomerUseCase(repo), repo
}

func addCustomer(repo *memCustomerRepo, id, balance string) {
	repo.byID[id] = &entity.Customer{
		ID:                 id,
		Name:               "Lakshmi Amma",
		Phone:              "9840011" + id,
		CreditLimit:        d("1000"),
		OutstandingBalance: d(balance),
	}
}

func TestRecordPayment_SettlesBalance(t *testing.T) {
	uc, repo := newCustomerUC()
	addCustomer(repo, "c1", "340")

	out, err := uc.RecordPayment("c1", d("140"))
	require.NoError(t, err)

	assert.Equal(t, "200", out.OutstandingBalance.String())
	assert.Equal(t, "200", repo.byID["c1"].OutstandingBalance.String())
	assert.Equal(t, 1, repo.settleCalls)
	assert.Zero(t, repo.updateCalls, "settlement must go through the atomic deduction, not a read-modify-write")
}

func TestRecordPayment_AboveBalance(t *testing.T) {
	uc, repo := newCustomerUC()
	addCustomer(repo, "c1", "100")

	_, err := uc.RecordPayment("c1", d("100.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "100", repo.byID["c1"].OutstandingBalance.String(), "rejected payment leaves the balance untouched")
}

func TestRecordPayment_ExactBalanceClearsCredit(t *testing.T) {
	uc, repo := newCustomerUC()
	addCustomer(repo, "c1", "250")

	out, err := uc.RecordPayment("c1", d("250"))
	require.NoError(t, err)
	assert.True(t, out.OutstandingBalance.IsZero())
}

func TestRecordPayment_UnknownCustomer(t *testing.T) {
	uc, _ := newCustomerUC()
	_, err := uc.RecordPayment("ghost", d("50"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	uc, repo := newCustomerUC()
	addCustomer(repo, "c1", "100")

	for _, amount := range []string{"0", "-10"} {
		_, err := uc.RecordPayment("c1", d(amount))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount %s", amount)
	}
	assert.Zero(t, repo.settleCalls)
}
