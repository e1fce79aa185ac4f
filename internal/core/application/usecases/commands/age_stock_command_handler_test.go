package commands_test

import (
	"testing"

	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAgeStockCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	fresh, err := inventory.NewStockItem(kernel.NewUUID(), "AMX-500", "Amoxil 500mg", 320, "Healthy")
	require.NoError(t, err)
	nearing, err := inventory.RestoreStockItem(kernel.NewUUID(), "GLC-20", "Glucophage XR", 110, "Watch", 8)
	require.NoError(t, err)
	expired, err := inventory.RestoreStockItem(kernel.NewUUID(), "XYZ-5", "Xyzal 5mg", 5, inventory.StatusExpired, 0)
	require.NoError(t, err)

	repo := new(MockStockRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return([]*inventory.StockItem{fresh, nearing, expired}, nil).Once()
	repo.On("Update", ctx, fresh).Return(nil).Once()
	repo.On("Update", ctx, nearing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAgeStockCommandHandler(newFactory[commands.StockUoW](uow))
	changed, err := h.Handle(ctx, commands.NewAgeStockCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	assert.Equal(t, inventory.DefaultExpiresInDays-1, fresh.ExpiresInDays())
	assert.Equal(t, inventory.StatusExpiring, nearing.Status())
	repo.AssertNotCalled(t, "Update", ctx, expired)
	uow.AssertExpectations(t)
}

func TestAgeStockCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := newFactory[commands.StockUoW](new(MockUoW))
	h := commands.NewAgeStockCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.AgeStockCommand{})

	require.ErrorIs(t, err, commands.ErrAgeStockCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAgeStockCommandHandler_Handle_NothingToAge(t *testing.T) {
	ctx := t.Context()

	repo := new(MockStockRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StockRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return(nil, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewAgeStockCommandHandler(newFactory[commands.StockUoW](uow))
	changed, err := h.Handle(ctx, commands.NewAgeStockCommand())

	require.NoError(t, err)
	assert.Zero(t, changed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
