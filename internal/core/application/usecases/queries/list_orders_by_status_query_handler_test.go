package queries_test

import (
	"testing"
	"time"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersByStatusQuery(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    order.StatusType
		wantErr error
	}{
		{"canonical", "Pending", order.Pending, nil},
		{"upper case", "PENDING", order.Pending, nil},
		{"lower case", "pending", order.Pending, nil},
		{"display name with space", "in progress", order.InProgress, nil},
		{"identifier alias", "InProgress", order.InProgress, nil},
		{"empty", "", order.Unknown, errs.ErrValueIsRequired},
		{"unknown", "Teleported", order.Unknown, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersByStatusQuery(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.StatusType())
		})
	}
}

func TestListOrdersByStatusQueryHandler_Handle_CaseInsensitive(t *testing.T) {
	ctx := t.Context()
	pending, err := order.NewStatus(kernel.NewUUID(), order.Pending)
	require.NoError(t, err)
	rows := []ports.OrderSummary{summary("Pending", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))}

	statuses := new(MockStatusReader)
	statuses.On("GetStatus", ctx, order.Pending).Return(pending, nil)
	store := new(MockOrderReadStore)
	store.On("ListOrdersByStatus", ctx, pending.ID()).Return(rows, nil)

	h := queries.NewListOrdersByStatusQueryHandler(statuses, store)

	upper, err := queries.NewListOrdersByStatusQuery("PENDING")
	require.NoError(t, err)
	lower, err := queries.NewListOrdersByStatusQuery("pending")
	require.NoError(t, err)

	first, err := h.Handle(ctx, upper)
	require.NoError(t, err)
	second, err := h.Handle(ctx, lower)
	require.NoError(t, err)

	assert.Equal(t, rows, first)
	assert.Equal(t, first, second)
	store.AssertNumberOfCalls(t, "ListOrdersByStatus", 2)
}

func TestListOrdersByStatusQueryHandler_Handle_UnseededStatus(t *testing.T) {
	ctx := t.Context()
	statuses := new(MockStatusReader)
	statuses.On("GetStatus", ctx, order.Failed).
		Return(order.Status{}, errs.NewObjectNotFoundError("statusName", "Failed")).Once()
	store := new(MockOrderReadStore)

	q, err := queries.NewListOrdersByStatusQuery("failed")
	require.NoError(t, err)

	got, err := queries.NewListOrdersByStatusQueryHandler(statuses, store).Handle(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	store.AssertNotCalled(t, "ListOrdersByStatus")
}

func TestListOrdersByStatusQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewListOrdersByStatusQueryHandler(new(MockStatusReader), new(MockOrderReadStore))
	_, err := h.Handle(t.Context(), queries.ListOrdersByStatusQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersByStatusQueryIsNotConstructed)
}
