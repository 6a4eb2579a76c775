package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Len(t, order.AllStatuses(), 7)
	assert.Len(t, order.ActiveStatuses(), 5)
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every status name", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			got, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("should read legacy SUCCEEDED as DELIVERED", func(t *testing.T) {
		got, err := order.ParseStatus("SUCCEEDED")

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Ready.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:    {order.Confirmed, order.Cancelled},
		order.Confirmed:  {order.Preparing, order.Cancelled},
		order.Preparing:  {order.Ready, order.Cancelled},
		order.Ready:      {order.Delivering, order.Preparing, order.Cancelled},
		order.Delivering: {order.Delivered, order.Cancelled},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, want, from.CanTransitionTo(to))

				err := from.ValidateTransition(to)
				if want {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			})
		}
	}

	t.Run("unknown never transitions", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Pending))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Equal(t, s == order.Delivered || s == order.Cancelled, s.IsTerminal(), s.String())
	}
}
