package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatusAcceptsAllFiveStates(t *testing.T) {
	for _, s := range []string{
		"payment_pending",
		"order_received",
		"in_kitchen",
		"sent_to_delivery",
		"delivered",
	} {
		got, err := ParseOrderStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, OrderStatus(s), got)
	}

	// Case-insensitive, matching the admin console's free-form input.
	got, err := ParseOrderStatus("DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, got)
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "pending", "cancelled", "refunded"} {
		_, err := ParseOrderStatus(s)
		assert.Error(t, err, s)
	}
}

// The workflow is deliberately permissive: an admin may set any of the five
// statuses from any prior state, including backward moves. This test
// documents that behavior; it is not an endorsement of it.
func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPaymentPending,
		OrderStatusReceived,
		OrderStatusInKitchen,
		OrderStatusSentToDelivery,
		OrderStatusDelivered,
	}
	for _, from := range all {
		for _, to := range all {
			order := Order{Status: from}
			parsed, err := ParseOrderStatus(string(to))
			require.NoError(t, err)
			order.Status = parsed
			assert.Equal(t, to, order.Status, "from %s to %s", from, to)
		}
	}
}
