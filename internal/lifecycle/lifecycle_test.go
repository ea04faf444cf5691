package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/orderdesk/internal/types"
)

func TestDisplayInfoKnownStatuses(t *testing.T) {

	for _, s := range Statuses() {
		for _, audience := range []types.Audience{types.AdminAudience, types.CustomerAudience} {
			t.Run(string(audience)+"/"+string(s), func(t *testing.T) {
				d := DisplayInfo(string(s), audience)
				assert.NotEmpty(t, d.Label)
				assert.NotEmpty(t, d.Color)
				assert.NotEqual(t, fallbackColor, d.Color)
			})
		}
	}
}

func TestDisplayInfoLabels(t *testing.T) {

	testCases := []struct {
		status   types.Status
		admin    string
		customer string
	}{
		{types.PendingStatus, "received", "order received"},
		{types.PreparingStatus, "in production", "in production"},
		{types.ShippingStatus, "shipped", "in transit"},
		{types.CompletedStatus, "done", "delivered"},
		{types.CancelledStatus, "canceled", "canceled"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.admin, DisplayInfo(string(tc.status), types.AdminAudience).Label)
			assert.Equal(t, tc.customer, DisplayInfo(string(tc.status), types.CustomerAudience).Label)
		})
	}
}

func TestDisplayInfoFallback(t *testing.T) {

	for _, raw := range []string{"refunded", "PENDING", "on_hold", " "} {
		t.Run(raw, func(t *testing.T) {
			for _, audience := range []types.Audience{types.AdminAudience, types.CustomerAudience} {
				d := DisplayInfo(raw, audience)
				assert.Equal(t, Display{Label: raw, Color: fallbackColor}, d)
			}
		})
	}

	t.Run("empty renders as pending", func(t *testing.T) {
		assert.Equal(t, DisplayInfo("pending", types.CustomerAudience), DisplayInfo("", types.CustomerAudience))
	})
}

func TestTablesShareKeys(t *testing.T) {
	admin := Table(types.AdminAudience)
	customer := Table(types.CustomerAudience)

	assert.Len(t, admin, len(Statuses()))
	for s := range admin {
		_, ok := customer[s]
		assert.True(t, ok, "customer table misses %s", s)
	}
	assert.Nil(t, Table("guest"))
}

func TestValidTransitions(t *testing.T) {

	testCases := []struct {
		name    string
		current types.Status
		actor   types.Actor
		want    []types.Status
	}{
		{"admin pending", types.PendingStatus, types.AdminActor, []types.Status{types.PreparingStatus, types.CancelledStatus}},
		{"admin preparing", types.PreparingStatus, types.AdminActor, []types.Status{types.ShippingStatus}},
		{"admin shipping", types.ShippingStatus, types.AdminActor, []types.Status{types.CompletedStatus}},
		{"admin completed", types.CompletedStatus, types.AdminActor, []types.Status{}},
		{"admin cancelled", types.CancelledStatus, types.AdminActor, []types.Status{}},
		{"owner pending", types.PendingStatus, types.OwnerActor, []types.Status{types.CancelledStatus}},
		{"owner preparing", types.PreparingStatus, types.OwnerActor, []types.Status{}},
		{"owner shipping", types.ShippingStatus, types.OwnerActor, []types.Status{}},
		{"owner completed", types.CompletedStatus, types.OwnerActor, []types.Status{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidTransitions(tc.current, tc.actor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidTransitionsDoesNotLeakTable(t *testing.T) {
	got, err := ValidTransitions(types.PendingStatus, types.AdminActor)
	require.NoError(t, err)
	got[0] = types.CompletedStatus

	again, err := ValidTransitions(types.PendingStatus, types.AdminActor)
	require.NoError(t, err)
	assert.Equal(t, types.PreparingStatus, again[0])
}

func TestValidTransitionsInvalidStatus(t *testing.T) {

	for _, raw := range []string{"", "refunded", "Pending"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ValidTransitions(types.Status(raw), types.AdminActor)
			assert.ErrorIs(t, err, ErrInvalidStatus)

			var invalid *InvalidStatusError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, raw, invalid.Status)
		})
	}

	t.Run("unknown actor", func(t *testing.T) {
		_, err := ValidTransitions(types.PendingStatus, "courier")
		var unknown *UnknownActorError
		assert.ErrorAs(t, err, &unknown)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.NotErrorIs(t, err, ErrIllegalTransition)

		_, err = ApplyTransition(types.PendingStatus, types.CancelledStatus, "courier")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestApplyTransition(t *testing.T) {

	testCases := []struct {
		name      string
		current   types.Status
		requested types.Status
		actor     types.Actor
		want      types.Status
		wantErr   error
	}{
		{"admin starts production", types.PendingStatus, types.PreparingStatus, types.AdminActor, types.PreparingStatus, nil},
		{"admin cancels pending", types.PendingStatus, types.CancelledStatus, types.AdminActor, types.CancelledStatus, nil},
		{"admin ships", types.PreparingStatus, types.ShippingStatus, types.AdminActor, types.ShippingStatus, nil},
		{"admin completes", types.ShippingStatus, types.CompletedStatus, types.AdminActor, types.CompletedStatus, nil},
		{"admin skips production", types.PendingStatus, types.ShippingStatus, types.AdminActor, "", ErrIllegalTransition},
		{"completed is terminal", types.CompletedStatus, types.CancelledStatus, types.AdminActor, "", ErrIllegalTransition},
		{"cancelled is terminal", types.CancelledStatus, types.PendingStatus, types.AdminActor, "", ErrIllegalTransition},
		{"no self loop", types.PreparingStatus, types.PreparingStatus, types.AdminActor, "", ErrIllegalTransition},
		{"owner cancels pending", types.PendingStatus, types.CancelledStatus, types.OwnerActor, types.CancelledStatus, nil},
		{"owner cannot cancel preparing", types.PreparingStatus, types.CancelledStatus, types.OwnerActor, "", ErrIllegalTransition},
		{"owner cannot advance", types.PendingStatus, types.PreparingStatus, types.OwnerActor, "", ErrIllegalTransition},
		{"unknown target", types.PendingStatus, "refunded", types.AdminActor, "", ErrIllegalTransition},
		{"unknown current", "refunded", types.CancelledStatus, types.AdminActor, "", ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyTransition(tc.current, tc.requested, tc.actor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIllegalTransitionErrorDetails(t *testing.T) {
	_, err := ApplyTransition(types.CompletedStatus, types.CancelledStatus, types.AdminActor)

	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, types.CompletedStatus, illegal.From)
	assert.Equal(t, types.CancelledStatus, illegal.To)
	assert.Equal(t, types.AdminActor, illegal.Actor)
	assert.False(t, errors.Is(err, ErrInvalidStatus))
}

func TestOrderWalkthrough(t *testing.T) {
	order := types.OrderRecord{ID: "O1", Status: types.PendingStatus}

	next, err := ApplyTransition(order.Status, types.PreparingStatus, types.AdminActor)
	require.NoError(t, err)
	order.Status = next
	assert.Equal(t, types.PreparingStatus, order.Status)

	_, err = ApplyTransition(order.Status, types.CompletedStatus, types.AdminActor)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, types.PreparingStatus, order.Status)
}

func TestTerminalAndParse(t *testing.T) {
	assert.True(t, IsTerminal(types.CompletedStatus))
	assert.True(t, IsTerminal(types.CancelledStatus))
	assert.False(t, IsTerminal(types.PendingStatus))
	assert.False(t, IsTerminal("refunded"))

	s, err := ParseStatus("shipping")
	assert.NoError(t, err)
	assert.Equal(t, types.ShippingStatus, s)

	_, err = ParseStatus("lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
