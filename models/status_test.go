package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run(`IsValid check`, func(t *testing.T) {
		require.Equal(t, true, StatusPending.IsValid())
		require.Equal(t, true, StatusQASignOffComplete.IsValid())
		require.Equal(t, false, RequestStatus("SHIPPED").IsValid())
		require.Equal(t, false, RequestStatus("").IsValid())
	})

	t.Run(`regular transition allowed`, func(t *testing.T) {
		require.Equal(t, true, StatusPending.IsAllowChange(StatusApproved))
		require.Equal(t, true, StatusTesting.IsAllowChange(StatusUAT))
		require.Equal(t, true, StatusRejected.IsAllowChange(StatusPending))
	})

	t.Run(`self transition rejected`, func(t *testing.T) {
		require.Equal(t, false, StatusPending.IsAllowChange(StatusPending))
		require.Equal(t, false, StatusReleasedToProd.IsAllowChange(StatusReleasedToProd))
	})

	t.Run(`unknown target rejected`, func(t *testing.T) {
		require.Equal(t, false, StatusPending.IsAllowChange(RequestStatus("ARCHIVED")))
		require.Equal(t, false, StatusPending.IsAllowChange(RequestStatus("")))
	})

	t.Run(`released to production is terminal except rejection`, func(t *testing.T) {
		require.Equal(t, true, StatusReleasedToProd.IsAllowChange(StatusRejected))
		require.Equal(t, false, StatusReleasedToProd.IsAllowChange(StatusPending))
		require.Equal(t, false, StatusReleasedToProd.IsAllowChange(StatusTesting))
	})
}
