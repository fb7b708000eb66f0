package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistorySnapshot(t *testing.T) {
	base := NewHistory([]Package{
		{ID: 1, PackageHash: "h1", AppVersion: "1.0.0"},
	}, map[int64]PackageFlags{
		1: {Rollout: 250},
	})

	require.Equal(t, 1, base.Len())
	require.Equal(t, MaxRollout, base.Flags(1).Rollout)
	require.Equal(t, DefaultFlags(), base.Flags(42))

	appended := base.Append(Package{ID: 2, PackageHash: "h2"}, PackageFlags{Rollout: -3})
	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, appended.Len())
	require.Equal(t, "h2", appended.At(1).PackageHash)
	require.Equal(t, MinRollout, appended.Flags(2).Rollout)

	disabled := appended.WithFlags(1, PackageFlags{IsDisabled: true, Rollout: 50})
	require.False(t, appended.Flags(1).IsDisabled)
	require.True(t, disabled.Flags(1).IsDisabled)
	require.Equal(t, 50, disabled.Flags(1).Rollout)
}

func TestNilHistory(t *testing.T) {
	var h *History
	require.Equal(t, 0, h.Len())
	require.Equal(t, DefaultFlags(), h.Flags(7))

	flagged := h.WithFlags(7, PackageFlags{IsDisabled: true, Rollout: 10})
	require.Equal(t, 0, flagged.Len())
	require.True(t, flagged.Flags(7).IsDisabled)

	h = h.Append(Package{ID: 7}, DefaultFlags())
	require.Equal(t, 1, h.Len())
}
