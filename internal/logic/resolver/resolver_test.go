package resolver

import (
	"strconv"
	"testing"

	"github.com/MirrorChyan/ota-backend/internal/logic/rollout"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/MirrorChyan/ota-backend/internal/pkg/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	admitAll  = rollout.AdmitFunc(func(string, string, int) bool { return true })
	admitNone = rollout.AdmitFunc(func(string, string, int) bool { return false })
)

type upload struct {
	AppVersion string
	Tags       []string
	Flags      *model.PackageFlags
}

func buildHistory(uploads ...upload) *model.History {
	var h *model.History
	for i, u := range uploads {
		id := int64(i + 1)
		flags := model.DefaultFlags()
		if u.Flags != nil {
			flags = *u.Flags
		}
		h = h.Append(model.Package{
			ID:          id,
			PackageHash: "hash-" + strconv.FormatInt(id, 10),
			Label:       "v" + strconv.FormatInt(id, 10),
			AppVersion:  u.AppVersion,
			Tags:        u.Tags,
		}, flags)
	}
	return h
}

func flags(disabled bool, rollout int) *model.PackageFlags {
	return &model.PackageFlags{IsDisabled: disabled, Rollout: rollout}
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		Name       string
		History    *model.History
		AppVersion string
		Tags       []string
		Admitter   rollout.Admitter
		// empty means no update
		Expected string
	}{
		{
			Name:       "most recent on release line",
			History:    buildHistory(upload{AppVersion: "1.0.0"}, upload{AppVersion: "1.0.0"}, upload{AppVersion: "1.2.0"}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
			Expected:   "hash-2",
		},
		{
			Name:       "release line isolation",
			History:    buildHistory(upload{AppVersion: "1.0.0"}),
			AppVersion: "1.0.1",
			Admitter:   admitAll,
		},
		{
			Name:       "no higher line upgrade",
			History:    buildHistory(upload{AppVersion: "1.1.0"}, upload{AppVersion: "2.0.0"}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "empty history",
			History:    buildHistory(),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "nil history",
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "shortened version",
			History:    buildHistory(upload{AppVersion: "19.14.0"}),
			AppVersion: "19.14",
			Admitter:   admitAll,
			Expected:   "hash-1",
		},
		{
			Name:       "shortened package version",
			History:    buildHistory(upload{AppVersion: "1.0"}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
			Expected:   "hash-1",
		},
		{
			Name:       "newer prerelease offered",
			History:    buildHistory(upload{AppVersion: "3.2.0-qa-debug.2"}),
			AppVersion: "3.2.0-qa-debug.1",
			Admitter:   admitAll,
			Expected:   "hash-1",
		},
		{
			Name:       "prerelease on other patch",
			History:    buildHistory(upload{AppVersion: "3.2.0-qa-debug.2"}),
			AppVersion: "3.2.1-qa-debug.1",
			Admitter:   admitAll,
		},
		{
			Name:       "older prerelease not offered",
			History:    buildHistory(upload{AppVersion: "3.2.0-qa-debug.2"}),
			AppVersion: "3.2.0-qa-debug.3",
			Admitter:   admitAll,
		},
		{
			Name:       "older prerelease skipped",
			History:    buildHistory(upload{AppVersion: "3.2.0"}, upload{AppVersion: "3.2.0-rc.1"}),
			AppVersion: "3.2.0",
			Admitter:   admitAll,
			Expected:   "hash-1",
		},
		{
			Name:       "disabled only match",
			History:    buildHistory(upload{AppVersion: "1.0.0", Flags: flags(true, 100)}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "disabled newest no fallback",
			History:    buildHistory(upload{AppVersion: "1.0.0"}, upload{AppVersion: "1.0.0", Flags: flags(true, 100)}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "rollout rejection no fallback",
			History:    buildHistory(upload{AppVersion: "1.0.0"}, upload{AppVersion: "1.0.0", Flags: flags(false, 0)}),
			AppVersion: "1.0.0",
			Admitter:   rollout.NewGate(nil),
		},
		{
			Name:       "full rollout admits",
			History:    buildHistory(upload{AppVersion: "1.0.0", Flags: flags(false, 0)}, upload{AppVersion: "1.0.0"}),
			AppVersion: "1.0.0",
			Admitter:   rollout.NewGate(nil),
			Expected:   "hash-2",
		},
		{
			Name:       "admitter rejects",
			History:    buildHistory(upload{AppVersion: "1.0.0"}),
			AppVersion: "1.0.0",
			Admitter:   admitNone,
		},
		{
			Name:       "tag bypass at zero rollout",
			History:    buildHistory(upload{AppVersion: "1.0.0", Tags: []string{"TAG-1", "TAG-2"}, Flags: flags(false, 0)}),
			AppVersion: "1.0.0",
			Tags:       []string{"TAG-1"},
			Admitter:   admitNone,
			Expected:   "hash-1",
		},
		{
			Name:       "tag exclusivity at full rollout",
			History:    buildHistory(upload{AppVersion: "1.0.0"}, upload{AppVersion: "1.0.0", Tags: []string{"TAG-1"}}),
			AppVersion: "1.0.0",
			Tags:       []string{"TAG-5"},
			Admitter:   admitAll,
		},
		{
			Name:       "tagged package invisible without tags",
			History:    buildHistory(upload{AppVersion: "1.0.0", Tags: []string{"TAG-1"}}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
		},
		{
			Name:       "client tags ignored for untagged package",
			History:    buildHistory(upload{AppVersion: "1.0.0"}),
			AppVersion: "1.0.0",
			Tags:       []string{"TAG-1"},
			Admitter:   admitNone,
		},
		{
			Name:       "unparsable package skipped",
			History:    buildHistory(upload{AppVersion: "1.0.0"}, upload{AppVersion: "not-a-version"}),
			AppVersion: "1.0.0",
			Admitter:   admitAll,
			Expected:   "hash-1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			r := NewResolver(zaptest.NewLogger(t), tc.Admitter)
			c, err := r.Resolve(tc.History, &model.UpdateCheckRequest{
				DeploymentKey:  "staging",
				AppVersion:     tc.AppVersion,
				PackageHash:    "ABCD",
				ClientUniqueID: "uniqueClientId",
				Tags:           tc.Tags,
			})
			require.NoError(t, err)
			if tc.Expected == "" {
				require.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			require.Equal(t, tc.Expected, c.Package.PackageHash)
		})
	}
}

func TestResolveNormalizedAppVersion(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t), admitAll)

	testCases := []struct {
		Name     string
		Package  string
		Client   string
		Expected string
	}{
		{Name: "short client", Package: "19.14.0", Client: "19.14", Expected: "19.14.0"},
		{Name: "short package", Package: "1.0", Client: "1.0.0", Expected: "1.0.0"},
		{Name: "prerelease", Package: "3.2.0-qa-debug.2", Client: "3.2.0-qa-debug.1", Expected: "3.2.0-qa-debug.2"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			c, err := r.Resolve(buildHistory(upload{AppVersion: tc.Package}), &model.UpdateCheckRequest{
				AppVersion:     tc.Client,
				ClientUniqueID: "c",
			})
			require.NoError(t, err)
			require.NotNil(t, c)
			require.Equal(t, tc.Expected, c.AppVersion)
		})
	}
}

func TestResolveFlags(t *testing.T) {
	var seen int
	admitter := rollout.AdmitFunc(func(clientUniqueID, packageHash string, rollout int) bool {
		seen = rollout
		return true
	})
	r := NewResolver(zaptest.NewLogger(t), admitter)

	h := buildHistory(upload{AppVersion: "1.0.0", Flags: flags(false, 37)})
	c, err := r.Resolve(h, &model.UpdateCheckRequest{AppVersion: "1.0.0", ClientUniqueID: "c"})
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, 37, seen)
	require.Equal(t, 37, c.Flags.Rollout)

	// flags changed after upload are honored on the next snapshot
	h = h.WithFlags(1, model.PackageFlags{IsDisabled: true, Rollout: 37})
	c, err = r.Resolve(h, &model.UpdateCheckRequest{AppVersion: "1.0.0", ClientUniqueID: "c"})
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestResolveInvalidVersion(t *testing.T) {
	r := NewResolver(zaptest.NewLogger(t), admitAll)
	h := buildHistory(upload{AppVersion: "1.0.0"})

	for _, raw := range []string{"", "abc", "1.0.0.0.0", "v-1"} {
		t.Run(raw, func(t *testing.T) {
			c, err := r.Resolve(h, &model.UpdateCheckRequest{AppVersion: raw, ClientUniqueID: "c"})
			require.Nil(t, c)
			require.ErrorIs(t, err, errs.ErrInvalidVersion)
		})
	}
}
