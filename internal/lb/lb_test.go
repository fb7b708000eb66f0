package lb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseServers(t *testing.T) {
	servers := ParseServers([]string{
		"https://a.example.com/",
		"https://b.example.com;3",
		"https://c.example.com;x",
	})
	require.Equal(t, []Server{
		{Url: "https://a.example.com", Weight: 1},
		{Url: "https://b.example.com", Weight: 3},
		{Url: "https://c.example.com", Weight: 1},
	}, servers)
}

func TestNext(t *testing.T) {
	testCases := []struct {
		Name     string
		Servers  []Server
		Rounds   int
		Expected map[string]int
	}{
		{
			Name:     "equal weights",
			Servers:  []Server{{Url: "a", Weight: 1}, {Url: "b", Weight: 1}},
			Rounds:   10,
			Expected: map[string]int{"a": 5, "b": 5},
		},
		{
			Name:     "weighted",
			Servers:  []Server{{Url: "a", Weight: 4}, {Url: "b", Weight: 2}, {Url: "c", Weight: 2}},
			Rounds:   16,
			Expected: map[string]int{"a": 8, "b": 4, "c": 4},
		},
		{
			Name:     "single",
			Servers:  []Server{{Url: "a", Weight: 7}},
			Rounds:   3,
			Expected: map[string]int{"a": 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			wrr := NewWeightedRoundRobin(tc.Servers)
			got := make(map[string]int)
			for i := 0; i < tc.Rounds; i++ {
				got[wrr.Next().Url]++
			}
			require.Equal(t, tc.Expected, got)
		})
	}
}

func TestNextEmpty(t *testing.T) {
	require.Equal(t, Server{}, NewWeightedRoundRobin(nil).Next())
	require.Equal(t, Server{}, NewWeightedRoundRobin([]Server{{Url: "a"}}).Next())
}
