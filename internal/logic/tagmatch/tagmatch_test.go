package tagmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		Name        string
		RequestTags []string
		PackageTags []string
		Expected    Decision
	}{
		{
			Name:        "untagged package falls through",
			RequestTags: []string{"T1"},
			PackageTags: nil,
			Expected:    Decision{Bypass: false},
		},
		{
			Name:        "untagged package untagged client",
			RequestTags: nil,
			PackageTags: []string{},
			Expected:    Decision{Bypass: false},
		},
		{
			Name:        "shared tag",
			RequestTags: []string{"T1"},
			PackageTags: []string{"T1", "T2"},
			Expected:    Decision{Bypass: true, Eligible: true},
		},
		{
			Name:        "one of many shared",
			RequestTags: []string{"A", "B", "C", "T2"},
			PackageTags: []string{"T1", "T2"},
			Expected:    Decision{Bypass: true, Eligible: true},
		},
		{
			Name:        "disjoint tags",
			RequestTags: []string{"SOME-OTHER-TAG", "YET-ANOTHER-TAG"},
			PackageTags: []string{"TAG-1", "TAG-2"},
			Expected:    Decision{Bypass: true, Eligible: false},
		},
		{
			Name:        "client without tags",
			RequestTags: nil,
			PackageTags: []string{"TAG-1"},
			Expected:    Decision{Bypass: true, Eligible: false},
		},
		{
			Name:        "case sensitive",
			RequestTags: []string{"tag-1"},
			PackageTags: []string{"TAG-1"},
			Expected:    Decision{Bypass: true, Eligible: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, Match(tc.RequestTags, tc.PackageTags))
		})
	}
}
