package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("boom")

	testCases := []struct {
		Name     string
		Err      error
		Target   error
		Expected bool
	}{
		{
			Name:     "same sentinel",
			Err:      ErrInvalidVersion,
			Target:   ErrInvalidVersion,
			Expected: true,
		},
		{
			Name:     "wrapped sentinel",
			Err:      ErrUnknownDeployment.Wrap(cause),
			Target:   ErrUnknownDeployment,
			Expected: true,
		},
		{
			Name:     "sentinel behind fmt wrap",
			Err:      fmt.Errorf("check: %w", ErrInvalidVersion.WithDetails("x")),
			Target:   ErrInvalidVersion,
			Expected: true,
		},
		{
			Name:     "different biz code",
			Err:      ErrInvalidVersion,
			Target:   ErrUnknownDeployment,
			Expected: false,
		},
		{
			Name:     "internal cause",
			Err:      ErrInvalidParams.Wrap(cause),
			Target:   cause,
			Expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Expected, errors.Is(tc.Err, tc.Target))
		})
	}
}

func TestErrorAccessors(t *testing.T) {
	err := ErrUnknownDeployment.Wrap(errors.New("no rows")).WithDetails("key")

	require.Equal(t, BizCodeUnknownDeployment, err.BizCode())
	require.Equal(t, http.StatusNotFound, err.HTTPCode())
	require.Equal(t, "deployment not found", err.Message())
	require.Equal(t, "key", err.Details())
	require.Equal(t, "deployment not found: no rows", err.Error())
}
