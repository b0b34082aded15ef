// internal/registry/policy_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw       string
		expected  ConflictPolicy
		expectErr bool
	}{
		{raw: "keep-existing", expected: KeepExisting},
		{raw: "overwrite", expected: Overwrite},
		{raw: "remove-both", expected: RemoveBoth},
		{raw: "", expectErr: true},
		{raw: "keep", expectErr: true},
		{raw: "OVERWRITE", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := ParsePolicy(tc.raw)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrUnsupportedPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestPolicy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "keep-existing", KeepExisting.String())
	assert.Equal(t, "overwrite", Overwrite.String())
	assert.Equal(t, "remove-both", RemoveBoth.String())
	assert.Equal(t, "ConflictPolicy(42)", ConflictPolicy(42).String())
}

func TestPolicy_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []ConflictPolicy{KeepExisting, Overwrite, RemoveBoth} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}
