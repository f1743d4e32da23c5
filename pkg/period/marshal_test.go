package period_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/chronokit/pkg/period"
)

type retentionPolicy struct {
	Name    string        `json:"name" yaml:"name"`
	KeepFor period.Period `json:"keep_for" yaml:"keep_for"`
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := retentionPolicy{Name: "audit", KeepFor: period.MustParse("P1Y6M")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"audit","keep_for":"P1Y6M"}`, string(data))

	var out retentionPolicy
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var out retentionPolicy
	err := json.Unmarshal([]byte(`{"name":"x","keep_for":"P1X"}`), &out)
	require.Error(t, err)

	var parseErr *period.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	in := retentionPolicy{Name: "audit", KeepFor: period.MustParse("PT12H30M")}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keep_for: PT12H30M")

	var out retentionPolicy
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("quoted scalar", func(t *testing.T) {
		t.Parallel()
		var out retentionPolicy
		require.NoError(t, yaml.Unmarshal([]byte("name: x\nkeep_for: \"P30D\"\n"), &out))
		assert.Equal(t, period.OfDate(0, 0, 30), out.KeepFor)
	})

	t.Run("malformed period", func(t *testing.T) {
		t.Parallel()
		var out retentionPolicy
		err := yaml.Unmarshal([]byte("name: x\nkeep_for: nonsense\n"), &out)
		require.Error(t, err)

		var parseErr *period.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("non-scalar node", func(t *testing.T) {
		t.Parallel()
		var out retentionPolicy
		err := yaml.Unmarshal([]byte("name: x\nkeep_for:\n  - P1D\n"), &out)
		assert.Error(t, err)
	})
}

func TestMarshalTextZero(t *testing.T) {
	t.Parallel()

	text, err := period.Zero.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PT0S", string(text))

	var p period.Period
	require.NoError(t, p.UnmarshalText([]byte("PT0S")))
	assert.True(t, p.IsZero())
}
