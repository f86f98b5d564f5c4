package linebreak

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesOrder(t *testing.T) {
	rs := DefaultRules()
	assert.Equal(t, RuleLB30b+1, rs.Len())
}

func TestReplaceOutOfRange(t *testing.T) {
	rs := DefaultRules()

	_, err := rs.Replace(-1, lb13)
	assert.True(t, errors.Is(err, ErrInvalidTailoring))

	_, err = rs.Replace(rs.Len(), lb13)
	assert.True(t, errors.Is(err, ErrInvalidTailoring))

	_, err = rs.Replace(RuleLB13, nil)
	assert.True(t, errors.Is(err, ErrInvalidTailoring))

	_, err = rs.Remove(rs.Len())
	assert.True(t, errors.Is(err, ErrInvalidTailoring))
}

func TestReplaceDoesNotMutateReceiver(t *testing.T) {
	def := DefaultRules()
	allow := func(left, right Class) Verdict { return Allowed }

	tailored, err := def.Replace(RuleLB28, allow)
	require.NoError(t, err)

	// AL × AL is prohibited by default and allowed in the tailored set.
	got, err := Breaker{Rules: def}.Breaks("ab")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Breaker{Rules: tailored}.Breaks("ab")
	require.NoError(t, err)
	assert.Equal(t, []Break{{Kind: Allowed, Index: 1}}, got)
}

func TestRemoveRule(t *testing.T) {
	rs, err := DefaultRules().Remove(RuleLB28)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules().Len()-1, rs.Len())

	// Without LB28, AL AL falls through to LB31.
	got, err := Breaker{Rules: rs}.Breaks("ab")
	require.NoError(t, err)
	assert.Equal(t, []Break{{Kind: Allowed, Index: 1}}, got)
}

func TestRequiredRulesAreFinal(t *testing.T) {
	// A tailored rule that allows everything still cannot override the
	// required block: the break after LF stays required, and no break
	// appears before it.
	allow := func(left, right Class) Verdict { return Allowed }
	rs := DefaultRules()
	for i := 0; i < rs.Len(); i++ {
		var err error
		rs, err = rs.Replace(i, allow)
		require.NoError(t, err)
	}

	got, err := Breaker{Rules: rs}.Breaks("a\nb")
	require.NoError(t, err)
	assert.Equal(t, []Break{{Kind: Required, Index: 2}}, got)
}

func TestVerdictStrings(t *testing.T) {
	assert.Equal(t, "no opinion", NoOpinion.String())
	assert.Equal(t, "prohibited", Prohibited.String())
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "required", Required.String())
}
