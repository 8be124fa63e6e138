package mim

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/khipro.mim
var khiproFixture string

//go:embed testdata/khipro_cases.yaml
var khiproCasesYAML []byte

type khiproCase struct {
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

type khiproCases struct {
	Cases []khiproCase `yaml:"cases"`
}

// TestKhiproIntegration exercises a small Bengali phonetic input-method
// scenario against a small embedded fixture (fetching a real MIM
// document over the network is explicitly out of scope).
func TestKhiproIntegration(t *testing.T) {
	var cases khiproCases
	require.NoError(t, yaml.Unmarshal(khiproCasesYAML, &cases))
	require.NotEmpty(t, cases.Cases)

	in := New(khiproFixture)
	require.Equal(t, "bn", in.Language())
	require.Equal(t, "khipro", in.Name())

	for _, c := range cases.Cases {
		t.Run(c.Input, func(t *testing.T) {
			assert.Equal(t, c.Expected, in.Convert(c.Input))
		})
	}
}

func TestArithmeticScenario(t *testing.T) {
	doc := `
(map (m
 ("k" (set v 1) (insert "K"))
 ("l" (cond ((= v 1) (insert "L"))))))
(state (s (m)))
`
	in := New(doc)
	assert.Equal(t, "KL", in.Convert("kl"))
}

func TestDivisionByZeroYieldsZero(t *testing.T) {
	in := New(`(map (m ("k" (cond ((= (/ 5 0) 0) (insert "Z")))))) (state (s (m)))`)
	assert.Equal(t, "Z", in.Convert("k"))
}

func TestCharAtOutOfRangeIsZero(t *testing.T) {
	doc := `(map (m ("k" (cond ((= @-1 0) (insert "Z")))))) (state (s (m)))`
	in := New(doc)
	// cursor is 0 at the start of the step, so @-1 (one char left) is
	// out of range and must evaluate to 0, not panic or underflow.
	assert.Equal(t, "Z", in.Convert("k"))
}

func TestLongestMatchCappedAtTen(t *testing.T) {
	longKey := ""
	for i := 0; i < 11; i++ {
		longKey += "a"
	}
	doc := `(map (m ("` + longKey + `" "TOO-LONG") ("aaaaaaaaaa" "EXACTLY-TEN"))) (state (s (m)))`
	in := New(doc)
	got := in.Convert(longKey)
	assert.Equal(t, "EXACTLY-TENa", got, "an 11-character keyseq must never match")
}

func TestBranchPrecedenceFirstMatchWins(t *testing.T) {
	doc := `
(map (short ("a" "FIRST")))
(map (long ("a" "SECOND") ("ab" "LONGER")))
(state (s (short) (long)))
`
	in := New(doc)
	// "short" is tried first and matches "a"; even though "long" could
	// match the longer "ab", branch order -- not global longest match --
	// decides the winner.
	assert.Equal(t, "FIRSTb", in.Convert("ab"))
}

func TestShiftToUndeclaredStateFallsIntoPassthrough(t *testing.T) {
	doc := `(map (m ("k" (shift nowhere)))) (state (s (m)))`
	in := New(doc)
	// "k" matches and is consumed by the rule (which only shifts state,
	// inserting nothing); the shift lands on a state that was never
	// declared, so the trailing "z" falls through to pass-through.
	assert.Equal(t, "z", in.Convert("kz"))
}

func TestCursorInvariant(t *testing.T) {
	doc := `(map (m ("k" (insert "ab") (move @<) (delete @>)))) (state (s (m)))`
	in := New(doc)
	assert.Equal(t, "", in.Convert("k"))
}

func TestCommittedNeverShrinks(t *testing.T) {
	doc := `(map (m ("a" "A") ("b" (commit) "B")))`
	doc += `(state (s (m)))`
	in := New(doc)
	got := in.Convert("ab")
	assert.Equal(t, "AB", got)
}
