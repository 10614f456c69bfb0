package counter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/counter"
	"github.com/vk/theoremgo/internal/envgraph"
	"github.com/vk/theoremgo/internal/testutil"
)

// buildGraph validates a model for the tests below, failing the test on
// configuration defects.
func buildGraph(t *testing.T, model *config.Model) *envgraph.Graph {
	t.Helper()
	g, err := envgraph.New(context.Background(), model)
	require.NoError(t, err)
	return g
}

// process numbers one occurrence and fails the test on error.
func process(t *testing.T, e *counter.Engine, env string, section []int) counter.Number {
	t.Helper()
	n, err := e.Process(context.Background(), env, section)
	require.NoError(t, err)
	return n
}

func TestProcess_GlobalReset(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.Model(testutil.GlobalEnv("thm", "plain")))
	e := counter.New(g)

	assert.Equal(t, counter.Number{1}, process(t, e, "thm", nil))
	assert.Equal(t, counter.Number{2}, process(t, e, "thm", []int{3}))
	assert.Equal(t, counter.Number{3}, process(t, e, "thm", []int{4, 2}))
}

func TestProcess_SectionLevelReset(t *testing.T) {
	t.Parallel()

	t.Run("counter restarts per section", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(testutil.SectionEnv("thm", "plain", 1)))
		e := counter.New(g)

		assert.Equal(t, counter.Number{2, 1}, process(t, e, "thm", []int{2}))
		assert.Equal(t, counter.Number{2, 2}, process(t, e, "thm", []int{2}))
		assert.Equal(t, counter.Number{3, 1}, process(t, e, "thm", []int{3}))
	})

	t.Run("deeper section paths truncate to the reset level", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(testutil.SectionEnv("thm", "plain", 1)))
		e := counter.New(g)

		assert.Equal(t, counter.Number{2, 1}, process(t, e, "thm", []int{2, 1}))
		assert.Equal(t, counter.Number{2, 2}, process(t, e, "thm", []int{2, 4}))
	})

	t.Run("shallower section paths are kept whole", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(testutil.SectionEnv("defn", "definition", 2)))
		e := counter.New(g)

		assert.Equal(t, counter.Number{1, 1}, process(t, e, "defn", []int{1}))
		assert.Equal(t, counter.Number{1, 2, 1}, process(t, e, "defn", []int{1, 2}))
	})

	t.Run("no enclosing section falls back to scope zero", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(testutil.SectionEnv("thm", "plain", 1)))
		e := counter.New(g)

		assert.Equal(t, counter.Number{0, 1}, process(t, e, "thm", nil))
		assert.Equal(t, counter.Number{0, 2}, process(t, e, "thm", nil))
	})
}

func TestProcess_SectionDeepestReset(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.Model(testutil.DeepestEnv("exm", "definition")))
	e := counter.New(g)

	assert.Equal(t, counter.Number{1, 1, 1}, process(t, e, "exm", []int{1, 1}))
	assert.Equal(t, counter.Number{1, 1, 2}, process(t, e, "exm", []int{1, 1}))
	assert.Equal(t, counter.Number{1, 2, 1}, process(t, e, "exm", []int{1, 2}))
}

func TestProcess_SharedCounter(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.Model(
		testutil.GlobalEnv("thm", "plain"),
		testutil.UseEnv("lemma", "plain", "thm"),
	))
	e := counter.New(g)

	assert.Equal(t, counter.Number{1}, process(t, e, "thm", nil))
	assert.Equal(t, counter.Number{2}, process(t, e, "lemma", nil))
	assert.Equal(t, counter.Number{3}, process(t, e, "thm", nil))
}

func TestProcess_OtherEnvReset(t *testing.T) {
	t.Parallel()

	t.Run("scopes under the last root number", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(
			testutil.GlobalEnv("thm", "plain"),
			testutil.EnvResetEnv("case", "remark", "thm"),
		))
		e := counter.New(g)

		assert.Equal(t, counter.Number{1}, process(t, e, "thm", nil))
		assert.Equal(t, counter.Number{1, 1}, process(t, e, "case", nil))
		assert.Equal(t, counter.Number{1, 2}, process(t, e, "case", nil))
		assert.Equal(t, counter.Number{2}, process(t, e, "thm", nil))
		assert.Equal(t, counter.Number{2, 1}, process(t, e, "case", nil))
	})

	t.Run("forward reference counts from scope zero", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(
			testutil.GlobalEnv("thm", "plain"),
			testutil.EnvResetEnv("case", "remark", "thm"),
		))
		e := counter.New(g)

		// The referenced root has not fired yet; counting starts from
		// scratch rather than failing.
		assert.Equal(t, counter.Number{0, 1}, process(t, e, "case", nil))
		assert.Equal(t, counter.Number{0, 2}, process(t, e, "case", nil))
	})

	t.Run("sharing environments do not advance the root number", func(t *testing.T) {
		g := buildGraph(t, testutil.Model(
			testutil.GlobalEnv("thm", "plain"),
			testutil.UseEnv("lemma", "plain", "thm"),
			testutil.EnvResetEnv("case", "remark", "thm"),
		))
		e := counter.New(g)

		process(t, e, "thm", nil)   // thm = 1
		process(t, e, "lemma", nil) // lemma = 2, root number stays 1
		assert.Equal(t, counter.Number{1, 1}, process(t, e, "case", nil))
	})
}

func TestProcess_UnnumberedEnvironment(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.Model(testutil.Unnumbered("remark", "remark")))
	e := counter.New(g)

	_, err := e.Process(context.Background(), "remark", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, envgraph.ErrUnnumbered)
}

func TestProcess_RunIsolation(t *testing.T) {
	t.Parallel()

	g := buildGraph(t, testutil.Model(
		testutil.SectionEnv("thm", "plain", 1),
		testutil.UseEnv("lemma", "plain", "thm"),
	))

	runOnce := func() []counter.Number {
		e := counter.New(g)
		return []counter.Number{
			process(t, e, "thm", []int{1}),
			process(t, e, "lemma", []int{1}),
			process(t, e, "thm", []int{2}),
		}
	}

	first := runOnce()
	second := runOnce()
	assert.Equal(t, first, second, "independent runs over identical events must produce identical numbers")
}

func TestNumberString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", counter.Number(nil).String())
	assert.Equal(t, "7", counter.Number{7}.String())
	assert.Equal(t, "2.1.3", counter.Number{2, 1, 3}.String())
}
