package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/counter"
	"github.com/vk/theoremgo/internal/document"
	"github.com/vk/theoremgo/internal/envgraph"
	"github.com/vk/theoremgo/internal/testutil"
)

func section(path ...int) config.Event {
	return config.Event{Kind: config.EventSection, Section: path}
}

func block(env string) config.Event {
	return config.Event{Kind: config.EventBlock, Env: env}
}

func walk(t *testing.T, model *config.Model, events ...config.Event) ([]*document.Block, map[string]bool) {
	t.Helper()
	g, err := envgraph.New(context.Background(), model)
	require.NoError(t, err)

	var blocks []*document.Block
	used, err := document.Walk(context.Background(), &config.Document{Events: events}, g, counter.New(g), func(b *document.Block) error {
		blocks = append(blocks, b)
		return nil
	})
	require.NoError(t, err)
	return blocks, used
}

func TestWalk_TracksSections(t *testing.T) {
	t.Parallel()

	model := testutil.Model(testutil.SectionEnv("thm", "plain", 1))
	blocks, _ := walk(t, model,
		block("thm"),
		section(2),
		block("thm"),
		block("thm"),
		section(3),
		block("thm"),
	)

	require.Len(t, blocks, 4)
	assert.Equal(t, counter.Number{0, 1}, blocks[0].Number)
	assert.Equal(t, counter.Number{2, 1}, blocks[1].Number)
	assert.Equal(t, counter.Number{2, 2}, blocks[2].Number)
	assert.Equal(t, counter.Number{3, 1}, blocks[3].Number)
}

func TestWalk_SharedCounterInDocumentOrder(t *testing.T) {
	t.Parallel()

	model := testutil.Model(
		testutil.GlobalEnv("thm", "plain"),
		testutil.UseEnv("lemma", "plain", "thm"),
	)
	blocks, _ := walk(t, model,
		block("thm"),
		block("lemma"),
		block("thm"),
	)

	require.Len(t, blocks, 3)
	assert.Equal(t, counter.Number{1}, blocks[0].Number)
	assert.Equal(t, counter.Number{2}, blocks[1].Number)
	assert.Equal(t, counter.Number{3}, blocks[2].Number)
}

func TestWalk_UnnumberedBlocks(t *testing.T) {
	t.Parallel()

	model := testutil.Model(
		testutil.GlobalEnv("thm", "plain"),
		testutil.Unnumbered("remark", "remark"),
	)
	blocks, used := walk(t, model,
		block("remark"),
		block("thm"),
		block("remark"),
	)

	require.Len(t, blocks, 3)
	assert.False(t, blocks[0].Numbered)
	assert.Nil(t, blocks[0].Number)
	assert.True(t, blocks[1].Numbered)
	assert.Equal(t, counter.Number{1}, blocks[1].Number)

	// Unnumbered environments still count as used; they need declarations.
	assert.True(t, used["remark"])
	assert.True(t, used["thm"])
}

func TestWalk_UnknownEnvironmentFails(t *testing.T) {
	t.Parallel()

	model := testutil.Model(testutil.GlobalEnv("thm", "plain"))
	g, err := envgraph.New(context.Background(), model)
	require.NoError(t, err)

	doc := &config.Document{Events: []config.Event{block("mystery")}}
	_, err = document.Walk(context.Background(), doc, g, counter.New(g), nil)
	require.Error(t, err)
	assert.True(t, envgraph.IsKind(err, envgraph.KindUndefinedReference))
}

func TestWalk_VisitorErrorAborts(t *testing.T) {
	t.Parallel()

	model := testutil.Model(testutil.GlobalEnv("thm", "plain"))
	g, err := envgraph.New(context.Background(), model)
	require.NoError(t, err)

	doc := &config.Document{Events: []config.Event{block("thm"), block("thm")}}
	calls := 0
	_, err = document.Walk(context.Background(), doc, g, counter.New(g), func(*document.Block) error {
		calls++
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
