package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		baseName  string
		want      Selection
	}{
		{"nothing is whole tree", "", "", Selection{Scope: ScopeWholeTree}},
		{"extension", ".js", "", Selection{Scope: ScopeFiltered, Filter: Filter{Extension: ".js"}}},
		{"base name", "", "index", Selection{Scope: ScopeFiltered, Filter: Filter{BaseName: "index"}}},
		{"both", ".js", "index", Selection{Scope: ScopeFiltered, Filter: Filter{Extension: ".js", BaseName: "index"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.extension, tt.baseName)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Scope == ScopeWholeTree, got.IsWholeTree())
		})
	}

	assert.Equal(t, WholeTree(), Filtered(Filter{}))
	assert.Equal(t, "whole-tree", ScopeWholeTree.String())
	assert.Equal(t, "filtered", ScopeFiltered.String())
}

func TestEntry(t *testing.T) {
	assert.True(t, Entry{Path: "a", Kind: KindDirectory}.IsDir())
	assert.False(t, Entry{Path: "a", Kind: KindFile}.IsDir())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "file", KindFile.String())
}

func TestObserverFunc(t *testing.T) {
	var got []Event
	obs := ObserverFunc(func(e Event) { got = append(got, e) })

	obs.Observe(Event{Action: ActionPrune, Path: "x"})
	Discard.Observe(Event{Action: ActionDelete, Path: "y"})

	assert.Equal(t, []Event{{Action: ActionPrune, Path: "x"}}, got)
	assert.Equal(t, "Deleted empty directory: x", got[0].Message())
	assert.Equal(t, "prune", ActionPrune.String())
}

func TestEvent_TraversalMessages(t *testing.T) {
	assert.Equal(t, "Entering directory: src/sub", Event{Action: ActionEnter, Path: "src/sub"}.Message())
	assert.Equal(t, "Skipped: src/b.txt", Event{Action: ActionSkip, Path: "src/b.txt"}.Message())
	assert.Equal(t, "skip", ActionSkip.String())
}
