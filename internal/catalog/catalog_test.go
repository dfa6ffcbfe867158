package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestDefaultCatalogIsConsistent(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, 15, cat.Len())

	seen := map[string]bool{}
	for _, alg := range cat.Algorithms() {
		require.False(t, seen[alg.ID], "duplicate id %s", alg.ID)
		seen[alg.ID] = true
	}
	listed := 0
	for _, category := range cat.Categories() {
		for _, id := range category.Algorithms {
			alg, ok := cat.Algorithm(id)
			require.True(t, ok, "category %s lists unknown %s", category.ID, id)
			require.Equal(t, category.ID, alg.Category)
			listed++
		}
	}
	require.Equal(t, cat.Len(), listed)
}

func TestDefaultCatalogKeepsNaturalOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	algs := cat.Algorithms()
	require.Equal(t, "bubble-sort", algs[0].ID)
	require.Equal(t, "heap-sort", algs[5].ID)
	require.Equal(t, "breadth-first-search", algs[len(algs)-1].ID)
}

func TestDefaultCatalogContent(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	content, ok := cat.Content("bubble-sort")
	require.True(t, ok)
	require.Equal(t, "バブルソート (Bubble Sort)", content.Title)
	require.Contains(t, content.CodeImplementation, "void bubbleSort(int arr[], int n)")
	require.Len(t, content.Advantages, 4)

	require.Equal(t, []string{"heap-sort"}, cat.MissingContent())
}

func TestOptionalTraitsOnlyOnSorting(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for _, alg := range cat.Algorithms() {
		if alg.Category == Sorting {
			require.NotNil(t, alg.Stable, alg.ID)
			require.NotNil(t, alg.InPlace, alg.ID)
			continue
		}
		require.Nil(t, alg.Stable, alg.ID)
		require.Nil(t, alg.InPlace, alg.ID)
	}
	dfs, ok := cat.Algorithm("depth-first-search")
	require.True(t, ok)
	require.Equal(t, []Labeled{{Key: "worst", Label: "O(V + E)"}}, dfs.TimeComplexity.Entries())
}

func TestNewRejectsBrokenReferences(t *testing.T) {
	categories := []Category{
		{ID: Sorting, Name: "ソート", Algorithms: []string{"bubble-sort", "ghost-sort"}},
	}
	algorithms := []Algorithm{
		{ID: "bubble-sort", Name: "バブルソート", Description: "d", Category: Sorting, SpaceComplexity: "O(1)", Stable: boolPtr(true)},
		{ID: "bubble-sort", Name: "dup", Description: "d", Category: Sorting, SpaceComplexity: "O(1)"},
		{ID: "lonely", Name: "lonely", Description: "d", Category: Searching, SpaceComplexity: "O(1)"},
	}
	contents := []Content{{ID: "missing", Overview: "o", Algorithm: "a", CodeImplementation: "c"}}

	_, err := New(categories, algorithms, contents)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalid))
	msg := err.Error()
	require.Contains(t, msg, `duplicate algorithm id "bubble-sort"`)
	require.Contains(t, msg, `unknown algorithm "ghost-sort"`)
	require.Contains(t, msg, `undefined category "searching"`)
	require.Contains(t, msg, `content "missing" has no catalog entry`)
}

func TestNewRejectsMissingRequiredFields(t *testing.T) {
	algorithms := []Algorithm{{ID: "x", Name: "x", Category: "sorting"}}
	categories := []Category{{ID: Sorting, Name: "s", Algorithms: []string{"x"}}}
	_, err := New(categories, algorithms, []Content{{ID: "x", Overview: "only"}})
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "Description")
	require.Contains(t, err.Error(), "SpaceComplexity")
	require.Contains(t, err.Error(), "CodeImplementation")
}

func TestNewRejectsUnknownCategoryValue(t *testing.T) {
	algorithms := []Algorithm{{ID: "x", Name: "x", Description: "d", Category: "misc", SpaceComplexity: "O(1)"}}
	_, err := New(nil, algorithms, nil)
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "oneof")
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
categories:
  - id: searching
    name: 探索
    algorithms: [linear-search]
algorithms:
  - id: linear-search
    name: 線形探索
    description: 先頭から順番に探索
    category: searching
    time_complexity: {best: "O(1)", worst: "O(n)"}
    space_complexity: "O(1)"
`)},
		"content/linear-search.yaml": {Data: []byte(`
id: linear-search
title: 線形探索
overview: 概要
algorithm: 手順
code_implementation: |-
  int main(void) { return 0; }
advantages: ["a", "b"]
`)},
	}
	cat, err := Load(fsys)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	content, ok := cat.Content("linear-search")
	require.True(t, ok)
	require.Equal(t, "int main(void) { return 0; }", content.CodeImplementation)
	require.Empty(t, cat.MissingContent())
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("algorithms: [oops"), 0o644))
	_, err = LoadDir(dir)
	require.ErrorContains(t, err, "parse catalog.yaml")
}
