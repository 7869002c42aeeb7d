package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
)

func TestPathTokens(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "src/routes/userRoutes.ts", want: []string{"src", "route", "user"}},
		{path: "src/user.test.ts", want: []string{"src", "user", "test"}},
		{path: `lib\HTTPClient.js`, want: []string{"lib", "http", "client"}},
		{path: "utils/helpers/index.ts", want: []string{"util", "helper", "index"}},
		{path: ".eslintrc", want: []string{"eslintrc"}},
		{path: "classes/status.ts", want: []string{"classe", "status"}},
		{path: "stories/entries.tsx", want: []string{"story", "entry"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PathTokens(tt.path))
		})
	}
}

func TestTokenTable_PrimaryToken(t *testing.T) {
	table := domain.NewTokenTable(domain.DefaultTokenPriorityGroups)

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "src/routes/user.test.ts", want: "test", wantOK: true},
		{path: "src/services/user.ts", want: "service", wantOK: true},
		{path: "src/controllers/routes.ts", want: "controller", wantOK: true},
		{path: "src/billing/invoice.ts", want: "billing", wantOK: true},
		{path: "src/index.ts", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := table.PrimaryToken(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterCandidates(t *testing.T) {
	files := []string{"src/a.ts", "./src/b.js", "dist/a.js", "README.md", "src/a.ts", "../escape.ts"}

	got, err := domain.FilterCandidates(files, []string{"**/*.{ts,js}"}, []string{"dist/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.ts", "src/b.js"}, got)

	all, err := domain.FilterCandidates(files, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "dist/a.js", "src/a.ts", "src/b.js"}, all)

	_, err = domain.FilterCandidates(files, []string{"src/[x"}, nil)
	require.Error(t, err)
}

func TestSampleWorkspaceFiles_AtOrBelowCapIsIdentity(t *testing.T) {
	candidates := []string{"src/b.ts", "src/a.ts", "src/a.ts"}

	assert.Equal(t, []string{"src/a.ts", "src/b.ts"}, domain.SampleWorkspaceFiles(candidates, 2, nil))
	assert.Equal(t, []string{}, domain.SampleWorkspaceFiles(nil, 3, nil))
	assert.Equal(t, []string{}, domain.SampleWorkspaceFiles(candidates, 0, nil))
}

func TestSampleWorkspaceFiles_PrefersDistinctTokens(t *testing.T) {
	candidates := []string{
		"README.md",
		"src/index.ts",
		"src/routes/post.ts",
		"src/routes/user.ts",
		"src/services/user.ts",
		"src/user.test.ts",
	}

	got := domain.SampleWorkspaceFiles(candidates, 3, nil)
	assert.Equal(t, []string{"src/routes/post.ts", "src/services/user.ts", "src/user.test.ts"}, got)
}

func TestSampleWorkspaceFiles_SpreadsRemainingSlots(t *testing.T) {
	var candidates []string
	for i := range 20 {
		candidates = append(candidates, fmt.Sprintf("src/routes/r%02d.ts", i))
	}

	// All files share the "route" token: one is taken for it, the other four
	// slots anchor first, middle and last of the rest and fill the gap.
	got := domain.SampleWorkspaceFiles(candidates, 5, nil)
	assert.Equal(t, []string{
		"src/routes/r00.ts",
		"src/routes/r01.ts",
		"src/routes/r10.ts",
		"src/routes/r11.ts",
		"src/routes/r19.ts",
	}, got)
}

func TestSampleWorkspaceFiles_Deterministic(t *testing.T) {
	candidates := []string{
		"a/one.ts", "a/two.ts", "b/three.ts", "b/four.ts", "c/five.md", "c/six.json",
		"d/seven.ts", "d/eight.ts", "e/nine.ts", "e/ten.ts",
	}
	reversed := make([]string, len(candidates))
	for i, c := range candidates {
		reversed[len(candidates)-1-i] = c
	}

	first := domain.SampleWorkspaceFiles(candidates, 4, nil)
	second := domain.SampleWorkspaceFiles(reversed, 4, nil)

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestSampleWorkspaceFiles_CodeFilesFirst(t *testing.T) {
	candidates := []string{"docs/guide.md", "docs/intro.md", "src/api.ts"}

	got := domain.SampleWorkspaceFiles(candidates, 2, nil)
	assert.Contains(t, got, "src/api.ts")
	assert.Len(t, got, 2)
}
