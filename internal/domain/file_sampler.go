package domain

import (
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

// SamplingOptions is the resolved sampling configuration.
type SamplingOptions struct {
	MaxFilesPerWorkspace int
	IncludeGlobs         []string
	ExcludeGlobs         []string
	TokenPriorityGroups  [][]string
}

// codeExtensions are sampled before anything else.
var codeExtensions = map[string]struct{}{
	".js": {}, ".jsx": {}, ".mjs": {}, ".cjs": {},
	".ts": {}, ".tsx": {}, ".mts": {}, ".cts": {},
	".vue": {}, ".svelte": {},
}

// FilterCandidates keeps workspace-relative files matching at least one
// include glob (all files when include is empty) and no exclude glob. The
// result is normalized, sorted and unique.
func FilterCandidates(files []string, include, exclude []string) ([]string, error) {
	if err := ValidateSamplingGlobs(include, exclude); err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(files))

	for _, file := range files {
		rel := m.NormalizeRelPath(file)
		if rel == "." || strings.HasPrefix(rel, "../") {
			continue
		}

		if len(include) > 0 && !matchesAny(include, rel) {
			continue
		}

		if matchesAny(exclude, rel) {
			continue
		}

		kept = append(kept, rel)
	}

	slices.Sort(kept)

	return slices.Compact(kept), nil
}

// ValidateSamplingGlobs rejects include or exclude patterns doublestar cannot
// parse.
func ValidateSamplingGlobs(include, exclude []string) error {
	for _, pattern := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid sampling glob %q", pattern)
		}
	}

	return nil
}

// SampleWorkspaceFiles deterministically selects at most maxFiles
// representative files from candidates.
//
// Candidates at or below the cap are returned as is. Otherwise one file per
// distinct primary token is taken, preferring code files, and any remaining
// slots are spread evenly over the files not yet chosen.
func SampleWorkspaceFiles(candidates []string, maxFiles int, tokenPriorityGroups [][]string) []string {
	files := normalizeCandidates(candidates)
	if maxFiles <= 0 {
		return []string{}
	}

	if len(files) <= maxFiles {
		return files
	}

	if len(tokenPriorityGroups) == 0 {
		tokenPriorityGroups = DefaultTokenPriorityGroups
	}

	table := NewTokenTable(tokenPriorityGroups)
	code, other := partitionByExtension(files)

	s := &sampleSet{limit: maxFiles, chosen: map[string]struct{}{}, seenTokens: map[string]struct{}{}}
	s.tokenDiversityPass(table, code)
	s.tokenDiversityPass(table, other)

	if !s.full() {
		remaining := make([]string, 0, len(files)-len(s.order))
		for _, file := range files {
			if _, ok := s.chosen[file]; !ok {
				remaining = append(remaining, file)
			}
		}

		for _, index := range distributedIndices(len(remaining), maxFiles-len(s.order)) {
			s.add(remaining[index])
		}
	}

	sample := slices.Clone(s.order)
	slices.Sort(sample)
	sample = slices.Compact(sample)

	if len(sample) > maxFiles {
		sample = sample[:maxFiles]
	}

	slog.Debug("Sampled workspace files", "candidates", len(files), "sampled", len(sample), "tokens", len(s.seenTokens))

	return sample
}

type sampleSet struct {
	limit      int
	order      []string
	chosen     map[string]struct{}
	seenTokens map[string]struct{}
}

func (s *sampleSet) full() bool {
	return len(s.order) >= s.limit
}

func (s *sampleSet) add(file string) {
	if s.full() {
		return
	}

	if _, ok := s.chosen[file]; ok {
		return
	}

	s.chosen[file] = struct{}{}
	s.order = append(s.order, file)
}

type tokenBucket struct {
	token string
	rank  tokenRank
	first string
}

// tokenDiversityPass takes the first file of every distinct primary token,
// visiting tokens in priority order.
func (s *sampleSet) tokenDiversityPass(table TokenTable, files []string) {
	if s.full() || len(files) == 0 {
		return
	}

	buckets := map[string]*tokenBucket{}

	for _, file := range files {
		token, rank, ok := table.primaryToken(file)
		if !ok {
			continue
		}

		if _, exists := buckets[token]; !exists {
			buckets[token] = &tokenBucket{token: token, rank: rank, first: file}
		}
	}

	ordered := make([]*tokenBucket, 0, len(buckets))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket)
	}

	slices.SortFunc(ordered, func(a, b *tokenBucket) int {
		if a.rank.group != b.rank.group {
			return a.rank.group - b.rank.group
		}

		if a.rank.index != b.rank.index {
			return a.rank.index - b.rank.index
		}

		return strings.Compare(a.token, b.token)
	})

	for _, bucket := range ordered {
		if s.full() {
			return
		}

		if _, seen := s.seenTokens[bucket.token]; seen {
			continue
		}

		s.seenTokens[bucket.token] = struct{}{}
		s.add(bucket.first)
	}
}

// distributedIndices picks slots distinct indices spread uniformly over
// [0, n). First, middle and last are anchored when at least three slots are
// available; collisions probe for the nearest free index.
func distributedIndices(n, slots int) []int {
	if slots <= 0 || n <= 0 {
		return nil
	}

	if slots >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all
	}

	taken := make([]bool, n)
	picked := make([]int, 0, slots)

	take := func(target int) {
		if index := nearestFree(taken, target); index >= 0 {
			taken[index] = true
			picked = append(picked, index)
		}
	}

	if slots >= 3 {
		take(0)
		take((n - 1) / 2)
		take(n - 1)
	}

	spread := slots - len(picked)
	for k := 1; k <= spread; k++ {
		take(k * (n - 1) / (spread + 1))
	}

	for i := 0; i < n && len(picked) < slots; i++ {
		if !taken[i] {
			taken[i] = true
			picked = append(picked, i)
		}
	}

	slices.Sort(picked)

	return picked
}

func nearestFree(taken []bool, target int) int {
	n := len(taken)

	for d := 0; d < n; d++ {
		if up := target + d; up < n && !taken[up] {
			return up
		}

		if down := target - d; down >= 0 && !taken[down] {
			return down
		}
	}

	return -1
}

func partitionByExtension(files []string) (code, other []string) {
	for _, file := range files {
		if _, ok := codeExtensions[strings.ToLower(path.Ext(file))]; ok {
			code = append(code, file)
		} else {
			other = append(other, file)
		}
	}

	return code, other
}

func normalizeCandidates(candidates []string) []string {
	files := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		rel := m.NormalizeRelPath(candidate)
		if rel == "." {
			continue
		}

		files = append(files, rel)
	}

	slices.Sort(files)

	return slices.Compact(files)
}
