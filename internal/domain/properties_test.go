package domain_test

import (
	"bytes"
	"encoding/json"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"rulesnap.dev/pkg/rulesnap/internal/domain"
	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

var (
	pathDirs    = []string{"src", "lib", "routes", "services", "test", "components", "utils", "config"}
	pathExts    = []string{".ts", ".tsx", ".js", ".md", ".json"}
	ruleNames   = []string{"semi", "quotes", "eqeqeq", "no-console", "curly"}
	optionTexts = []string{"", `"always"`, `"never"`, `{"a":1}`, `["x",{"y":true}]`}
)

func pick(values []string) gopter.Gen {
	return gen.IntRange(0, len(values)-1).Map(func(i int) string {
		return values[i]
	})
}

func genCandidatePath() gopter.Gen {
	return gopter.CombineGens(
		pick(pathDirs),
		pick(pathDirs),
		gen.Identifier(),
		pick(pathExts),
	).Map(func(vals []interface{}) string {
		return vals[0].(string) + "/" + vals[1].(string) + "/" + vals[2].(string) + vals[3].(string)
	})
}

func genVariant() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, len(m.Severities)-1),
		pick(optionTexts),
	).Map(func(vals []interface{}) m.RuleVariant {
		return variant(m.Severities[vals[0].(int)], vals[1].(string))
	})
}

func genObservations() gopter.Gen {
	return gen.SliceOf(gen.MapOf(pick(ruleNames), genVariant()))
}

func toObservations(raw []map[string]m.RuleVariant) []m.RuleObservation {
	observations := make([]m.RuleObservation, 0, len(raw))
	for _, o := range raw {
		observations = append(observations, m.RuleObservation(o))
	}

	return observations
}

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	return parameters
}

func TestSamplerProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("sample is a sorted subset within the cap", prop.ForAll(
		func(candidates []string, maxFiles int) bool {
			sample := domain.SampleWorkspaceFiles(candidates, maxFiles, nil)

			if len(sample) > maxFiles || !slices.IsSorted(sample) {
				return false
			}

			for _, file := range sample {
				if !slices.Contains(candidates, file) {
					return false
				}
			}

			unique := slices.Compact(slices.Clone(sample))

			return len(unique) == len(sample)
		},
		gen.SliceOf(genCandidatePath()),
		gen.IntRange(1, 12),
	))

	properties.Property("sample ignores candidate order", prop.ForAll(
		func(candidates []string, maxFiles int) bool {
			reversed := slices.Clone(candidates)
			slices.Reverse(reversed)

			return slices.Equal(
				domain.SampleWorkspaceFiles(candidates, maxFiles, nil),
				domain.SampleWorkspaceFiles(reversed, maxFiles, nil),
			)
		},
		gen.SliceOf(genCandidatePath()),
		gen.IntRange(1, 12),
	))

	properties.Property("sample fills the cap when enough candidates exist", prop.ForAll(
		func(candidates []string, maxFiles int) bool {
			unique := slices.Compact(slices.Sorted(slices.Values(candidates)))
			sample := domain.SampleWorkspaceFiles(candidates, maxFiles, nil)

			return len(sample) == min(maxFiles, len(unique))
		},
		gen.SliceOf(genCandidatePath()),
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}

func TestAggregatorProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("aggregation ignores observation order", prop.ForAll(
		func(raw []map[string]m.RuleVariant) bool {
			observations := toObservations(raw)
			reversed := slices.Clone(observations)
			slices.Reverse(reversed)

			a, errA := domain.EncodeSnapshot(domain.BuildSnapshot("g", nil, domain.AggregateRules(observations, domain.PolicySurfaceAll)))
			b, errB := domain.EncodeSnapshot(domain.BuildSnapshot("g", nil, domain.AggregateRules(reversed, domain.PolicySurfaceAll)))

			return errA == nil && errB == nil && bytes.Equal(a, b)
		},
		genObservations(),
	))

	properties.Property("entries are sorted and distinct", prop.ForAll(
		func(raw []map[string]m.RuleVariant) bool {
			table := domain.AggregateRules(toObservations(raw), domain.PolicySurfaceAll)

			for _, entry := range table {
				if len(entry.Variants) == 0 || !slices.IsSortedFunc(entry.Variants, domain.CompareVariants) {
					return false
				}

				for i := 1; i < len(entry.Variants); i++ {
					if entry.Variants[i-1].Equal(entry.Variants[i]) {
						return false
					}
				}
			}

			return true
		},
		genObservations(),
	))

	properties.Property("highest-severity keeps one top variant", prop.ForAll(
		func(raw []map[string]m.RuleVariant) bool {
			all := domain.AggregateRules(toObservations(raw), domain.PolicySurfaceAll)
			highest := domain.AggregateRules(toObservations(raw), domain.PolicyHighestSeverity)

			for name, entry := range highest {
				if !entry.IsScalar() || !entry.Variants[0].Equal(all[name].Variants[0]) {
					return false
				}
			}

			return len(all) == len(highest)
		},
		genObservations(),
	))

	properties.TestingRun(t)
}

func TestSnapshotProperties(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	genSnapshot := gopter.CombineGens(
		genObservations(),
		gen.SliceOf(genCandidatePath()),
	).Map(func(vals []interface{}) m.Snapshot {
		paths := vals[1].([]string)
		workspaces := make([]m.Workspace, 0, len(paths))
		for _, p := range paths {
			workspaces = append(workspaces, m.Workspace(p))
		}

		rules := domain.AggregateRules(toObservations(vals[0].([]map[string]m.RuleVariant)), domain.PolicySurfaceAll)

		return domain.BuildSnapshot("group", workspaces, rules)
	})

	properties.Property("encode decode encode is stable", prop.ForAll(
		func(snapshot m.Snapshot) bool {
			first, err := domain.EncodeSnapshot(snapshot)
			if err != nil {
				return false
			}

			decoded, err := domain.DecodeSnapshot(first)
			if err != nil {
				return false
			}

			second, err := domain.EncodeSnapshot(decoded)

			return err == nil && bytes.Equal(first, second) && bytes.HasSuffix(first, []byte("}\n")) &&
				!bytes.HasSuffix(first, []byte("\n\n")) && json.Valid(first)
		},
		genSnapshot,
	))

	properties.Property("a snapshot has no diff against itself", prop.ForAll(
		func(snapshot m.Snapshot) bool {
			return !domain.HasDiff(domain.DiffSnapshots(snapshot, snapshot))
		},
		genSnapshot,
	))

	properties.Property("diff against empty introduces every rule", prop.ForAll(
		func(snapshot m.Snapshot) bool {
			diff := domain.DiffSnapshots(domain.BuildSnapshot("group", nil, nil), snapshot)

			return len(diff.IntroducedRules) == len(snapshot.Rules) &&
				slices.IsSorted(diff.IntroducedRules) &&
				len(diff.WorkspaceMembershipChanges.Added) == len(snapshot.Workspaces)
		},
		genSnapshot,
	))

	properties.TestingRun(t)
}
