package merge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modulemd/document"
	"modulemd/index"
	"modulemd/mderrors"
	"modulemd/merge"
)

func streamV2(module, stream string) *document.StreamV2 {
	s := document.NewStreamV2()
	s.ModuleName, s.Stream = module, stream
	s.Summary, s.Description = "s", "d"
	s.Licenses = document.Licenses{Module: document.NewStringSet("MIT")}
	return s
}

func TestResolveWithoutAssociatedIndexesFails(t *testing.T) {
	_, err := merge.New().Resolve(false)
	require.Error(t, err)
	require.Equal(t, mderrors.NothingToResolve, mderrors.CodeOf(err))
}

func TestAssociateIndexRejectsOutOfRangePriority(t *testing.T) {
	err := merge.New().AssociateIndex(index.New(), 1001)
	require.Error(t, err)
	require.Equal(t, mderrors.PriorityOutOfRange, mderrors.CodeOf(err))
}

func TestStreamsDedupeByNSVCKeepingDestination(t *testing.T) {
	low := index.New()
	require.NoError(t, low.AddModuleStream(streamV2("httpd", "2.4")))

	high := index.New()
	dup := streamV2("httpd", "2.4")
	dup.Description = "a different description, should be dropped"
	require.NoError(t, high.AddModuleStream(dup))
	require.NoError(t, high.AddModuleStream(streamV2("httpd", "2.6")))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(low, 0))
	require.NoError(t, m.AssociateIndex(high, 10))

	final, err := m.Resolve(false)
	require.NoError(t, err)

	mod, ok := final.GetModule("httpd")
	require.True(t, ok)
	streams := mod.AllStreams()
	require.Len(t, streams, 2)

	s, ok := mod.StreamByNSVC("2.4", 0, "")
	require.True(t, ok)
	require.Equal(t, "d", s.(*document.StreamV2).Description, "destination's stream must win on a duplicate NSVC")
}

func TestDefaultsHigherModifiedWins(t *testing.T) {
	low := index.New()
	a := document.NewDefaults("httpd")
	a.DefaultStream, a.Modified = "2.4", 1
	require.NoError(t, low.AddDefaults(a))

	high := index.New()
	b := document.NewDefaults("httpd")
	b.DefaultStream, b.Modified = "2.6", 2
	require.NoError(t, high.AddDefaults(b))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(low, 0))
	require.NoError(t, m.AssociateIndex(high, 10))
	final, err := m.Resolve(false)
	require.NoError(t, err)

	mod, _ := final.GetModule("httpd")
	require.Equal(t, "2.6", mod.Defaults().DefaultStream)
}

func TestDefaultsEqualModifiedConflictFailsWithoutOverride(t *testing.T) {
	one := index.New()
	a := document.NewDefaults("httpd")
	a.DefaultStream, a.Modified = "2.4", 1
	require.NoError(t, one.AddDefaults(a))

	two := index.New()
	b := document.NewDefaults("httpd")
	b.DefaultStream, b.Modified = "2.6", 1
	require.NoError(t, two.AddDefaults(b))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(one, 5))
	require.NoError(t, m.AssociateIndex(two, 5))

	_, err := m.Resolve(false)
	require.Error(t, err)
	require.Equal(t, mderrors.MergeConflictDefaults, mderrors.CodeOf(err))
}

func TestDefaultsEqualModifiedConflictResolvedByOverrideAcrossLevels(t *testing.T) {
	low := index.New()
	a := document.NewDefaults("httpd")
	a.DefaultStream, a.Modified = "2.4", 1
	require.NoError(t, low.AddDefaults(a))

	high := index.New()
	b := document.NewDefaults("httpd")
	b.DefaultStream, b.Modified = "2.6", 1
	require.NoError(t, high.AddDefaults(b))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(low, 0))
	require.NoError(t, m.AssociateIndex(high, 10))

	final, err := m.Resolve(false)
	require.NoError(t, err)
	mod, _ := final.GetModule("httpd")
	require.Equal(t, "2.6", mod.Defaults().DefaultStream, "the higher-priority level's value wins on override=true merge into final")
}

func TestStrictDefaultsFailsEvenUnderOverride(t *testing.T) {
	low := index.New()
	a := document.NewDefaults("httpd")
	a.DefaultStream, a.Modified = "2.4", 1
	require.NoError(t, low.AddDefaults(a))

	high := index.New()
	b := document.NewDefaults("httpd")
	b.DefaultStream, b.Modified = "2.6", 1
	require.NoError(t, high.AddDefaults(b))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(low, 0))
	require.NoError(t, m.AssociateIndex(high, 10))

	_, err := m.Resolve(true)
	require.Error(t, err, "strict_defaults must fail this conflict even though the merge into final uses override=true")
	require.Equal(t, mderrors.MergeConflictDefaults, mderrors.CodeOf(err))
}

func TestProfileDefaultsMergeUnionsDisjointStreams(t *testing.T) {
	one := index.New()
	a := document.NewDefaults("httpd")
	a.Modified = 1
	a.ProfileDefaults["2.4"] = document.NewStringSet("client")

	two := index.New()
	b := document.NewDefaults("httpd")
	b.Modified = 1
	b.ProfileDefaults["2.6"] = document.NewStringSet("server")

	require.NoError(t, one.AddDefaults(a))
	require.NoError(t, two.AddDefaults(b))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(one, 5))
	require.NoError(t, m.AssociateIndex(two, 5))

	final, err := m.Resolve(false)
	require.NoError(t, err)
	mod, _ := final.GetModule("httpd")
	require.True(t, mod.Defaults().ProfileDefaults["2.4"].Equal(document.NewStringSet("client")))
	require.True(t, mod.Defaults().ProfileDefaults["2.6"].Equal(document.NewStringSet("server")))
}

func TestTranslationsNewestWins(t *testing.T) {
	older := index.New()
	t1 := document.NewTranslation("nodejs", "8.0")
	t1.Modified = 1
	t1.Translations["en"] = document.TranslationEntry{Summary: "old"}
	require.NoError(t, older.AddTranslation(t1))

	newer := index.New()
	t2 := document.NewTranslation("nodejs", "8.0")
	t2.Modified = 2
	t2.Translations["en"] = document.TranslationEntry{Summary: ""}
	require.NoError(t, newer.AddTranslation(t2))

	m := merge.New()
	require.NoError(t, m.AssociateIndex(older, 0))
	require.NoError(t, m.AssociateIndex(newer, 10))

	final, err := m.Resolve(false)
	require.NoError(t, err)
	mod, _ := final.GetModule("nodejs")
	require.Equal(t, "", mod.Translation("8.0").Translations["en"].Summary, "the newer translation wins wholesale, including its cleared field")
}
