package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslationValidateRequiresFields(t *testing.T) {
	tr := NewTranslation("", "")
	require.Error(t, tr.Validate())

	tr = NewTranslation("nodejs", "8.0")
	require.Error(t, tr.Validate(), "modified must be positive")

	tr.Modified = 1
	require.NoError(t, tr.Validate())
}

func TestTranslationValidateRejectsEmptyLocale(t *testing.T) {
	tr := NewTranslation("nodejs", "8.0")
	tr.Modified = 1
	tr.Translations[""] = TranslationEntry{Summary: "x"}
	require.Error(t, tr.Validate())
}

func TestTranslationCopyAndEqual(t *testing.T) {
	tr := NewTranslation("nodejs", "8.0")
	tr.Modified = 1
	tr.Translations["en"] = TranslationEntry{Summary: "Node.js", Profiles: map[string]string{"default": "default profile"}}

	cp := tr.Copy()
	require.True(t, tr.Equal(cp))

	entry := cp.Translations["en"]
	entry.Profiles["default"] = "changed"
	cp.Translations["en"] = entry
	require.False(t, tr.Equal(cp))
}
