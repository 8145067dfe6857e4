package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata()
	require.NotNil(t, meta)
	assert.Empty(t, meta.Names())
}

func TestMetadata_SetGet(t *testing.T) {
	meta := NewMetadata()

	meta.Set(MetaContentEncoding, "UTF-8")

	assert.Equal(t, "UTF-8", meta.Get(MetaContentEncoding))
	assert.Equal(t, "", meta.Get(MetaContentLanguage))
}

func TestMetadata_SetReplaces(t *testing.T) {
	meta := NewMetadata()

	meta.Set(MetaContentEncoding, "ISO-8859-1")
	meta.Set(MetaContentEncoding, "windows-1252")

	// Single-valued: last writer wins, never appended.
	assert.Equal(t, "windows-1252", meta.Get(MetaContentEncoding))
	assert.Equal(t, []string{MetaContentEncoding}, meta.Names())
}

func TestMetadata_Names_Sorted(t *testing.T) {
	meta := NewMetadata()
	meta.Set(MetaLanguage, "ru")
	meta.Set(MetaContentEncoding, "KOI8-R")
	meta.Set(MetaContentLanguage, "ru")

	assert.Equal(t, []string{MetaContentEncoding, MetaContentLanguage, MetaLanguage}, meta.Names())
}

func TestMetadata_Map_IsCopy(t *testing.T) {
	meta := NewMetadata()
	meta.Set(MetaContentEncoding, "UTF-8")

	m := meta.Map()
	m[MetaContentEncoding] = "mutated"

	assert.Equal(t, "UTF-8", meta.Get(MetaContentEncoding))
}
