package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestDictionaryContains(t *testing.T) {
	d := NewDictionary()

	assert.True(t, d.Contains("python"))
	assert.True(t, d.Contains("Python"))
	assert.True(t, d.Contains(" kubernetes "))
	assert.True(t, d.Contains("c++"))
	assert.True(t, d.Contains("machine learning"))
	assert.False(t, d.Contains("bassoon"))
	assert.False(t, d.Contains(""))
}

func TestDictionaryCategoryOf(t *testing.T) {
	d := NewDictionary()

	tests := []struct {
		term string
		want types.Category
	}{
		{"python", types.CategoryHardSkill},
		{"communication", types.CategorySoftSkill},
		{"docker", types.CategoryTool},
		{"pmp", types.CategoryCertification},
		{"scrum", types.CategoryMethodology},
		{"natural language processing", types.CategoryHardSkill},
	}
	for _, tt := range tests {
		cat, ok := d.CategoryOf(tt.term)
		assert.True(t, ok, tt.term)
		assert.Equal(t, tt.want, cat, tt.term)
	}

	_, ok := d.CategoryOf("bassoon")
	assert.False(t, ok)
}

func TestDictionaryMultiWordPhrases(t *testing.T) {
	d := NewDictionary()

	for _, p := range d.MultiWordPhrases() {
		assert.True(t, d.Contains(p), p)
	}
	assert.Contains(t, d.MultiWordPhrases(), "infrastructure as code")
}

func TestDictionaryTerms(t *testing.T) {
	d := NewDictionary()

	terms := d.Terms()
	assert.NotEmpty(t, terms)
	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "ci/cd")
}
