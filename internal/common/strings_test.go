package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"Sub":      "sub",
		"ID":       "id",
		"URLPath":  "urlPath",
		"X":        "x",
		"Integers": "integers",
		"already":  "already",
		"Type":     "type_",
		"Go":       "go_",
		"HTTPS":    "https",
	}

	for in, want := range tests {
		assert.Equal(t, want, LowerCamel(in), "LowerCamel(%q)", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Audit", Capitalize("audit"))
	assert.Equal(t, "AuditLog", Capitalize("auditLog"))
	assert.Equal(t, "Already", Capitalize("Already"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Émile", Capitalize("émile"))
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))
}
