package builders

import (
	"time"

	"builder-generator/store"
)

// InitializeCreatedAt renders the creation time as RFC 3339 in UTC.
func (b *ProductBuilder) InitializeCreatedAt(source store.Product, createdAt *string) {
	*createdAt = source.CreatedAt().UTC().Format(time.RFC3339)
}

// BuildCreatedAt parses the edited creation time. An unparsable value
// yields the zero time.
func (b *ProductBuilder) BuildCreatedAt(createdAt string) time.Time {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return time.Time{}
	}

	return t
}
