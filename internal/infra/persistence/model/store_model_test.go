package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestAll_TableNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		tabler, ok := m.(schema.Tabler)
		if !assert.True(t, ok, "%T has no TableName", m) {
			continue
		}
		assert.False(t, seen[tabler.TableName()], "duplicate table %s", tabler.TableName())
		seen[tabler.TableName()] = true
	}
	assert.Len(t, seen, 15)
}
