package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator(t *testing.T) {
	gen, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[int64]bool)
		for i := 0; i < 1000; i++ {
			id := gen.GenerateID()
			assert.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("request ids are unique", func(t *testing.T) {
		a := gen.GenerateRequestID()
		b := gen.GenerateRequestID()
		assert.NotEmpty(t, a)
		assert.NotEqual(t, a, b)
	})

	t.Run("node id out of range", func(t *testing.T) {
		_, err := NewSnowflakeGenerator(1024)
		assert.Error(t, err)
	})
}
