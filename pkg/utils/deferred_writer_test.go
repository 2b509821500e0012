package utils

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredWriter(t *testing.T) {
	t.Run("holds until flush", func(t *testing.T) {
		d := &DeferredWriter{}
		assert.False(t, d.Pending())

		_, err := d.Write([]byte("warning: no api key\n"))
		require.NoError(t, err)
		assert.True(t, d.Pending())

		var out bytes.Buffer
		require.NoError(t, d.Flush(&out))
		assert.Equal(t, "warning: no api key\n", out.String())
		assert.False(t, d.Pending())
	})

	t.Run("flush of empty writer writes nothing", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&DeferredWriter{}).Flush(&out))
		assert.Zero(t, out.Len())
	})

	t.Run("concurrent writes are kept", func(t *testing.T) {
		d := &DeferredWriter{}
		var wg sync.WaitGroup
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = d.Write([]byte("x"))
			}()
		}
		wg.Wait()

		var out bytes.Buffer
		require.NoError(t, d.Flush(&out))
		assert.Len(t, out.String(), 100)
	})
}
