package classname

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Names())
	assert.Equal(t, 0, store.Len())

	store.Replace([]string{"btn", "btn-primary"})
	assert.Equal(t, []string{"btn", "btn-primary"}, store.Names())
	assert.Equal(t, []string{"btn-primary"}, store.Match("btn-pri"))

	// Replacing is wholesale, nothing from the previous load survives
	snapshot := store.Names()
	store.Replace([]string{"card"})
	assert.Equal(t, []string{"card"}, store.Names())
	assert.Equal(t, []string{"btn", "btn-primary"}, snapshot)

	store.Replace(nil)
	assert.NotNil(t, store.Names())
	assert.Empty(t, store.Names())
}

func TestStore_ConcurrentReplaceAndMatch(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Replace([]string{"a", "ab", "abc"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				result := store.Match("ab")
				if len(result) != 0 {
					assert.Equal(t, []string{"ab", "abc"}, result)
				}
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 3, store.Len())
}
