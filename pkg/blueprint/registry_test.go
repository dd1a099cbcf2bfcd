package blueprint_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutable/pkg/blueprint"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := blueprint.NewRegistry()
	address := blueprint.MustNew("Address", blueprint.Schema{"zip": "string"}, blueprint.WithRegistry(reg))

	require.NoError(t, reg.Register(address))
	assert.ErrorIs(t, reg.Register(address), blueprint.ErrAlreadyRegistered)
	assert.ErrorIs(t, reg.Register(nil), blueprint.ErrInvalidSchema)

	found, ok := reg.Lookup("Address")
	require.True(t, ok)
	assert.Same(t, address, found)
	assert.Equal(t, []string{"Address"}, reg.Names())

	_, ok = blueprint.Lookup("Address")
	assert.False(t, ok, "default registry must stay untouched")

	person, err := blueprint.New("Person", blueprint.Schema{
		"home":   "Address",
		"others": "Address[]?",
	}, blueprint.WithRegistry(reg))
	require.NoError(t, err)

	out, err := person.Validate(map[string]any{
		"home":   map[string]any{"zip": "12345"},
		"others": []any{map[string]any{"zip": "54321", "extra": 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"home":   map[string]any{"zip": "12345"},
		"others": []any{map[string]any{"zip": "54321"}},
	}, out)

	_, err = person.Validate(map[string]any{"home": map[string]any{}})
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"Person.home.zip"}, errs.Fields())
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := blueprint.NewRegistry()
	var wg sync.WaitGroup
	for _, name := range []string{"A", "B", "C", "D"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bp := blueprint.MustNew(name, blueprint.Schema{"v": "any"}, blueprint.WithRegistry(reg))
			assert.NoError(t, reg.Register(bp))
			_, ok := reg.Lookup(name)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"A", "B", "C", "D"}, reg.Names())
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	bp := blueprint.MustNew("blueprintDefaultRegistryTest", blueprint.Schema{"v": "any"})
	require.NoError(t, blueprint.Register(bp))

	found, ok := blueprint.DefaultRegistry().Lookup("blueprintDefaultRegistryTest")
	require.True(t, ok)
	assert.Same(t, bp, found)
}
