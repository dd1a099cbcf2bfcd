package immutable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutable"
	"github.com/dmitrymomot/immutable/pkg/blueprint"
)

func personSchema() blueprint.Schema {
	return blueprint.Schema{
		"firstName": "string",
		"lastName":  "string",
		"age":       blueprint.Gt(0),
	}
}

func personType(t *testing.T) *immutable.Type {
	t.Helper()
	typ, err := immutable.NewFactory().Define("Person", personSchema())
	require.NoError(t, err)
	return typ
}

func john() map[string]any {
	return map[string]any{"firstName": "John", "lastName": "Doe", "age": 21}
}

func accountType(t *testing.T, opts ...immutable.TypeOption) *immutable.Type {
	t.Helper()
	typ, err := immutable.NewFactory().Define("Account", blueprint.Schema{
		"owner": blueprint.Schema{
			"name":  "string",
			"email": "email",
		},
		"tags":    "string[]",
		"balance": blueprint.Gte(0),
		"greet":   "function?",
	}, opts...)
	require.NoError(t, err)
	return typ
}

func account() map[string]any {
	return map[string]any{
		"owner":   map[string]any{"name": "John", "email": "john@example.com"},
		"tags":    []any{"gold", "early"},
		"balance": 100,
	}
}
