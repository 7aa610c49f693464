package videokey

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	key := Generate()

	assert.Len(t, key, Length)
	assert.Regexp(t, `^[A-Za-z0-9]{8}$`, key)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Ab3dE6gH"))
	assert.True(t, Valid("core-basics_01"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("has space"))
	assert.False(t, Valid("slash/key"))
}

func TestProperty_Generate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("generated keys are 8 alphanumeric characters", prop.ForAll(
		func(_ int) bool {
			key := Generate()
			if len(key) != Length {
				return false
			}
			for i := 0; i < len(key); i++ {
				c := key[i]
				if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
					return false
				}
			}
			return Valid(key)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
