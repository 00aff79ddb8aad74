package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireOwner(t *testing.T) {
	owner := int64(1)

	assert.NoError(t, RequireOwner(&owner, 1))
	assert.ErrorIs(t, RequireOwner(&owner, 2), ErrForbidden)
	assert.ErrorIs(t, RequireOwner(nil, 1), ErrForbidden)
}
