package middlewares

import (
	"crs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	assert.True(t, Authorize(types.ROLE_ADMIN, types.ROLE_ADMIN))
	assert.True(t, Authorize(types.ROLE_USER, types.ROLE_USER))
	assert.False(t, Authorize(types.ROLE_USER, types.ROLE_ADMIN))
	assert.False(t, Authorize(types.ROLE_ADMIN, types.ROLE_USER))
	assert.False(t, Authorize(types.Role(""), types.ROLE_ADMIN))
}
