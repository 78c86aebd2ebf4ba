package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasQuit(t *testing.T) {
	assert.False(t, HasQuit(nil))
	assert.False(t, HasQuit([]Event{{Kind: EventKey, Key: 65}}))
	assert.True(t, HasQuit([]Event{{Kind: EventKey, Key: 65}, {Kind: EventQuit}, {Kind: EventKey}}))
}
