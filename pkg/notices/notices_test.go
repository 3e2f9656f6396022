package notices

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Parallel()

	l := New()
	assert.NotNil(t, l)

	l.Add("first")
	l.Add("second")
	assert.Equal(t, List{"first", "second"}, l)
}

func TestListJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	l := New()
	l.Add("Author has not been found.")
	data, err = json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, `["Author has not been found."]`, string(data))
}
