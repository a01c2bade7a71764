package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string    `json:"name" msgpack:"name"`
	Qubits int       `json:"qubits" msgpack:"qubits"`
	Angles []float64 `json:"angles" msgpack:"angles"`
}

func TestRoundTrip(t *testing.T) {
	in := payload{
		Name:   "iqft",
		Qubits: 5,
		Angles: []float64{-1.5707963267948966, -0.7853981633974483},
	}

	for _, c := range []Codec{JSON{}, Msgpack{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("msgpack")
	require.True(t, ok)
	assert.Equal(t, "msgpack", c.Name())

	_, ok = ByName("protobuf")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	data := MustMarshal(nil, map[string]int{"a": 1})
	assert.NotEmpty(t, data)

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
