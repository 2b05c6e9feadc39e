package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	t.Run("accepts a plain number", func(t *testing.T) {
		var a Amount
		err := json.Unmarshal([]byte(`150.5`), &a)
		assert.NoError(t, err)
		assert.True(t, a.IsSet())
		assert.Equal(t, 150.5, a.Value())
	})

	t.Run("accepts a numeric string", func(t *testing.T) {
		var a Amount
		err := json.Unmarshal([]byte(`"200"`), &a)
		assert.NoError(t, err)
		assert.True(t, a.IsSet())
		assert.Equal(t, 200.0, a.Value())
	})

	t.Run("null leaves the amount unset", func(t *testing.T) {
		var a Amount
		err := json.Unmarshal([]byte(`null`), &a)
		assert.NoError(t, err)
		assert.False(t, a.IsSet())
	})

	t.Run("rejects a non numeric string", func(t *testing.T) {
		var a Amount
		err := json.Unmarshal([]byte(`"abc"`), &a)
		assert.Error(t, err)
	})
}

func TestAmountMarshalJSON(t *testing.T) {
	t.Run("set amount renders as a number", func(t *testing.T) {
		data, err := json.Marshal(NewAmount(75))
		assert.NoError(t, err)
		assert.Equal(t, "75", string(data))
	})

	t.Run("unset amount renders as null", func(t *testing.T) {
		var a Amount
		data, err := json.Marshal(a)
		assert.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})
}
