package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moorgen/moorgen/pkg/fsm"
)

func TestCondition_Inputs(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		c := fsm.Equals{Signal: "x", Value: fsm.High}
		assert.Equal(t, []string{"x"}, c.Inputs())
	})

	t.Run("Sorted And Deduplicated", func(t *testing.T) {
		c := fsm.Or{
			Left: fsm.And{
				Left:  fsm.Equals{Signal: "y", Value: fsm.High},
				Right: fsm.Equals{Signal: "x", Value: fsm.Low},
			},
			Right: fsm.Not{Operand: fsm.Equals{Signal: "x", Value: fsm.High}},
		}
		assert.Equal(t, []string{"x", "y"}, c.Inputs())
	})
}

func TestEqualConditions(t *testing.T) {
	a := fsm.And{
		Left:  fsm.Equals{Signal: "x", Value: fsm.High},
		Right: fsm.Not{Operand: fsm.Equals{Signal: "y", Value: fsm.Low}},
	}
	b := fsm.And{
		Left:  fsm.Equals{Signal: "x", Value: fsm.High},
		Right: fsm.Not{Operand: fsm.Equals{Signal: "y", Value: fsm.Low}},
	}

	assert.True(t, fsm.EqualConditions(a, b))
	assert.True(t, fsm.EqualConditions(nil, nil))
	assert.False(t, fsm.EqualConditions(a, nil))
	assert.False(t, fsm.EqualConditions(a, fsm.Equals{Signal: "x", Value: fsm.High}))
	assert.False(t, fsm.EqualConditions(a, fsm.And{
		Left:  fsm.Equals{Signal: "x", Value: fsm.Low},
		Right: fsm.Not{Operand: fsm.Equals{Signal: "y", Value: fsm.Low}},
	}))
}

func TestBit(t *testing.T) {
	assert.Equal(t, fsm.High, fsm.Low.Flip())
	assert.Equal(t, fsm.Low, fsm.High.Flip())
	assert.Equal(t, "0", fsm.Low.String())
	assert.Equal(t, "1", fsm.High.String())
	assert.True(t, fsm.High.Valid())
	assert.False(t, fsm.Bit(2).Valid())
}
