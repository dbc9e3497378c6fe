package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLesionType(t *testing.T) {
	cases := map[string]LesionType{
		"comedone":  Comedone,
		"Papules":   Papule,
		" pustule ": Pustule,
		"NODULE":    Nodule,
		"comedones": Comedone,
	}
	for in, want := range cases {
		got, err := ParseLesionType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLesionType("freckle")
	require.ErrorIs(t, err, ErrUnknownLesionType)
}

func TestLesionType_Inflammatory(t *testing.T) {
	assert.False(t, Comedone.Inflammatory())
	assert.True(t, Papule.Inflammatory())
	assert.True(t, Pustule.Inflammatory())
	assert.True(t, Nodule.Inflammatory())
}

func TestLesionType_InfoCoversAllTypes(t *testing.T) {
	for _, lt := range LesionTypes() {
		info, ok := lt.Info()
		require.True(t, ok, lt.String())
		assert.Equal(t, lt, info.Type)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Examples)
	}
	_, ok := LesionType(42).Info()
	assert.False(t, ok)
}

func TestNewLesion_ValidatesPosition(t *testing.T) {
	now := time.Now()
	l, err := NewLesion("id", Pustule, Point{X: 0, Y: 1}, now)
	require.NoError(t, err)
	assert.Equal(t, Pustule, l.Type)
	assert.Zero(t, l.Intensity)

	_, err = NewLesion("id", Pustule, Point{X: 1.01, Y: 0.5}, now)
	require.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = NewLesion("id", LesionType(-1), Point{X: 0.5, Y: 0.5}, now)
	require.ErrorIs(t, err, ErrUnknownLesionType)
}

func TestLesionPixelCenter(t *testing.T) {
	l := Lesion{Position: Point{X: 0.25, Y: 0.5}}
	x, y := l.PixelCenter(800, 600)
	require.Equal(t, 200, x)
	require.Equal(t, 300, y)
}
