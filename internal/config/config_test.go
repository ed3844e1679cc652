package config

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_HasBuiltInKnobs(t *testing.T) {
	c := Default()
	require.Equal(t, "equation", c.DefaultBlockMathTag)
	require.NotNil(t, c.Log)
}

func TestBlockMathTags_WrapsDefaultTag(t *testing.T) {
	c := Default()
	tags := c.BlockMathTags()
	require.True(t, tags["equation"])
	require.False(t, tags["split"])
}

func TestSilent_DiscardsLogOutput(t *testing.T) {
	c := Default().Silent()
	require.Equal(t, io.Discard, c.Log.Writer())
}
