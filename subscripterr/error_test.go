package subscripterr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/subscript-lang/subscript/position"
)

func TestDiagnostic_ErrorIncludesTypeAndMessage(t *testing.T) {
	d := New(TypeMalformedRewriteRule, "bad triple", position.Range{})
	require.Contains(t, d.Error(), "malformed_rewrite_rule")
	require.Contains(t, d.Error(), "bad triple")
}

func TestDiagnostic_UnwrapReturnsCause(t *testing.T) {
	cause := errors.New("underlying")
	d := Wrap(TypeInvalidImageWidth, "not numeric", position.Range{}, cause)
	require.ErrorIs(t, d, cause)
	require.Contains(t, d.Error(), "underlying")
}

func TestDiagnostic_UnwrapNilCauseIsNil(t *testing.T) {
	d := New(TypeUnboundWhere, "no preceding tag", position.Range{})
	require.Nil(t, d.Unwrap())
}

func TestBag_AddAccumulatesInOrder(t *testing.T) {
	var bag Bag
	require.True(t, bag.Empty())

	bag.Add(New(TypeUnboundWhere, "first", position.Range{}))
	bag.Add(New(TypeInvalidImageWidth, "second", position.Range{}))

	require.False(t, bag.Empty())
	require.Len(t, bag.All(), 2)
	require.Equal(t, "first", bag.All()[0].Message)
	require.Equal(t, "second", bag.All()[1].Message)
}

func TestBag_NilBagAddIsNoOp(t *testing.T) {
	var bag *Bag
	require.NotPanics(t, func() {
		bag.Add(New(TypeUnboundWhere, "ignored", position.Range{}))
	})
}
