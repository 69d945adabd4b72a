package types

import (
	"testing"

	"github.com/meadowlabs/meadow/common"
	"github.com/stretchr/testify/require"
)

func TestContextSnapshotRevert(t *testing.T) {
	ctx := NewEmptyContext()
	cont := common.HexToAddress("0x01")

	ctx.SetData(cont, common.Address{}, []byte("k"), []byte("v1"))

	sn := ctx.Snapshot()
	ctx.SetData(cont, common.Address{}, []byte("k"), []byte("v2"))
	require.Equal(t, []byte("v2"), ctx.Data(cont, common.Address{}, []byte("k")))

	ctx.Revert(sn)
	require.Equal(t, []byte("v1"), ctx.Data(cont, common.Address{}, []byte("k")))
}

func TestContextSnapshotCommit(t *testing.T) {
	ctx := NewEmptyContext()
	cont := common.HexToAddress("0x01")

	ctx.SetData(cont, common.Address{}, []byte("a"), []byte("1"))
	ctx.SetData(cont, common.Address{}, []byte("b"), []byte("2"))

	sn := ctx.Snapshot()
	ctx.SetData(cont, common.Address{}, []byte("a"), []byte("3"))
	// empty value is a delete
	ctx.SetData(cont, common.Address{}, []byte("b"), nil)
	ctx.Commit(sn)

	require.Equal(t, []byte("3"), ctx.Data(cont, common.Address{}, []byte("a")))
	require.Nil(t, ctx.Data(cont, common.Address{}, []byte("b")))
}

func TestContextDeleteTombstone(t *testing.T) {
	ctx := NewEmptyContext()
	cont := common.HexToAddress("0x01")

	ctx.SetData(cont, common.Address{}, []byte("k"), []byte("v"))
	sn := ctx.Snapshot()
	ctx.SetData(cont, common.Address{}, []byte("k"), nil)
	// the overlay must not fall through to the parent value
	require.Nil(t, ctx.Data(cont, common.Address{}, []byte("k")))
	ctx.Revert(sn)
	require.Equal(t, []byte("v"), ctx.Data(cont, common.Address{}, []byte("k")))
}

func TestContextDataKeysPrefix(t *testing.T) {
	ctx := NewEmptyContext()
	cont := common.HexToAddress("0x01")

	ctx.SetData(cont, common.Address{}, []byte{0x10, 0x01}, []byte("a"))
	sn := ctx.Snapshot()
	ctx.SetData(cont, common.Address{}, []byte{0x10, 0x02}, []byte("b"))
	ctx.SetData(cont, common.Address{}, []byte{0x11, 0x01}, []byte("c"))

	keys := ctx.DataKeys(cont, common.Address{}, []byte{0x10})
	require.Len(t, keys, 2)
	ctx.Commit(sn)

	keys = ctx.DataKeys(cont, common.Address{}, []byte{0x10})
	require.Len(t, keys, 2)
	require.Equal(t, []byte{0x10, 0x01}, keys[0])
	require.Equal(t, []byte{0x10, 0x02}, keys[1])
}

func TestContextEventsRevert(t *testing.T) {
	ctx := NewEmptyContext()

	ctx.EmitEvent(&Event{Type: EventTagContract, Result: []byte("keep")})
	sn := ctx.Snapshot()
	ctx.EmitEvent(&Event{Type: EventTagContract, Result: []byte("drop")})
	require.Len(t, ctx.Events(), 2)

	ctx.Revert(sn)
	evs := ctx.Events()
	require.Len(t, evs, 1)
	require.Equal(t, []byte("keep"), evs[0].Result)
}

func TestContextEventIndexAcrossCommit(t *testing.T) {
	ctx := NewEmptyContext()

	ctx.EmitEvent(&Event{Type: EventTagContract})
	sn := ctx.Snapshot()
	ctx.EmitEvent(&Event{Type: EventTagContract})
	ctx.Commit(sn)
	ctx.EmitEvent(&Event{Type: EventTagContract})

	evs := ctx.Events()
	require.Len(t, evs, 3)
	for i, ev := range evs {
		require.Equal(t, uint16(i), ev.Index)
	}
}

func TestNextContextCarriesState(t *testing.T) {
	ctx := NewEmptyContext()
	cont := common.HexToAddress("0x01")
	ctx.SetData(cont, common.Address{}, []byte("k"), []byte("v"))

	next := ctx.NextContext(ctx.LastTimestamp() + 10)
	require.Equal(t, ctx.TargetHeight()+1, next.TargetHeight())
	require.Equal(t, ctx.LastTimestamp()+10, next.LastTimestamp())
	require.Equal(t, []byte("v"), next.Data(cont, common.Address{}, []byte("k")))
}
