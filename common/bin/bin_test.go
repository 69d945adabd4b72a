package bin

import (
	"bytes"
	"testing"

	"github.com/meadowlabs/meadow/common"
	"github.com/meadowlabs/meadow/common/amount"
	"github.com/stretchr/testify/require"
)

func TestWriteReadBytesLengthPrefixes(t *testing.T) {
	for _, n := range []int{0, 1, 253, 254, 65535, 65536} {
		bf := &bytes.Buffer{}
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i)
		}
		_, err := WriteBytes(bf, in)
		require.NoError(t, err)

		out, _, err := ReadBytes(bf)
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestSumWriterReaderRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	am := amount.MustParseAmount("123.456")

	bf := &bytes.Buffer{}
	sw := NewSumWriter()
	_, err := sw.Uint16(bf, 1000)
	require.NoError(t, err)
	_, err = sw.Uint64(bf, 1<<40)
	require.NoError(t, err)
	_, err = sw.Address(bf, addr)
	require.NoError(t, err)
	_, err = sw.Amount(bf, am)
	require.NoError(t, err)
	_, err = sw.String(bf, "farm")
	require.NoError(t, err)
	_, err = sw.Bool(bf, true)
	require.NoError(t, err)
	require.Equal(t, int64(bf.Len()), sw.Sum())

	sr := NewSumReader()
	v16, _, err := sr.GetUint16(bf)
	require.NoError(t, err)
	require.Equal(t, uint16(1000), v16)
	v64, _, err := sr.GetUint64(bf)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<40, v64)

	var gotAddr common.Address
	_, err = sr.Address(bf, &gotAddr)
	require.NoError(t, err)
	require.Equal(t, addr, gotAddr)

	var gotAm *amount.Amount
	_, err = sr.Amount(bf, &gotAm)
	require.NoError(t, err)
	require.Equal(t, am.String(), gotAm.String())

	var gotStr string
	_, err = sr.String(bf, &gotStr)
	require.NoError(t, err)
	require.Equal(t, "farm", gotStr)

	var gotBool bool
	_, err = sr.Bool(bf, &gotBool)
	require.NoError(t, err)
	require.True(t, gotBool)
}

func TestTypeCodecRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x01")
	am := amount.MustParseAmount("10")

	vs := []interface{}{
		uint64(7), addr, am, "hello", true,
		[]common.Address{addr, common.HexToAddress("0x02")},
		[]*amount.Amount{am, amount.MustParseAmount("0.5")},
	}
	bs := TypeWriteAll(vs...)

	out, err := TypeReadAll(bs, len(vs))
	require.NoError(t, err)
	require.Len(t, out, len(vs))
	require.Equal(t, uint64(7), out[0])
	require.Equal(t, addr, out[1])
	require.Equal(t, am.String(), out[2].(*amount.Amount).String())
	require.Equal(t, "hello", out[3])
	require.Equal(t, true, out[4])
	require.Equal(t, vs[5], out[5])
	outAmts := out[6].([]*amount.Amount)
	require.Len(t, outAmts, 2)
	require.Equal(t, "0.5", outAmts[1].String())
}

func TestReadBytesShortInput(t *testing.T) {
	bf := bytes.NewBuffer([]byte{10, 1, 2})
	_, _, err := ReadBytes(bf)
	require.Error(t, err)
}

func TestUintBytesRoundTrip(t *testing.T) {
	require.Equal(t, uint16(0xBEEF), Uint16(Uint16Bytes(0xBEEF)))
	require.Equal(t, uint32(0xDEADBEEF), Uint32(Uint32Bytes(0xDEADBEEF)))
	require.Equal(t, uint64(0xFEEDFACECAFE), Uint64(Uint64Bytes(0xFEEDFACECAFE)))
}
