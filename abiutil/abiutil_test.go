package abiutil

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

type transferCall struct {
	To     common.Address
	Amount *big.Int
}

func (*transferCall) MethodName() string { return "transfer" }

type pauseCall struct{}

func (*pauseCall) MethodName() string { return "pause" }

type transferEvent struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

func parseABI(t *testing.T) *abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	return &parsed
}

func newEventCodec(t *testing.T, parsed *abi.ABI) *EventCodec {
	t.Helper()
	codec, err := NewEventCodec(parsed, map[string]LogParser{
		"Transfer": func(l types.Log) (interface{}, error) {
			ev := &transferEvent{Raw: l}
			if err := parsed.UnpackIntoInterface(ev, "Transfer", l.Data); err != nil {
				return nil, err
			}
			ev.From = common.BytesToAddress(l.Topics[1].Bytes())
			ev.To = common.BytesToAddress(l.Topics[2].Bytes())
			return ev, nil
		},
	})
	require.NoError(t, err)
	return codec
}

func TestSelectorAndTopic(t *testing.T) {
	assert.Equal(t, "0xa9059cbb", FormatSelector(Selector("transfer(address,uint256)")))
	assert.Equal(t, common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"), EventTopic("Transfer(address,address,uint256)"))

	sel, err := ParseSelector("0xa9059cbb")
	require.NoError(t, err)
	assert.Equal(t, Selector("transfer(address,uint256)"), sel)

	sel, err = ParseSelector("a9059cbb")
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb", FormatSelector(sel))

	for _, bad := range []string{"", "0x12", "0xa9059cbb00"} {
		_, err := ParseSelector(bad)
		assert.Error(t, err, bad)
	}
}

func TestTable(t *testing.T) {
	entries := Table(parseABI(t))
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Kind: "function", Name: "pause", Signature: "pause()", Selector: FormatSelector(Selector("pause()"))}, entries[0])
	assert.Equal(t, "transfer(address,uint256)", entries[1].Signature)
	assert.Equal(t, "0xa9059cbb", entries[1].Selector)
	assert.Equal(t, "event", entries[2].Kind)
	assert.Equal(t, EventTopic("Transfer(address,address,uint256)").Hex(), entries[2].Selector)
}

func TestCallCodecPrototypes(t *testing.T) {
	parsed := parseABI(t)

	_, err := NewCallCodec(parsed, &transferCall{}, &pauseCall{})
	require.NoError(t, err)

	_, err = NewCallCodec(parsed, &shortTransferCall{})
	assert.Error(t, err)

	_, err = NewCallCodec(parsed, &mintCall{})
	assert.Error(t, err)

	assert.Panics(t, func() { MustNewCallCodec(parsed, &mintCall{}) })
}

type shortTransferCall struct{ To common.Address }

func (*shortTransferCall) MethodName() string { return "transfer" }

type mintCall struct{}

func (*mintCall) MethodName() string { return "mint" }

func TestCallCodecRoundTrip(t *testing.T) {
	codec := MustNewCallCodec(parseABI(t), &transferCall{}, &pauseCall{})

	in := &transferCall{To: common.HexToAddress("0x00000000000000000000000000000000000000aa"), Amount: big.NewInt(1234)}
	data, err := codec.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, Selector("transfer(address,uint256)"), [4]byte(data[:4]))

	out, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	data, err = codec.Encode(&pauseCall{})
	require.NoError(t, err)
	assert.Len(t, data, 4)
	out, err = codec.Decode(data)
	require.NoError(t, err)
	assert.IsType(t, &pauseCall{}, out)

	assert.Len(t, codec.Selectors(), 2)
	m, ok := codec.Method(Selector("pause()"))
	require.True(t, ok)
	assert.Equal(t, "pause", m.Name)
}

func TestCallCodecDecodeErrors(t *testing.T) {
	codec := MustNewCallCodec(parseABI(t), &transferCall{}, &pauseCall{})

	_, err := codec.Decode([]byte{0xa9, 0x05})
	assert.True(t, errors.Is(err, ErrUnknownSelector), "%v", err)

	_, err = codec.Decode([]byte{0xde, 0xad, 0xbe, 0xef})
	assert.True(t, errors.Is(err, ErrUnknownSelector), "%v", err)

	sel := Selector("transfer(address,uint256)")
	_, err = codec.Decode(append(sel[:], 0x01))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownSelector))
}

func TestCallCodecDecodeReturn(t *testing.T) {
	parsed := parseABI(t)
	codec := MustNewCallCodec(parsed, &transferCall{}, &pauseCall{})

	packed, err := parsed.Methods["transfer"].Outputs.Pack(true)
	require.NoError(t, err)
	out, err := codec.DecodeReturn("transfer", packed)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{true}, out)

	_, err = codec.DecodeReturn("mint", packed)
	assert.Error(t, err)
}

func TestEventCodecRoundTrip(t *testing.T) {
	parsed := parseABI(t)
	codec := newEventCodec(t, parsed)

	in := &transferEvent{
		From:  common.HexToAddress("0x0000000000000000000000000000000000000001"),
		To:    common.HexToAddress("0x0000000000000000000000000000000000000002"),
		Value: big.NewInt(99),
	}
	l, err := codec.Encode("Transfer", in)
	require.NoError(t, err)
	require.Len(t, l.Topics, 3)
	assert.Equal(t, EventTopic("Transfer(address,address,uint256)"), l.Topics[0])

	out, err := codec.Decode(l)
	require.NoError(t, err)
	in.Raw = l
	assert.Equal(t, in, out)

	assert.Equal(t, []common.Hash{l.Topics[0]}, codec.Topics())
	e, ok := codec.Event(l.Topics[0])
	require.True(t, ok)
	assert.Equal(t, "Transfer", e.Name)
}

func TestEventCodecDecodeErrors(t *testing.T) {
	codec := newEventCodec(t, parseABI(t))

	_, err := codec.Decode(types.Log{})
	assert.True(t, errors.Is(err, ErrInvalidLog), "%v", err)

	_, err = codec.Decode(types.Log{Topics: []common.Hash{EventTopic("Approval(address,address,uint256)")}})
	assert.True(t, errors.Is(err, ErrInvalidLog), "%v", err)

	l, err := codec.Encode("Transfer", &transferEvent{Value: big.NewInt(1)})
	require.NoError(t, err)
	l.Data = l.Data[:10]
	_, err = codec.Decode(l)
	assert.True(t, errors.Is(err, ErrInvalidLog), "%v", err)

	_, err = codec.Encode("Approval", &transferEvent{})
	assert.Error(t, err)
}
