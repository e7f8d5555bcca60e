package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/tangle-network/operator-status/abiutil"
	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/contracts/statusregistrytest"
	"github.com/tangle-network/operator-status/types"
)

const maxDecodeBody = 1 << 20

type contractCodec struct {
	abi        func() *abi.ABI
	decodeCall func([]byte) (abiutil.Call, error)
	decodeLog  func(gethtypes.Log) (string, interface{}, error)
}

var contracts = map[string]contractCodec{
	"registry": {
		abi:        statusregistry.ABI,
		decodeCall: statusregistry.DecodeCall,
		decodeLog: func(l gethtypes.Log) (string, interface{}, error) {
			ev, err := statusregistry.DecodeLog(l)
			if err != nil {
				return "", nil, err
			}
			return ev.EventName(), ev, nil
		},
	},
	"test": {
		abi:        statusregistrytest.ABI,
		decodeCall: statusregistrytest.DecodeCall,
		decodeLog: func(l gethtypes.Log) (string, interface{}, error) {
			ev, err := statusregistrytest.DecodeLog(l)
			if err != nil {
				return "", nil, err
			}
			return ev.EventName(), ev, nil
		},
	},
}

func lookupContract(name string) (contractCodec, error) {
	if name == "" {
		name = "registry"
	}
	c, ok := contracts[strings.ToLower(name)]
	if !ok {
		return contractCodec{}, fmt.Errorf("unknown contract %q", name)
	}
	return c, nil
}

// ApiAbiSelectors lists the function selectors and event topics of a
// contract, selected with ?contract=registry|test.
func ApiAbiSelectors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	c, err := lookupContract(r.URL.Query().Get("contract"))
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{abiutil.Table(c.abi())})
}

// ApiAbiDecodeCall decodes hex calldata into the typed call it selects.
func ApiAbiDecodeCall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	req, c, err := parseDecodeRequest(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	data, err := hexutil.Decode(req.Data)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, "invalid calldata provided")
		return
	}
	call, err := c.decodeCall(data)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusUnprocessableEntity, err.Error())
		return
	}
	var sel [4]byte
	copy(sel[:], data)
	sendOKResponse(j, r.URL.String(), []interface{}{&types.ApiDecodedCall{
		Method:    call.MethodName(),
		Selector:  abiutil.FormatSelector(sel),
		Arguments: call,
	}})
}

// ApiAbiDecodeLog decodes a log given by its topics and hex data.
func ApiAbiDecodeLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	req, c, err := parseDecodeRequest(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	l := gethtypes.Log{}
	if req.Data != "" {
		if l.Data, err = hexutil.Decode(req.Data); err != nil {
			sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, "invalid log data provided")
			return
		}
	}
	for _, t := range req.Topics {
		b, err := hexutil.Decode(t)
		if err != nil || len(b) != common.HashLength {
			sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, "invalid topic provided")
			return
		}
		l.Topics = append(l.Topics, common.BytesToHash(b))
	}
	if len(l.Topics) == 0 {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, "missing topics")
		return
	}

	name, ev, err := c.decodeLog(l)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusUnprocessableEntity, err.Error())
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{&types.ApiDecodedLog{
		Event:     name,
		Topic:     l.Topics[0],
		Arguments: ev,
	}})
}

func parseDecodeRequest(r *http.Request) (*types.ApiDecodeRequest, contractCodec, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDecodeBody))
	if err != nil {
		return nil, contractCodec{}, fmt.Errorf("error reading request body")
	}
	req := &types.ApiDecodeRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, contractCodec{}, fmt.Errorf("invalid request body")
	}
	c, err := lookupContract(req.Contract)
	if err != nil {
		return nil, contractCodec{}, err
	}
	return req, c, nil
}
