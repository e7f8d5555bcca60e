package types

import "github.com/ethereum/go-ethereum/common"

type ApiResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ApiOperatorResponse is an operator status joined with its heartbeat config.
type ApiOperatorResponse struct {
	OperatorStatus
	Online           bool   `json:"online"`
	HeartbeatCurrent bool   `json:"heartbeatCurrent"`
	StatusName       string `json:"statusName"`
}

type ApiDecodeRequest struct {
	Contract string   `json:"contract"`
	Data     string   `json:"data"`
	Topics   []string `json:"topics"`
}

type ApiDecodedCall struct {
	Method    string      `json:"method"`
	Selector  string      `json:"selector"`
	Arguments interface{} `json:"arguments"`
}

type ApiDecodedLog struct {
	Event     string      `json:"event"`
	Topic     common.Hash `json:"topic"`
	Arguments interface{} `json:"arguments"`
}
