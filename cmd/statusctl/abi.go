package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tangle-network/operator-status/abiutil"
	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/contracts/statusregistrytest"
)

type contract struct {
	abi        func() *abi.ABI
	decodeCall func([]byte) (abiutil.Call, error)
	decodeLog  func(gethtypes.Log) (string, interface{}, error)
}

var contracts = map[string]contract{
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

func lookupContract(name string) (contract, error) {
	c, ok := contracts[name]
	if !ok {
		return contract{}, fmt.Errorf("unknown contract %q, expected registry or test", name)
	}
	return c, nil
}

func selectorsCmd() *cobra.Command {
	var contractName string
	cmd := &cobra.Command{
		Use:   "selectors",
		Short: "List the function selectors and event topics of a contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupContract(contractName)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Kind", "Selector", "Signature"})
			table.SetAutoWrapText(false)
			table.SetBorder(false)
			for _, e := range abiutil.Table(c.abi()) {
				table.Append([]string{e.Kind, e.Selector, e.Signature})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&contractName, "contract", "registry", "Contract to list (registry or test)")
	return cmd
}

func decodeCmd() *cobra.Command {
	var contractName string
	var dump bool
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode calldata and logs.",
	}
	cmd.PersistentFlags().StringVar(&contractName, "contract", "registry", "Contract to decode against (registry or test)")
	cmd.PersistentFlags().BoolVar(&dump, "dump", false, "Dump the full decoded value")

	callCmd := &cobra.Command{
		Use:   "call <calldata>",
		Short: "Decode hex calldata into the call it selects.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupContract(contractName)
			if err != nil {
				return err
			}
			data, err := hexutil.Decode(args[0])
			if err != nil {
				return fmt.Errorf("invalid calldata: %w", err)
			}
			call, err := c.decodeCall(data)
			if err != nil {
				return err
			}
			if dump {
				fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(call))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %+v\n", call.MethodName(), call)
			return nil
		},
	}

	logCmd := &cobra.Command{
		Use:   "log <data> <topic0> [topics...]",
		Short: "Decode a log given by its hex data and topics.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lookupContract(contractName)
			if err != nil {
				return err
			}
			l := gethtypes.Log{}
			if l.Data, err = hexutil.Decode(args[0]); err != nil {
				return fmt.Errorf("invalid log data: %w", err)
			}
			for _, t := range args[1:] {
				b, err := hexutil.Decode(t)
				if err != nil || len(b) != common.HashLength {
					return fmt.Errorf("invalid topic %q", t)
				}
				l.Topics = append(l.Topics, common.BytesToHash(b))
			}
			name, ev, err := c.decodeLog(l)
			if err != nil {
				return err
			}
			if dump {
				fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(ev))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %+v\n", name, ev)
			return nil
		},
	}

	cmd.AddCommand(callCmd, logCmd)
	return cmd
}
