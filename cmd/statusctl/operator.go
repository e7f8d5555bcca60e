package main

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/heartbeat"
	"github.com/tangle-network/operator-status/txsender"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
)

type chainFlags struct {
	rpc      string
	registry string
}

func (f *chainFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rpc, "rpc", "http://localhost:8545", "Chain rpc endpoint")
	cmd.Flags().StringVar(&f.registry, "registry", "", "Registry address, defaults to the known deployment of the chain")
}

func (f *chainFlags) dial(ctx context.Context) (*ethclient.Client, *statusregistry.OperatorStatusRegistry, uint64, error) {
	client, err := ethclient.DialContext(ctx, f.rpc)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error dialing %v: %w", f.rpc, err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, nil, 0, fmt.Errorf("error reading chain id: %w", err)
	}
	address, err := statusregistry.ResolveAddress(f.registry, chainID.Uint64())
	if err != nil {
		client.Close()
		return nil, nil, 0, err
	}
	registry, err := statusregistry.NewOperatorStatusRegistry(address, client)
	if err != nil {
		client.Close()
		return nil, nil, 0, err
	}
	return client, registry, chainID.Uint64(), nil
}

// parseMetrics parses name=value pairs.
func parseMetrics(raw []string) (map[string]uint64, error) {
	out := make(map[string]uint64, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid metric %q, expected name=value", kv)
		}
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value of metric %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func signCmd() *cobra.Command {
	var key string
	var serviceID, blueprintID uint64
	var statusCode uint8
	var rawMetrics []string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a heartbeat without submitting it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pk, err := utils.LoadPrivateKey(key, "", "")
			if err != nil {
				return err
			}
			m, err := parseMetrics(rawMetrics)
			if err != nil {
				return err
			}
			encoded, err := heartbeat.EncodeMetrics(heartbeat.MetricsFromMap(m))
			if err != nil {
				return err
			}
			sig, err := heartbeat.Sign(pk, serviceID, blueprintID, statusCode, encoded)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "operator:  %s\n", crypto.PubkeyToAddress(pk.PublicKey).Hex())
			fmt.Fprintf(out, "message:   %s\n", heartbeat.MessageHash(serviceID, blueprintID, statusCode, encoded).Hex())
			fmt.Fprintf(out, "metrics:   %s\n", hexutil.Encode(encoded))
			fmt.Fprintf(out, "signature: %s\n", hexutil.Encode(sig))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "Hex encoded operator private key")
	cmd.Flags().Uint64Var(&serviceID, "service", 0, "Service id")
	cmd.Flags().Uint64Var(&blueprintID, "blueprint", 0, "Blueprint id")
	cmd.Flags().Uint8Var(&statusCode, "status", 0, "Status code (0 healthy, 1 degraded)")
	cmd.Flags().StringArrayVar(&rawMetrics, "metric", nil, "Metric as name=value, repeatable")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func statusCmd() *cobra.Command {
	chain := &chainFlags{}
	cmd := &cobra.Command{
		Use:   "status <serviceId> <operator>",
		Short: "Show the registry state of an operator.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid service id %q", args[0])
			}
			operator, err := utils.ParseAddress(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			client, registry, _, err := chain.dial(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			opts := &bind.CallOpts{Context: ctx}
			cfg, err := registry.GetHeartbeatConfig(opts, serviceID)
			if err != nil {
				return fmt.Errorf("error reading heartbeat config: %w", err)
			}
			state, err := registry.GetOperatorState(opts, serviceID, operator)
			if err != nil {
				return fmt.Errorf("error reading operator state: %w", err)
			}
			current, err := registry.IsHeartbeatCurrent(opts, serviceID, operator)
			if err != nil {
				return fmt.Errorf("error reading heartbeat freshness: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "service:           %d (interval %ds, max missed %d, custom metrics %v)\n", serviceID, cfg.Interval, cfg.MaxMissed, cfg.CustomMetrics)
			fmt.Fprintf(out, "operator:          %s\n", operator.Hex())
			fmt.Fprintf(out, "status:            %s\n", types.StatusCode(state.Status))
			if state.LastHeartbeat != nil && state.LastHeartbeat.Sign() > 0 {
				fmt.Fprintf(out, "last heartbeat:    %s\n", time.Unix(state.LastHeartbeat.Int64(), 0).UTC().Format(time.RFC3339))
			} else {
				fmt.Fprintf(out, "last heartbeat:    never\n")
			}
			fmt.Fprintf(out, "consecutive beats: %d\n", state.ConsecutiveBeats)
			fmt.Fprintf(out, "missed beats:      %d\n", state.MissedBeats)
			fmt.Fprintf(out, "heartbeat current: %v\n", current)
			return nil
		},
	}
	chain.register(cmd)
	return cmd
}

func heartbeatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Heartbeat related commands",
	}

	chain := &chainFlags{}
	var key string
	var rawMetrics []string
	sendCmd := &cobra.Command{
		Use:   "send <serviceId> <blueprintId>",
		Short: "Sign and submit one heartbeat.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid service id %q", args[0])
			}
			blueprintID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid blueprint id %q", args[1])
			}
			pk, err := utils.LoadPrivateKey(key, "", "")
			if err != nil {
				return err
			}
			m, err := parseMetrics(rawMetrics)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			client, registry, chainID, err := chain.dial(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			sender, err := txsender.NewKeyed(client, pk, new(big.Int).SetUint64(chainID), txsender.Config{})
			if err != nil {
				return err
			}
			agent := heartbeat.NewAgent(pk, registry, sender, nil)
			receipt, err := agent.Beat(ctx, types.HeartbeatService{ServiceID: serviceID, BlueprintID: blueprintID, Metrics: m})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "heartbeat mined in block %v: %s\n", receipt.BlockNumber, receipt.TxHash.Hex())
			return nil
		},
	}
	chain.register(sendCmd)
	sendCmd.Flags().StringVar(&key, "key", "", "Hex encoded operator private key")
	sendCmd.Flags().StringArrayVar(&rawMetrics, "metric", nil, "Metric as name=value, repeatable")
	_ = sendCmd.MarkFlagRequired("key")

	cmd.AddCommand(sendCmd)
	return cmd
}
