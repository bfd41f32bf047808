// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/strategy"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

var _ strategy.MsgServer = &strategyMsgServer{}

type strategyMsgServer struct {
	*Keeper
}

func NewStrategyMsgServer(keeper *Keeper) strategy.MsgServer {
	return &strategyMsgServer{Keeper: keeper}
}

func (k strategyMsgServer) InitStrategy(ctx context.Context, msg *strategy.MsgInitStrategy) (*strategy.MsgInitStrategyResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	if _, err := k.GetVault(ctx, msg.VaultId); err != nil {
		return nil, err
	}
	if k.HasStrategyConfig(ctx, msg.VaultId) {
		return nil, sdkerrors.Wrapf(strategy.ErrConfigExists, "vault %d", msg.VaultId)
	}
	if msg.RebalanceInterval < strategy.MinRebalanceInterval || msg.RebalanceInterval > strategy.MaxRebalanceInterval {
		return nil, sdkerrors.Wrapf(strategy.ErrInvalidInterval, "interval %ds outside [%ds, %ds]", msg.RebalanceInterval, strategy.MinRebalanceInterval, strategy.MaxRebalanceInterval)
	}
	if msg.EmergencyExitThresholdBps > strategy.MaxEmergencyExitThresholdBps {
		return nil, sdkerrors.Wrapf(strategy.ErrInvalidThreshold, "threshold %dbps exceeds %dbps", msg.EmergencyExitThresholdBps, strategy.MaxEmergencyExitThresholdBps)
	}

	config := strategy.Config{
		VaultId:                   msg.VaultId,
		RebalanceInterval:         msg.RebalanceInterval,
		LastRebalanceTime:         k.header.GetHeaderInfo(ctx).Time.Unix(),
		EmergencyExitThresholdBps: msg.EmergencyExitThresholdBps,
		AutoRebalanceEnabled:      msg.AutoRebalanceEnabled,
	}
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"strategy_initialized",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "rebalance_interval", Value: fmt.Sprint(msg.RebalanceInterval)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgInitStrategyResponse{}, nil
}

func (k strategyMsgServer) ApproveAdapter(ctx context.Context, msg *strategy.MsgApproveAdapter) (*strategy.MsgApproveAdapterResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.VaultId != msg.VaultId {
		return nil, sdkerrors.Wrapf(strategy.ErrAdapterNotApproved, "adapter %d belongs to vault %d", adapter.Id, adapter.VaultId)
	}

	if k.IsAdapterApproved(ctx, msg.VaultId, msg.AdapterId) {
		return &strategy.MsgApproveAdapterResponse{}, nil
	}
	if len(config.AdapterList) >= strategy.MaxAdapters {
		return nil, sdkerrors.Wrapf(strategy.ErrAdapterListFull, "vault %d already has %d adapters", msg.VaultId, strategy.MaxAdapters)
	}

	config.AdapterList = append(config.AdapterList, msg.AdapterId)
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}
	if err := k.ApprovedAdapters.Set(ctx, collections.Join(msg.VaultId, msg.AdapterId), true); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter approval to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"adapter_approved",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(msg.AdapterId)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgApproveAdapterResponse{}, nil
}

func (k strategyMsgServer) RevokeAdapter(ctx context.Context, msg *strategy.MsgRevokeAdapter) (*strategy.MsgRevokeAdapterResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if !k.IsAdapterApproved(ctx, msg.VaultId, msg.AdapterId) {
		return nil, sdkerrors.Wrapf(strategy.ErrAdapterNotApproved, "adapter %d", msg.AdapterId)
	}

	// Swap-and-pop removal; insertion order is not preserved.
	for i, id := range config.AdapterList {
		if id == msg.AdapterId {
			last := len(config.AdapterList) - 1
			config.AdapterList[i] = config.AdapterList[last]
			config.AdapterList = config.AdapterList[:last]
			break
		}
	}
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}
	if err := k.ApprovedAdapters.Remove(ctx, collections.Join(msg.VaultId, msg.AdapterId)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to remove adapter approval from state")
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if v.ActiveAdapterId == msg.AdapterId {
		v.ActiveAdapterId = 0
		if err := k.SetVault(ctx, v); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to set vault to state")
		}
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"adapter_revoked",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(msg.AdapterId)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgRevokeAdapterResponse{}, nil
}

func (k strategyMsgServer) SetActiveAdapter(ctx context.Context, msg *strategy.MsgSetActiveAdapter) (*strategy.MsgSetActiveAdapterResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	if !k.IsAdapterApproved(ctx, msg.VaultId, msg.AdapterId) {
		return nil, sdkerrors.Wrapf(strategy.ErrAdapterNotApproved, "adapter %d", msg.AdapterId)
	}

	// A campaign-bound vault may only run the adapter its campaign's
	// strategy designates.
	if campaignID, bound := k.GetVaultCampaign(ctx, msg.VaultId); bound {
		if campaign, found := k.campaigns.GetCampaign(ctx, campaignID); found {
			if assigned, found := k.strategies.GetStrategy(ctx, campaign.StrategyId); found && assigned.AdapterId != msg.AdapterId {
				return nil, sdkerrors.Wrapf(strategy.ErrStrategyMismatch, "campaign %d expects adapter %d, got %d", campaignID, assigned.AdapterId, msg.AdapterId)
			}
		}
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if v.ActiveAdapterId == msg.AdapterId {
		return &strategy.MsgSetActiveAdapterResponse{}, nil
	}

	// Capital is not migrated; it idles until the next rebalance cycle.
	v.ActiveAdapterId = msg.AdapterId
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"active_adapter_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(msg.AdapterId)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgSetActiveAdapterResponse{}, nil
}

func (k strategyMsgServer) CheckAndRebalance(ctx context.Context, msg *strategy.MsgCheckAndRebalance) (*strategy.MsgCheckAndRebalanceResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	// Rebalancing is permissionless; the gates below decide whether it runs.
	if _, err := k.address.StringToBytes(msg.Signer); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if !config.AutoRebalanceEnabled || config.EmergencyMode || now < config.LastRebalanceTime+config.RebalanceInterval {
		return &strategy.MsgCheckAndRebalanceResponse{}, nil
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	best, found := k.findBestAdapter(ctx, v, config)

	config.LastRebalanceTime = now
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if !found || best == v.ActiveAdapterId {
		return &strategy.MsgCheckAndRebalanceResponse{AdapterId: v.ActiveAdapterId}, nil
	}

	// Pull what we can out of the old adapter before switching; a failed
	// divestment leaves the funds behind rather than blocking the switch.
	if v.ActiveAdapterId != 0 {
		if old, err := k.GetAdapter(ctx, v.ActiveAdapterId); err == nil {
			if assets, err := k.AdapterTotalAssets(ctx, v, old); err == nil && assets.IsPositive() {
				if _, _, err := k.AdapterDivest(ctx, v, old, assets, false); err != nil {
					k.logger.Warn("unable to divest old adapter during rebalance", "vault", v.Id, "adapter", old.Id, "err", err)
				}
			}
		}
	}

	v.ActiveAdapterId = best
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.investSurplus(ctx, v); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"vault_rebalanced",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(best)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgCheckAndRebalanceResponse{Rebalanced: true, AdapterId: best}, nil
}

// findBestAdapter scans the approved list for the adapter reporting the most
// assets. Probes are defensive: a failing adapter is skipped and logged. Ties
// keep the earliest candidate, and if every probe fails the first list member
// wins by default.
func (k *Keeper) findBestAdapter(ctx context.Context, v vault.Vault, config strategy.Config) (uint64, bool) {
	if len(config.AdapterList) == 0 {
		return 0, false
	}

	best := uint64(0)
	bestAssets := math.ZeroInt()
	for _, id := range config.AdapterList {
		adapter, err := k.GetAdapter(ctx, id)
		if err != nil {
			k.logger.Warn("skipping unknown adapter during rebalance scan", "vault", v.Id, "adapter", id)
			continue
		}

		assets, err := k.AdapterTotalAssets(ctx, v, adapter)
		if err != nil {
			k.logger.Warn("skipping failed adapter probe during rebalance scan", "vault", v.Id, "adapter", id, "err", err)
			continue
		}

		if best == 0 || assets.GT(bestAssets) {
			best = id
			bestAssets = assets
		}
	}

	if best == 0 {
		best = config.AdapterList[0]
	}

	return best, true
}

func (k strategyMsgServer) EnterEmergencyMode(ctx context.Context, msg *strategy.MsgEnterEmergencyMode) (*strategy.MsgEnterEmergencyModeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleEmergency, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if config.EmergencyMode {
		return &strategy.MsgEnterEmergencyModeResponse{}, nil
	}

	config.EmergencyMode = true
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if !v.InvestPaused {
		v.InvestPaused = true
		if err := k.SetVault(ctx, v); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to set vault to state")
		}
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_mode_entered",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgEnterEmergencyModeResponse{}, nil
}

func (k strategyMsgServer) ExitEmergencyMode(ctx context.Context, msg *strategy.MsgExitEmergencyMode) (*strategy.MsgExitEmergencyModeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	// Exiting takes more trust than entering.
	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if !config.EmergencyMode {
		return &strategy.MsgExitEmergencyModeResponse{}, nil
	}

	config.EmergencyMode = false
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_mode_exited",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgExitEmergencyModeResponse{}, nil
}

func (k strategyMsgServer) EmergencyExit(ctx context.Context, msg *strategy.MsgEmergencyExit) (*strategy.MsgEmergencyExitResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleEmergency, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	returned := math.ZeroInt()
	if v.ActiveAdapterId != 0 {
		adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
		if err != nil {
			return nil, err
		}
		returned, _, err = k.AdapterEmergencyWithdraw(ctx, v, adapter)
		if err != nil {
			return nil, err
		}
	}

	config.EmergencyMode = true
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	v.EmergencyShutdown = true
	v.InvestPaused = true
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_exit",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "returned", Value: returned.String()},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgEmergencyExitResponse{Returned: returned}, nil
}

func (k strategyMsgServer) SetRebalanceInterval(ctx context.Context, msg *strategy.MsgSetRebalanceInterval) (*strategy.MsgSetRebalanceIntervalResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if msg.RebalanceInterval < strategy.MinRebalanceInterval || msg.RebalanceInterval > strategy.MaxRebalanceInterval {
		return nil, sdkerrors.Wrapf(strategy.ErrInvalidInterval, "interval %ds outside [%ds, %ds]", msg.RebalanceInterval, strategy.MinRebalanceInterval, strategy.MaxRebalanceInterval)
	}

	if config.RebalanceInterval == msg.RebalanceInterval {
		return &strategy.MsgSetRebalanceIntervalResponse{}, nil
	}

	config.RebalanceInterval = msg.RebalanceInterval
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"rebalance_interval_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "rebalance_interval", Value: fmt.Sprint(msg.RebalanceInterval)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgSetRebalanceIntervalResponse{}, nil
}

func (k strategyMsgServer) SetAutoRebalance(ctx context.Context, msg *strategy.MsgSetAutoRebalance) (*strategy.MsgSetAutoRebalanceResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	if config.AutoRebalanceEnabled == msg.Enabled {
		return &strategy.MsgSetAutoRebalanceResponse{}, nil
	}

	config.AutoRebalanceEnabled = msg.Enabled
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"auto_rebalance_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "enabled", Value: fmt.Sprint(msg.Enabled)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgSetAutoRebalanceResponse{}, nil
}

func (k strategyMsgServer) SetEmergencyExitThreshold(ctx context.Context, msg *strategy.MsgSetEmergencyExitThreshold) (*strategy.MsgSetEmergencyExitThresholdResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetStrategyConfig(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if msg.ThresholdBps > strategy.MaxEmergencyExitThresholdBps {
		return nil, sdkerrors.Wrapf(strategy.ErrInvalidThreshold, "threshold %dbps exceeds %dbps", msg.ThresholdBps, strategy.MaxEmergencyExitThresholdBps)
	}

	if config.EmergencyExitThresholdBps == msg.ThresholdBps {
		return &strategy.MsgSetEmergencyExitThresholdResponse{}, nil
	}

	config.EmergencyExitThresholdBps = msg.ThresholdBps
	if err := k.SetStrategyConfig(ctx, config); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_exit_threshold_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "threshold_bps", Value: fmt.Sprint(msg.ThresholdBps)},
	); err != nil {
		return nil, err
	}

	return &strategy.MsgSetEmergencyExitThresholdResponse{}, nil
}
