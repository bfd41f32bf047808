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

	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

var _ vault.MsgServer = &vaultMsgServer{}

type vaultMsgServer struct {
	*Keeper
}

func NewVaultMsgServer(keeper *Keeper) vault.MsgServer {
	return &vaultMsgServer{Keeper: keeper}
}

func (k vaultMsgServer) CreateVault(ctx context.Context, msg *vault.MsgCreateVault) (*vault.MsgCreateVaultResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	if msg.Denom == "" {
		return nil, sdkerrors.Wrap(vault.ErrInvalidVault, "denom cannot be empty")
	}
	if msg.CashBufferBps > types.BpsDenominator {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidVault, "cash buffer %dbps exceeds %dbps", msg.CashBufferBps, types.BpsDenominator)
	}
	if msg.MaxLossBps > types.BpsDenominator {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidVault, "max loss %dbps exceeds %dbps", msg.MaxLossBps, types.BpsDenominator)
	}

	id, err := k.IncrementNextVaultID(ctx)
	if err != nil {
		return nil, err
	}

	v := vault.Vault{
		Id:            id,
		Denom:         msg.Denom,
		CashBufferBps: msg.CashBufferBps,
		MaxLossBps:    msg.MaxLossBps,
		TotalProfit:   math.ZeroInt(),
		TotalLoss:     math.ZeroInt(),
	}
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"vault_created",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(id)},
		event.Attribute{Key: "denom", Value: msg.Denom},
	); err != nil {
		return nil, err
	}

	return &vault.MsgCreateVaultResponse{VaultId: id}, nil
}

func (k vaultMsgServer) Deposit(ctx context.Context, msg *vault.MsgDeposit) (*vault.MsgDepositResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	user, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidAmount, "cannot deposit %s", msg.Amount)
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if v.EmergencyShutdown {
		return nil, sdkerrors.Wrapf(vault.ErrEmergencyShutdown, "vault %d", v.Id)
	}

	// Measure the vault before the deposit lands so the new funds don't
	// dilute the share price.
	totalAssets, err := k.VaultTotalAssets(ctx, v)
	if err != nil {
		return nil, err
	}
	totalShares := k.GetVaultTotalShares(ctx, v.Id)

	shares := msg.Amount
	if totalShares.IsPositive() && totalAssets.IsPositive() {
		shares = msg.Amount.Mul(totalShares).Quo(totalAssets)
	}
	if !shares.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidAmount, "deposit of %s mints no shares", msg.Amount)
	}

	coins := sdk.NewCoins(sdk.NewCoin(v.Denom, msg.Amount))
	if err := k.bank.SendCoins(ctx, user, types.VaultAddress(v.Id), coins); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer deposit to vault")
	}

	userShares, err := k.GetVaultShares(ctx, v.Id, user).SafeAdd(shares)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "unable to add user shares")
	}
	if err := k.SetVaultShares(ctx, v.Id, user, userShares); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set user shares to state")
	}
	if err := k.SetVaultTotalShares(ctx, v.Id, totalShares.Add(shares)); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set total shares to state")
	}
	if err := k.SetRouterUserShares(ctx, v.Id, user, userShares); err != nil {
		return nil, err
	}

	if err := k.investSurplus(ctx, v); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"vault_deposit",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "user", Value: msg.Signer},
		event.Attribute{Key: "amount", Value: msg.Amount.String()},
		event.Attribute{Key: "shares", Value: shares.String()},
	); err != nil {
		return nil, err
	}

	return &vault.MsgDepositResponse{Shares: shares}, nil
}

func (k vaultMsgServer) Withdraw(ctx context.Context, msg *vault.MsgWithdraw) (*vault.MsgWithdrawResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	user, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidAmount, "cannot withdraw %s", msg.Amount)
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	totalAssets, err := k.VaultTotalAssets(ctx, v)
	if err != nil {
		return nil, err
	}
	totalShares := k.GetVaultTotalShares(ctx, v.Id)
	if !totalShares.IsPositive() || !totalAssets.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInsufficientShares, "vault %d is empty", v.Id)
	}

	// Withdrawals round the burned shares up so the vault never pays out
	// more than the shares cover.
	shares := msg.Amount.Mul(totalShares).Add(totalAssets.SubRaw(1)).Quo(totalAssets)

	if err := k.redeemShares(ctx, v, msg.Signer, user, shares, msg.Amount, totalShares); err != nil {
		return nil, err
	}

	return &vault.MsgWithdrawResponse{SharesBurned: shares}, nil
}

func (k vaultMsgServer) Redeem(ctx context.Context, msg *vault.MsgRedeem) (*vault.MsgRedeemResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	user, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}
	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidAmount, "cannot redeem %s shares", msg.Shares)
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	totalAssets, err := k.VaultTotalAssets(ctx, v)
	if err != nil {
		return nil, err
	}
	totalShares := k.GetVaultTotalShares(ctx, v.Id)
	if !totalShares.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInsufficientShares, "vault %d is empty", v.Id)
	}

	assets := msg.Shares.Mul(totalAssets).Quo(totalShares)
	if !assets.IsPositive() {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidAmount, "%s shares redeem no assets", msg.Shares)
	}

	if err := k.redeemShares(ctx, v, msg.Signer, user, msg.Shares, assets, totalShares); err != nil {
		return nil, err
	}

	return &vault.MsgRedeemResponse{Assets: assets}, nil
}

// redeemShares burns shares from user and pays out amount, divesting from the
// active adapter when the vault's idle funds fall short.
func (k vaultMsgServer) redeemShares(ctx context.Context, v vault.Vault, signer string, user []byte, shares math.Int, amount math.Int, totalShares math.Int) error {
	userShares := k.GetVaultShares(ctx, v.Id, user)
	if shares.GT(userShares) {
		return sdkerrors.Wrapf(vault.ErrInsufficientShares, "needed %s, user holds %s", shares, userShares)
	}

	idle := k.VaultIdleBalance(ctx, v)
	if idle.LT(amount) && v.ActiveAdapterId != 0 {
		adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
		if err != nil {
			return err
		}
		if _, _, err := k.AdapterDivest(ctx, v, adapter, amount.Sub(idle), false); err != nil {
			return err
		}
		idle = k.VaultIdleBalance(ctx, v)
	}
	if idle.LT(amount) {
		return sdkerrors.Wrapf(vault.ErrInvalidAmount, "insufficient liquidity: needed %s, recovered %s", amount, idle)
	}

	remaining := userShares.Sub(shares)
	if err := k.SetVaultShares(ctx, v.Id, user, remaining); err != nil {
		return sdkerrors.Wrap(err, "unable to set user shares to state")
	}
	if err := k.SetVaultTotalShares(ctx, v.Id, totalShares.Sub(shares)); err != nil {
		return sdkerrors.Wrap(err, "unable to set total shares to state")
	}
	if err := k.SetRouterUserShares(ctx, v.Id, user, remaining); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(v.Denom, amount))
	if err := k.bank.SendCoins(ctx, types.VaultAddress(v.Id), user, coins); err != nil {
		return sdkerrors.Wrap(err, "unable to transfer withdrawal to user")
	}

	return k.event.EventManager(ctx).EmitKV(
		ctx,
		"vault_withdrawal",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "user", Value: signer},
		event.Attribute{Key: "amount", Value: amount.String()},
		event.Attribute{Key: "shares", Value: shares.String()},
	)
}

// investSurplus deploys idle funds above the cash buffer into the active
// adapter. A paused or shut-down vault, or one with no adapter, keeps its
// funds idle.
func (k *Keeper) investSurplus(ctx context.Context, v vault.Vault) error {
	if v.InvestPaused || v.EmergencyShutdown || v.ActiveAdapterId == 0 {
		return nil
	}

	totalAssets, err := k.VaultTotalAssets(ctx, v)
	if err != nil {
		return err
	}

	buffer := totalAssets.MulRaw(int64(v.CashBufferBps)).QuoRaw(types.BpsDenominator)
	surplus := k.VaultIdleBalance(ctx, v).Sub(buffer)
	if !surplus.IsPositive() {
		return nil
	}

	adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
	if err != nil {
		return err
	}
	if _, err := k.AdapterInvest(ctx, v, adapter, surplus); err != nil {
		return err
	}

	return nil
}

func (k vaultMsgServer) Harvest(ctx context.Context, msg *vault.MsgHarvest) (*vault.MsgHarvestResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	// Harvesting is permissionless; the signer only pays for execution.
	if _, err := k.address.StringToBytes(msg.Signer); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if v.EmergencyShutdown {
		return nil, sdkerrors.Wrapf(vault.ErrEmergencyShutdown, "vault %d", v.Id)
	}
	if v.HarvestPaused {
		return nil, sdkerrors.Wrapf(vault.ErrHarvestPaused, "vault %d", v.Id)
	}
	if v.ActiveAdapterId == 0 {
		return nil, sdkerrors.Wrapf(vault.ErrNoActiveAdapter, "vault %d", v.Id)
	}

	adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
	if err != nil {
		return nil, err
	}
	assetsAtRisk := adapter.InvestedAmount

	profit, loss, adapter, err := k.AdapterHarvest(ctx, v, adapter)
	if err != nil {
		return nil, err
	}

	if loss.IsPositive() && assetsAtRisk.IsPositive() {
		lossBps := loss.MulRaw(types.BpsDenominator).Quo(assetsAtRisk)
		if lossBps.GT(math.NewIntFromUint64(v.MaxLossBps)) {
			return nil, sdkerrors.Wrapf(vault.ErrMaxLossExceeded, "loss %sbps exceeds maximum %dbps", lossBps, v.MaxLossBps)
		}

		v.TotalLoss = v.TotalLoss.Add(loss)

		if config, err := k.GetStrategyConfig(ctx, v.Id); err == nil {
			threshold := math.NewIntFromUint64(config.EmergencyExitThresholdBps)
			if threshold.IsPositive() && lossBps.GTE(threshold) && !config.EmergencyMode {
				config.EmergencyMode = true
				if err := k.SetStrategyConfig(ctx, config); err != nil {
					return nil, sdkerrors.Wrap(err, "unable to set strategy config to state")
				}
				v.InvestPaused = true
			}
		}
	}

	if profit.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(v.Denom, profit))
		if err := k.bank.SendCoins(ctx, types.AdapterAddress(adapter.Id), types.PayoutAddress(v.Id), coins); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to transfer profit to payout account")
		}

		v.TotalProfit = v.TotalProfit.Add(profit)
		if err := k.AddPendingDistribution(ctx, v.Id, profit); err != nil {
			return nil, err
		}
	}

	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"vault_harvest",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "profit", Value: profit.String()},
		event.Attribute{Key: "loss", Value: loss.String()},
	); err != nil {
		return nil, err
	}

	return &vault.MsgHarvestResponse{Profit: profit, Loss: loss}, nil
}

func (k vaultMsgServer) SetCashBuffer(ctx context.Context, msg *vault.MsgSetCashBuffer) (*vault.MsgSetCashBufferResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if msg.CashBufferBps > types.BpsDenominator {
		return nil, sdkerrors.Wrapf(vault.ErrInvalidVault, "cash buffer %dbps exceeds %dbps", msg.CashBufferBps, types.BpsDenominator)
	}

	if v.CashBufferBps == msg.CashBufferBps {
		return &vault.MsgSetCashBufferResponse{}, nil
	}

	v.CashBufferBps = msg.CashBufferBps
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"cash_buffer_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "cash_buffer_bps", Value: fmt.Sprint(msg.CashBufferBps)},
	); err != nil {
		return nil, err
	}

	return &vault.MsgSetCashBufferResponse{}, nil
}

func (k vaultMsgServer) SetInvestPaused(ctx context.Context, msg *vault.MsgSetInvestPaused) (*vault.MsgSetInvestPausedResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	if v.InvestPaused == msg.Paused {
		return &vault.MsgSetInvestPausedResponse{}, nil
	}

	v.InvestPaused = msg.Paused
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"invest_paused_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "paused", Value: fmt.Sprint(msg.Paused)},
	); err != nil {
		return nil, err
	}

	return &vault.MsgSetInvestPausedResponse{}, nil
}

func (k vaultMsgServer) SetHarvestPaused(ctx context.Context, msg *vault.MsgSetHarvestPaused) (*vault.MsgSetHarvestPausedResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	if v.HarvestPaused == msg.Paused {
		return &vault.MsgSetHarvestPausedResponse{}, nil
	}

	v.HarvestPaused = msg.Paused
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"harvest_paused_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "paused", Value: fmt.Sprint(msg.Paused)},
	); err != nil {
		return nil, err
	}

	return &vault.MsgSetHarvestPausedResponse{}, nil
}

func (k vaultMsgServer) SetEmergencyShutdown(ctx context.Context, msg *vault.MsgSetEmergencyShutdown) (*vault.MsgSetEmergencyShutdownResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	// Shutting down takes the emergency role; recovering requires admin.
	role := types.RoleEmergency
	if !msg.Shutdown {
		role = types.RoleAdmin
	}
	if _, err := k.EnsureRole(ctx, role, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	if v.EmergencyShutdown == msg.Shutdown {
		return &vault.MsgSetEmergencyShutdownResponse{}, nil
	}

	v.EmergencyShutdown = msg.Shutdown
	if msg.Shutdown {
		v.InvestPaused = true
	}
	if err := k.SetVault(ctx, v); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_shutdown_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "shutdown", Value: fmt.Sprint(msg.Shutdown)},
	); err != nil {
		return nil, err
	}

	return &vault.MsgSetEmergencyShutdownResponse{}, nil
}

func (k vaultMsgServer) EmergencyWithdrawFromAdapter(ctx context.Context, msg *vault.MsgEmergencyWithdrawFromAdapter) (*vault.MsgEmergencyWithdrawFromAdapterResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleEmergency, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}
	if v.ActiveAdapterId == 0 {
		return nil, sdkerrors.Wrapf(vault.ErrNoActiveAdapter, "vault %d", v.Id)
	}

	adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
	if err != nil {
		return nil, err
	}

	returned, _, err := k.AdapterEmergencyWithdraw(ctx, v, adapter)
	if err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"emergency_withdrawal",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "returned", Value: returned.String()},
	); err != nil {
		return nil, err
	}

	return &vault.MsgEmergencyWithdrawFromAdapterResponse{Returned: returned}, nil
}
