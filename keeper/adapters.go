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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

// AdapterTotalAssets measures the assets held by an adapter under its
// accounting model. Balance-growth adapters probe the external source, so
// this can fail; scanning callers must treat that as a soft failure.
func (k *Keeper) AdapterTotalAssets(ctx context.Context, v vault.Vault, adapter adapters.Adapter) (math.Int, error) {
	switch adapter.Kind {
	case adapters.KindBalanceGrowth:
		balance, err := k.source.BalanceOf(ctx, adapter.Id)
		if err != nil {
			return math.ZeroInt(), sdkerrors.Wrapf(err, "unable to get source balance of adapter %d", adapter.Id)
		}
		return balance, nil
	case adapters.KindCompounding:
		return k.bank.GetBalance(ctx, types.AdapterAddress(adapter.Id), v.Denom).Amount, nil
	case adapters.KindGrowthIndex:
		return adapter.Deposits.Mul(adapter.GrowthIndex).Quo(adapters.IndexScale), nil
	case adapters.KindFixedMaturity:
		return adapter.Deposits, nil
	case adapters.KindManaged:
		return adapter.ManagedBalance, nil
	}

	return math.ZeroInt(), sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "unknown kind %s", adapter.Kind)
}

// AdapterInvest moves amount from the vault sub-account into the adapter and
// books it as principal.
func (k *Keeper) AdapterInvest(ctx context.Context, v vault.Vault, adapter adapters.Adapter, amount math.Int) (adapters.Adapter, error) {
	if !amount.IsPositive() {
		return adapter, sdkerrors.Wrapf(adapters.ErrInvalidAmount, "cannot invest %s", amount)
	}

	adapterAddress := types.AdapterAddress(adapter.Id)
	coins := sdk.NewCoins(sdk.NewCoin(v.Denom, amount))
	if err := k.bank.SendCoins(ctx, types.VaultAddress(v.Id), adapterAddress, coins); err != nil {
		return adapter, sdkerrors.Wrap(err, "unable to transfer funds to adapter")
	}

	switch adapter.Kind {
	case adapters.KindBalanceGrowth:
		if err := k.source.Deposit(ctx, adapter.Id, adapterAddress, sdk.NewCoin(v.Denom, amount)); err != nil {
			return adapter, sdkerrors.Wrap(err, "unable to deposit into yield source")
		}
	case adapters.KindGrowthIndex, adapters.KindFixedMaturity:
		adapter.Deposits = adapter.Deposits.Add(amount)
	case adapters.KindManaged:
		adapter.ManagedBalance = adapter.ManagedBalance.Add(amount)
	}

	invested, err := adapter.InvestedAmount.SafeAdd(amount)
	if err != nil {
		return adapter, sdkerrors.Wrap(err, "unable to book invested amount")
	}
	adapter.InvestedAmount = invested

	if err := k.SetAdapter(ctx, adapter); err != nil {
		return adapter, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	return adapter, nil
}

// AdapterDivest recovers up to amount from the adapter back to the vault
// sub-account. The request is capped at what the adapter can recover; the
// amount actually returned is reported to the caller. Balance-growth
// divestments apply the slippage guard unless emergency is set.
func (k *Keeper) AdapterDivest(ctx context.Context, v vault.Vault, adapter adapters.Adapter, amount math.Int, emergency bool) (math.Int, adapters.Adapter, error) {
	if !amount.IsPositive() {
		return math.ZeroInt(), adapter, sdkerrors.Wrapf(adapters.ErrInvalidAmount, "cannot divest %s", amount)
	}

	adapterAddress := types.AdapterAddress(adapter.Id)
	returned := math.ZeroInt()

	switch adapter.Kind {
	case adapters.KindBalanceGrowth:
		balance, err := k.source.BalanceOf(ctx, adapter.Id)
		if err != nil {
			return math.ZeroInt(), adapter, sdkerrors.Wrapf(err, "unable to get source balance of adapter %d", adapter.Id)
		}

		requested := math.MinInt(amount, balance)
		if !requested.IsPositive() {
			return math.ZeroInt(), adapter, nil
		}

		actual, err := k.source.Withdraw(ctx, adapter.Id, adapterAddress, sdk.NewCoin(v.Denom, requested))
		if err != nil {
			return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to withdraw from yield source")
		}

		if actual.LT(requested) && !emergency {
			slippageBps := requested.Sub(actual).MulRaw(types.BpsDenominator).Quo(requested)
			if slippageBps.GT(math.NewIntFromUint64(adapter.MaxSlippageBps)) {
				return math.ZeroInt(), adapter, sdkerrors.Wrapf(
					adapters.ErrSlippageExceeded,
					"slippage %sbps exceeds maximum %dbps",
					slippageBps, adapter.MaxSlippageBps,
				)
			}
		}

		returned = actual
	case adapters.KindCompounding:
		available := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
		returned = math.MinInt(amount, available)
	case adapters.KindGrowthIndex, adapters.KindFixedMaturity:
		available := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
		returned = math.MinInt(amount, available)
		adapter.Deposits = adapter.Deposits.Sub(math.MinInt(returned, adapter.Deposits))
	case adapters.KindManaged:
		available := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
		returned = math.MinInt(amount, available)
		adapter.ManagedBalance = adapter.ManagedBalance.Sub(math.MinInt(returned, adapter.ManagedBalance))
	}

	if returned.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(v.Denom, returned))
		if err := k.bank.SendCoins(ctx, adapterAddress, types.VaultAddress(v.Id), coins); err != nil {
			return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to transfer funds to vault")
		}
	}

	adapter.InvestedAmount = adapter.InvestedAmount.Sub(math.MinInt(returned, adapter.InvestedAmount))
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	return returned, adapter, nil
}

// AdapterHarvest realizes the adapter's yield since the last harvest. On
// return, realized profit sits on the adapter sub-account ready to be moved
// by the caller; loss reflects principal written down. Index and
// fixed-maturity adapters realize yield only on divestment and report
// nothing here.
func (k *Keeper) AdapterHarvest(ctx context.Context, v vault.Vault, adapter adapters.Adapter) (math.Int, math.Int, adapters.Adapter, error) {
	profit, loss := math.ZeroInt(), math.ZeroInt()
	adapterAddress := types.AdapterAddress(adapter.Id)

	switch adapter.Kind {
	case adapters.KindBalanceGrowth:
		balance, err := k.source.BalanceOf(ctx, adapter.Id)
		if err != nil {
			return profit, loss, adapter, sdkerrors.Wrapf(err, "unable to get source balance of adapter %d", adapter.Id)
		}

		if balance.GT(adapter.InvestedAmount) {
			gain := balance.Sub(adapter.InvestedAmount)
			profit, err = k.source.Withdraw(ctx, adapter.Id, adapterAddress, sdk.NewCoin(v.Denom, gain))
			if err != nil {
				return math.ZeroInt(), math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to withdraw profit from yield source")
			}
		} else if balance.LT(adapter.InvestedAmount) {
			loss = adapter.InvestedAmount.Sub(balance)
			adapter.InvestedAmount = balance
		}
	case adapters.KindCompounding:
		balance := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
		if balance.GT(adapter.InvestedAmount) {
			profit = balance.Sub(adapter.InvestedAmount)
		}
	case adapters.KindManaged:
		if adapter.ManagedBalance.GT(adapter.InvestedAmount) {
			// Profit is only realizable from the on-chain buffer the manager
			// has returned; the remainder stays attested off-chain.
			gain := adapter.ManagedBalance.Sub(adapter.InvestedAmount)
			buffer := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
			profit = math.MinInt(gain, buffer)
			adapter.ManagedBalance = adapter.ManagedBalance.Sub(profit)
		} else if adapter.ManagedBalance.LT(adapter.InvestedAmount) {
			loss = adapter.InvestedAmount.Sub(adapter.ManagedBalance)
			adapter.InvestedAmount = adapter.ManagedBalance
		}
	}

	if err := k.SetAdapter(ctx, adapter); err != nil {
		return math.ZeroInt(), math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	return profit, loss, adapter, nil
}

// AdapterEmergencyWithdraw recovers everything the adapter can return to the
// vault sub-account, bypassing the slippage guard, and zeroes the adapter's
// books.
func (k *Keeper) AdapterEmergencyWithdraw(ctx context.Context, v vault.Vault, adapter adapters.Adapter) (math.Int, adapters.Adapter, error) {
	adapterAddress := types.AdapterAddress(adapter.Id)

	if adapter.Kind == adapters.KindBalanceGrowth {
		balance, err := k.source.BalanceOf(ctx, adapter.Id)
		if err != nil {
			return math.ZeroInt(), adapter, sdkerrors.Wrapf(err, "unable to get source balance of adapter %d", adapter.Id)
		}
		if balance.IsPositive() {
			if _, err := k.source.Withdraw(ctx, adapter.Id, adapterAddress, sdk.NewCoin(v.Denom, balance)); err != nil {
				return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to withdraw from yield source")
			}
		}
	}

	returned := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
	if returned.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(v.Denom, returned))
		if err := k.bank.SendCoins(ctx, adapterAddress, types.VaultAddress(v.Id), coins); err != nil {
			return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to transfer funds to vault")
		}
	}

	adapter.InvestedAmount = math.ZeroInt()
	adapter.Deposits = math.ZeroInt()
	adapter.ManagedBalance = math.ZeroInt()
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return math.ZeroInt(), adapter, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	return returned, adapter, nil
}
