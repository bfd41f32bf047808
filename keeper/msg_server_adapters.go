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
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
)

var _ adapters.MsgServer = &adaptersMsgServer{}

type adaptersMsgServer struct {
	*Keeper
}

func NewAdaptersMsgServer(keeper *Keeper) adapters.MsgServer {
	return &adaptersMsgServer{Keeper: keeper}
}

func (k adaptersMsgServer) RegisterAdapter(ctx context.Context, msg *adapters.MsgRegisterAdapter) (*adapters.MsgRegisterAdapterResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	if !adapters.ValidKind(msg.Kind) {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "unknown kind %s", msg.Kind)
	}
	if msg.MaxSlippageBps > types.BpsDenominator {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "max slippage %dbps exceeds %dbps", msg.MaxSlippageBps, types.BpsDenominator)
	}
	if msg.Kind == adapters.KindFixedMaturity && msg.MaturityEnd <= msg.MaturityStart {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "maturity end %d must be after start %d", msg.MaturityEnd, msg.MaturityStart)
	}

	if _, err := k.GetVault(ctx, msg.VaultId); err != nil {
		return nil, err
	}

	id, err := k.IncrementNextAdapterID(ctx)
	if err != nil {
		return nil, err
	}

	adapter := adapters.Adapter{
		Id:             id,
		Kind:           msg.Kind,
		VaultId:        msg.VaultId,
		InvestedAmount: math.ZeroInt(),
		Deposits:       math.ZeroInt(),
		GrowthIndex:    math.ZeroInt(),
		ManagedBalance: math.ZeroInt(),
		MaturityStart:  msg.MaturityStart,
		MaturityEnd:    msg.MaturityEnd,
		MaxSlippageBps: msg.MaxSlippageBps,
	}
	if msg.Kind == adapters.KindGrowthIndex {
		adapter.GrowthIndex = adapters.IndexScale
	}

	if err := k.SetAdapter(ctx, adapter); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"adapter_registered",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(id)},
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "kind", Value: string(msg.Kind)},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgRegisterAdapterResponse{AdapterId: id}, nil
}

func (k adaptersMsgServer) SetGrowthIndex(ctx context.Context, msg *adapters.MsgSetGrowthIndex) (*adapters.MsgSetGrowthIndexResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleYieldManager, msg.Signer); err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.Kind != adapters.KindGrowthIndex {
		return nil, sdkerrors.Wrapf(adapters.ErrWrongKind, "adapter %d is %s", adapter.Id, adapter.Kind)
	}

	if msg.Index.IsNil() || msg.Index.LT(adapter.GrowthIndex) {
		return nil, sdkerrors.Wrapf(adapters.ErrIndexDecrease, "index %s is below current %s", msg.Index, adapter.GrowthIndex)
	}

	adapter.GrowthIndex = msg.Index
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"growth_index_updated",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "index", Value: adapter.GrowthIndex.String()},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgSetGrowthIndexResponse{}, nil
}

func (k adaptersMsgServer) Rollover(ctx context.Context, msg *adapters.MsgRollover) (*adapters.MsgRolloverResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.Kind != adapters.KindFixedMaturity {
		return nil, sdkerrors.Wrapf(adapters.ErrWrongKind, "adapter %d is %s", adapter.Id, adapter.Kind)
	}

	if msg.NewMaturity <= msg.NewStart {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "maturity end %d must be after start %d", msg.NewMaturity, msg.NewStart)
	}

	adapter.MaturityStart = msg.NewStart
	adapter.MaturityEnd = msg.NewMaturity
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"adapter_rolled_over",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "maturity_start", Value: fmt.Sprint(msg.NewStart)},
		event.Attribute{Key: "maturity_end", Value: fmt.Sprint(msg.NewMaturity)},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgRolloverResponse{}, nil
}

func (k adaptersMsgServer) ManagedWithdraw(ctx context.Context, msg *adapters.MsgManagedWithdraw) (*adapters.MsgManagedWithdrawResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	manager, err := k.EnsureRole(ctx, types.RoleYieldManager, msg.Signer)
	if err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.Kind != adapters.KindManaged {
		return nil, sdkerrors.Wrapf(adapters.ErrWrongKind, "adapter %d is %s", adapter.Id, adapter.Kind)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAmount, "cannot withdraw %s", msg.Amount)
	}

	v, err := k.GetVault(ctx, adapter.VaultId)
	if err != nil {
		return nil, err
	}

	adapterAddress := types.AdapterAddress(adapter.Id)
	buffer := k.bank.GetBalance(ctx, adapterAddress, v.Denom).Amount
	if msg.Amount.GT(buffer) {
		return nil, sdkerrors.Wrapf(adapters.ErrInsufficientBuffer, "requested %s, buffer holds %s", msg.Amount, buffer)
	}

	coins := sdk.NewCoins(sdk.NewCoin(v.Denom, msg.Amount))
	if err := k.bank.SendCoins(ctx, adapterAddress, manager, coins); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer funds to manager")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"managed_withdrawal",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "manager", Value: msg.Signer},
		event.Attribute{Key: "amount", Value: msg.Amount.String()},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgManagedWithdrawResponse{}, nil
}

func (k adaptersMsgServer) ManagedDeposit(ctx context.Context, msg *adapters.MsgManagedDeposit) (*adapters.MsgManagedDepositResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	manager, err := k.EnsureRole(ctx, types.RoleYieldManager, msg.Signer)
	if err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.Kind != adapters.KindManaged {
		return nil, sdkerrors.Wrapf(adapters.ErrWrongKind, "adapter %d is %s", adapter.Id, adapter.Kind)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAmount, "cannot deposit %s", msg.Amount)
	}

	v, err := k.GetVault(ctx, adapter.VaultId)
	if err != nil {
		return nil, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(v.Denom, msg.Amount))
	if err := k.bank.SendCoins(ctx, manager, types.AdapterAddress(adapter.Id), coins); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer funds to adapter")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"managed_deposit",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "manager", Value: msg.Signer},
		event.Attribute{Key: "amount", Value: msg.Amount.String()},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgManagedDepositResponse{}, nil
}

func (k adaptersMsgServer) ReportManagedBalance(ctx context.Context, msg *adapters.MsgReportManagedBalance) (*adapters.MsgReportManagedBalanceResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleYieldManager, msg.Signer); err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if adapter.Kind != adapters.KindManaged {
		return nil, sdkerrors.Wrapf(adapters.ErrWrongKind, "adapter %d is %s", adapter.Id, adapter.Kind)
	}
	if msg.Balance.IsNil() || msg.Balance.IsNegative() {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAmount, "cannot report balance %s", msg.Balance)
	}

	// The attested balance is trusted, not verified.
	adapter.ManagedBalance = msg.Balance
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"managed_balance_reported",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "balance", Value: msg.Balance.String()},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgReportManagedBalanceResponse{}, nil
}

func (k adaptersMsgServer) SetMaxSlippage(ctx context.Context, msg *adapters.MsgSetMaxSlippage) (*adapters.MsgSetMaxSlippageResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleStrategist, msg.Signer); err != nil {
		return nil, err
	}

	adapter, err := k.GetAdapter(ctx, msg.AdapterId)
	if err != nil {
		return nil, err
	}
	if msg.MaxSlippageBps > types.BpsDenominator {
		return nil, sdkerrors.Wrapf(adapters.ErrInvalidAdapter, "max slippage %dbps exceeds %dbps", msg.MaxSlippageBps, types.BpsDenominator)
	}

	if adapter.MaxSlippageBps == msg.MaxSlippageBps {
		return &adapters.MsgSetMaxSlippageResponse{}, nil
	}

	adapter.MaxSlippageBps = msg.MaxSlippageBps
	if err := k.SetAdapter(ctx, adapter); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set adapter to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"max_slippage_updated",
		event.Attribute{Key: "adapter_id", Value: fmt.Sprint(adapter.Id)},
		event.Attribute{Key: "max_slippage_bps", Value: fmt.Sprint(msg.MaxSlippageBps)},
	); err != nil {
		return nil, err
	}

	return &adapters.MsgSetMaxSlippageResponse{}, nil
}
