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
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/event"
	sdkerrors "cosmossdk.io/errors"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
)

func (k routerMsgServer) ProposeFeeChange(ctx context.Context, msg *router.MsgProposeFeeChange) (*router.MsgProposeFeeChangeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleFeeManager, msg.Signer); err != nil {
		return nil, err
	}

	current := k.GetFeeConfig(ctx)

	if msg.NewFeeBps > router.MaxFeeBps {
		return nil, sdkerrors.Wrapf(router.ErrFeeTooHigh, "proposed %dbps, maximum %dbps", msg.NewFeeBps, router.MaxFeeBps)
	}

	recipient := msg.NewRecipient
	if recipient == "" {
		recipient = current.FeeRecipient
	} else if _, err := k.address.StringToBytes(recipient); err != nil {
		return nil, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode fee recipient %s", recipient)
	}

	// Decreases and recipient-only changes take effect immediately; only
	// increases are timelocked.
	if msg.NewFeeBps <= current.FeeBps {
		if err := k.SetFeeConfig(ctx, router.FeeConfig{FeeBps: msg.NewFeeBps, FeeRecipient: recipient}); err != nil {
			return nil, sdkerrors.Wrap(err, "unable to set fee config to state")
		}

		if err := k.event.EventManager(ctx).EmitKV(
			ctx,
			"fee_change_applied",
			event.Attribute{Key: "fee_bps", Value: fmt.Sprint(msg.NewFeeBps)},
			event.Attribute{Key: "fee_recipient", Value: recipient},
		); err != nil {
			return nil, err
		}

		return &router.MsgProposeFeeChangeResponse{Immediate: true}, nil
	}

	if msg.NewFeeBps-current.FeeBps > router.MaxFeeIncreasePerChange {
		return nil, sdkerrors.Wrapf(
			router.ErrFeeIncreaseTooLarge,
			"proposed increase %dbps, maximum %dbps per change",
			msg.NewFeeBps-current.FeeBps, router.MaxFeeIncreasePerChange,
		)
	}

	nonce, err := k.IncrementFeeChangeNonce(ctx)
	if err != nil {
		return nil, err
	}

	effectiveTime := k.header.GetHeaderInfo(ctx).Time.Unix() + router.FeeChangeDelay
	change := router.PendingFeeChange{
		NewFeeBps:     msg.NewFeeBps,
		NewRecipient:  recipient,
		EffectiveTime: effectiveTime,
	}
	if err := k.PendingFeeChanges.Set(ctx, nonce, change); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set pending fee change to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"fee_change_proposed",
		event.Attribute{Key: "nonce", Value: fmt.Sprint(nonce)},
		event.Attribute{Key: "fee_bps", Value: fmt.Sprint(msg.NewFeeBps)},
		event.Attribute{Key: "effective_time", Value: fmt.Sprint(effectiveTime)},
	); err != nil {
		return nil, err
	}

	return &router.MsgProposeFeeChangeResponse{Nonce: nonce, EffectiveTime: effectiveTime}, nil
}

func (k routerMsgServer) ExecuteFeeChange(ctx context.Context, msg *router.MsgExecuteFeeChange) (*router.MsgExecuteFeeChangeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	// Execution is permissionless once the timelock has elapsed.
	if _, err := k.address.StringToBytes(msg.Signer); err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}

	change, err := k.PendingFeeChanges.Get(ctx, msg.Nonce)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, sdkerrors.Wrapf(router.ErrFeeChangeNotFound, "nonce %d", msg.Nonce)
		}
		return nil, sdkerrors.Wrapf(err, "unable to get pending fee change %d from state", msg.Nonce)
	}

	now := k.header.GetHeaderInfo(ctx).Time.Unix()
	if now < change.EffectiveTime {
		return nil, sdkerrors.Wrapf(router.ErrFeeChangeNotReady, "effective at %d, now %d", change.EffectiveTime, now)
	}

	// The step cap is re-checked against the fee at execution time, so
	// stacked proposals cannot raise the fee faster than one step per
	// timelock.
	current := k.GetFeeConfig(ctx)
	if change.NewFeeBps > router.MaxFeeBps {
		return nil, sdkerrors.Wrapf(router.ErrFeeTooHigh, "proposed %dbps, maximum %dbps", change.NewFeeBps, router.MaxFeeBps)
	}
	if change.NewFeeBps > current.FeeBps && change.NewFeeBps-current.FeeBps > router.MaxFeeIncreasePerChange {
		return nil, sdkerrors.Wrapf(
			router.ErrFeeIncreaseTooLarge,
			"increase %dbps exceeds maximum %dbps per change",
			change.NewFeeBps-current.FeeBps, router.MaxFeeIncreasePerChange,
		)
	}

	if err := k.SetFeeConfig(ctx, router.FeeConfig{FeeBps: change.NewFeeBps, FeeRecipient: change.NewRecipient}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set fee config to state")
	}

	// Deleting the record makes replay structurally impossible.
	if err := k.PendingFeeChanges.Remove(ctx, msg.Nonce); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to remove pending fee change from state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"fee_change_executed",
		event.Attribute{Key: "nonce", Value: fmt.Sprint(msg.Nonce)},
		event.Attribute{Key: "fee_bps", Value: fmt.Sprint(change.NewFeeBps)},
	); err != nil {
		return nil, err
	}

	return &router.MsgExecuteFeeChangeResponse{}, nil
}

func (k routerMsgServer) CancelFeeChange(ctx context.Context, msg *router.MsgCancelFeeChange) (*router.MsgCancelFeeChangeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleFeeManager, msg.Signer); err != nil {
		return nil, err
	}

	if has, _ := k.PendingFeeChanges.Has(ctx, msg.Nonce); !has {
		return nil, sdkerrors.Wrapf(router.ErrFeeChangeNotFound, "nonce %d", msg.Nonce)
	}

	if err := k.PendingFeeChanges.Remove(ctx, msg.Nonce); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to remove pending fee change from state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"fee_change_cancelled",
		event.Attribute{Key: "nonce", Value: fmt.Sprint(msg.Nonce)},
	); err != nil {
		return nil, err
	}

	return &router.MsgCancelFeeChangeResponse{}, nil
}
