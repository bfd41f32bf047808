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

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
)

var _ router.MsgServer = &routerMsgServer{}

type routerMsgServer struct {
	*Keeper
}

func NewRouterMsgServer(keeper *Keeper) router.MsgServer {
	return &routerMsgServer{Keeper: keeper}
}

func (k routerMsgServer) RegisterCampaign(ctx context.Context, msg *router.MsgRegisterCampaign) (*router.MsgRegisterCampaignResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	if _, err := k.GetVault(ctx, msg.VaultId); err != nil {
		return nil, err
	}
	if _, bound := k.GetVaultCampaign(ctx, msg.VaultId); bound {
		return nil, sdkerrors.Wrapf(router.ErrCampaignAlreadyBound, "vault %d", msg.VaultId)
	}
	if _, found := k.campaigns.GetCampaign(ctx, msg.CampaignId); !found {
		return nil, sdkerrors.Wrapf(router.ErrCampaignNotFound, "campaign %d", msg.CampaignId)
	}

	if err := k.VaultCampaigns.Set(ctx, msg.VaultId, msg.CampaignId); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set vault campaign to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"campaign_registered",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "campaign_id", Value: fmt.Sprint(msg.CampaignId)},
	); err != nil {
		return nil, err
	}

	return &router.MsgRegisterCampaignResponse{}, nil
}

func (k routerMsgServer) UpdateUserShares(ctx context.Context, msg *router.MsgUpdateUserShares) (*router.MsgUpdateUserSharesResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleShareUpdater, msg.Signer); err != nil {
		return nil, err
	}

	user, err := k.address.StringToBytes(msg.User)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode user %s", msg.User)
	}
	if msg.Shares.IsNil() || msg.Shares.IsNegative() {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid shares %s", msg.Shares)
	}

	if err := k.SetRouterUserShares(ctx, msg.VaultId, user, msg.Shares); err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"user_shares_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "user", Value: msg.User},
		event.Attribute{Key: "shares", Value: msg.Shares.String()},
	); err != nil {
		return nil, err
	}

	return &router.MsgUpdateUserSharesResponse{}, nil
}

func (k routerMsgServer) SetCampaignPreference(ctx context.Context, msg *router.MsgSetCampaignPreference) (*router.MsgSetCampaignPreferenceResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	user, err := k.address.StringToBytes(msg.Signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", msg.Signer)
	}

	campaignID, bound := k.GetVaultCampaign(ctx, msg.VaultId)
	if !bound {
		return nil, sdkerrors.Wrapf(router.ErrCampaignNotBound, "vault %d", msg.VaultId)
	}
	if msg.CampaignId != campaignID {
		return nil, sdkerrors.Wrapf(router.ErrStaleCampaign, "vault %d is bound to campaign %d, got %d", msg.VaultId, campaignID, msg.CampaignId)
	}
	if !router.ValidAllocation(msg.AllocationPercentage) {
		return nil, sdkerrors.Wrapf(router.ErrInvalidAllocation, "allocation %d%% is not allowed", msg.AllocationPercentage)
	}
	if msg.Beneficiary != "" {
		if _, err := k.address.StringToBytes(msg.Beneficiary); err != nil {
			return nil, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode beneficiary %s", msg.Beneficiary)
		}
	}

	preference := router.CampaignPreference{
		Beneficiary:          msg.Beneficiary,
		AllocationPercentage: msg.AllocationPercentage,
		CampaignId:           campaignID,
		LastUpdated:          k.header.GetHeaderInfo(ctx).Time.Unix(),
	}
	if err := k.Preferences.Set(ctx, collections.Join(msg.VaultId, user), preference); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set preference to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"campaign_preference_updated",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(msg.VaultId)},
		event.Attribute{Key: "user", Value: msg.Signer},
		event.Attribute{Key: "allocation", Value: fmt.Sprint(msg.AllocationPercentage)},
	); err != nil {
		return nil, err
	}

	return &router.MsgSetCampaignPreferenceResponse{}, nil
}

func (k routerMsgServer) Distribute(ctx context.Context, msg *router.MsgDistribute) (*router.MsgDistributeResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleDistributor, msg.Signer); err != nil {
		return nil, err
	}

	v, err := k.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, err
	}

	campaignID, bound := k.GetVaultCampaign(ctx, msg.VaultId)
	if !bound {
		return nil, sdkerrors.Wrapf(router.ErrCampaignNotBound, "vault %d", msg.VaultId)
	}
	campaign, found := k.campaigns.GetCampaign(ctx, campaignID)
	if !found {
		return nil, sdkerrors.Wrapf(router.ErrCampaignNotFound, "campaign %d", campaignID)
	}
	if campaign.PayoutsHalted {
		return nil, sdkerrors.Wrapf(router.ErrPayoutsHalted, "campaign %d", campaignID)
	}

	result, err := k.distributeToAllUsers(ctx, v, campaignID, campaign)
	if err != nil {
		return nil, err
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"yield_distributed",
		event.Attribute{Key: "vault_id", Value: fmt.Sprint(v.Id)},
		event.Attribute{Key: "campaign_id", Value: fmt.Sprint(campaignID)},
		event.Attribute{Key: "total", Value: result.Distributed.String()},
		event.Attribute{Key: "campaign_amount", Value: result.Campaign.String()},
		event.Attribute{Key: "fee_amount", Value: result.Fee.String()},
		event.Attribute{Key: "beneficiary_amount", Value: result.Beneficiary.String()},
	); err != nil {
		return nil, err
	}

	return &router.MsgDistributeResponse{
		TotalDistributed:  result.Distributed,
		CampaignAmount:    result.Campaign,
		FeeAmount:         result.Fee,
		BeneficiaryAmount: result.Beneficiary,
	}, nil
}

func (k routerMsgServer) SetDefaultBeneficiary(ctx context.Context, msg *router.MsgSetDefaultBeneficiary) (*router.MsgSetDefaultBeneficiaryResponse, error) {
	if msg == nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "invalid message")
	}

	if _, err := k.EnsureRole(ctx, types.RoleAdmin, msg.Signer); err != nil {
		return nil, err
	}

	if _, err := k.address.StringToBytes(msg.Beneficiary); err != nil {
		return nil, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode beneficiary %s", msg.Beneficiary)
	}

	if err := k.DefaultBeneficiary.Set(ctx, msg.Beneficiary); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to set default beneficiary to state")
	}

	if err := k.event.EventManager(ctx).EmitKV(
		ctx,
		"default_beneficiary_updated",
		event.Attribute{Key: "beneficiary", Value: msg.Beneficiary},
	); err != nil {
		return nil, err
	}

	return &router.MsgSetDefaultBeneficiaryResponse{}, nil
}
