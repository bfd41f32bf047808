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

package router

import (
	"context"

	"cosmossdk.io/math"
)

type MsgServer interface {
	RegisterCampaign(ctx context.Context, msg *MsgRegisterCampaign) (*MsgRegisterCampaignResponse, error)
	UpdateUserShares(ctx context.Context, msg *MsgUpdateUserShares) (*MsgUpdateUserSharesResponse, error)
	SetCampaignPreference(ctx context.Context, msg *MsgSetCampaignPreference) (*MsgSetCampaignPreferenceResponse, error)
	Distribute(ctx context.Context, msg *MsgDistribute) (*MsgDistributeResponse, error)
	ProposeFeeChange(ctx context.Context, msg *MsgProposeFeeChange) (*MsgProposeFeeChangeResponse, error)
	ExecuteFeeChange(ctx context.Context, msg *MsgExecuteFeeChange) (*MsgExecuteFeeChangeResponse, error)
	CancelFeeChange(ctx context.Context, msg *MsgCancelFeeChange) (*MsgCancelFeeChangeResponse, error)
	SetDefaultBeneficiary(ctx context.Context, msg *MsgSetDefaultBeneficiary) (*MsgSetDefaultBeneficiaryResponse, error)
}

type MsgRegisterCampaign struct {
	Signer     string `json:"signer"`
	VaultId    uint64 `json:"vault_id"`
	CampaignId uint64 `json:"campaign_id"`
}

type MsgRegisterCampaignResponse struct{}

type MsgUpdateUserShares struct {
	Signer  string   `json:"signer"`
	VaultId uint64   `json:"vault_id"`
	User    string   `json:"user"`
	Shares  math.Int `json:"shares"`
}

type MsgUpdateUserSharesResponse struct{}

type MsgSetCampaignPreference struct {
	Signer               string `json:"signer"`
	VaultId              uint64 `json:"vault_id"`
	CampaignId           uint64 `json:"campaign_id"`
	Beneficiary          string `json:"beneficiary"`
	AllocationPercentage uint64 `json:"allocation_percentage"`
}

type MsgSetCampaignPreferenceResponse struct{}

type MsgDistribute struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgDistributeResponse struct {
	TotalDistributed  math.Int `json:"total_distributed"`
	CampaignAmount    math.Int `json:"campaign_amount"`
	FeeAmount         math.Int `json:"fee_amount"`
	BeneficiaryAmount math.Int `json:"beneficiary_amount"`
}

type MsgProposeFeeChange struct {
	Signer       string `json:"signer"`
	NewFeeBps    uint64 `json:"new_fee_bps"`
	NewRecipient string `json:"new_recipient"`
}

type MsgProposeFeeChangeResponse struct {
	// Nonce is zero when the change applied immediately.
	Nonce         uint64 `json:"nonce"`
	EffectiveTime int64  `json:"effective_time"`
	Immediate     bool   `json:"immediate"`
}

type MsgExecuteFeeChange struct {
	Signer string `json:"signer"`
	Nonce  uint64 `json:"nonce"`
}

type MsgExecuteFeeChangeResponse struct{}

type MsgCancelFeeChange struct {
	Signer string `json:"signer"`
	Nonce  uint64 `json:"nonce"`
}

type MsgCancelFeeChangeResponse struct{}

type MsgSetDefaultBeneficiary struct {
	Signer      string `json:"signer"`
	Beneficiary string `json:"beneficiary"`
}

type MsgSetDefaultBeneficiaryResponse struct{}
