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

package adapters

import (
	"context"

	"cosmossdk.io/math"
)

type MsgServer interface {
	RegisterAdapter(ctx context.Context, msg *MsgRegisterAdapter) (*MsgRegisterAdapterResponse, error)
	SetGrowthIndex(ctx context.Context, msg *MsgSetGrowthIndex) (*MsgSetGrowthIndexResponse, error)
	Rollover(ctx context.Context, msg *MsgRollover) (*MsgRolloverResponse, error)
	ManagedWithdraw(ctx context.Context, msg *MsgManagedWithdraw) (*MsgManagedWithdrawResponse, error)
	ManagedDeposit(ctx context.Context, msg *MsgManagedDeposit) (*MsgManagedDepositResponse, error)
	ReportManagedBalance(ctx context.Context, msg *MsgReportManagedBalance) (*MsgReportManagedBalanceResponse, error)
	SetMaxSlippage(ctx context.Context, msg *MsgSetMaxSlippage) (*MsgSetMaxSlippageResponse, error)
}

type MsgRegisterAdapter struct {
	Signer         string `json:"signer"`
	VaultId        uint64 `json:"vault_id"`
	Kind           Kind   `json:"kind"`
	MaxSlippageBps uint64 `json:"max_slippage_bps"`
	MaturityStart  int64  `json:"maturity_start"`
	MaturityEnd    int64  `json:"maturity_end"`
}

type MsgRegisterAdapterResponse struct {
	AdapterId uint64 `json:"adapter_id"`
}

type MsgSetGrowthIndex struct {
	Signer    string   `json:"signer"`
	AdapterId uint64   `json:"adapter_id"`
	Index     math.Int `json:"index"`
}

type MsgSetGrowthIndexResponse struct{}

type MsgRollover struct {
	Signer      string `json:"signer"`
	AdapterId   uint64 `json:"adapter_id"`
	NewStart    int64  `json:"new_start"`
	NewMaturity int64  `json:"new_maturity"`
}

type MsgRolloverResponse struct{}

type MsgManagedWithdraw struct {
	Signer    string   `json:"signer"`
	AdapterId uint64   `json:"adapter_id"`
	Amount    math.Int `json:"amount"`
}

type MsgManagedWithdrawResponse struct{}

type MsgManagedDeposit struct {
	Signer    string   `json:"signer"`
	AdapterId uint64   `json:"adapter_id"`
	Amount    math.Int `json:"amount"`
}

type MsgManagedDepositResponse struct{}

type MsgReportManagedBalance struct {
	Signer    string   `json:"signer"`
	AdapterId uint64   `json:"adapter_id"`
	Balance   math.Int `json:"balance"`
}

type MsgReportManagedBalanceResponse struct{}

type MsgSetMaxSlippage struct {
	Signer         string `json:"signer"`
	AdapterId      uint64 `json:"adapter_id"`
	MaxSlippageBps uint64 `json:"max_slippage_bps"`
}

type MsgSetMaxSlippageResponse struct{}
