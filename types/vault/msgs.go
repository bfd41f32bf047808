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

package vault

import (
	"context"

	"cosmossdk.io/math"
)

type MsgServer interface {
	CreateVault(ctx context.Context, msg *MsgCreateVault) (*MsgCreateVaultResponse, error)
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(ctx context.Context, msg *MsgWithdraw) (*MsgWithdrawResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)
	Harvest(ctx context.Context, msg *MsgHarvest) (*MsgHarvestResponse, error)
	SetCashBuffer(ctx context.Context, msg *MsgSetCashBuffer) (*MsgSetCashBufferResponse, error)
	SetInvestPaused(ctx context.Context, msg *MsgSetInvestPaused) (*MsgSetInvestPausedResponse, error)
	SetHarvestPaused(ctx context.Context, msg *MsgSetHarvestPaused) (*MsgSetHarvestPausedResponse, error)
	SetEmergencyShutdown(ctx context.Context, msg *MsgSetEmergencyShutdown) (*MsgSetEmergencyShutdownResponse, error)
	EmergencyWithdrawFromAdapter(ctx context.Context, msg *MsgEmergencyWithdrawFromAdapter) (*MsgEmergencyWithdrawFromAdapterResponse, error)
}

type MsgCreateVault struct {
	Signer        string `json:"signer"`
	Denom         string `json:"denom"`
	CashBufferBps uint64 `json:"cash_buffer_bps"`
	MaxLossBps    uint64 `json:"max_loss_bps"`
}

type MsgCreateVaultResponse struct {
	VaultId uint64 `json:"vault_id"`
}

type MsgDeposit struct {
	Signer  string   `json:"signer"`
	VaultId uint64   `json:"vault_id"`
	Amount  math.Int `json:"amount"`
}

type MsgDepositResponse struct {
	Shares math.Int `json:"shares"`
}

type MsgWithdraw struct {
	Signer  string   `json:"signer"`
	VaultId uint64   `json:"vault_id"`
	Amount  math.Int `json:"amount"`
}

type MsgWithdrawResponse struct {
	SharesBurned math.Int `json:"shares_burned"`
}

type MsgRedeem struct {
	Signer  string   `json:"signer"`
	VaultId uint64   `json:"vault_id"`
	Shares  math.Int `json:"shares"`
}

type MsgRedeemResponse struct {
	Assets math.Int `json:"assets"`
}

type MsgHarvest struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgHarvestResponse struct {
	Profit math.Int `json:"profit"`
	Loss   math.Int `json:"loss"`
}

type MsgSetCashBuffer struct {
	Signer        string `json:"signer"`
	VaultId       uint64 `json:"vault_id"`
	CashBufferBps uint64 `json:"cash_buffer_bps"`
}

type MsgSetCashBufferResponse struct{}

type MsgSetInvestPaused struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
	Paused  bool   `json:"paused"`
}

type MsgSetInvestPausedResponse struct{}

type MsgSetHarvestPaused struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
	Paused  bool   `json:"paused"`
}

type MsgSetHarvestPausedResponse struct{}

type MsgSetEmergencyShutdown struct {
	Signer   string `json:"signer"`
	VaultId  uint64 `json:"vault_id"`
	Shutdown bool   `json:"shutdown"`
}

type MsgSetEmergencyShutdownResponse struct{}

type MsgEmergencyWithdrawFromAdapter struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgEmergencyWithdrawFromAdapterResponse struct {
	Returned math.Int `json:"returned"`
}
