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

package strategy

import (
	"context"

	"cosmossdk.io/math"
)

type MsgServer interface {
	InitStrategy(ctx context.Context, msg *MsgInitStrategy) (*MsgInitStrategyResponse, error)
	ApproveAdapter(ctx context.Context, msg *MsgApproveAdapter) (*MsgApproveAdapterResponse, error)
	RevokeAdapter(ctx context.Context, msg *MsgRevokeAdapter) (*MsgRevokeAdapterResponse, error)
	SetActiveAdapter(ctx context.Context, msg *MsgSetActiveAdapter) (*MsgSetActiveAdapterResponse, error)
	CheckAndRebalance(ctx context.Context, msg *MsgCheckAndRebalance) (*MsgCheckAndRebalanceResponse, error)
	EnterEmergencyMode(ctx context.Context, msg *MsgEnterEmergencyMode) (*MsgEnterEmergencyModeResponse, error)
	ExitEmergencyMode(ctx context.Context, msg *MsgExitEmergencyMode) (*MsgExitEmergencyModeResponse, error)
	EmergencyExit(ctx context.Context, msg *MsgEmergencyExit) (*MsgEmergencyExitResponse, error)
	SetRebalanceInterval(ctx context.Context, msg *MsgSetRebalanceInterval) (*MsgSetRebalanceIntervalResponse, error)
	SetAutoRebalance(ctx context.Context, msg *MsgSetAutoRebalance) (*MsgSetAutoRebalanceResponse, error)
	SetEmergencyExitThreshold(ctx context.Context, msg *MsgSetEmergencyExitThreshold) (*MsgSetEmergencyExitThresholdResponse, error)
}

type MsgInitStrategy struct {
	Signer                    string `json:"signer"`
	VaultId                   uint64 `json:"vault_id"`
	RebalanceInterval         int64  `json:"rebalance_interval"`
	EmergencyExitThresholdBps uint64 `json:"emergency_exit_threshold_bps"`
	AutoRebalanceEnabled      bool   `json:"auto_rebalance_enabled"`
}

type MsgInitStrategyResponse struct{}

type MsgApproveAdapter struct {
	Signer    string `json:"signer"`
	VaultId   uint64 `json:"vault_id"`
	AdapterId uint64 `json:"adapter_id"`
}

type MsgApproveAdapterResponse struct{}

type MsgRevokeAdapter struct {
	Signer    string `json:"signer"`
	VaultId   uint64 `json:"vault_id"`
	AdapterId uint64 `json:"adapter_id"`
}

type MsgRevokeAdapterResponse struct{}

type MsgSetActiveAdapter struct {
	Signer    string `json:"signer"`
	VaultId   uint64 `json:"vault_id"`
	AdapterId uint64 `json:"adapter_id"`
}

type MsgSetActiveAdapterResponse struct{}

type MsgCheckAndRebalance struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgCheckAndRebalanceResponse struct {
	Rebalanced bool   `json:"rebalanced"`
	AdapterId  uint64 `json:"adapter_id"`
}

type MsgEnterEmergencyMode struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgEnterEmergencyModeResponse struct{}

type MsgExitEmergencyMode struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgExitEmergencyModeResponse struct{}

type MsgEmergencyExit struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgEmergencyExitResponse struct {
	Returned math.Int `json:"returned"`
}

type MsgSetRebalanceInterval struct {
	Signer            string `json:"signer"`
	VaultId           uint64 `json:"vault_id"`
	RebalanceInterval int64  `json:"rebalance_interval"`
}

type MsgSetRebalanceIntervalResponse struct{}

type MsgSetAutoRebalance struct {
	Signer  string `json:"signer"`
	VaultId uint64 `json:"vault_id"`
	Enabled bool   `json:"enabled"`
}

type MsgSetAutoRebalanceResponse struct{}

type MsgSetEmergencyExitThreshold struct {
	Signer       string `json:"signer"`
	VaultId      uint64 `json:"vault_id"`
	ThresholdBps uint64 `json:"threshold_bps"`
}

type MsgSetEmergencyExitThresholdResponse struct{}
