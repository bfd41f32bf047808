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

const (
	// MinRebalanceInterval and MaxRebalanceInterval bound the automated
	// rebalance cadence, in seconds.
	MinRebalanceInterval = int64(3_600)
	MaxRebalanceInterval = int64(30 * 24 * 3_600)

	// MaxAdapters caps the approved adapter list per vault.
	MaxAdapters = 10

	// MaxEmergencyExitThresholdBps caps the harvest-loss threshold that
	// trips emergency mode.
	MaxEmergencyExitThresholdBps = uint64(5_000)
)

// Config is the per-vault strategy configuration. AdapterList keeps approved
// adapters in insertion order; removal swaps the last element in, so order is
// not preserved across revocations.
type Config struct {
	VaultId                   uint64   `json:"vault_id"`
	RebalanceInterval         int64    `json:"rebalance_interval"`
	LastRebalanceTime         int64    `json:"last_rebalance_time"`
	EmergencyExitThresholdBps uint64   `json:"emergency_exit_threshold_bps"`
	AutoRebalanceEnabled      bool     `json:"auto_rebalance_enabled"`
	EmergencyMode             bool     `json:"emergency_mode"`
	AdapterList               []uint64 `json:"adapter_list"`
}
