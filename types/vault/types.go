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

import "cosmossdk.io/math"

// Vault is the persisted record of a single yield vault. Share balances and
// the undistributed-yield bucket live in their own keyed collections so that
// per-user writes never rewrite the whole record.
type Vault struct {
	Id    uint64 `json:"id"`
	Denom string `json:"denom"`
	// ActiveAdapterId is zero when no adapter is active. Capital is not
	// migrated when the active adapter changes; it idles until the next
	// rebalance cycle.
	ActiveAdapterId   uint64   `json:"active_adapter_id"`
	CashBufferBps     uint64   `json:"cash_buffer_bps"`
	MaxLossBps        uint64   `json:"max_loss_bps"`
	TotalProfit       math.Int `json:"total_profit"`
	TotalLoss         math.Int `json:"total_loss"`
	InvestPaused      bool     `json:"invest_paused"`
	HarvestPaused     bool     `json:"harvest_paused"`
	EmergencyShutdown bool     `json:"emergency_shutdown"`
}
