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

import "cosmossdk.io/math"

// Kind selects the accounting model an adapter runs under. The kind is fixed
// at registration and drives how the engine measures the adapter's assets,
// books principal, and realizes yield.
type Kind string

const (
	// KindBalanceGrowth delegates funds to an external yield source; assets
	// are whatever the source reports, and harvesting withdraws the excess
	// over booked principal.
	KindBalanceGrowth Kind = "balance_growth"
	// KindCompounding accrues yield directly on the adapter account; assets
	// are the account's bank balance.
	KindCompounding Kind = "compounding"
	// KindGrowthIndex values deposits through an attested monotone index
	// scaled by IndexScale; yield is realized only on divestment.
	KindGrowthIndex Kind = "growth_index"
	// KindFixedMaturity books deposits at face value over a maturity window;
	// yield is realized only on divestment.
	KindFixedMaturity Kind = "fixed_maturity"
	// KindManaged trusts an off-chain manager's attested balance; realized
	// profit is capped at the adapter's on-chain buffer.
	KindManaged Kind = "managed"
)

// IndexScale is the fixed-point scale of growth-index adapters. An index
// equal to IndexScale values deposits 1:1.
var IndexScale = math.NewIntWithDecimal(1, 18)

// Adapter is the persisted record of one adapter instance. Only the fields
// relevant to the adapter's kind are maintained; the rest stay zero. The
// vault binding is immutable.
type Adapter struct {
	Id      uint64 `json:"id"`
	Kind    Kind   `json:"kind"`
	VaultId uint64 `json:"vault_id"`
	// InvestedAmount is the principal booked against the adapter, shared by
	// every kind.
	InvestedAmount math.Int `json:"invested_amount"`
	// Deposits tracks principal for index and fixed-maturity accounting.
	Deposits       math.Int `json:"deposits"`
	GrowthIndex    math.Int `json:"growth_index"`
	ManagedBalance math.Int `json:"managed_balance"`
	MaturityStart  int64    `json:"maturity_start"`
	MaturityEnd    int64    `json:"maturity_end"`
	MaxSlippageBps uint64   `json:"max_slippage_bps"`
}

// ValidKind reports whether k is one of the registered accounting models.
func ValidKind(k Kind) bool {
	switch k {
	case KindBalanceGrowth, KindCompounding, KindGrowthIndex, KindFixedMaturity, KindManaged:
		return true
	}
	return false
}
