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

const (
	// MaxFeeBps is the absolute cap on the platform fee.
	MaxFeeBps = uint64(1_000)

	// MaxFeeIncreasePerChange caps how much a single executed change can
	// raise the fee.
	MaxFeeIncreasePerChange = uint64(250)

	// FeeChangeDelay is the timelock on fee increases, in seconds.
	FeeChangeDelay = int64(7 * 24 * 3_600)
)

// ValidAllocation reports whether pct is one of the whitelisted campaign
// allocation percentages.
func ValidAllocation(pct uint64) bool {
	switch pct {
	case 0, 25, 50, 75, 100:
		return true
	}
	return false
}

// CampaignPreference is a user's per-vault split between the bound campaign
// and their own beneficiary. Absent a stored preference, 100% of net yield
// goes to the campaign.
type CampaignPreference struct {
	Beneficiary          string `json:"beneficiary"`
	AllocationPercentage uint64 `json:"allocation_percentage"`
	// CampaignId records the vault's campaign binding the preference was set
	// under; a mismatch with the current binding invalidates updates.
	CampaignId  uint64 `json:"campaign_id"`
	LastUpdated int64  `json:"last_updated"`
}

// FeeConfig is the current platform fee.
type FeeConfig struct {
	FeeBps       uint64 `json:"fee_bps"`
	FeeRecipient string `json:"fee_recipient"`
}

// PendingFeeChange is a timelocked fee increase awaiting execution. Records
// are keyed by nonce and deleted on execution or cancellation.
type PendingFeeChange struct {
	NewFeeBps     uint64 `json:"new_fee_bps"`
	NewRecipient  string `json:"new_recipient"`
	EffectiveTime int64  `json:"effective_time"`
}
