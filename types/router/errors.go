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

import "cosmossdk.io/errors"

var (
	ErrCampaignNotBound     = errors.Register("givevault/router", 1, "vault has no campaign")
	ErrCampaignAlreadyBound = errors.Register("givevault/router", 2, "vault already has a campaign")
	ErrCampaignNotFound     = errors.Register("givevault/router", 3, "campaign not found")
	ErrPayoutsHalted        = errors.Register("givevault/router", 4, "campaign payouts are halted")
	ErrNoShares             = errors.Register("givevault/router", 5, "no shares outstanding")
	ErrNothingToDistribute  = errors.Register("givevault/router", 6, "nothing to distribute")
	ErrInvalidAllocation    = errors.Register("givevault/router", 7, "invalid allocation percentage")
	ErrStaleCampaign        = errors.Register("givevault/router", 8, "campaign binding has changed")
	ErrFeeTooHigh           = errors.Register("givevault/router", 9, "fee exceeds maximum")
	ErrFeeIncreaseTooLarge  = errors.Register("givevault/router", 10, "fee increase exceeds maximum step")
	ErrFeeChangeNotFound    = errors.Register("givevault/router", 11, "pending fee change not found")
	ErrFeeChangeNotReady    = errors.Register("givevault/router", 12, "fee change timelock has not elapsed")
	ErrNoBeneficiary        = errors.Register("givevault/router", 13, "no beneficiary available")
	ErrInvalidRecipient     = errors.Register("givevault/router", 14, "invalid recipient")
)
