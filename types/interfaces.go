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

package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module consumed by this module.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// ACLKeeper is the external role registry. The module treats it as a pure
// oracle; no permission state is cached locally.
type ACLKeeper interface {
	HasRole(ctx context.Context, role string, account sdk.AccAddress) bool
}

// Campaign is the read-only projection of a campaign consumed by the payout
// router. Lifecycle and checkpoint voting live outside this module.
type Campaign struct {
	Id              uint64 `json:"id"`
	PayoutRecipient string `json:"payout_recipient"`
	StrategyId      uint64 `json:"strategy_id"`
	PayoutsHalted   bool   `json:"payouts_halted"`
}

// CampaignKeeper resolves campaigns at distribution time. Results are never
// cached by the router.
type CampaignKeeper interface {
	GetCampaign(ctx context.Context, id uint64) (Campaign, bool)
}

// Strategy is the read-only projection of a registered strategy, consulted
// only when validating that a candidate active adapter matches a campaign's
// assigned strategy.
type Strategy struct {
	Id        uint64 `json:"id"`
	AdapterId uint64 `json:"adapter_id"`
}

// StrategyRegistry resolves strategies by identifier.
type StrategyRegistry interface {
	GetStrategy(ctx context.Context, id uint64) (Strategy, bool)
}

// YieldSource is the external pool backing balance-growth adapters. Deposits
// move funds from the adapter sub-account into the pool; withdrawals may
// under-deliver, and the shortfall is reported through the returned amount.
// BalanceOf may fail, which scanning callers must treat as a skippable soft
// failure.
type YieldSource interface {
	Deposit(ctx context.Context, adapterID uint64, from sdk.AccAddress, amount sdk.Coin) error
	Withdraw(ctx context.Context, adapterID uint64, to sdk.AccAddress, amount sdk.Coin) (math.Int, error)
	BalanceOf(ctx context.Context, adapterID uint64) (math.Int, error)
}
