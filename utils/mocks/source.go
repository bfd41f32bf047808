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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// PoolAddress is the account holding funds deposited into the mock yield
// source.
var PoolAddress = authtypes.NewModuleAddress("mock/yield_source")

// YieldSource is an in-memory external pool for unit tests. Yield is
// simulated by crediting Balances (and minting the matching coins to
// PoolAddress); slippage by setting a withdrawal Shortfall; probe failures
// by marking FailBalanceOf.
type YieldSource struct {
	Bank          BankKeeper
	Balances      map[uint64]math.Int
	Shortfall     map[uint64]math.Int
	FailBalanceOf map[uint64]bool
}

func NewYieldSource(bank BankKeeper) *YieldSource {
	return &YieldSource{
		Bank:          bank,
		Balances:      make(map[uint64]math.Int),
		Shortfall:     make(map[uint64]math.Int),
		FailBalanceOf: make(map[uint64]bool),
	}
}

func (s *YieldSource) balance(adapterID uint64) math.Int {
	balance, ok := s.Balances[adapterID]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

func (s *YieldSource) Deposit(ctx context.Context, adapterID uint64, from sdk.AccAddress, amount sdk.Coin) error {
	if err := s.Bank.SendCoins(ctx, from, PoolAddress, sdk.NewCoins(amount)); err != nil {
		return err
	}
	s.Balances[adapterID] = s.balance(adapterID).Add(amount.Amount)
	return nil
}

func (s *YieldSource) Withdraw(ctx context.Context, adapterID uint64, to sdk.AccAddress, amount sdk.Coin) (math.Int, error) {
	balance := s.balance(adapterID)
	if amount.Amount.GT(balance) {
		return math.ZeroInt(), fmt.Errorf("adapter %d holds %s, requested %s", adapterID, balance, amount.Amount)
	}

	actual := amount.Amount
	if shortfall, ok := s.Shortfall[adapterID]; ok {
		actual = actual.Sub(math.MinInt(shortfall, actual))
	}

	if actual.IsPositive() {
		if err := s.Bank.SendCoins(ctx, PoolAddress, to, sdk.NewCoins(sdk.NewCoin(amount.Denom, actual))); err != nil {
			return math.ZeroInt(), err
		}
	}

	// The full requested amount leaves the position; the shortfall is lost.
	s.Balances[adapterID] = balance.Sub(amount.Amount)
	return actual, nil
}

func (s *YieldSource) BalanceOf(_ context.Context, adapterID uint64) (math.Int, error) {
	if s.FailBalanceOf[adapterID] {
		return math.ZeroInt(), fmt.Errorf("source unavailable for adapter %d", adapterID)
	}
	return s.balance(adapterID), nil
}
