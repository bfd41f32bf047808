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

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is a map-backed bank for unit tests. Balances are keyed by
// bech32 address.
type BankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewBankKeeper() BankKeeper {
	return BankKeeper{Balances: make(map[string]sdk.Coins)}
}

func (k BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.Balances[addr.String()].AmountOf(denom))
}

func (k BankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	balance, hasNeg := k.Balances[fromAddr.String()].SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr.String(), k.Balances[fromAddr.String()], amt)
	}

	k.Balances[fromAddr.String()] = balance
	k.Balances[toAddr.String()] = k.Balances[toAddr.String()].Add(amt...)

	return nil
}

// Mint credits an account without a source, for test setup.
func (k BankKeeper) Mint(addr sdk.AccAddress, amt sdk.Coins) {
	k.Balances[addr.String()] = k.Balances[addr.String()].Add(amt...)
}
