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

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ACLKeeper is a map-backed role registry for unit tests, keyed by role then
// bech32 address.
type ACLKeeper struct {
	Roles map[string]map[string]bool
}

func NewACLKeeper() ACLKeeper {
	return ACLKeeper{Roles: make(map[string]map[string]bool)}
}

// Grant gives an account a role.
func (k ACLKeeper) Grant(role string, address string) {
	if k.Roles[role] == nil {
		k.Roles[role] = make(map[string]bool)
	}
	k.Roles[role][address] = true
}

func (k ACLKeeper) HasRole(_ context.Context, role string, account sdk.AccAddress) bool {
	return k.Roles[role][account.String()]
}
