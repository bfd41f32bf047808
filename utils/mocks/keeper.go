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
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	codecaddress "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/keeper"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
)

// Keepers bundles the mock collaborators wired into a test keeper.
type Keepers struct {
	Bank       BankKeeper
	ACL        ACLKeeper
	Campaigns  CampaignKeeper
	Strategies StrategyRegistry
	Source     *YieldSource
}

// GiveKeeper builds a keeper over an in-memory store with fresh mocks.
func GiveKeeper() (*keeper.Keeper, Keepers, sdk.Context) {
	bank := NewBankKeeper()

	return GiveKeeperWithKeepers(Keepers{
		Bank:       bank,
		ACL:        NewACLKeeper(),
		Campaigns:  NewCampaignKeeper(),
		Strategies: NewStrategyRegistry(),
		Source:     NewYieldSource(bank),
	})
}

// GiveKeeperWithKeepers builds a keeper over an in-memory store with the
// provided collaborators.
func GiveKeeperWithKeepers(keepers Keepers) (*keeper.Keeper, Keepers, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	ctx := testutil.DefaultContext(key, tkey)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		EventService{},
		codecaddress.NewBech32Codec("cosmos"),
		keepers.ACL,
		keepers.Bank,
		keepers.Campaigns,
		keepers.Strategies,
		keepers.Source,
	)

	return k, keepers, ctx
}
