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

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
)

// CampaignKeeper is a map-backed campaign registry for unit tests.
type CampaignKeeper struct {
	Campaigns map[uint64]types.Campaign
}

func NewCampaignKeeper() CampaignKeeper {
	return CampaignKeeper{Campaigns: make(map[uint64]types.Campaign)}
}

func (k CampaignKeeper) GetCampaign(_ context.Context, id uint64) (types.Campaign, bool) {
	campaign, found := k.Campaigns[id]
	return campaign, found
}

// StrategyRegistry is a map-backed strategy registry for unit tests.
type StrategyRegistry struct {
	Strategies map[uint64]types.Strategy
}

func NewStrategyRegistry() StrategyRegistry {
	return StrategyRegistry{Strategies: make(map[uint64]types.Strategy)}
}

func (k StrategyRegistry) GetStrategy(_ context.Context, id uint64) (types.Strategy, bool) {
	strategy, found := k.Strategies[id]
	return strategy, found
}
