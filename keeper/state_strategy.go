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

package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/strategy"
)

// GetStrategyConfig returns the strategy configuration for a vault.
func (k *Keeper) GetStrategyConfig(ctx context.Context, vaultID uint64) (strategy.Config, error) {
	config, err := k.StrategyConfigs.Get(ctx, vaultID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return strategy.Config{}, sdkerrors.Wrapf(strategy.ErrConfigNotFound, "vault %d", vaultID)
		}
		return strategy.Config{}, sdkerrors.Wrapf(err, "unable to get strategy config for vault %d from state", vaultID)
	}
	return config, nil
}

// SetStrategyConfig persists the strategy configuration for a vault.
func (k *Keeper) SetStrategyConfig(ctx context.Context, config strategy.Config) error {
	return k.StrategyConfigs.Set(ctx, config.VaultId, config)
}

// HasStrategyConfig reports whether a vault has a strategy configuration.
func (k *Keeper) HasStrategyConfig(ctx context.Context, vaultID uint64) bool {
	has, _ := k.StrategyConfigs.Has(ctx, vaultID)
	return has
}

// IsAdapterApproved reports whether an adapter is approved for a vault.
func (k *Keeper) IsAdapterApproved(ctx context.Context, vaultID, adapterID uint64) bool {
	approved, err := k.ApprovedAdapters.Get(ctx, collections.Join(vaultID, adapterID))
	if err != nil {
		return false
	}
	return approved
}
