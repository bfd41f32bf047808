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
	"cosmossdk.io/math"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

// GetVault returns the vault record for the given id.
func (k *Keeper) GetVault(ctx context.Context, vaultID uint64) (vault.Vault, error) {
	v, err := k.Vaults.Get(ctx, vaultID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return vault.Vault{}, sdkerrors.Wrapf(vault.ErrVaultNotFound, "vault %d", vaultID)
		}
		return vault.Vault{}, sdkerrors.Wrapf(err, "unable to get vault %d from state", vaultID)
	}
	return v, nil
}

// SetVault persists the vault record.
func (k *Keeper) SetVault(ctx context.Context, v vault.Vault) error {
	return k.Vaults.Set(ctx, v.Id, v)
}

// IncrementNextVaultID returns the next available vault id, starting at 1.
func (k *Keeper) IncrementNextVaultID(ctx context.Context) (uint64, error) {
	next, err := k.NextVaultID.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, sdkerrors.Wrap(err, "unable to get next vault id from state")
		}
		next = 1
	}

	if err := k.NextVaultID.Set(ctx, next+1); err != nil {
		return 0, sdkerrors.Wrap(err, "unable to set next vault id to state")
	}

	return next, nil
}

// GetVaultShares returns a user's share balance in a vault, zero when absent.
func (k *Keeper) GetVaultShares(ctx context.Context, vaultID uint64, user []byte) math.Int {
	shares, err := k.VaultShares.Get(ctx, collections.Join(vaultID, user))
	if err != nil {
		return math.ZeroInt()
	}
	return shares
}

// SetVaultShares writes a user's share balance, removing the entry at zero.
func (k *Keeper) SetVaultShares(ctx context.Context, vaultID uint64, user []byte, shares math.Int) error {
	key := collections.Join(vaultID, user)
	if !shares.IsPositive() {
		return k.VaultShares.Remove(ctx, key)
	}
	return k.VaultShares.Set(ctx, key, shares)
}

// GetVaultTotalShares returns a vault's total outstanding shares, zero when
// absent.
func (k *Keeper) GetVaultTotalShares(ctx context.Context, vaultID uint64) math.Int {
	total, err := k.VaultTotalShares.Get(ctx, vaultID)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

// SetVaultTotalShares writes a vault's total outstanding shares, removing the
// entry at zero.
func (k *Keeper) SetVaultTotalShares(ctx context.Context, vaultID uint64, total math.Int) error {
	if !total.IsPositive() {
		return k.VaultTotalShares.Remove(ctx, vaultID)
	}
	return k.VaultTotalShares.Set(ctx, vaultID, total)
}

// GetPendingDistribution returns the undistributed yield accumulated for a
// vault, zero when absent.
func (k *Keeper) GetPendingDistribution(ctx context.Context, vaultID uint64) math.Int {
	pending, err := k.PendingDistribution.Get(ctx, vaultID)
	if err != nil {
		return math.ZeroInt()
	}
	return pending
}

// SetPendingDistribution writes the undistributed yield for a vault, removing
// the entry at zero.
func (k *Keeper) SetPendingDistribution(ctx context.Context, vaultID uint64, pending math.Int) error {
	if !pending.IsPositive() {
		return k.PendingDistribution.Remove(ctx, vaultID)
	}
	return k.PendingDistribution.Set(ctx, vaultID, pending)
}

// AddPendingDistribution increases the undistributed yield for a vault.
func (k *Keeper) AddPendingDistribution(ctx context.Context, vaultID uint64, amount math.Int) error {
	pending, err := k.GetPendingDistribution(ctx, vaultID).SafeAdd(amount)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to add pending distribution")
	}
	return k.SetPendingDistribution(ctx, vaultID, pending)
}

// VaultIdleBalance returns the vault sub-account's uninvested balance.
func (k *Keeper) VaultIdleBalance(ctx context.Context, v vault.Vault) math.Int {
	return k.bank.GetBalance(ctx, types.VaultAddress(v.Id), v.Denom).Amount
}

// VaultTotalAssets returns the vault's idle balance plus the assets reported
// by its active adapter. A failed adapter probe propagates to the caller.
func (k *Keeper) VaultTotalAssets(ctx context.Context, v vault.Vault) (math.Int, error) {
	total := k.VaultIdleBalance(ctx, v)

	if v.ActiveAdapterId != 0 {
		adapter, err := k.GetAdapter(ctx, v.ActiveAdapterId)
		if err != nil {
			return math.ZeroInt(), err
		}

		assets, err := k.AdapterTotalAssets(ctx, v, adapter)
		if err != nil {
			return math.ZeroInt(), err
		}

		total, err = total.SafeAdd(assets)
		if err != nil {
			return math.ZeroInt(), sdkerrors.Wrap(err, "unable to total vault assets")
		}
	}

	return total, nil
}
