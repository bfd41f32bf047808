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

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
)

// GetRouterShares returns a user's share balance in the router's pushed
// ledger, zero when absent.
func (k *Keeper) GetRouterShares(ctx context.Context, vaultID uint64, user []byte) math.Int {
	shares, err := k.RouterShares.Get(ctx, collections.Join(vaultID, user))
	if err != nil {
		return math.ZeroInt()
	}
	return shares
}

// GetRouterTotalShares returns the router's running total of pushed shares
// for a vault, zero when absent.
func (k *Keeper) GetRouterTotalShares(ctx context.Context, vaultID uint64) math.Int {
	total, err := k.RouterTotalShares.Get(ctx, vaultID)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

// GetShareholderCount returns the number of tracked shareholders of a vault.
func (k *Keeper) GetShareholderCount(ctx context.Context, vaultID uint64) uint64 {
	count, err := k.ShareholderCounts.Get(ctx, vaultID)
	if err != nil {
		return 0
	}
	return count
}

// GetShareholders returns the tracked shareholders of a vault in enumeration
// order.
func (k *Keeper) GetShareholders(ctx context.Context, vaultID uint64) ([][]byte, error) {
	count := k.GetShareholderCount(ctx, vaultID)

	holders := make([][]byte, 0, count)
	for index := uint64(0); index < count; index++ {
		holder, err := k.Shareholders.Get(ctx, collections.Join(vaultID, index))
		if err != nil {
			return nil, sdkerrors.Wrapf(err, "unable to get shareholder %d of vault %d from state", index, vaultID)
		}
		holders = append(holders, holder)
	}

	return holders, nil
}

// SetRouterUserShares overwrites a user's pushed share balance, maintaining
// the running total and the shareholder enumeration. A balance moving from
// zero appends the user; a balance reaching zero removes them by swapping the
// last entry into their slot.
func (k *Keeper) SetRouterUserShares(ctx context.Context, vaultID uint64, user []byte, shares math.Int) error {
	old := k.GetRouterShares(ctx, vaultID, user)
	if old.Equal(shares) {
		return nil
	}

	total, err := k.GetRouterTotalShares(ctx, vaultID).SafeSub(old)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to update total shares")
	}
	total, err = total.SafeAdd(shares)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to update total shares")
	}

	if total.IsPositive() {
		if err := k.RouterTotalShares.Set(ctx, vaultID, total); err != nil {
			return sdkerrors.Wrap(err, "unable to set total shares to state")
		}
	} else if err := k.RouterTotalShares.Remove(ctx, vaultID); err != nil {
		return sdkerrors.Wrap(err, "unable to remove total shares from state")
	}

	key := collections.Join(vaultID, user)
	switch {
	case old.IsZero() && shares.IsPositive():
		if err := k.addShareholder(ctx, vaultID, user); err != nil {
			return err
		}
	case old.IsPositive() && !shares.IsPositive():
		if err := k.removeShareholder(ctx, vaultID, user); err != nil {
			return err
		}
	}

	if !shares.IsPositive() {
		return k.RouterShares.Remove(ctx, key)
	}
	return k.RouterShares.Set(ctx, key, shares)
}

func (k *Keeper) addShareholder(ctx context.Context, vaultID uint64, user []byte) error {
	count := k.GetShareholderCount(ctx, vaultID)

	if err := k.Shareholders.Set(ctx, collections.Join(vaultID, count), user); err != nil {
		return sdkerrors.Wrap(err, "unable to set shareholder to state")
	}
	if err := k.ShareholderIndices.Set(ctx, collections.Join(vaultID, user), count); err != nil {
		return sdkerrors.Wrap(err, "unable to set shareholder index to state")
	}
	if err := k.ShareholderCounts.Set(ctx, vaultID, count+1); err != nil {
		return sdkerrors.Wrap(err, "unable to set shareholder count to state")
	}

	return nil
}

func (k *Keeper) removeShareholder(ctx context.Context, vaultID uint64, user []byte) error {
	index, err := k.ShareholderIndices.Get(ctx, collections.Join(vaultID, user))
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get shareholder index from state")
	}
	count := k.GetShareholderCount(ctx, vaultID)

	last := count - 1
	if index != last {
		mover, err := k.Shareholders.Get(ctx, collections.Join(vaultID, last))
		if err != nil {
			return sdkerrors.Wrap(err, "unable to get last shareholder from state")
		}
		if err := k.Shareholders.Set(ctx, collections.Join(vaultID, index), mover); err != nil {
			return sdkerrors.Wrap(err, "unable to move shareholder in state")
		}
		if err := k.ShareholderIndices.Set(ctx, collections.Join(vaultID, mover), index); err != nil {
			return sdkerrors.Wrap(err, "unable to move shareholder index in state")
		}
	}

	if err := k.Shareholders.Remove(ctx, collections.Join(vaultID, last)); err != nil {
		return sdkerrors.Wrap(err, "unable to remove shareholder from state")
	}
	if err := k.ShareholderIndices.Remove(ctx, collections.Join(vaultID, user)); err != nil {
		return sdkerrors.Wrap(err, "unable to remove shareholder index from state")
	}
	if err := k.ShareholderCounts.Set(ctx, vaultID, last); err != nil {
		return sdkerrors.Wrap(err, "unable to set shareholder count to state")
	}

	return nil
}

// GetVaultCampaign returns the campaign bound to a vault.
func (k *Keeper) GetVaultCampaign(ctx context.Context, vaultID uint64) (uint64, bool) {
	campaignID, err := k.VaultCampaigns.Get(ctx, vaultID)
	if err != nil {
		return 0, false
	}
	return campaignID, true
}

// GetPreference returns a user's campaign preference for a vault.
func (k *Keeper) GetPreference(ctx context.Context, vaultID uint64, user []byte) (router.CampaignPreference, bool) {
	preference, err := k.Preferences.Get(ctx, collections.Join(vaultID, user))
	if err != nil {
		return router.CampaignPreference{}, false
	}
	return preference, true
}

// GetFeeConfig returns the current fee configuration, zero-valued when unset.
func (k *Keeper) GetFeeConfig(ctx context.Context) router.FeeConfig {
	config, err := k.FeeConfig.Get(ctx)
	if err != nil {
		return router.FeeConfig{}
	}
	return config
}

// SetFeeConfig persists the fee configuration.
func (k *Keeper) SetFeeConfig(ctx context.Context, config router.FeeConfig) error {
	return k.FeeConfig.Set(ctx, config)
}

// IncrementFeeChangeNonce returns the next fee change nonce, starting at 1.
func (k *Keeper) IncrementFeeChangeNonce(ctx context.Context) (uint64, error) {
	nonce, err := k.FeeChangeNonce.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, sdkerrors.Wrap(err, "unable to get fee change nonce from state")
		}
		nonce = 1
	}

	if err := k.FeeChangeNonce.Set(ctx, nonce+1); err != nil {
		return 0, sdkerrors.Wrap(err, "unable to set fee change nonce to state")
	}

	return nonce, nil
}

// GetDefaultBeneficiary returns the fallback beneficiary address.
func (k *Keeper) GetDefaultBeneficiary(ctx context.Context) (string, bool) {
	beneficiary, err := k.DefaultBeneficiary.Get(ctx)
	if err != nil || beneficiary == "" {
		return "", false
	}
	return beneficiary, true
}

// GetDistributionCount returns the number of completed distributions for a
// vault.
func (k *Keeper) GetDistributionCount(ctx context.Context, vaultID uint64) uint64 {
	count, err := k.DistributionCounts.Get(ctx, vaultID)
	if err != nil {
		return 0
	}
	return count
}

// GetCampaignTotal returns the cumulative amount routed to a campaign.
func (k *Keeper) GetCampaignTotal(ctx context.Context, campaignID uint64) math.Int {
	total, err := k.CampaignTotals.Get(ctx, campaignID)
	if err != nil {
		return math.ZeroInt()
	}
	return total
}

// AddCampaignTotal adds to the cumulative amount routed to a campaign.
func (k *Keeper) AddCampaignTotal(ctx context.Context, campaignID uint64, amount math.Int) error {
	total, err := k.GetCampaignTotal(ctx, campaignID).SafeAdd(amount)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to add campaign total")
	}
	return k.CampaignTotals.Set(ctx, campaignID, total)
}
