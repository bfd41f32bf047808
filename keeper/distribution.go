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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

// distributionResult aggregates one distribution cycle. The three buckets
// partition the distributed total exactly; truncation dust never leaves the
// pending bucket.
type distributionResult struct {
	Distributed math.Int
	Campaign    math.Int
	Fee         math.Int
	Beneficiary math.Int
}

// distributeToAllUsers splits the vault's pending yield across its tracked
// shareholders. Per user, the yield share and the fee are floored, the
// campaign cut is floored, and the user's beneficiary receives the exact
// remainder, so the per-user partition is exact. Beneficiary payouts are
// transferred user by user; the fee and campaign cuts leave in two aggregate
// transfers.
func (k *Keeper) distributeToAllUsers(ctx context.Context, v vault.Vault, campaignID uint64, campaign types.Campaign) (distributionResult, error) {
	result := distributionResult{
		Distributed: math.ZeroInt(),
		Campaign:    math.ZeroInt(),
		Fee:         math.ZeroInt(),
		Beneficiary: math.ZeroInt(),
	}

	totalShares := k.GetRouterTotalShares(ctx, v.Id)
	if !totalShares.IsPositive() {
		return result, sdkerrors.Wrapf(router.ErrNoShares, "vault %d", v.Id)
	}

	totalYield := k.GetPendingDistribution(ctx, v.Id)
	if !totalYield.IsPositive() {
		return result, sdkerrors.Wrapf(router.ErrNothingToDistribute, "vault %d", v.Id)
	}

	holders, err := k.GetShareholders(ctx, v.Id)
	if err != nil {
		return result, err
	}

	feeConfig := k.GetFeeConfig(ctx)
	feeBps := math.NewIntFromUint64(feeConfig.FeeBps)
	payoutAddress := types.PayoutAddress(v.Id)

	for _, holder := range holders {
		shares := k.GetRouterShares(ctx, v.Id, holder)

		userYield := totalYield.Mul(shares).Quo(totalShares)
		if !userYield.IsPositive() {
			continue
		}

		fee := userYield.Mul(feeBps).QuoRaw(types.BpsDenominator)
		net := userYield.Sub(fee)

		allocation := uint64(100)
		beneficiary := ""
		if preference, found := k.GetPreference(ctx, v.Id, holder); found && preference.CampaignId == campaignID {
			allocation = preference.AllocationPercentage
			beneficiary = preference.Beneficiary
		}

		campaignAmount := net.MulRaw(int64(allocation)).QuoRaw(100)
		beneficiaryAmount := net.Sub(campaignAmount)

		if beneficiaryAmount.IsPositive() {
			if beneficiary == "" {
				fallback, found := k.GetDefaultBeneficiary(ctx)
				if !found {
					return result, sdkerrors.Wrapf(router.ErrNoBeneficiary, "vault %d has no default beneficiary", v.Id)
				}
				beneficiary = fallback
			}

			recipient, err := k.address.StringToBytes(beneficiary)
			if err != nil {
				return result, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode beneficiary %s", beneficiary)
			}

			coins := sdk.NewCoins(sdk.NewCoin(v.Denom, beneficiaryAmount))
			if err := k.bank.SendCoins(ctx, payoutAddress, recipient, coins); err != nil {
				return result, sdkerrors.Wrap(err, "unable to transfer beneficiary payout")
			}
		}

		result.Distributed = result.Distributed.Add(userYield)
		result.Fee = result.Fee.Add(fee)
		result.Campaign = result.Campaign.Add(campaignAmount)
		result.Beneficiary = result.Beneficiary.Add(beneficiaryAmount)
	}

	if result.Fee.IsPositive() {
		recipient, err := k.address.StringToBytes(feeConfig.FeeRecipient)
		if err != nil {
			return result, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode fee recipient %s", feeConfig.FeeRecipient)
		}
		coins := sdk.NewCoins(sdk.NewCoin(v.Denom, result.Fee))
		if err := k.bank.SendCoins(ctx, payoutAddress, recipient, coins); err != nil {
			return result, sdkerrors.Wrap(err, "unable to transfer fee")
		}
	}

	if result.Campaign.IsPositive() {
		recipient, err := k.address.StringToBytes(campaign.PayoutRecipient)
		if err != nil {
			return result, sdkerrors.Wrapf(router.ErrInvalidRecipient, "unable to decode campaign recipient %s", campaign.PayoutRecipient)
		}
		coins := sdk.NewCoins(sdk.NewCoin(v.Denom, result.Campaign))
		if err := k.bank.SendCoins(ctx, payoutAddress, recipient, coins); err != nil {
			return result, sdkerrors.Wrap(err, "unable to transfer campaign payout")
		}
	}

	// Truncation dust carries over to the next cycle.
	if err := k.SetPendingDistribution(ctx, v.Id, totalYield.Sub(result.Distributed)); err != nil {
		return result, sdkerrors.Wrap(err, "unable to set pending distribution to state")
	}

	if err := k.DistributionCounts.Set(ctx, v.Id, k.GetDistributionCount(ctx, v.Id)+1); err != nil {
		return result, sdkerrors.Wrap(err, "unable to set distribution count to state")
	}
	if err := k.AddCampaignTotal(ctx, campaignID, result.Campaign); err != nil {
		return result, err
	}

	return result, nil
}
