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

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/strategy"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
)

type Keeper struct {
	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec

	acl        types.ACLKeeper
	bank       types.BankKeeper
	campaigns  types.CampaignKeeper
	strategies types.StrategyRegistry
	source     types.YieldSource

	Vaults              collections.Map[uint64, vault.Vault]
	NextVaultID         collections.Item[uint64]
	VaultShares         collections.Map[collections.Pair[uint64, []byte], math.Int]
	VaultTotalShares    collections.Map[uint64, math.Int]
	PendingDistribution collections.Map[uint64, math.Int]

	Adapters      collections.Map[uint64, adapters.Adapter]
	NextAdapterID collections.Item[uint64]

	StrategyConfigs  collections.Map[uint64, strategy.Config]
	ApprovedAdapters collections.Map[collections.Pair[uint64, uint64], bool]

	RouterShares       collections.Map[collections.Pair[uint64, []byte], math.Int]
	RouterTotalShares  collections.Map[uint64, math.Int]
	Shareholders       collections.Map[collections.Pair[uint64, uint64], []byte]
	ShareholderIndices collections.Map[collections.Pair[uint64, []byte], uint64]
	ShareholderCounts  collections.Map[uint64, uint64]
	VaultCampaigns     collections.Map[uint64, uint64]
	Preferences        collections.Map[collections.Pair[uint64, []byte], router.CampaignPreference]
	FeeConfig          collections.Item[router.FeeConfig]
	PendingFeeChanges  collections.Map[uint64, router.PendingFeeChange]
	FeeChangeNonce     collections.Item[uint64]
	DistributionCounts collections.Map[uint64, uint64]
	CampaignTotals     collections.Map[uint64, math.Int]
	DefaultBeneficiary collections.Item[string]
}

func NewKeeper(
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	acl types.ACLKeeper,
	bank types.BankKeeper,
	campaigns types.CampaignKeeper,
	strategies types.StrategyRegistry,
	source types.YieldSource,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,

		acl:        acl,
		bank:       bank,
		campaigns:  campaigns,
		strategies: strategies,
		source:     source,

		Vaults:              collections.NewMap(builder, vault.VaultKey, "vaults", collections.Uint64Key, types.JSONValue[vault.Vault]("vault")),
		NextVaultID:         collections.NewItem(builder, vault.NextVaultIDKey, "next_vault_id", collections.Uint64Value),
		VaultShares:         collections.NewMap(builder, vault.SharesPrefix, "vault_shares", collections.PairKeyCodec(collections.Uint64Key, collections.BytesKey), sdk.IntValue),
		VaultTotalShares:    collections.NewMap(builder, vault.TotalSharesPrefix, "vault_total_shares", collections.Uint64Key, sdk.IntValue),
		PendingDistribution: collections.NewMap(builder, vault.PendingDistributionPrefix, "pending_distribution", collections.Uint64Key, sdk.IntValue),

		Adapters:      collections.NewMap(builder, adapters.AdapterKey, "adapters", collections.Uint64Key, types.JSONValue[adapters.Adapter]("adapter")),
		NextAdapterID: collections.NewItem(builder, adapters.NextAdapterIDKey, "next_adapter_id", collections.Uint64Value),

		StrategyConfigs:  collections.NewMap(builder, strategy.ConfigPrefix, "strategy_configs", collections.Uint64Key, types.JSONValue[strategy.Config]("strategy_config")),
		ApprovedAdapters: collections.NewMap(builder, strategy.ApprovedAdapterPrefix, "approved_adapters", collections.PairKeyCodec(collections.Uint64Key, collections.Uint64Key), collections.BoolValue),

		RouterShares:       collections.NewMap(builder, router.SharesPrefix, "router_shares", collections.PairKeyCodec(collections.Uint64Key, collections.BytesKey), sdk.IntValue),
		RouterTotalShares:  collections.NewMap(builder, router.TotalSharesPrefix, "router_total_shares", collections.Uint64Key, sdk.IntValue),
		Shareholders:       collections.NewMap(builder, router.ShareholderPrefix, "shareholders", collections.PairKeyCodec(collections.Uint64Key, collections.Uint64Key), collections.BytesValue),
		ShareholderIndices: collections.NewMap(builder, router.ShareholderIndexPrefix, "shareholder_indices", collections.PairKeyCodec(collections.Uint64Key, collections.BytesKey), collections.Uint64Value),
		ShareholderCounts:  collections.NewMap(builder, router.ShareholderCountPrefix, "shareholder_counts", collections.Uint64Key, collections.Uint64Value),
		VaultCampaigns:     collections.NewMap(builder, router.VaultCampaignPrefix, "vault_campaigns", collections.Uint64Key, collections.Uint64Value),
		Preferences:        collections.NewMap(builder, router.PreferencePrefix, "preferences", collections.PairKeyCodec(collections.Uint64Key, collections.BytesKey), types.JSONValue[router.CampaignPreference]("campaign_preference")),
		FeeConfig:          collections.NewItem(builder, router.FeeConfigKey, "fee_config", types.JSONValue[router.FeeConfig]("fee_config")),
		PendingFeeChanges:  collections.NewMap(builder, router.PendingFeeChangePrefix, "pending_fee_changes", collections.Uint64Key, types.JSONValue[router.PendingFeeChange]("pending_fee_change")),
		FeeChangeNonce:     collections.NewItem(builder, router.FeeChangeNonceKey, "fee_change_nonce", collections.Uint64Value),
		DistributionCounts: collections.NewMap(builder, router.DistributionCountPrefix, "distribution_counts", collections.Uint64Key, collections.Uint64Value),
		CampaignTotals:     collections.NewMap(builder, router.CampaignTotalPrefix, "campaign_totals", collections.Uint64Key, sdk.IntValue),
		DefaultBeneficiary: collections.NewItem(builder, router.DefaultBeneficiaryKey, "default_beneficiary", collections.StringValue),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bank = bankKeeper
}

// SetYieldSource overwrites the external yield source used by balance-growth
// adapters.
func (k *Keeper) SetYieldSource(source types.YieldSource) {
	k.source = source
}

// EnsureRole decodes signer and verifies it holds the given role with the
// external ACL registry.
func (k *Keeper) EnsureRole(ctx context.Context, role string, signer string) (sdk.AccAddress, error) {
	account, err := k.address.StringToBytes(signer)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "unable to decode signer %s", signer)
	}
	if !k.acl.HasRole(ctx, role, account) {
		return nil, sdkerrors.Wrapf(types.ErrUnauthorized, "account %s does not have role %s", signer, role)
	}
	return account, nil
}
