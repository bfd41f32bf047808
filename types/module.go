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

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const ModuleName = "givevault"

// BpsDenominator is the basis-points scale used by every rate in the module.
const BpsDenominator = 10_000

// ModuleAddress is the top-level module account. Individual vaults, adapters
// and payout buckets each get their own derived sub-account so balances stay
// auditable per component.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

// VaultAddress returns the sub-account holding a vault's idle principal.
func VaultAddress(vaultID uint64) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/vault/%d", ModuleName, vaultID))
}

// AdapterAddress returns the sub-account holding funds delegated to an adapter.
func AdapterAddress(adapterID uint64) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/adapter/%d", ModuleName, adapterID))
}

// PayoutAddress returns the sub-account accumulating harvested yield awaiting
// distribution for a vault.
func PayoutAddress(vaultID uint64) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/payout/%d", ModuleName, vaultID))
}

// Role identifiers resolved against the external ACL oracle. The module never
// stores its own permission bits; every privileged operation gates on HasRole.
const (
	RoleAdmin        = "admin"
	RoleStrategist   = "strategist"
	RoleEmergency    = "emergency"
	RoleFeeManager   = "fee_manager"
	RoleYieldManager = "yield_manager"
	RoleShareUpdater = "share_updater"
	RoleDistributor  = "distributor"
)
