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

package vault

import "cosmossdk.io/errors"

var (
	ErrInvalidVault       = errors.Register("givevault/vault", 1, "invalid vault")
	ErrVaultNotFound      = errors.Register("givevault/vault", 2, "vault not found")
	ErrInvalidAmount      = errors.Register("givevault/vault", 3, "invalid amount")
	ErrInvestPaused       = errors.Register("givevault/vault", 4, "investing is paused")
	ErrHarvestPaused      = errors.Register("givevault/vault", 5, "harvesting is paused")
	ErrEmergencyShutdown  = errors.Register("givevault/vault", 6, "vault is shut down")
	ErrInsufficientShares = errors.Register("givevault/vault", 7, "insufficient shares")
	ErrNoActiveAdapter    = errors.Register("givevault/vault", 8, "no active adapter")
	ErrMaxLossExceeded    = errors.Register("givevault/vault", 9, "harvest loss exceeds maximum")
)
