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

package adapters

import "cosmossdk.io/errors"

var (
	ErrInvalidAdapter     = errors.Register("givevault/adapters", 1, "invalid adapter")
	ErrAdapterNotFound    = errors.Register("givevault/adapters", 2, "adapter not found")
	ErrInvalidAmount      = errors.Register("givevault/adapters", 3, "invalid amount")
	ErrSlippageExceeded   = errors.Register("givevault/adapters", 4, "slippage exceeds maximum")
	ErrIndexDecrease      = errors.Register("givevault/adapters", 5, "growth index cannot decrease")
	ErrWrongKind          = errors.Register("givevault/adapters", 6, "operation not supported by adapter kind")
	ErrInsufficientBuffer = errors.Register("givevault/adapters", 7, "insufficient adapter buffer")
)
