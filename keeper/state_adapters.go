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

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
)

// GetAdapter returns the adapter record for the given id.
func (k *Keeper) GetAdapter(ctx context.Context, adapterID uint64) (adapters.Adapter, error) {
	adapter, err := k.Adapters.Get(ctx, adapterID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return adapters.Adapter{}, sdkerrors.Wrapf(adapters.ErrAdapterNotFound, "adapter %d", adapterID)
		}
		return adapters.Adapter{}, sdkerrors.Wrapf(err, "unable to get adapter %d from state", adapterID)
	}
	return adapter, nil
}

// SetAdapter persists the adapter record.
func (k *Keeper) SetAdapter(ctx context.Context, adapter adapters.Adapter) error {
	return k.Adapters.Set(ctx, adapter.Id, adapter)
}

// IncrementNextAdapterID returns the next available adapter id, starting at 1.
func (k *Keeper) IncrementNextAdapterID(ctx context.Context) (uint64, error) {
	next, err := k.NextAdapterID.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, sdkerrors.Wrap(err, "unable to get next adapter id from state")
		}
		next = 1
	}

	if err := k.NextAdapterID.Set(ctx, next+1); err != nil {
		return 0, sdkerrors.Wrap(err, "unable to set next adapter id to state")
	}

	return next, nil
}
