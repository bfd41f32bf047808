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

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/vault"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/utils"
)

func TestRegisterAdapterValidation(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	intruder := utils.TestAccount()

	// ACT: only the admin may register adapters.
	_, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  intruder.Address,
		VaultId: vaultID,
		Kind:    adapters.KindCompounding,
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: an unknown kind is rejected.
	_, err = env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: vaultID,
		Kind:    "ponzi",
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInvalidAdapter)

	// ACT: slippage tolerance cannot exceed the denominator.
	_, err = env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:         env.admin.Address,
		VaultId:        vaultID,
		Kind:           adapters.KindBalanceGrowth,
		MaxSlippageBps: 10_001,
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInvalidAdapter)

	// ACT: a fixed-maturity adapter needs a forward window.
	_, err = env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:        env.admin.Address,
		VaultId:       vaultID,
		Kind:          adapters.KindFixedMaturity,
		MaturityStart: 200,
		MaturityEnd:   100,
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInvalidAdapter)

	// ACT: the vault must exist.
	_, err = env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: 42,
		Kind:    adapters.KindCompounding,
	})
	// ASSERT
	require.ErrorIs(t, err, vault.ErrVaultNotFound)

	// ACT
	resp, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: vaultID,
		Kind:    adapters.KindGrowthIndex,
	})

	// ASSERT: a growth-index adapter starts at the unit index.
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.AdapterId)

	adapter, err := env.k.GetAdapter(env.ctx, resp.AdapterId)
	require.NoError(t, err)
	require.Equal(t, adapters.IndexScale, adapter.GrowthIndex)
	require.Equal(t, math.ZeroInt(), adapter.InvestedAmount)
}

func TestGrowthIndexAccrual(t *testing.T) {
	// ARRANGE: all deposits flow into an active growth-index adapter.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	adapterID := env.activateAdapter(t, vaultID, adapters.KindGrowthIndex, 0)
	alice := utils.TestAccount()
	env.mint(alice, 1_000)
	env.deposit(t, vaultID, alice, 1_000)

	// ACT: a 10% index appreciation.
	_, err := env.adapterServer.SetGrowthIndex(env.ctx, &adapters.MsgSetGrowthIndex{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Index:     math.NewIntWithDecimal(11, 17),
	})

	// ASSERT: the vault marks the position up without moving funds.
	require.NoError(t, err)

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	total, err := env.k.VaultTotalAssets(env.ctx, v)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100), total)

	// ACT: harvesting an index adapter realizes nothing.
	harvested, err := env.vaultServer.Harvest(env.ctx, &vault.MsgHarvest{
		Signer:  alice.Address,
		VaultId: vaultID,
	})
	// ASSERT
	require.NoError(t, err)
	require.Equal(t, math.ZeroInt(), harvested.Profit)
	require.Equal(t, math.ZeroInt(), harvested.Loss)

	// ACT: withdrawing half the marked value burns half the shares.
	resp, err := env.vaultServer.Withdraw(env.ctx, &vault.MsgWithdraw{
		Signer:  alice.Address,
		VaultId: vaultID,
		Amount:  math.NewInt(550),
	})
	// ASSERT
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), resp.SharesBurned)
	require.Equal(t, math.NewInt(550), env.balance(alice.Bytes))

	adapter, err := env.k.GetAdapter(env.ctx, adapterID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(450), adapter.Deposits)
}

func TestSetGrowthIndexGuards(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	indexAdapter := env.activateAdapter(t, vaultID, adapters.KindGrowthIndex, 0)

	compounding, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: vaultID,
		Kind:    adapters.KindCompounding,
	})
	require.NoError(t, err)

	// ACT: only the yield manager may push the index.
	_, err = env.adapterServer.SetGrowthIndex(env.ctx, &adapters.MsgSetGrowthIndex{
		Signer:    env.strategist.Address,
		AdapterId: indexAdapter,
		Index:     math.NewIntWithDecimal(2, 18),
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: the index only applies to growth-index adapters.
	_, err = env.adapterServer.SetGrowthIndex(env.ctx, &adapters.MsgSetGrowthIndex{
		Signer:    env.yieldManager.Address,
		AdapterId: compounding.AdapterId,
		Index:     math.NewIntWithDecimal(2, 18),
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrWrongKind)

	// ACT: the index never goes down.
	_, err = env.adapterServer.SetGrowthIndex(env.ctx, &adapters.MsgSetGrowthIndex{
		Signer:    env.yieldManager.Address,
		AdapterId: indexAdapter,
		Index:     math.NewIntWithDecimal(9, 17),
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrIndexDecrease)

	// ACT: holding the index flat is allowed.
	_, err = env.adapterServer.SetGrowthIndex(env.ctx, &adapters.MsgSetGrowthIndex{
		Signer:    env.yieldManager.Address,
		AdapterId: indexAdapter,
		Index:     adapters.IndexScale,
	})
	// ASSERT
	require.NoError(t, err)
}

func TestRollover(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)

	start := genesis.Unix()
	end := genesis.Add(90 * 24 * time.Hour).Unix()
	registered, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:        env.admin.Address,
		VaultId:       vaultID,
		Kind:          adapters.KindFixedMaturity,
		MaturityStart: start,
		MaturityEnd:   end,
	})
	require.NoError(t, err)

	compounding, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: vaultID,
		Kind:    adapters.KindCompounding,
	})
	require.NoError(t, err)

	// ACT: only the strategist may roll a position over.
	_, err = env.adapterServer.Rollover(env.ctx, &adapters.MsgRollover{
		Signer:      env.admin.Address,
		AdapterId:   registered.AdapterId,
		NewStart:    end,
		NewMaturity: end + 100,
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: rollover is a fixed-maturity operation.
	_, err = env.adapterServer.Rollover(env.ctx, &adapters.MsgRollover{
		Signer:      env.strategist.Address,
		AdapterId:   compounding.AdapterId,
		NewStart:    end,
		NewMaturity: end + 100,
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrWrongKind)

	// ACT: the new window must be forward.
	_, err = env.adapterServer.Rollover(env.ctx, &adapters.MsgRollover{
		Signer:      env.strategist.Address,
		AdapterId:   registered.AdapterId,
		NewStart:    end,
		NewMaturity: end,
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInvalidAdapter)

	// ACT
	_, err = env.adapterServer.Rollover(env.ctx, &adapters.MsgRollover{
		Signer:      env.strategist.Address,
		AdapterId:   registered.AdapterId,
		NewStart:    end,
		NewMaturity: end + 100,
	})

	// ASSERT: principal carries into the new window untouched.
	require.NoError(t, err)

	adapter, err := env.k.GetAdapter(env.ctx, registered.AdapterId)
	require.NoError(t, err)
	require.Equal(t, end, adapter.MaturityStart)
	require.Equal(t, end+100, adapter.MaturityEnd)
}

func TestManagedLifecycle(t *testing.T) {
	// ARRANGE: a managed adapter absorbs the full deposit as buffer.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	adapterID := env.activateAdapter(t, vaultID, adapters.KindManaged, 0)
	alice := utils.TestAccount()
	env.mint(alice, 1_000)
	env.deposit(t, vaultID, alice, 1_000)

	adapterAddress := types.AdapterAddress(adapterID)
	require.Equal(t, math.NewInt(1_000), env.balance(adapterAddress))

	// ACT: the manager takes most of the buffer off-chain.
	_, err := env.adapterServer.ManagedWithdraw(env.ctx, &adapters.MsgManagedWithdraw{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Amount:    math.NewInt(800),
	})
	// ASSERT
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), env.balance(adapterAddress))
	require.Equal(t, math.NewInt(800), env.balance(env.yieldManager.Bytes))

	// ACT: the buffer cannot go negative.
	_, err = env.adapterServer.ManagedWithdraw(env.ctx, &adapters.MsgManagedWithdraw{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Amount:    math.NewInt(300),
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInsufficientBuffer)

	// ACT: the manager attests a higher balance and harvest realizes the gain
	// out of the buffer.
	_, err = env.adapterServer.ReportManagedBalance(env.ctx, &adapters.MsgReportManagedBalance{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Balance:   math.NewInt(1_100),
	})
	require.NoError(t, err)

	resp, err := env.vaultServer.Harvest(env.ctx, &vault.MsgHarvest{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), resp.Profit)
	require.Equal(t, math.NewInt(100), env.balance(types.PayoutAddress(vaultID)))
	require.Equal(t, math.NewInt(100), env.balance(adapterAddress))

	adapter, err := env.k.GetAdapter(env.ctx, adapterID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), adapter.ManagedBalance)
	require.Equal(t, math.NewInt(1_000), adapter.InvestedAmount)

	// ACT: the manager returns funds to the buffer.
	_, err = env.adapterServer.ManagedDeposit(env.ctx, &adapters.MsgManagedDeposit{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Amount:    math.NewInt(500),
	})
	// ASSERT
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), env.balance(adapterAddress))
	require.Equal(t, math.NewInt(300), env.balance(env.yieldManager.Bytes))
}

func TestManagedHarvestCappedByBuffer(t *testing.T) {
	// ARRANGE: the attested gain far exceeds the on-chain buffer.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	adapterID := env.activateAdapter(t, vaultID, adapters.KindManaged, 0)
	alice := utils.TestAccount()
	env.mint(alice, 1_000)
	env.deposit(t, vaultID, alice, 1_000)

	_, err := env.adapterServer.ManagedWithdraw(env.ctx, &adapters.MsgManagedWithdraw{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Amount:    math.NewInt(900),
	})
	require.NoError(t, err)

	_, err = env.adapterServer.ReportManagedBalance(env.ctx, &adapters.MsgReportManagedBalance{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Balance:   math.NewInt(1_500),
	})
	require.NoError(t, err)

	// ACT
	resp, err := env.vaultServer.Harvest(env.ctx, &vault.MsgHarvest{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT: only the buffered 100 is realizable.
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), resp.Profit)

	adapter, err := env.k.GetAdapter(env.ctx, adapterID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_400), adapter.ManagedBalance)
}

func TestManagedHarvestLoss(t *testing.T) {
	// ARRANGE: a 5% attested loss against a 10% exit threshold.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	adapterID := env.activateAdapter(t, vaultID, adapters.KindManaged, 0)
	alice := utils.TestAccount()
	env.mint(alice, 1_000)
	env.deposit(t, vaultID, alice, 1_000)

	_, err := env.adapterServer.ReportManagedBalance(env.ctx, &adapters.MsgReportManagedBalance{
		Signer:    env.yieldManager.Address,
		AdapterId: adapterID,
		Balance:   math.NewInt(950),
	})
	require.NoError(t, err)

	// ACT
	resp, err := env.vaultServer.Harvest(env.ctx, &vault.MsgHarvest{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT: principal is written down to the attested balance.
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), resp.Loss)

	adapter, err := env.k.GetAdapter(env.ctx, adapterID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(950), adapter.InvestedAmount)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.False(t, config.EmergencyMode)
}

func TestSetMaxSlippage(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)

	registered, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:         env.admin.Address,
		VaultId:        vaultID,
		Kind:           adapters.KindBalanceGrowth,
		MaxSlippageBps: 100,
	})
	require.NoError(t, err)

	// ACT: only the strategist may retune the guard.
	_, err = env.adapterServer.SetMaxSlippage(env.ctx, &adapters.MsgSetMaxSlippage{
		Signer:         env.yieldManager.Address,
		AdapterId:      registered.AdapterId,
		MaxSlippageBps: 200,
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: the tolerance is capped at the denominator.
	_, err = env.adapterServer.SetMaxSlippage(env.ctx, &adapters.MsgSetMaxSlippage{
		Signer:         env.strategist.Address,
		AdapterId:      registered.AdapterId,
		MaxSlippageBps: 10_001,
	})
	// ASSERT
	require.ErrorIs(t, err, adapters.ErrInvalidAdapter)

	// ACT
	_, err = env.adapterServer.SetMaxSlippage(env.ctx, &adapters.MsgSetMaxSlippage{
		Signer:         env.strategist.Address,
		AdapterId:      registered.AdapterId,
		MaxSlippageBps: 200,
	})
	// ASSERT
	require.NoError(t, err)

	adapter, err := env.k.GetAdapter(env.ctx, registered.AdapterId)
	require.NoError(t, err)
	require.Equal(t, uint64(200), adapter.MaxSlippageBps)

	// ACT: setting the same value again emits nothing.
	events := len(env.ctx.EventManager().Events())
	_, err = env.adapterServer.SetMaxSlippage(env.ctx, &adapters.MsgSetMaxSlippage{
		Signer:         env.strategist.Address,
		AdapterId:      registered.AdapterId,
		MaxSlippageBps: 200,
	})
	// ASSERT
	require.NoError(t, err)
	require.Len(t, env.ctx.EventManager().Events(), events)
}
