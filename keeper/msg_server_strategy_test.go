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

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/GIVE-Labs/give-protocol-v1-sub001/types"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/adapters"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/router"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/types/strategy"
	"github.com/GIVE-Labs/give-protocol-v1-sub001/utils"
)

// registerAdapter registers an adapter without approving or activating it.
func (env *testEnv) registerAdapter(t *testing.T, vaultID uint64, kind adapters.Kind) uint64 {
	t.Helper()

	resp, err := env.adapterServer.RegisterAdapter(env.ctx, &adapters.MsgRegisterAdapter{
		Signer:  env.admin.Address,
		VaultId: vaultID,
		Kind:    kind,
	})
	require.NoError(t, err)

	return resp.AdapterId
}

func TestInitStrategy(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)

	// ACT: only the admin may initialize a strategy.
	_, err := env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.strategist.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_600,
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: the interval must sit inside the allowed window.
	_, err = env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.admin.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_599,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrInvalidInterval)

	// ACT: the exit threshold is capped.
	_, err = env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:                    env.admin.Address,
		VaultId:                   vaultID,
		RebalanceInterval:         3_600,
		EmergencyExitThresholdBps: 5_001,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrInvalidThreshold)

	// ACT
	_, err = env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:                    env.admin.Address,
		VaultId:                   vaultID,
		RebalanceInterval:         3_600,
		EmergencyExitThresholdBps: 1_000,
	})
	// ASSERT
	require.NoError(t, err)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, genesis.Unix(), config.LastRebalanceTime)

	// ACT: a vault only gets one strategy.
	_, err = env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.admin.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_600,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrConfigExists)
}

func TestApproveAndRevokeAdapter(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	otherVault := env.createVault(t, 0, 500)

	a := env.registerAdapter(t, vaultID, adapters.KindCompounding)
	b := env.registerAdapter(t, vaultID, adapters.KindCompounding)
	c := env.registerAdapter(t, vaultID, adapters.KindCompounding)
	foreign := env.registerAdapter(t, otherVault, adapters.KindCompounding)

	// ACT: approving before the strategy exists fails.
	_, err := env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: a,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrConfigNotFound)

	// ARRANGE
	_, err = env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.admin.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_600,
	})
	require.NoError(t, err)

	// ACT: an adapter belonging to another vault cannot be approved.
	_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: foreign,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrAdapterNotApproved)

	// ACT
	for _, id := range []uint64{a, b, c} {
		_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
			Signer:    env.strategist.Address,
			VaultId:   vaultID,
			AdapterId: id,
		})
		require.NoError(t, err)
	}

	// ACT: re-approving is a no-op.
	_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: a,
	})
	require.NoError(t, err)

	// ASSERT
	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, []uint64{a, b, c}, config.AdapterList)

	// ARRANGE: make b the active adapter before revoking it.
	_, err = env.strategyServer.SetActiveAdapter(env.ctx, &strategy.MsgSetActiveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: b,
	})
	require.NoError(t, err)

	// ACT
	_, err = env.strategyServer.RevokeAdapter(env.ctx, &strategy.MsgRevokeAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: b,
	})

	// ASSERT: the last entry swapped into b's slot, and the vault lost its
	// active adapter.
	require.NoError(t, err)

	config, err = env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, []uint64{a, c}, config.AdapterList)
	require.False(t, env.k.IsAdapterApproved(env.ctx, vaultID, b))

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v.ActiveAdapterId)

	// ACT: revoking an unapproved adapter fails.
	_, err = env.strategyServer.RevokeAdapter(env.ctx, &strategy.MsgRevokeAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: b,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrAdapterNotApproved)
}

func TestApproveAdapterListCap(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)

	_, err := env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.admin.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_600,
	})
	require.NoError(t, err)

	ids := make([]uint64, 0, strategy.MaxAdapters+1)
	for i := 0; i < strategy.MaxAdapters+1; i++ {
		ids = append(ids, env.registerAdapter(t, vaultID, adapters.KindCompounding))
	}

	for _, id := range ids[:strategy.MaxAdapters] {
		_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
			Signer:    env.strategist.Address,
			VaultId:   vaultID,
			AdapterId: id,
		})
		require.NoError(t, err)
	}

	// ACT
	_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: ids[strategy.MaxAdapters],
	})

	// ASSERT
	require.ErrorIs(t, err, strategy.ErrAdapterListFull)

	// ACT: re-approving an existing member still succeeds at the cap.
	_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: ids[0],
	})
	// ASSERT
	require.NoError(t, err)
}

func TestSetActiveAdapterCampaignGuard(t *testing.T) {
	// ARRANGE: the bound campaign's strategy designates adapter b.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	a := env.registerAdapter(t, vaultID, adapters.KindCompounding)
	b := env.registerAdapter(t, vaultID, adapters.KindCompounding)

	_, err := env.strategyServer.InitStrategy(env.ctx, &strategy.MsgInitStrategy{
		Signer:            env.admin.Address,
		VaultId:           vaultID,
		RebalanceInterval: 3_600,
	})
	require.NoError(t, err)

	for _, id := range []uint64{a, b} {
		_, err = env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
			Signer:    env.strategist.Address,
			VaultId:   vaultID,
			AdapterId: id,
		})
		require.NoError(t, err)
	}

	recipient := utils.TestAccount()
	env.m.Campaigns.Campaigns[7] = types.Campaign{Id: 7, PayoutRecipient: recipient.Address, StrategyId: 3}
	env.m.Strategies.Strategies[3] = types.Strategy{Id: 3, AdapterId: b}

	_, err = env.routerServer.RegisterCampaign(env.ctx, &router.MsgRegisterCampaign{
		Signer:     env.admin.Address,
		VaultId:    vaultID,
		CampaignId: 7,
	})
	require.NoError(t, err)

	// ACT
	_, err = env.strategyServer.SetActiveAdapter(env.ctx, &strategy.MsgSetActiveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: a,
	})

	// ASSERT
	require.ErrorIs(t, err, strategy.ErrStrategyMismatch)

	// ACT
	_, err = env.strategyServer.SetActiveAdapter(env.ctx, &strategy.MsgSetActiveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: b,
	})

	// ASSERT
	require.NoError(t, err)

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, b, v.ActiveAdapterId)
}

func TestCheckAndRebalance(t *testing.T) {
	// ARRANGE: adapter a runs 100, adapter b idles with 300.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	a := env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)

	b := env.registerAdapter(t, vaultID, adapters.KindCompounding)
	_, err := env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: b,
	})
	require.NoError(t, err)

	_, err = env.strategyServer.SetAutoRebalance(env.ctx, &strategy.MsgSetAutoRebalance{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
		Enabled: true,
	})
	require.NoError(t, err)

	alice := utils.TestAccount()
	env.mint(alice, 100)
	env.deposit(t, vaultID, alice, 100)
	env.m.Bank.Mint(types.AdapterAddress(b), sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(300))))

	// ACT: the interval has not elapsed yet.
	resp, err := env.strategyServer.CheckAndRebalance(env.ctx, &strategy.MsgCheckAndRebalance{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT: nothing moved, and the clock did not reset.
	require.NoError(t, err)
	require.False(t, resp.Rebalanced)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, genesis.Unix(), config.LastRebalanceTime)

	// ARRANGE: advance past the interval.
	now := genesis.Add(3_601 * time.Second)
	env.ctx = env.ctx.WithHeaderInfo(header.Info{Time: now})

	// ACT
	resp, err = env.strategyServer.CheckAndRebalance(env.ctx, &strategy.MsgCheckAndRebalance{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT: the vault switched to b, moved its funds over and reset the
	// clock.
	require.NoError(t, err)
	require.True(t, resp.Rebalanced)
	require.Equal(t, b, resp.AdapterId)

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, b, v.ActiveAdapterId)
	require.Equal(t, math.ZeroInt(), env.balance(types.AdapterAddress(a)))
	require.Equal(t, math.NewInt(400), env.balance(types.AdapterAddress(b)))

	config, err = env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, now.Unix(), config.LastRebalanceTime)
}

func TestCheckAndRebalanceEmergencyLockout(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)

	_, err := env.strategyServer.SetAutoRebalance(env.ctx, &strategy.MsgSetAutoRebalance{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
		Enabled: true,
	})
	require.NoError(t, err)

	_, err = env.strategyServer.EnterEmergencyMode(env.ctx, &strategy.MsgEnterEmergencyMode{
		Signer:  env.guardian.Address,
		VaultId: vaultID,
	})
	require.NoError(t, err)

	env.ctx = env.ctx.WithHeaderInfo(header.Info{Time: genesis.Add(48 * time.Hour)})

	// ACT
	resp, err := env.strategyServer.CheckAndRebalance(env.ctx, &strategy.MsgCheckAndRebalance{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
	})

	// ASSERT: emergency mode blocks rebalancing without consuming the window.
	require.NoError(t, err)
	require.False(t, resp.Rebalanced)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, genesis.Unix(), config.LastRebalanceTime)
}

func TestCheckAndRebalanceSkipsFailingProbe(t *testing.T) {
	// ARRANGE: the richest adapter is unreachable, so the runner-up wins.
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 5_000)
	a := env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)

	broken := env.registerAdapter(t, vaultID, adapters.KindBalanceGrowth)
	_, err := env.strategyServer.ApproveAdapter(env.ctx, &strategy.MsgApproveAdapter{
		Signer:    env.strategist.Address,
		VaultId:   vaultID,
		AdapterId: broken,
	})
	require.NoError(t, err)

	_, err = env.strategyServer.SetAutoRebalance(env.ctx, &strategy.MsgSetAutoRebalance{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
		Enabled: true,
	})
	require.NoError(t, err)

	alice := utils.TestAccount()
	env.mint(alice, 100)
	env.deposit(t, vaultID, alice, 100)

	env.m.Source.Balances[broken] = math.NewInt(1_000_000)
	env.m.Source.FailBalanceOf[broken] = true

	env.ctx = env.ctx.WithHeaderInfo(header.Info{Time: genesis.Add(2 * time.Hour)})

	// ACT
	resp, err := env.strategyServer.CheckAndRebalance(env.ctx, &strategy.MsgCheckAndRebalance{
		Signer:  alice.Address,
		VaultId: vaultID,
	})

	// ASSERT: the vault stays on a.
	require.NoError(t, err)
	require.False(t, resp.Rebalanced)
	require.Equal(t, a, resp.AdapterId)

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, a, v.ActiveAdapterId)
}

func TestEmergencyModeAsymmetry(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)

	// ACT: entering takes the emergency role.
	_, err := env.strategyServer.EnterEmergencyMode(env.ctx, &strategy.MsgEnterEmergencyMode{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = env.strategyServer.EnterEmergencyMode(env.ctx, &strategy.MsgEnterEmergencyMode{
		Signer:  env.guardian.Address,
		VaultId: vaultID,
	})
	require.NoError(t, err)

	// ASSERT
	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, config.EmergencyMode)

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, v.InvestPaused)

	// ACT: exiting takes admin, not the emergency role.
	_, err = env.strategyServer.ExitEmergencyMode(env.ctx, &strategy.MsgExitEmergencyMode{
		Signer:  env.guardian.Address,
		VaultId: vaultID,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = env.strategyServer.ExitEmergencyMode(env.ctx, &strategy.MsgExitEmergencyMode{
		Signer:  env.admin.Address,
		VaultId: vaultID,
	})
	require.NoError(t, err)

	// ASSERT: the mode clears but investing stays paused until re-enabled.
	config, err = env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.False(t, config.EmergencyMode)

	v, err = env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, v.InvestPaused)
}

func TestEmergencyExit(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	adapterID := env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)
	alice := utils.TestAccount()
	env.mint(alice, 1_000)
	env.deposit(t, vaultID, alice, 1_000)
	require.Equal(t, math.NewInt(1_000), env.balance(types.AdapterAddress(adapterID)))

	// ACT
	resp, err := env.strategyServer.EmergencyExit(env.ctx, &strategy.MsgEmergencyExit{
		Signer:  env.guardian.Address,
		VaultId: vaultID,
	})

	// ASSERT: everything came home and the vault is locked down.
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), resp.Returned)
	require.Equal(t, math.NewInt(1_000), env.balance(types.VaultAddress(vaultID)))

	v, err := env.k.GetVault(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, v.EmergencyShutdown)
	require.True(t, v.InvestPaused)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.True(t, config.EmergencyMode)
}

func TestStrategySetters(t *testing.T) {
	// ARRANGE
	env := setupTest(t)
	vaultID := env.createVault(t, 0, 500)
	env.activateAdapter(t, vaultID, adapters.KindCompounding, 0)

	// ACT: interval bounds hold for updates too.
	_, err := env.strategyServer.SetRebalanceInterval(env.ctx, &strategy.MsgSetRebalanceInterval{
		Signer:            env.strategist.Address,
		VaultId:           vaultID,
		RebalanceInterval: strategy.MaxRebalanceInterval + 1,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrInvalidInterval)

	// ACT
	_, err = env.strategyServer.SetRebalanceInterval(env.ctx, &strategy.MsgSetRebalanceInterval{
		Signer:            env.strategist.Address,
		VaultId:           vaultID,
		RebalanceInterval: 7_200,
	})
	// ASSERT
	require.NoError(t, err)

	// ACT: the threshold cap holds for updates too.
	_, err = env.strategyServer.SetEmergencyExitThreshold(env.ctx, &strategy.MsgSetEmergencyExitThreshold{
		Signer:       env.strategist.Address,
		VaultId:      vaultID,
		ThresholdBps: 5_001,
	})
	// ASSERT
	require.ErrorIs(t, err, strategy.ErrInvalidThreshold)

	// ACT: repeating the current setting emits nothing.
	events := len(env.ctx.EventManager().Events())
	_, err = env.strategyServer.SetAutoRebalance(env.ctx, &strategy.MsgSetAutoRebalance{
		Signer:  env.strategist.Address,
		VaultId: vaultID,
		Enabled: false,
	})
	// ASSERT
	require.NoError(t, err)
	require.Len(t, env.ctx.EventManager().Events(), events)

	config, err := env.k.GetStrategyConfig(env.ctx, vaultID)
	require.NoError(t, err)
	require.Equal(t, int64(7_200), config.RebalanceInterval)
	require.Equal(t, uint64(1_000), config.EmergencyExitThresholdBps)
}
