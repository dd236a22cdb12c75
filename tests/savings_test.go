package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openacademy-dev/academy-contract/common"
	"github.com/stretchr/testify/require"
)

func newSavingsInvoker(t *testing.T) (*neotest.ContractInvoker, util.Uint160) {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e)
	savingsHash := deploySavingsContract(t, e, tokenHash)

	return e.CommitteeInvoker(savingsHash), tokenHash
}

func TestSavingsDeploy(t *testing.T) {
	e := newExecutor(t)
	tokenHash := deployTokenContract(t, e)

	c := e.CommitteeInvoker(deploySavingsContract(t, e, tokenHash))
	c.Invoke(t, common.Version, "version")
}

func TestSavingsDepositToken(t *testing.T) {
	c, tokenHash := newSavingsInvoker(t)

	acc := c.NewAccount(t)
	transferToken(t, c.Executor, tokenHash, c.Committee, acc.ScriptHash(), tokenUnits(1))

	cAcc := c.WithSigners(acc)
	h := cAcc.Invoke(t, stackitem.Null{}, "depositToken", acc.ScriptHash(), 1000)
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, "TokenDeposit", aer.Events[len(aer.Events)-1].Name)

	c.Invoke(t, 1000, "tokenSavingsOf", acc.ScriptHash())
	c.Invoke(t, 1000, "contractTokenBalance")

	t.Run("zero amount", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrAmountNotPositive, "depositToken", acc.ScriptHash(), 0)
	})

	t.Run("exceeds token balance", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrTransferFailed, "depositToken", acc.ScriptHash(), tokenUnits(2))
	})

	t.Run("missing witness of the account", func(t *testing.T) {
		acc2 := c.NewAccount(t)
		cAcc2 := c.WithSigners(acc2)
		cAcc2.InvokeFail(t, common.ErrTransferFailed, "depositToken", acc.ScriptHash(), 100)
	})
}

func TestSavingsWithdrawToken(t *testing.T) {
	c, tokenHash := newSavingsInvoker(t)

	acc := c.NewAccount(t)
	transferToken(t, c.Executor, tokenHash, c.Committee, acc.ScriptHash(), tokenUnits(1))

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "depositToken", acc.ScriptHash(), 1000)

	h := cAcc.Invoke(t, stackitem.Null{}, "withdrawToken", acc.ScriptHash(), 500)
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, "TokenWithdrawal", aer.Events[len(aer.Events)-1].Name)

	c.Invoke(t, 500, "tokenSavingsOf", acc.ScriptHash())

	t.Run("exceeds savings", func(t *testing.T) {
		cAcc.InvokeFail(t, common.ErrNotEnoughSavings, "withdrawToken", acc.ScriptHash(), 501)
		c.Invoke(t, 500, "tokenSavingsOf", acc.ScriptHash())
	})

	t.Run("missing witness of the account", func(t *testing.T) {
		acc2 := c.NewAccount(t)
		cAcc2 := c.WithSigners(acc2)
		cAcc2.InvokeFail(t, common.ErrWitnessFailed, "withdrawToken", acc.ScriptHash(), 100)
	})

	// full round-trip leaves no residue, the ledger takes no fee
	cAcc.Invoke(t, stackitem.Null{}, "withdrawToken", acc.ScriptHash(), 500)
	c.Invoke(t, 0, "tokenSavingsOf", acc.ScriptHash())
	c.Invoke(t, 0, "contractTokenBalance")

	tkn := c.Executor.CommitteeInvoker(tokenHash)
	tkn.Invoke(t, tokenUnits(1), "balanceOf", acc.ScriptHash())
}

func TestSavingsWithdrawWithEmptyLedger(t *testing.T) {
	c, _ := newSavingsInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrNotEnoughSavings, "withdrawToken", acc.ScriptHash(), 1000)
}

func TestSavingsGASDeposit(t *testing.T) {
	c, _ := newSavingsInvoker(t)

	acc := c.NewAccount(t)
	const amount = 1_0000_0000 // 1.0 GAS

	transferGAS(t, c.Executor, acc, c.Hash, amount)

	c.Invoke(t, amount, "gasSavingsOf", acc.ScriptHash())
	c.Invoke(t, amount, "contractGasBalance")

	t.Run("savings are per user", func(t *testing.T) {
		acc2 := c.NewAccount(t)
		transferGAS(t, c.Executor, acc2, c.Hash, amount/2)

		c.Invoke(t, amount, "gasSavingsOf", acc.ScriptHash())
		c.Invoke(t, amount/2, "gasSavingsOf", acc2.ScriptHash())
		c.Invoke(t, amount+amount/2, "contractGasBalance")
	})
}

func TestSavingsTokenCustodyFunding(t *testing.T) {
	c, tokenHash := newSavingsInvoker(t)

	// direct token transfer replenishes custody without touching savings
	transferToken(t, c.Executor, tokenHash, c.Committee, c.Hash, tokenUnits(5))

	c.Invoke(t, tokenUnits(5), "contractTokenBalance")
	c.Invoke(t, 0, "tokenSavingsOf", c.CommitteeHash)
}
