package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	savingsPath = "../savings"
	schoolPath  = "../school"
	tokenPath   = "../internal/testcontracts/token"

	// whole tokens minted to the committee by the token fixture
	tokenSupply = 1_000_000
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// tokenUnits converts whole tokens to base units of the 18-decimal token
// fixture.
func tokenUnits(n int64) *big.Int {
	mul := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return new(big.Int).Mul(big.NewInt(n), mul)
}

// deployTokenContract deploys the NEP-17 fixture and mints the whole
// supply to the committee.
func deployTokenContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, int64(tokenSupply)})
	return c.Hash
}

func deploySavingsContract(t *testing.T, e *neotest.Executor, tokenHash util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, savingsPath, path.Join(savingsPath, "config.yml"))
	e.DeployContract(t, c, []any{tokenHash})
	return c.Hash
}

func deploySchoolContract(t *testing.T, e *neotest.Executor, tokenHash util.Uint160, owner, admin util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, schoolPath, path.Join(schoolPath, "config.yml"))
	e.DeployContract(t, c, []any{tokenHash, owner, admin})
	return c.Hash
}

// transferToken moves token base units between accounts on behalf of from.
func transferToken(t *testing.T, e *neotest.Executor, tokenHash util.Uint160, from neotest.Signer, to util.Uint160, amount *big.Int) {
	c := e.NewInvoker(tokenHash, from)
	c.Invoke(t, true, "transfer", from.ScriptHash(), to, amount, nil)
}

// transferGAS moves native GAS between accounts on behalf of from.
func transferGAS(t *testing.T, e *neotest.Executor, from neotest.Signer, to util.Uint160, amount int64) {
	c := e.NewInvoker(e.NativeHash(t, nativenames.Gas), from)
	c.Invoke(t, true, "transfer", from.ScriptHash(), to, amount, nil)
}
