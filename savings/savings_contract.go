package savings

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openacademy-dev/academy-contract/common"
)

const (
	tokenContractKey = "assetScriptHash"

	tokenSavingsPrefix = 't'
	gasSavingsPrefix   = 'g'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		token interop.Hash160
	})

	if len(args.token) != interop.Hash160Len {
		panic("incorrect length of token script hash")
	}

	storage.Put(ctx, tokenContractKey, args.token)
	runtime.Log("savings contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("savings contract updated")
}

// DepositToken pulls amount of the registered token from the account into
// contract custody and credits the token savings of the account. The pull
// is authorized by the witness of the account carried by the transaction;
// missing witness or insufficient token balance makes the token contract
// reject the transfer and the whole call fails with no savings mutation.
//
// Produces TokenDeposit notification.
func DepositToken(account interop.Hash160, amount int) {
	if amount <= 0 {
		panic(common.ErrAmountNotPositive)
	}

	ctx := storage.GetContext()
	self := runtime.GetExecutingScriptHash()

	transferred := contract.Call(tokenContract(ctx), "transfer",
		contract.All, account, self, amount, nil).(bool)
	if !transferred {
		panic(common.ErrTransferFailed)
	}

	key := tokenSavingsKey(account)
	storage.Put(ctx, key, common.GetInt(ctx, key)+amount)
	runtime.Notify("TokenDeposit", account, amount)
}

// WithdrawToken transfers amount of the registered token from contract
// custody back to the account and debits its token savings. It can be
// invoked only by the account owner. Savings are debited before the token
// contract is called: a reentrant withdrawal sees the already reduced
// balance.
//
// Produces TokenWithdrawal notification.
func WithdrawToken(account interop.Hash160, amount int) {
	if amount <= 0 {
		panic(common.ErrAmountNotPositive)
	}

	common.CheckWitness(account)

	ctx := storage.GetContext()
	key := tokenSavingsKey(account)

	balance := common.GetInt(ctx, key)
	if balance < amount {
		panic(common.ErrNotEnoughSavings)
	}

	if balance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance-amount)
	}

	self := runtime.GetExecutingScriptHash()
	transferred := contract.Call(tokenContract(ctx), "transfer",
		contract.All, self, account, amount, nil).(bool)
	if !transferred {
		panic(common.ErrTransferFailed)
	}

	runtime.Notify("TokenWithdrawal", account, amount)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract
// and the registered token contract. GAS attached by a user is credited
// to the GAS savings of the sender. Token payments are accepted silently:
// they either replenish custody or accompany a DepositToken pull which
// does its own bookkeeping. Any other asset is not accepted.
//
// Produces GASDeposit notification for user GAS deposits.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	ctx := storage.GetContext()

	if caller.Equals(gas.Hash) {
		if amount <= 0 {
			common.AbortWithMessage(common.ErrAmountNotPositive)
		}
		if len(from) != interop.Hash160Len {
			return // GAS minted to the contract, not a user deposit
		}

		key := gasSavingsKey(from)
		storage.Put(ctx, key, common.GetInt(ctx, key)+amount)
		runtime.Notify("GASDeposit", from, amount)
		return
	}

	if caller.Equals(tokenContract(ctx)) {
		return
	}

	common.AbortWithMessage("savings contract accepts GAS and the registered token only")
}

// TokenSavingsOf returns the token savings recorded for the account.
func TokenSavingsOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, tokenSavingsKey(account))
}

// GasSavingsOf returns the GAS savings recorded for the account.
func GasSavingsOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, gasSavingsKey(account))
}

// ContractGasBalance returns the amount of GAS stored in the contract
// account. It is a contract-wide custody figure, not a per-user one.
func ContractGasBalance() int {
	return gas.BalanceOf(runtime.GetExecutingScriptHash())
}

// ContractTokenBalance returns the amount of the registered token stored
// in the contract account.
func ContractTokenBalance() int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(tokenContract(ctx), "balanceOf",
		contract.ReadOnly, runtime.GetExecutingScriptHash()).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func tokenContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, tokenContractKey).(interop.Hash160)
}

func tokenSavingsKey(account interop.Hash160) []byte {
	return append([]byte{tokenSavingsPrefix}, account...)
}

func gasSavingsKey(account interop.Hash160) []byte {
	return append([]byte{gasSavingsPrefix}, account...)
}
