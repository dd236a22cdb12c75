package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Fungible NEP-17 token used by the test suites as the external asset
// consumed by the savings and school contracts. The whole supply is
// minted to the deploy-time owner.

const (
	tokenSymbol   = "ACAD"
	tokenDecimals = 18

	// one whole token in base units
	multiplier = 1_000_000_000_000_000_000

	circulationKey = "circulation"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		owner  interop.Hash160
		supply int
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}

	ctx := storage.GetContext()
	amount := args.supply * multiplier

	storage.Put(ctx, args.owner, amount)
	storage.Put(ctx, circulationKey, amount)

	runtime.Notify("Transfer", interop.Hash160(nil), args.owner, amount)
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return tokenSymbol
}

// Decimals is a NEP-17 standard method that returns the token precision.
func Decimals() int {
	return tokenDecimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of
// minted token base units.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, circulationKey)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers token base units
// between accounts. It can be invoked by the account owner (witness) or
// by a contract transferring its own assets.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account script hash")
	}
	if amount < 0 {
		panic("negative amount")
	}

	if !isUsableAddress(from) {
		return false
	}

	ctx := storage.GetContext()

	fromBalance := getInt(ctx, from)
	if fromBalance < amount {
		return false
	}

	if fromBalance == amount {
		storage.Delete(ctx, from)
	} else {
		storage.Put(ctx, from, fromBalance-amount)
	}
	storage.Put(ctx, to, getInt(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

// isUsableAddress checks if the sender is either a signer of the
// transaction or the calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	callingScriptHash := runtime.GetCallingScriptHash()
	return callingScriptHash.Equals(addr)
}

func getInt(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}
