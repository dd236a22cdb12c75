package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrNotOwner message on fail.
func CheckOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrNotOwner)
}

// CheckAdminWitness checks witness of the contract admin.
// It panics with ErrNotAdmin message on fail.
func CheckAdminWitness(admin []byte) {
	checkWitnessWithPanic(admin, ErrNotAdmin)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
