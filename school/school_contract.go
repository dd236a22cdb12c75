package school

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openacademy-dev/academy-contract/common"
)

type (
	// Student is a record of an enrolled student. Existence of the record
	// is the enrollment predicate: there is no separate membership flag.
	Student struct {
		Address    interop.Hash160
		Name       string
		Age        int
		Level      int
		EnrolledAt int
	}

	// Staff is a record of an employed staff member. Existence of the
	// record is the employment predicate. Suspended staff keep their
	// record but cannot be paid.
	Staff struct {
		Address   interop.Hash160
		Name      string
		Role      string
		Salary    int
		Suspended bool
	}
)

const (
	ownerKey         = "owner"
	adminKey         = "admin"
	tokenContractKey = "assetScriptHash"

	levelFeePrefix = 'f'
	studentPrefix  = 's'
	staffPrefix    = 'e'

	// feeUnit is one whole token in base units (the token has 18 decimals).
	feeUnit = 1_000_000_000_000_000_000
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
		owner interop.Hash160
		admin interop.Hash160
	})

	if len(args.token) != interop.Hash160Len {
		panic("incorrect length of token script hash")
	}
	if len(args.owner) != interop.Hash160Len || len(args.admin) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if args.admin.Equals(args.owner) {
		panic(common.ErrAdminIsOwner)
	}

	storage.Put(ctx, tokenContractKey, args.token)
	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, adminKey, args.admin)
	runtime.Log("school contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckOwnerWitness(contractOwner(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("school contract updated")
}

// SetLevelFees populates the enrollment fee schedule: one fee per study
// level 100, 200, 300 and 400, each equal to the level in whole tokens.
// It can be invoked only by the contract owner. Repeated invocation
// overwrites the schedule with the same values.
func SetLevelFees() {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(contractOwner(ctx))

	levels := []int{100, 200, 300, 400}
	for _, level := range levels {
		storage.Put(ctx, levelFeeKey(level), level*feeUnit)
	}

	runtime.Log("level fees set")
}

// LevelFee returns the enrollment fee configured for the level or 0 when
// the schedule has not been set.
func LevelFee(level int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, levelFeeKey(level))
}

// EnrollStudent creates an enrollment record for the student account and
// collects the level fee from it. It can be invoked only by the contract
// admin. The fee is pulled from the student via the registered token,
// authorized by the student's transaction witness; a rejected pull fails
// the whole call and leaves no record. The fee is not refunded on removal.
//
// Produces StudentEnrolled notification.
func EnrollStudent(name string, age int, level int, student interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(contractAdmin(ctx))

	if len(student) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if storage.Get(ctx, studentKey(student)) != nil {
		panic(common.ErrStudentExists)
	}

	fee := common.GetInt(ctx, levelFeeKey(level))
	if fee == 0 {
		panic(common.ErrFeeNotSet)
	}

	self := runtime.GetExecutingScriptHash()
	transferred := contract.Call(tokenContract(ctx), "transfer",
		contract.All, student, self, fee, nil).(bool)
	if !transferred {
		panic(common.ErrTransferFailed)
	}

	common.SetSerialized(ctx, studentKey(student), Student{
		Address:    student,
		Name:       name,
		Age:        age,
		Level:      level,
		EnrolledAt: runtime.GetTime(),
	})

	runtime.Notify("StudentEnrolled", student, name, level, fee)
}

// RemoveStudent deletes the enrollment record of the student account.
// It can be invoked only by the contract admin. The collected fee stays
// in contract custody; a removed student can enroll again.
//
// Produces StudentRemoved notification.
func RemoveStudent(student interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckAdminWitness(contractAdmin(ctx))

	if storage.Get(ctx, studentKey(student)) == nil {
		panic(common.ErrStudentNotFound)
	}

	storage.Delete(ctx, studentKey(student))
	runtime.Notify("StudentRemoved", student)
}

// ListStudents returns all current enrollment records.
func ListStudents() []Student {
	ctx := storage.GetReadOnlyContext()
	students := []Student{}

	it := storage.Find(ctx, []byte{studentPrefix}, storage.ValuesOnly)
	for iterator.Next(it) {
		data := iterator.Value(it).([]byte)
		students = append(students, std.Deserialize(data).(Student))
	}

	return students
}

// EmployStaff creates an employment record for the staff account with the
// given position and salary in token base units. A new record is not
// suspended. It can be invoked only by the contract owner. Employing an
// already employed account is rejected: salary changes must be explicit,
// not a side effect of a repeated call.
//
// Produces StaffEmployed notification.
func EmployStaff(staff interop.Hash160, name string, role string, salary int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(contractOwner(ctx))

	if len(staff) != interop.Hash160Len {
		panic("incorrect length of account script hash")
	}
	if salary <= 0 {
		panic("salary must be positive")
	}
	if storage.Get(ctx, staffKey(staff)) != nil {
		panic(common.ErrStaffExists)
	}

	common.SetSerialized(ctx, staffKey(staff), Staff{
		Address:   staff,
		Name:      name,
		Role:      role,
		Salary:    salary,
		Suspended: false,
	})

	runtime.Notify("StaffEmployed", staff, name, role, salary)
}

// SuspendStaff sets the suspension flag of the employed staff account.
// It can be invoked only by the contract owner.
//
// Produces StaffSuspended notification.
func SuspendStaff(staff interop.Hash160, suspended bool) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(contractOwner(ctx))

	record := getStaff(ctx, staff)
	record.Suspended = suspended
	common.SetSerialized(ctx, staffKey(staff), record)

	runtime.Notify("StaffSuspended", staff, suspended)
}

// PayStaff disburses the salary of the employed staff account from
// contract custody via the registered token. It can be invoked only by
// the contract owner. Suspended staff cannot be paid. The contract keeps
// no payment period ledger: every invocation disburses the full salary,
// so the payroll schedule belongs to the caller.
//
// Produces StaffPaid notification.
func PayStaff(staff interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(contractOwner(ctx))

	record := getStaff(ctx, staff)
	if record.Suspended {
		panic(common.ErrStaffSuspended)
	}

	self := runtime.GetExecutingScriptHash()
	transferred := contract.Call(tokenContract(ctx), "transfer",
		contract.All, self, staff, record.Salary, nil).(bool)
	if !transferred {
		panic(common.ErrTransferFailed)
	}

	runtime.Notify("StaffPaid", staff, record.Salary)
}

// ListStaff returns all current employment records, suspended included.
func ListStaff() []Staff {
	ctx := storage.GetReadOnlyContext()
	staff := []Staff{}

	it := storage.Find(ctx, []byte{staffPrefix}, storage.ValuesOnly)
	for iterator.Next(it) {
		data := iterator.Value(it).([]byte)
		staff = append(staff, std.Deserialize(data).(Staff))
	}

	return staff
}

// ContractTokenBalance returns the amount of the registered token stored
// in the contract account. Collected fees add to it, payroll subtracts.
func ContractTokenBalance() int {
	ctx := storage.GetReadOnlyContext()
	return contract.Call(tokenContract(ctx), "balanceOf",
		contract.ReadOnly, runtime.GetExecutingScriptHash()).(int)
}

// Owner returns the owner account of the contract.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return contractOwner(ctx)
}

// Admin returns the admin account of the contract.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return contractAdmin(ctx)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract
// and the registered token contract. Token payments replenish payroll
// custody or carry enrollment fee pulls. Any other asset is not accepted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	ctx := storage.GetReadOnlyContext()

	if caller.Equals(gas.Hash) || caller.Equals(tokenContract(ctx)) {
		return
	}

	common.AbortWithMessage("school contract accepts GAS and the registered token only")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getStaff(ctx storage.Context, staff interop.Hash160) Staff {
	data := storage.Get(ctx, staffKey(staff))
	if data == nil {
		panic(common.ErrStaffNotFound)
	}

	return std.Deserialize(data.([]byte)).(Staff)
}

func contractOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func contractAdmin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

func tokenContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, tokenContractKey).(interop.Hash160)
}

func levelFeeKey(level int) []byte {
	return append([]byte{levelFeePrefix}, convert.ToBytes(level)...)
}

func studentKey(student interop.Hash160) []byte {
	return append([]byte{studentPrefix}, student...)
}

func staffKey(staff interop.Hash160) []byte {
	return append([]byte{staffPrefix}, staff...)
}
