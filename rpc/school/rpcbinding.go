// Package school contains RPC wrappers for Academy School contract.
package school

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// SchoolStudent is a contract-specific school.Student type used by its methods.
type SchoolStudent struct {
	Address util.Uint160
	Name string
	Age *big.Int
	Level *big.Int
	EnrolledAt *big.Int
}

// SchoolStaff is a contract-specific school.Staff type used by its methods.
type SchoolStaff struct {
	Address util.Uint160
	Name string
	Role string
	Salary *big.Int
	Suspended bool
}

// StudentEnrolledEvent represents "StudentEnrolled" event emitted by the contract.
type StudentEnrolledEvent struct {
	Student util.Uint160
	Name string
	Level *big.Int
	Fee *big.Int
}

// StudentRemovedEvent represents "StudentRemoved" event emitted by the contract.
type StudentRemovedEvent struct {
	Student util.Uint160
}

// StaffEmployedEvent represents "StaffEmployed" event emitted by the contract.
type StaffEmployedEvent struct {
	Staff util.Uint160
	Name string
	Role string
	Salary *big.Int
}

// StaffSuspendedEvent represents "StaffSuspended" event emitted by the contract.
type StaffSuspendedEvent struct {
	Staff util.Uint160
	Suspended bool
}

// StaffPaidEvent represents "StaffPaid" event emitted by the contract.
type StaffPaidEvent struct {
	Staff util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// ContractTokenBalance invokes `contractTokenBalance` method of contract.
func (c *ContractReader) ContractTokenBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "contractTokenBalance"))
}

// LevelFee invokes `levelFee` method of contract.
func (c *ContractReader) LevelFee(level *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "levelFee", level))
}

// ListStaff invokes `listStaff` method of contract.
func (c *ContractReader) ListStaff() ([]*SchoolStaff, error) {
	return func (item stackitem.Item, err error) ([]*SchoolStaff, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SchoolStaff, len(arr))
		for i := range res {
			res[i], err = itemToSchoolStaff(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "listStaff")))
}

// ListStudents invokes `listStudents` method of contract.
func (c *ContractReader) ListStudents() ([]*SchoolStudent, error) {
	return func (item stackitem.Item, err error) ([]*SchoolStudent, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SchoolStudent, len(arr))
		for i := range res {
			res[i], err = itemToSchoolStudent(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "listStudents")))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// EmployStaff creates a transaction invoking `employStaff` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EmployStaff(staff util.Uint160, name string, role string, salary *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "employStaff", staff, name, role, salary)
}

// EmployStaffTransaction creates a transaction invoking `employStaff` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EmployStaffTransaction(staff util.Uint160, name string, role string, salary *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "employStaff", staff, name, role, salary)
}

// EmployStaffUnsigned creates a transaction invoking `employStaff` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EmployStaffUnsigned(staff util.Uint160, name string, role string, salary *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "employStaff", nil, staff, name, role, salary)
}

// EnrollStudent creates a transaction invoking `enrollStudent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EnrollStudent(name string, age *big.Int, level *big.Int, student util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "enrollStudent", name, age, level, student)
}

// EnrollStudentTransaction creates a transaction invoking `enrollStudent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EnrollStudentTransaction(name string, age *big.Int, level *big.Int, student util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "enrollStudent", name, age, level, student)
}

// EnrollStudentUnsigned creates a transaction invoking `enrollStudent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EnrollStudentUnsigned(name string, age *big.Int, level *big.Int, student util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "enrollStudent", nil, name, age, level, student)
}

// OnNEP17Payment creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) OnNEP17Payment(from util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentTransaction creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OnNEP17PaymentTransaction(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "onNEP17Payment", from, amount, data)
}

// OnNEP17PaymentUnsigned creates a transaction invoking `onNEP17Payment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OnNEP17PaymentUnsigned(from util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "onNEP17Payment", nil, from, amount, data)
}

// PayStaff creates a transaction invoking `payStaff` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PayStaff(staff util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payStaff", staff)
}

// PayStaffTransaction creates a transaction invoking `payStaff` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayStaffTransaction(staff util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payStaff", staff)
}

// PayStaffUnsigned creates a transaction invoking `payStaff` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayStaffUnsigned(staff util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payStaff", nil, staff)
}

// RemoveStudent creates a transaction invoking `removeStudent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveStudent(student util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeStudent", student)
}

// RemoveStudentTransaction creates a transaction invoking `removeStudent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveStudentTransaction(student util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeStudent", student)
}

// RemoveStudentUnsigned creates a transaction invoking `removeStudent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveStudentUnsigned(student util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeStudent", nil, student)
}

// SetLevelFees creates a transaction invoking `setLevelFees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetLevelFees() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setLevelFees")
}

// SetLevelFeesTransaction creates a transaction invoking `setLevelFees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetLevelFeesTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setLevelFees")
}

// SetLevelFeesUnsigned creates a transaction invoking `setLevelFees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetLevelFeesUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setLevelFees", nil)
}

// SuspendStaff creates a transaction invoking `suspendStaff` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SuspendStaff(staff util.Uint160, suspended bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "suspendStaff", staff, suspended)
}

// SuspendStaffTransaction creates a transaction invoking `suspendStaff` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SuspendStaffTransaction(staff util.Uint160, suspended bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "suspendStaff", staff, suspended)
}

// SuspendStaffUnsigned creates a transaction invoking `suspendStaff` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SuspendStaffUnsigned(staff util.Uint160, suspended bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "suspendStaff", nil, staff, suspended)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToSchoolStaff converts stack item into *SchoolStaff.
func itemToSchoolStaff(item stackitem.Item, err error) (*SchoolStaff, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SchoolStaff)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SchoolStaff from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SchoolStaff) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Address, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	res.Salary, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Salary: %w", err)
	}

	index++
	res.Suspended, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Suspended: %w", err)
	}

	return nil
}

// itemToSchoolStudent converts stack item into *SchoolStudent.
func itemToSchoolStudent(item stackitem.Item, err error) (*SchoolStudent, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SchoolStudent)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SchoolStudent from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SchoolStudent) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Address, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Age, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Age: %w", err)
	}

	index++
	res.Level, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Level: %w", err)
	}

	index++
	res.EnrolledAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EnrolledAt: %w", err)
	}

	return nil
}

// StudentEnrolledEventsFromApplicationLog retrieves a set of all emitted events
// with "StudentEnrolled" name from the provided [result.ApplicationLog].
func StudentEnrolledEventsFromApplicationLog(log *result.ApplicationLog) ([]*StudentEnrolledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StudentEnrolledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StudentEnrolled" {
				continue
			}
			event := new(StudentEnrolledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StudentEnrolledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StudentEnrolledEvent or
// returns an error if it's not possible to do to so.
func (e *StudentEnrolledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Student, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Student: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Level, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Level: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	return nil
}

// StudentRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "StudentRemoved" name from the provided [result.ApplicationLog].
func StudentRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StudentRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StudentRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StudentRemoved" {
				continue
			}
			event := new(StudentRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StudentRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StudentRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *StudentRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Student, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Student: %w", err)
	}

	return nil
}

// StaffEmployedEventsFromApplicationLog retrieves a set of all emitted events
// with "StaffEmployed" name from the provided [result.ApplicationLog].
func StaffEmployedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StaffEmployedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StaffEmployedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StaffEmployed" {
				continue
			}
			event := new(StaffEmployedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StaffEmployedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StaffEmployedEvent or
// returns an error if it's not possible to do to so.
func (e *StaffEmployedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Staff, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Staff: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Role, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Role: %w", err)
	}

	index++
	e.Salary, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Salary: %w", err)
	}

	return nil
}

// StaffSuspendedEventsFromApplicationLog retrieves a set of all emitted events
// with "StaffSuspended" name from the provided [result.ApplicationLog].
func StaffSuspendedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StaffSuspendedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StaffSuspendedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StaffSuspended" {
				continue
			}
			event := new(StaffSuspendedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StaffSuspendedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StaffSuspendedEvent or
// returns an error if it's not possible to do to so.
func (e *StaffSuspendedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Staff, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Staff: %w", err)
	}

	index++
	e.Suspended, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Suspended: %w", err)
	}

	return nil
}

// StaffPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "StaffPaid" name from the provided [result.ApplicationLog].
func StaffPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*StaffPaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StaffPaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StaffPaid" {
				continue
			}
			event := new(StaffPaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StaffPaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StaffPaidEvent or
// returns an error if it's not possible to do to so.
func (e *StaffPaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Staff, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Staff: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
