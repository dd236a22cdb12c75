package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openacademy-dev/academy-contract/common"
	"github.com/stretchr/testify/require"
)

type schoolEnv struct {
	e          *neotest.Executor
	c          *neotest.ContractInvoker // owner invoker (committee)
	cAdmin     *neotest.ContractInvoker
	admin      neotest.Signer
	tokenHash  util.Uint160
	schoolHash util.Uint160
}

func newSchoolEnv(t *testing.T) *schoolEnv {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e)
	admin := e.NewAccount(t)
	schoolHash := deploySchoolContract(t, e, tokenHash, e.CommitteeHash, admin.ScriptHash())

	return &schoolEnv{
		e:          e,
		c:          e.CommitteeInvoker(schoolHash),
		cAdmin:     e.NewInvoker(schoolHash, admin),
		admin:      admin,
		tokenHash:  tokenHash,
		schoolHash: schoolHash,
	}
}

// enrollStudent enrolls the student at the level on behalf of the admin,
// funding the student account with exactly the level fee first.
func (env *schoolEnv) enrollStudent(t *testing.T, student neotest.Signer, name string, age, level int64) {
	transferToken(t, env.e, env.tokenHash, env.e.Committee, student.ScriptHash(), tokenUnits(level))

	c := env.e.NewInvoker(env.schoolHash, env.admin, student)
	c.Invoke(t, stackitem.Null{}, "enrollStudent", name, age, level, student.ScriptHash())
}

func (env *schoolEnv) listStudents(t *testing.T) []stackitem.Item {
	s, err := env.c.TestInvoke(t, "listStudents")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().Array()
}

func (env *schoolEnv) listStaff(t *testing.T) []stackitem.Item {
	s, err := env.c.TestInvoke(t, "listStaff")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().Array()
}

func TestSchoolDeploy(t *testing.T) {
	env := newSchoolEnv(t)

	env.c.Invoke(t, env.e.CommitteeHash.BytesBE(), "owner")
	env.c.Invoke(t, env.admin.ScriptHash().BytesBE(), "admin")
	env.c.Invoke(t, common.Version, "version")

	t.Run("admin equals owner", func(t *testing.T) {
		e := newExecutor(t)
		tokenHash := deployTokenContract(t, e)

		c := neotest.CompileFile(t, e.CommitteeHash, schoolPath, path.Join(schoolPath, "config.yml"))
		e.DeployContractCheckFAULT(t, c, []any{tokenHash, e.CommitteeHash, e.CommitteeHash},
			common.ErrAdminIsOwner)
	})
}

func TestSchoolSetLevelFees(t *testing.T) {
	env := newSchoolEnv(t)

	env.c.Invoke(t, stackitem.Null{}, "setLevelFees")
	for _, level := range []int64{100, 200, 300, 400} {
		env.c.Invoke(t, tokenUnits(level), "levelFee", level)
	}

	t.Run("non-owner", func(t *testing.T) {
		env.cAdmin.InvokeFail(t, common.ErrNotOwner, "setLevelFees")
	})

	t.Run("unknown level reads zero", func(t *testing.T) {
		env.c.Invoke(t, 0, "levelFee", 150)
	})

	// repeated invocation overwrites with the same schedule
	env.c.Invoke(t, stackitem.Null{}, "setLevelFees")
	env.c.Invoke(t, tokenUnits(100), "levelFee", 100)
}

func TestSchoolEnrollStudent(t *testing.T) {
	env := newSchoolEnv(t)
	env.c.Invoke(t, stackitem.Null{}, "setLevelFees")

	student := env.e.NewAccount(t)
	fee := tokenUnits(100)
	transferToken(t, env.e, env.tokenHash, env.e.Committee, student.ScriptHash(), fee)

	cEnroll := env.e.NewInvoker(env.schoolHash, env.admin, student)
	h := cEnroll.Invoke(t, stackitem.Null{}, "enrollStudent", "Alice", 18, 100, student.ScriptHash())
	aer := cEnroll.CheckHalt(t, h)
	require.Equal(t, "StudentEnrolled", aer.Events[len(aer.Events)-1].Name)

	// the fee landed in contract custody
	env.c.Invoke(t, fee, "contractTokenBalance")

	students := env.listStudents(t)
	require.Equal(t, 1, len(students))

	fields, ok := students[0].Value().([]stackitem.Item)
	require.True(t, ok)

	addr, err := fields[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, student.ScriptHash().BytesBE(), addr)

	name, err := fields[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, "Alice", string(name))

	t.Run("already registered", func(t *testing.T) {
		transferToken(t, env.e, env.tokenHash, env.e.Committee, student.ScriptHash(), fee)

		cEnroll.InvokeFail(t, common.ErrStudentExists, "enrollStudent", "Bob", 20, 100, student.ScriptHash())
		require.Equal(t, 1, len(env.listStudents(t)))
	})

	t.Run("non-admin", func(t *testing.T) {
		outsider := env.e.NewAccount(t)
		c := env.e.NewInvoker(env.schoolHash, outsider)
		c.InvokeFail(t, common.ErrNotAdmin, "enrollStudent", "A", 18, 100, outsider.ScriptHash())
	})

	t.Run("unpaid fee", func(t *testing.T) {
		poor := env.e.NewAccount(t) // has GAS, no tokens
		c := env.e.NewInvoker(env.schoolHash, env.admin, poor)
		c.InvokeFail(t, common.ErrTransferFailed, "enrollStudent", "P", 18, 200, poor.ScriptHash())
		require.Equal(t, 1, len(env.listStudents(t)))
	})

	t.Run("unknown level", func(t *testing.T) {
		other := env.e.NewAccount(t)
		c := env.e.NewInvoker(env.schoolHash, env.admin, other)
		c.InvokeFail(t, common.ErrFeeNotSet, "enrollStudent", "O", 18, 150, other.ScriptHash())
	})
}

func TestSchoolEnrollWithoutFeeSchedule(t *testing.T) {
	env := newSchoolEnv(t)

	student := env.e.NewAccount(t)
	c := env.e.NewInvoker(env.schoolHash, env.admin, student)
	c.InvokeFail(t, common.ErrFeeNotSet, "enrollStudent", "A", 18, 100, student.ScriptHash())
}

func TestSchoolRemoveStudent(t *testing.T) {
	env := newSchoolEnv(t)
	env.c.Invoke(t, stackitem.Null{}, "setLevelFees")

	student := env.e.NewAccount(t)
	env.enrollStudent(t, student, "Alice", 18, 100)

	h := env.cAdmin.Invoke(t, stackitem.Null{}, "removeStudent", student.ScriptHash())
	aer := env.cAdmin.CheckHalt(t, h)
	require.Equal(t, "StudentRemoved", aer.Events[len(aer.Events)-1].Name)

	require.Equal(t, 0, len(env.listStudents(t)))

	// no refund: the collected fee stays in custody
	env.c.Invoke(t, tokenUnits(100), "contractTokenBalance")

	t.Run("not found", func(t *testing.T) {
		env.cAdmin.InvokeFail(t, common.ErrStudentNotFound, "removeStudent", student.ScriptHash())
	})

	t.Run("non-admin", func(t *testing.T) {
		env.c.InvokeFail(t, common.ErrNotAdmin, "removeStudent", student.ScriptHash())
	})

	// removal re-opens enrollment
	env.enrollStudent(t, student, "Alice", 19, 200)
	require.Equal(t, 1, len(env.listStudents(t)))
}

func TestSchoolEmployStaff(t *testing.T) {
	env := newSchoolEnv(t)

	staff := env.e.NewAccount(t)
	h := env.c.Invoke(t, stackitem.Null{}, "employStaff", staff.ScriptHash(), "John", "Teacher", 1000)
	aer := env.c.CheckHalt(t, h)
	require.Equal(t, "StaffEmployed", aer.Events[len(aer.Events)-1].Name)

	records := env.listStaff(t)
	require.Equal(t, 1, len(records))

	fields, ok := records[0].Value().([]stackitem.Item)
	require.True(t, ok)

	addr, err := fields[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, staff.ScriptHash().BytesBE(), addr)

	suspended, err := fields[4].TryBool()
	require.NoError(t, err)
	require.False(t, suspended)

	t.Run("already employed", func(t *testing.T) {
		env.c.InvokeFail(t, common.ErrStaffExists, "employStaff", staff.ScriptHash(), "John", "Dean", 2000)
		require.Equal(t, 1, len(env.listStaff(t)))
	})

	t.Run("non-owner", func(t *testing.T) {
		env.cAdmin.InvokeFail(t, common.ErrNotOwner, "employStaff", staff.ScriptHash(), "J", "T", 1000)
	})

	t.Run("non-positive salary", func(t *testing.T) {
		other := env.e.NewAccount(t)
		env.c.InvokeFail(t, "salary must be positive", "employStaff", other.ScriptHash(), "Z", "Clerk", 0)
	})
}

func TestSchoolSuspendStaff(t *testing.T) {
	env := newSchoolEnv(t)

	staff := env.e.NewAccount(t)
	env.c.Invoke(t, stackitem.Null{}, "employStaff", staff.ScriptHash(), "John", "Teacher", 1000)

	h := env.c.Invoke(t, stackitem.Null{}, "suspendStaff", staff.ScriptHash(), true)
	aer := env.c.CheckHalt(t, h)
	require.Equal(t, "StaffSuspended", aer.Events[len(aer.Events)-1].Name)

	fields, ok := env.listStaff(t)[0].Value().([]stackitem.Item)
	require.True(t, ok)
	suspended, err := fields[4].TryBool()
	require.NoError(t, err)
	require.True(t, suspended)

	t.Run("suspended staff cannot be paid", func(t *testing.T) {
		transferToken(t, env.e, env.tokenHash, env.e.Committee, env.schoolHash, big.NewInt(10000))
		env.c.InvokeFail(t, common.ErrStaffSuspended, "payStaff", staff.ScriptHash())

		tkn := env.e.CommitteeInvoker(env.tokenHash)
		tkn.Invoke(t, 0, "balanceOf", staff.ScriptHash())
	})

	t.Run("not found", func(t *testing.T) {
		unknown := env.e.NewAccount(t)
		env.c.InvokeFail(t, common.ErrStaffNotFound, "suspendStaff", unknown.ScriptHash(), true)
	})

	t.Run("non-owner", func(t *testing.T) {
		env.cAdmin.InvokeFail(t, common.ErrNotOwner, "suspendStaff", staff.ScriptHash(), false)
	})

	// lifting the suspension re-enables payroll
	env.c.Invoke(t, stackitem.Null{}, "suspendStaff", staff.ScriptHash(), false)
	env.c.Invoke(t, stackitem.Null{}, "payStaff", staff.ScriptHash())

	tkn := env.e.CommitteeInvoker(env.tokenHash)
	tkn.Invoke(t, 1000, "balanceOf", staff.ScriptHash())
}

func TestSchoolPayStaff(t *testing.T) {
	env := newSchoolEnv(t)

	staff := env.e.NewAccount(t)
	env.c.Invoke(t, stackitem.Null{}, "employStaff", staff.ScriptHash(), "John", "Teacher", 1000)

	// fund payroll custody
	transferToken(t, env.e, env.tokenHash, env.e.Committee, env.schoolHash, big.NewInt(10000))
	env.c.Invoke(t, 10000, "contractTokenBalance")

	h := env.c.Invoke(t, stackitem.Null{}, "payStaff", staff.ScriptHash())
	aer := env.c.CheckHalt(t, h)
	require.Equal(t, "StaffPaid", aer.Events[len(aer.Events)-1].Name)

	tkn := env.e.CommitteeInvoker(env.tokenHash)
	tkn.Invoke(t, 1000, "balanceOf", staff.ScriptHash())
	env.c.Invoke(t, 9000, "contractTokenBalance")

	t.Run("repeated payment disburses again", func(t *testing.T) {
		env.c.Invoke(t, stackitem.Null{}, "payStaff", staff.ScriptHash())
		tkn.Invoke(t, 2000, "balanceOf", staff.ScriptHash())
	})

	t.Run("not found", func(t *testing.T) {
		unknown := env.e.NewAccount(t)
		env.c.InvokeFail(t, common.ErrStaffNotFound, "payStaff", unknown.ScriptHash())
	})

	t.Run("non-owner", func(t *testing.T) {
		env.cAdmin.InvokeFail(t, common.ErrNotOwner, "payStaff", staff.ScriptHash())
	})
}

func TestSchoolPayStaffInsufficientCustody(t *testing.T) {
	env := newSchoolEnv(t)

	staff := env.e.NewAccount(t)
	env.c.Invoke(t, stackitem.Null{}, "employStaff", staff.ScriptHash(), "John", "Teacher", 1000)

	env.c.InvokeFail(t, common.ErrTransferFailed, "payStaff", staff.ScriptHash())

	tkn := env.e.CommitteeInvoker(env.tokenHash)
	tkn.Invoke(t, 0, "balanceOf", staff.ScriptHash())
}

// Every owner-only and admin-only method is checked against every other
// role: the owner, the admin, an enrolled student, an employed staff
// member and an outsider.
func TestSchoolRoleGating(t *testing.T) {
	env := newSchoolEnv(t)
	env.c.Invoke(t, stackitem.Null{}, "setLevelFees")

	student := env.e.NewAccount(t)
	env.enrollStudent(t, student, "Alice", 18, 100)

	staff := env.e.NewAccount(t)
	env.c.Invoke(t, stackitem.Null{}, "employStaff", staff.ScriptHash(), "John", "Teacher", 1000)

	outsider := env.e.NewAccount(t)

	ownerOnly := func(c *neotest.ContractInvoker) {
		c.InvokeFail(t, common.ErrNotOwner, "setLevelFees")
		c.InvokeFail(t, common.ErrNotOwner, "employStaff", outsider.ScriptHash(), "X", "Y", 1)
		c.InvokeFail(t, common.ErrNotOwner, "suspendStaff", staff.ScriptHash(), true)
		c.InvokeFail(t, common.ErrNotOwner, "payStaff", staff.ScriptHash())
	}
	adminOnly := func(c *neotest.ContractInvoker) {
		c.InvokeFail(t, common.ErrNotAdmin, "enrollStudent", "X", 18, 100, outsider.ScriptHash())
		c.InvokeFail(t, common.ErrNotAdmin, "removeStudent", student.ScriptHash())
	}

	for name, signer := range map[string]neotest.Signer{
		"admin":    env.admin,
		"student":  student,
		"staff":    staff,
		"outsider": outsider,
	} {
		t.Run("owner-only vs "+name, func(t *testing.T) {
			ownerOnly(env.e.NewInvoker(env.schoolHash, signer))
		})
	}

	for name, signer := range map[string]neotest.Signer{
		"student":  student,
		"staff":    staff,
		"outsider": outsider,
	} {
		t.Run("admin-only vs "+name, func(t *testing.T) {
			adminOnly(env.e.NewInvoker(env.schoolHash, signer))
		})
	}
	t.Run("admin-only vs owner", func(t *testing.T) {
		adminOnly(env.c)
	})

	// the rejected calls changed nothing
	require.Equal(t, 1, len(env.listStudents(t)))
	require.Equal(t, 1, len(env.listStaff(t)))
}
