package common

var (
	// ErrNotOwner appears when a method restricted to the contract owner
	// is invoked by anybody else.
	ErrNotOwner = "NOT_OWNER"
	// ErrNotAdmin appears when a method restricted to the contract admin
	// is invoked by anybody else.
	ErrNotAdmin = "NOT_ADMIN"
	// ErrWitnessFailed appears when the method must be called
	// by the account it operates on but was not.
	ErrWitnessFailed = "witness check failed"

	// ErrAdminIsOwner appears on deployment when the supplied admin
	// account equals the contract owner.
	ErrAdminIsOwner = "ADMIN_EQUALS_OWNER"

	// ErrNotEnoughSavings appears when a withdrawal exceeds the
	// recorded savings of the account.
	ErrNotEnoughSavings = "Not enough savings"
	// ErrAmountNotPositive appears when a deposit or withdrawal amount
	// is zero or negative.
	ErrAmountNotPositive = "amount must be positive"
	// ErrTransferFailed appears when the token contract rejects a
	// transfer requested by this contract.
	ErrTransferFailed = "failed to transfer funds, aborting"

	// ErrFeeNotSet appears when a student is enrolled at a level whose
	// fee has not been configured.
	ErrFeeNotSet = "INSUFFICIENT LEVEL FEE"
	// ErrStudentExists appears on repeated enrollment of the same account.
	ErrStudentExists = "STUDENT ALREADY REGISTERED"
	// ErrStudentNotFound appears when the operated student is not enrolled.
	ErrStudentNotFound = "STUDENT NOT FOUND"

	// ErrStaffExists appears on repeated employment of the same account.
	ErrStaffExists = "STAFF ALREADY EMPLOYED"
	// ErrStaffNotFound appears when the operated staff is not employed.
	ErrStaffNotFound = "STAFF NOT FOUND"
	// ErrStaffSuspended appears on payroll disbursement to suspended staff.
	ErrStaffSuspended = "STAFF IS SUSPENDED"
)
