/*
School contract is a contract deployed in Academy chain.

School contract manages student enrollment and staff payroll behind a
two-role access model. The owner and the admin accounts are fixed at
deployment and are required to differ. The owner controls the fee
schedule and the payroll ledger, the admin controls the enrollment
ledger. Student and staff "roles" are not stored separately: an account
is a student exactly while its enrollment record exists and a staff
member exactly while its employment record exists.

Enrollment is paid: the admin enrolls a student only together with a fee
pull from the student's account in the registered NEP-17 token. Payroll
is solvency-bound: salaries are disbursed from the token custody of the
contract and a short custody fails the disbursement.

# Contract notifications

StudentEnrolled notification. This notification is produced when an
enrollment record is created and the level fee is collected.

	StudentEnrolled:
	  - name: student
	    type: Hash160
	  - name: name
	    type: String
	  - name: level
	    type: Integer
	  - name: fee
	    type: Integer

StudentRemoved notification. This notification is produced when an
enrollment record is deleted.

	StudentRemoved:
	  - name: student
	    type: Hash160

StaffEmployed notification. This notification is produced when an
employment record is created.

	StaffEmployed:
	  - name: staff
	    type: Hash160
	  - name: name
	    type: String
	  - name: role
	    type: String
	  - name: salary
	    type: Integer

StaffSuspended notification. This notification is produced when the
suspension flag of an employment record changes.

	StaffSuspended:
	  - name: staff
	    type: Hash160
	  - name: suspended
	    type: Boolean

StaffPaid notification. This notification is produced when a salary is
disbursed from contract custody.

	StaffPaid:
	  - name: staff
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package school
