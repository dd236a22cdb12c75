/*
Savings contract is a contract deployed in Academy chain.

Savings contract keeps per-account savings in two asset kinds: the
registered NEP-17 token and native GAS. The contract holds the assets in
its own account (custody) and tracks the entitlement of every user in
contract storage. A withdrawal can never exceed the recorded savings of
the account, whatever the total custody of the contract is.

Token deposits are pull-based: depositToken asks the token contract to
transfer assets from the user into custody, authorized by the user's
transaction witness. GAS deposits are push-based: the user transfers GAS
to the contract address and the onNEP17Payment callback credits the
sender.

# Contract notifications

TokenDeposit notification. This notification is produced when token
savings of an account are credited after a successful pull.

	TokenDeposit:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

TokenWithdrawal notification. This notification is produced when token
savings of an account are debited and custody assets are transferred
back to the account.

	TokenWithdrawal:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

GASDeposit notification. This notification is produced when a user
transfers GAS to the contract address.

	GASDeposit:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package savings
