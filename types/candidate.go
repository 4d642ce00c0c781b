package types

// Candidate is a freshly generated account: the recovery phrase and the address derived from it.
type Candidate struct {
	Mnemonic  []string
	Workchain int32
	// AccountID is the raw "<workchain>:<hex>" address.
	AccountID string
	// Address is the user-friendly base64 form.
	Address string
}
