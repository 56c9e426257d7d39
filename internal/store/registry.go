package store

import "github.com/hance08/tally/internal/ledger"

// Registry holds one ledger account per client, remembering the order in
// which clients were first seen.
type Registry struct {
	accounts map[uint16]*ledger.Account
	order    []uint16
}

func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[uint16]*ledger.Account),
	}
}

// GetOrCreate returns the account of client, opening an empty one on first use.
func (r *Registry) GetOrCreate(client uint16) *ledger.Account {
	if acc, ok := r.accounts[client]; ok {
		return acc
	}

	acc := ledger.NewAccount(client)
	r.accounts[client] = acc
	r.order = append(r.order, client)

	return acc
}

// Snapshot lists the accounts in first-seen order.
func (r *Registry) Snapshot() []*ledger.Account {
	accounts := make([]*ledger.Account, 0, len(r.order))
	for _, client := range r.order {
		accounts = append(accounts, r.accounts[client])
	}
	return accounts
}

func (r *Registry) Len() int {
	return len(r.order)
}
