package domain

// MaxTransactionQuantity caps the quantity accepted by a single grant, consume
// or split request. Guards against overflow and absurd client input.
const MaxTransactionQuantity = 1_000_000
