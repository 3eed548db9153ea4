// Package device hands out the register blocks of the chip.
//
// Take is the process-wide hardware handle and succeeds once. Each Block in
// the returned Peripherals can be claimed once; the claimant owns the block
// for the rest of program life.
package device

import (
	"sync/atomic"

	"clockcode-go/errcode"
	"clockcode-go/regs"
)

// Block is one peripheral register group awaiting a single owner.
type Block struct {
	name    string
	bank    regs.Bank
	claimed atomic.Bool
}

func NewBlock(name string, bank regs.Bank) *Block {
	return &Block{name: name, bank: bank}
}

func (b *Block) Name() string { return b.name }

// Claim transfers the bank to the caller. A second claim fails with
// errcode.InUse.
func (b *Block) Claim() (regs.Bank, error) {
	if !b.claimed.CompareAndSwap(false, true) {
		return nil, errcode.Wrap(errcode.InUse, "device.claim", b.name)
	}
	return b.bank, nil
}

// Peripherals are the register blocks used during clock bring-up.
type Peripherals struct {
	RCC   *Block
	FLASH *Block
}

// New binds Peripherals to explicit banks (simulated banks in tests).
func New(rcc, flash regs.Bank) *Peripherals {
	return &Peripherals{
		RCC:   NewBlock("rcc", rcc),
		FLASH: NewBlock("flash", flash),
	}
}

var taken atomic.Bool

// Take returns the chip's peripherals. Only the first call succeeds.
func Take() (*Peripherals, error) {
	if !taken.CompareAndSwap(false, true) {
		return nil, errcode.Wrap(errcode.InUse, "device.take", "peripherals already taken")
	}
	rcc, flash := defaultBanks()
	return New(rcc, flash), nil
}

// MustTake is Take for start-up code that cannot continue without hardware.
func MustTake() *Peripherals {
	p, err := Take()
	if err != nil {
		panic(err.Error())
	}
	return p
}
