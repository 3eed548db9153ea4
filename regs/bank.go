// Package regs is the only sanctioned path to memory-mapped register state.
// A Bank is one peripheral register block; Reg and Field give it the bit
// operations of runtime/volatile.Register32 so the same call sites run on
// silicon and against a simulated bank.
package regs

// Bank is a block of 32-bit registers addressed by byte offset.
type Bank interface {
	Load(off uint32) uint32
	Store(off uint32, v uint32)
}

// Reg is a single register inside a Bank.
type Reg struct {
	bank Bank
	off  uint32
}

// At returns the register at off.
func At(b Bank, off uint32) Reg { return Reg{bank: b, off: off} }

func (r Reg) Offset() uint32 { return r.off }
func (r Reg) Get() uint32    { return r.bank.Load(r.off) }
func (r Reg) Set(v uint32)   { r.bank.Store(r.off, v) }

// SetBits reads the register, sets the bits in value and writes it back.
func (r Reg) SetBits(value uint32) { r.Set(r.Get() | value) }

// ClearBits reads the register, clears the bits in value and writes it back.
func (r Reg) ClearBits(value uint32) { r.Set(r.Get() &^ value) }

// HasBits reports whether any bit in value is set.
func (r Reg) HasBits(value uint32) bool { return r.Get()&value != 0 }

// ReplaceBits replaces the field mask<<pos with value<<pos in one write.
func (r Reg) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}

// Modify is a single read-modify-write.
func (r Reg) Modify(fn func(v uint32) uint32) { r.Set(fn(r.Get())) }

// Field is a contiguous bitfield.
type Field struct {
	Pos   uint8
	Width uint8
}

// Max is the largest value the field can hold.
func (f Field) Max() uint32 { return 1<<f.Width - 1 }

// Mask is the field mask in register position.
func (f Field) Mask() uint32 { return f.Max() << f.Pos }

// Get extracts the field from a register word.
func (f Field) Get(v uint32) uint32 { return v >> f.Pos & f.Max() }

// Put returns v with the field replaced by x (x is truncated to the width).
func (f Field) Put(v, x uint32) uint32 { return v&^f.Mask() | (x&f.Max())<<f.Pos }

// Fits reports whether x can be stored without truncation.
func (f Field) Fits(x uint32) bool { return x <= f.Max() }

// Read extracts the field from the register.
func (f Field) Read(r Reg) uint32 { return f.Get(r.Get()) }

// Write replaces just this field in the register.
func (f Field) Write(r Reg, x uint32) { r.ReplaceBits(x&f.Max(), f.Max(), f.Pos) }
