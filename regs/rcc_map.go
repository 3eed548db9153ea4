package regs

// STM32G4 reset and clock control (RM0440 §7.4).
const (
	RCCBase = 0x4002_1000

	RCC_CR        = 0x00
	RCC_ICSCR     = 0x04
	RCC_CFGR      = 0x08
	RCC_PLLCFGR   = 0x0C
	RCC_CIER      = 0x18
	RCC_CIFR      = 0x1C
	RCC_CICR      = 0x20
	RCC_AHB1RSTR  = 0x28
	RCC_AHB2RSTR  = 0x2C
	RCC_AHB3RSTR  = 0x30
	RCC_APB1RSTR1 = 0x38
	RCC_APB1RSTR2 = 0x3C
	RCC_APB2RSTR  = 0x40
	RCC_AHB1ENR   = 0x48
	RCC_AHB2ENR   = 0x4C
	RCC_AHB3ENR   = 0x50
	RCC_APB1ENR1  = 0x58
	RCC_APB1ENR2  = 0x5C
	RCC_APB2ENR   = 0x60
	RCC_CCIPR     = 0x88
	RCC_BDCR      = 0x90
	RCC_CSR       = 0x94
	RCC_CRRCR     = 0x98
	RCC_CCIPR2    = 0x9C
)

// RCC_CR bits.
const (
	RCC_CR_HSION  = 1 << 8
	RCC_CR_HSIRDY = 1 << 10
	RCC_CR_HSEON  = 1 << 16
	RCC_CR_HSERDY = 1 << 17
	RCC_CR_HSEBYP = 1 << 18
	RCC_CR_CSSON  = 1 << 19
	RCC_CR_PLLON  = 1 << 24
	RCC_CR_PLLRDY = 1 << 25
)

// RCC_CFGR fields.
var (
	RCC_CFGR_SW     = Field{Pos: 0, Width: 2}
	RCC_CFGR_SWS    = Field{Pos: 2, Width: 2}
	RCC_CFGR_HPRE   = Field{Pos: 4, Width: 4}
	RCC_CFGR_PPRE1  = Field{Pos: 8, Width: 3}
	RCC_CFGR_PPRE2  = Field{Pos: 11, Width: 3}
	RCC_CFGR_MCOSEL = Field{Pos: 24, Width: 4}
	RCC_CFGR_MCOPRE = Field{Pos: 28, Width: 3}
)

// SW / SWS encodings.
const (
	RCC_CFGR_SW_HSI16 = 0b01
	RCC_CFGR_SW_HSE   = 0b10
	RCC_CFGR_SW_PLL   = 0b11
)

// RCC_PLLCFGR fields and bits.
var (
	RCC_PLLCFGR_PLLSRC  = Field{Pos: 0, Width: 2}
	RCC_PLLCFGR_PLLM    = Field{Pos: 4, Width: 4}
	RCC_PLLCFGR_PLLN    = Field{Pos: 8, Width: 7}
	RCC_PLLCFGR_PLLP    = Field{Pos: 17, Width: 1}
	RCC_PLLCFGR_PLLQ    = Field{Pos: 21, Width: 2}
	RCC_PLLCFGR_PLLR    = Field{Pos: 25, Width: 2}
	RCC_PLLCFGR_PLLPDIV = Field{Pos: 27, Width: 5}
)

const (
	RCC_PLLCFGR_PLLPEN = 1 << 16
	RCC_PLLCFGR_PLLQEN = 1 << 20
	RCC_PLLCFGR_PLLREN = 1 << 24

	RCC_PLLCFGR_PLLSRC_NONE  = 0b00
	RCC_PLLCFGR_PLLSRC_HSI16 = 0b10
	RCC_PLLCFGR_PLLSRC_HSE   = 0b11
)

// RCC_CCIPR kernel clock muxes.
var (
	RCC_CCIPR_FDCANSEL = Field{Pos: 24, Width: 2}
	RCC_CCIPR_CLK48SEL = Field{Pos: 26, Width: 2}
)

const (
	RCC_CCIPR_FDCANSEL_HSE   = 0b00
	RCC_CCIPR_FDCANSEL_PLLQ  = 0b01
	RCC_CCIPR_FDCANSEL_PCLK1 = 0b10

	RCC_CCIPR_CLK48SEL_HSI48 = 0b00
	RCC_CCIPR_CLK48SEL_PLLQ  = 0b10
)

var rccNames = map[uint32]string{
	RCC_CR:        "CR",
	RCC_ICSCR:     "ICSCR",
	RCC_CFGR:      "CFGR",
	RCC_PLLCFGR:   "PLLCFGR",
	RCC_CIER:      "CIER",
	RCC_CIFR:      "CIFR",
	RCC_CICR:      "CICR",
	RCC_AHB1RSTR:  "AHB1RSTR",
	RCC_AHB2RSTR:  "AHB2RSTR",
	RCC_AHB3RSTR:  "AHB3RSTR",
	RCC_APB1RSTR1: "APB1RSTR1",
	RCC_APB1RSTR2: "APB1RSTR2",
	RCC_APB2RSTR:  "APB2RSTR",
	RCC_AHB1ENR:   "AHB1ENR",
	RCC_AHB2ENR:   "AHB2ENR",
	RCC_AHB3ENR:   "AHB3ENR",
	RCC_APB1ENR1:  "APB1ENR1",
	RCC_APB1ENR2:  "APB1ENR2",
	RCC_APB2ENR:   "APB2ENR",
	RCC_CCIPR:     "CCIPR",
	RCC_BDCR:      "BDCR",
	RCC_CSR:       "CSR",
	RCC_CRRCR:     "CRRCR",
	RCC_CCIPR2:    "CCIPR2",
}

// RCCName returns the register mnemonic for an RCC offset, or "" if unknown.
func RCCName(off uint32) string { return rccNames[off] }
