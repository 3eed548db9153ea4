package regs

// STM32G4 embedded flash interface (RM0440 §5.7).
const (
	FLASHBase = 0x4002_2000

	FLASH_ACR = 0x00
)

var FLASH_ACR_LATENCY = Field{Pos: 0, Width: 4}

const (
	FLASH_ACR_PRFTEN = 1 << 8
	FLASH_ACR_ICEN   = 1 << 9
	FLASH_ACR_DCEN   = 1 << 10

	// Reset value: caches on, zero wait states.
	FLASH_ACR_RESET = FLASH_ACR_ICEN | FLASH_ACR_DCEN
)
