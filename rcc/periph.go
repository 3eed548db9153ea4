package rcc

// Enable/reset bit masks (RM0440 §7.4.13-7.4.31). Reset bits share the
// enable bit positions for every peripheral listed here.

type AHB1Periph uint32

const (
	DMA1    AHB1Periph = 1 << 0
	DMA2    AHB1Periph = 1 << 1
	DMAMUX1 AHB1Periph = 1 << 2
	CORDIC  AHB1Periph = 1 << 3
	FMAC    AHB1Periph = 1 << 4
	CRC     AHB1Periph = 1 << 12
)

type AHB2Periph uint32

const (
	GPIOA  AHB2Periph = 1 << 0
	GPIOB  AHB2Periph = 1 << 1
	GPIOC  AHB2Periph = 1 << 2
	GPIOD  AHB2Periph = 1 << 3
	GPIOE  AHB2Periph = 1 << 4
	GPIOF  AHB2Periph = 1 << 5
	GPIOG  AHB2Periph = 1 << 6
	ADC12  AHB2Periph = 1 << 13
	ADC345 AHB2Periph = 1 << 14
	DAC1   AHB2Periph = 1 << 16
	DAC2   AHB2Periph = 1 << 17
	DAC3   AHB2Periph = 1 << 18
	DAC4   AHB2Periph = 1 << 19
	RNG    AHB2Periph = 1 << 26
)

type AHB3Periph uint32

const (
	FMC  AHB3Periph = 1 << 0
	QSPI AHB3Periph = 1 << 8
)

type APB1Periph uint32

const (
	TIM2   APB1Periph = 1 << 0
	TIM3   APB1Periph = 1 << 1
	TIM4   APB1Periph = 1 << 2
	TIM5   APB1Periph = 1 << 3
	TIM6   APB1Periph = 1 << 4
	TIM7   APB1Periph = 1 << 5
	CRS    APB1Periph = 1 << 8
	SPI2   APB1Periph = 1 << 14
	SPI3   APB1Periph = 1 << 15
	USART2 APB1Periph = 1 << 17
	USART3 APB1Periph = 1 << 18
	UART4  APB1Periph = 1 << 19
	UART5  APB1Periph = 1 << 20
	I2C1   APB1Periph = 1 << 21
	I2C2   APB1Periph = 1 << 22
	USB    APB1Periph = 1 << 23
	FDCAN  APB1Periph = 1 << 25
	PWR    APB1Periph = 1 << 28
	I2C3   APB1Periph = 1 << 30
	LPTIM1 APB1Periph = 1 << 31
)

type APB2Periph uint32

const (
	SYSCFG APB2Periph = 1 << 0
	TIM1   APB2Periph = 1 << 11
	SPI1   APB2Periph = 1 << 12
	TIM8   APB2Periph = 1 << 13
	USART1 APB2Periph = 1 << 14
	SPI4   APB2Periph = 1 << 15
	TIM15  APB2Periph = 1 << 16
	TIM16  APB2Periph = 1 << 17
	TIM17  APB2Periph = 1 << 18
	TIM20  APB2Periph = 1 << 20
	SAI1   APB2Periph = 1 << 21
	HRTIM1 APB2Periph = 1 << 26
)
