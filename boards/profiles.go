package boards

import "clockcode-go/hertz"

// Reference is the 8 MHz HSE board the legacy plan was written for:
// 144 MHz SYSCLK, 36 MHz on both APB buses, 48 MHz for USB.
var Reference = register(Profile{
	Name: "reference",
	HSE:  8 * hertz.MHz,
})

// NucleoG474RE runs from the 24 MHz crystal with clock security on.
var NucleoG474RE = register(Profile{
	Name:   "nucleo_g474re",
	HSE:    24 * hertz.MHz,
	CSS:    true,
	SYSCLK: 144 * hertz.MHz,
	PCLK1:  72 * hertz.MHz,
	PCLK2:  144 * hertz.MHz,
})

// HSIOnly needs no external parts.
var HSIOnly = register(Profile{
	Name: "hsi_only",
})
