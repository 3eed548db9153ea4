//go:build hsi_only && !nucleo_g474re

package boards

var Selected = HSIOnly
