//go:build !(nucleo_g474re || hsi_only)

package boards

var Selected = Reference
