//go:build nucleo_g474re

package boards

var Selected = NucleoG474RE
