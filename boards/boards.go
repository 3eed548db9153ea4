// Package boards holds the clock profile of each supported board. The
// profile built into firmware is chosen with build tags; host tools can
// look any of them up by name.
package boards

import (
	"sort"

	"clockcode-go/hertz"
	"clockcode-go/rcc"
)

// Profile is a board's oscillator and bus targets. Zero targets leave the
// builder default in place.
type Profile struct {
	Name   string      `yaml:"name"`
	HSE    hertz.Hertz `yaml:"hse,omitempty"`
	Bypass bool        `yaml:"bypass,omitempty"`
	CSS    bool        `yaml:"css,omitempty"`
	SYSCLK hertz.Hertz `yaml:"sysclk,omitempty"`
	HCLK   hertz.Hertz `yaml:"hclk,omitempty"`
	PCLK1  hertz.Hertz `yaml:"pclk1,omitempty"`
	PCLK2  hertz.Hertz `yaml:"pclk2,omitempty"`
}

// Apply copies the profile into a builder.
func (p Profile) Apply(c rcc.CFGR) rcc.CFGR {
	if p.HSE != 0 {
		c = c.UseHSE(p.HSE)
	}
	if p.Bypass {
		c = c.BypassHSE()
	}
	if p.CSS {
		c = c.EnableCSS()
	}
	if p.SYSCLK != 0 {
		c = c.SYSCLK(p.SYSCLK)
	}
	if p.HCLK != 0 {
		c = c.HCLK(p.HCLK)
	}
	if p.PCLK1 != 0 {
		c = c.PCLK1(p.PCLK1)
	}
	if p.PCLK2 != 0 {
		c = c.PCLK2(p.PCLK2)
	}
	return c
}

var known = map[string]Profile{}

func register(p Profile) Profile {
	known[p.Name] = p
	return p
}

// Lookup returns the named profile.
func Lookup(name string) (Profile, bool) {
	p, ok := known[name]
	return p, ok
}

// Names lists the known profiles in order.
func Names() []string {
	out := make([]string, 0, len(known))
	for n := range known {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
