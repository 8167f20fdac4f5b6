// Package catalog — filtering rules.
// Rules select which extensions make it onto a listing.
package catalog

import (
	"github.com/gaurav-prasanna/extdir/core"
	"github.com/gaurav-prasanna/extdir/core/entry"
)

// Rule accepts or rejects an extension.
type Rule func(core.Extension) bool

// OfficialOnly accepts extensions published by the official account.
func OfficialOnly() Rule {
	return func(ext core.Extension) bool {
		return entry.IsOfficial(ext.Login())
	}
}

// OwnedBy accepts extensions whose owner login is exactly login.
func OwnedBy(login string) Rule {
	return func(ext core.Extension) bool {
		return ext.Login() == login
	}
}

// Match reports whether ext passes every rule. No rules accepts everything.
func Match(ext core.Extension, rules ...Rule) bool {
	for _, rule := range rules {
		if !rule(ext) {
			return false
		}
	}
	return true
}
