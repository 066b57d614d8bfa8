// SPDX-License-Identifier: MPL-2.0

package descriptor

import "strings"

const defaultPackageDisplay = "<default>"

// PackageName is the package of a class or interface type. The zero value
// is the default (unnamed) package, which is distinct from every named
// package. PackageName values compare with ==.
type PackageName struct {
	name  string
	named bool
}

// DefaultPackage is the package of classes declared without one.
var DefaultPackage = PackageName{}

// IsDefault reports whether p is the default package.
func (p PackageName) IsDefault() bool { return !p.named }

// Name returns the dotted package name, or false for the default package.
func (p PackageName) Name() (string, bool) { return p.name, p.named }

// String returns the dotted package name, or "<default>" for the default
// package.
func (p PackageName) String() string {
	if !p.named {
		return defaultPackageDisplay
	}
	return p.name
}

// PackageName returns the package a class or interface descriptor belongs
// to: "Ljava/lang/String;" is in "java.lang", "LFoo;" is in the default
// package.
func (d Descriptor) PackageName() (PackageName, error) {
	if !d.IsClassOrInterfaceReference() {
		return PackageName{}, &PreconditionError{Value: d, Operation: "get package of", Requirement: "a class or interface descriptor"}
	}
	if err := validateField(string(d)); err != nil {
		return PackageName{}, err
	}
	path := string(d[1 : len(d)-1])
	idx := strings.LastIndexByte(path, '/')
	if idx == -1 {
		return DefaultPackage, nil
	}
	return PackageName{name: dotted(path[:idx]), named: true}, nil
}

// AreInSamePackage reports whether two class or interface descriptors are
// declared in the same package.
func AreInSamePackage(a, b Descriptor) (bool, error) {
	pa, err := a.PackageName()
	if err != nil {
		return false, err
	}
	pb, err := b.PackageName()
	if err != nil {
		return false, err
	}
	return pa == pb, nil
}
