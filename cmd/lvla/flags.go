// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/spf13/pflag"
)

// pivotFlag adapts linalg.Pivoting to pflag.Value.
type pivotFlag struct {
	p linalg.Pivoting
}

var _ pflag.Value = (*pivotFlag)(nil)

func (f *pivotFlag) String() string { return f.p.String() }

func (f *pivotFlag) Set(s string) error {
	p, err := linalg.ParsePivoting(s)
	if err != nil {
		return err
	}
	f.p = p

	return nil
}

func (f *pivotFlag) Type() string { return "pivoting" }
