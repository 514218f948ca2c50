// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build debug

package prefix

import (
	"fmt"
	"strings"
)

func lenBase10(n int) int { return len(fmt.Sprintf("%d", n)) }
func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func padBase2(v, n interface{}, m int) string {
	var s string
	if fmt.Sprint(n) != "0" {
		s = fmt.Sprintf(fmt.Sprintf("%%0%db", n), v)
	}
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// String renders codes as a symbol-ordered table of (value, length, count),
// with a bar chart proportional to each symbol's count. Built only with
// -tags debug, the same convention the teacher uses elsewhere in this repo
// for human-facing diagnostics that are not part of the error surface.
func (pc PrefixCodes) String() string {
	var maxSym, maxLen, maxCnt int
	for _, c := range pc {
		if maxSym < int(c.Sym) {
			maxSym = int(c.Sym)
		}
		if maxLen < int(c.Len) {
			maxLen = int(c.Len)
		}
		if maxCnt < int(c.Cnt) {
			maxCnt = int(c.Cnt)
		}
	}
	maxSymStr := lenBase10(maxSym)
	maxCntStr := lenBase10(maxCnt)

	var ss []string
	ss = append(ss, "{")
	for _, c := range pc {
		var cntStr string
		if maxCnt > 0 {
			cnt := int(32*float32(c.Cnt)/float32(maxCnt) + 0.5)
			cntStr = fmt.Sprintf("%s |%s",
				padBase10(c.Cnt, maxCntStr),
				strings.Repeat("#", cnt),
			)
		}
		ss = append(ss, fmt.Sprintf("\t%s:  %s,  %s",
			padBase10(c.Sym, maxSymStr),
			padBase2(c.Val, c.Len, maxLen),
			cntStr,
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
