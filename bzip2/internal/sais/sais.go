// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array algorithm.
package sais

// This implements the SA-IS algorithm of Nong, Zhang, and Chan: classify
// each position as S-type or L-type, find the LMS positions, induce-sort
// twice to discover the relative order of LMS substrings, name and reduce
// them, recurse on the reduced string when names collide, then induce-sort
// once more using the true LMS order to produce the final suffix array.
//
// Earlier versions of this package carried separate byte and int32
// implementations because Go lacked generics; computeSA now operates
// uniformly on an []int32 view so one implementation serves every
// recursion level. ComputeSA takes that []int32 view directly; lifting
// bytes into it (and appending the sentinel) is left to the caller, as
// bzip2's encodeBWT does.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://ge-nong.googlecode.com/files/Linear%20Time%20Suffix%20Array%20Construction%20Using%20D-Critical%20Substrings.pdf
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf

// ComputeSA computes the suffix array of T and places the result in SA.
// Both T and SA must be the same length. T must end with a value that
// is strictly smaller than every other value in T (a sentinel); the
// caller is responsible for appending one, since bzip2's BWT driver
// needs an alphabet shifted out of byte range to make room for it.
func ComputeSA(T []int32, SA []int32, alphaSize int) {
	if len(SA) != len(T) {
		panic("sais: mismatching sizes")
	}
	computeSA(T, SA, alphaSize)
}

func computeSA(text []int32, sa []int32, alphaSize int) {
	n := len(text)
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return
	}
	if n == 1 {
		sa[0] = 0
		return
	}

	// Step 1: classify each position as S-type (true) or L-type (false).
	isS := make([]bool, n)
	isS[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case text[i] < text[i+1]:
			isS[i] = true
		case text[i] > text[i+1]:
			isS[i] = false
		default:
			isS[i] = isS[i+1]
		}
	}

	isLMS := func(i int) bool {
		return i > 0 && isS[i] && !isS[i-1]
	}

	var lmsPositions []int32
	for i := 0; i < n; i++ {
		if isLMS(i) {
			lmsPositions = append(lmsPositions, int32(i))
		}
	}

	bucketSizes := make([]int32, alphaSize)
	for _, c := range text {
		bucketSizes[c]++
	}
	bucketHeads := make([]int32, alphaSize)
	bucketTails := make([]int32, alphaSize)
	setBucketHeads := func() {
		var sum int32
		for i, sz := range bucketSizes {
			bucketHeads[i] = sum
			sum += sz
		}
	}
	setBucketTails := func() {
		var sum int32
		for i, sz := range bucketSizes {
			sum += sz
			bucketTails[i] = sum - 1
		}
	}

	placeLMS := func(order []int32) {
		for i := range sa {
			sa[i] = -1
		}
		setBucketTails()
		for i := len(order) - 1; i >= 0; i-- {
			p := order[i]
			c := text[p]
			sa[bucketTails[c]] = p
			bucketTails[c]--
		}
	}

	induceSortL := func() {
		setBucketHeads()
		for i := 0; i < n; i++ {
			if sa[i] <= 0 {
				continue
			}
			j := sa[i] - 1
			if !isS[j] {
				c := text[j]
				sa[bucketHeads[c]] = j
				bucketHeads[c]++
			}
		}
	}
	induceSortS := func() {
		setBucketTails()
		for i := n - 1; i >= 0; i-- {
			if sa[i] <= 0 {
				continue
			}
			j := sa[i] - 1
			if isS[j] {
				c := text[j]
				sa[bucketTails[c]] = j
				bucketTails[c]--
			}
		}
	}

	// Step 3: induced sort to discover the relative order of LMS substrings.
	placeLMS(lmsPositions)
	induceSortL()
	induceSortS()

	// Step 4: name LMS substrings by scanning SA for LMS positions, now in
	// their correctly sorted relative order, and comparing adjacent ones.
	lmsSubstrEqual := func(p1, p2 int32) bool {
		if p1 == int32(n-1) || p2 == int32(n-1) {
			return p1 == p2
		}
		for k := int32(0); ; k++ {
			i1, i2 := p1+k, p2+k
			lms1 := k > 0 && isLMS(int(i1))
			lms2 := k > 0 && isLMS(int(i2))
			if lms1 && lms2 {
				return true
			}
			if lms1 != lms2 {
				return false
			}
			if int(i1) >= n || int(i2) >= n {
				return false
			}
			if text[i1] != text[i2] {
				return false
			}
		}
	}

	name := make([]int32, n)
	for i := range name {
		name[i] = -1
	}
	var curName int32 = -1
	var prev int32 = -1
	for i := 0; i < n; i++ {
		p := sa[i]
		if p < 0 || !isLMS(int(p)) {
			continue
		}
		if prev < 0 || !lmsSubstrEqual(prev, p) {
			curName++
		}
		name[p] = curName
		prev = p
	}
	numNames := int(curName) + 1

	reduced := make([]int32, len(lmsPositions))
	for i, p := range lmsPositions {
		reduced[i] = name[p]
	}

	var sa1 []int32
	if numNames == len(lmsPositions) {
		sa1 = make([]int32, len(lmsPositions))
		for i, nm := range reduced {
			sa1[nm] = int32(i)
		}
	} else {
		sa1 = make([]int32, len(lmsPositions))
		computeSA(reduced, sa1, numNames)
	}

	trueLMSOrder := make([]int32, len(lmsPositions))
	for i, idx := range sa1 {
		trueLMSOrder[i] = lmsPositions[idx]
	}

	// Step 6: final induced sort using the true LMS order.
	placeLMS(trueLMSOrder)
	induceSortL()
	induceSortS()
}
