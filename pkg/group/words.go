package group

import (
	"slices"
	"sort"

	"github.com/permkit/permkit/pkg/perm"
)

// enumerateWords lists every group element together with a generating word,
// independently of the stabilizer chain.
//
// The enumeration grows the subgroup generated by gens[0..i] one generator
// at a time. For each new generator, right-coset representatives of the
// previous subgroup are discovered breadth first: known representatives are
// right-multiplied by the generators so far, and a product is kept as a new
// representative exactly when it is not already expressible as
// (previous-subgroup element)·(known representative). Every new
// representative r multiplies the whole previous subgroup, contributing
// elements e·r with word word(e)+word(r).
//
// Breadth-first discovery keeps representative words of non-decreasing
// length, which keeps the stored words short; global minimality over all
// generating sequences is not guaranteed.
//
// The final listing is sorted by [perm.Perm.Compare] with the words
// reordered in parallel, so output is deterministic and the identity (with
// the empty word) comes first.
func enumerateWords(gens []perm.Perm) ([]perm.Perm, [][]int) {
	elems := []perm.Perm{perm.Identity()}
	words := [][]int{{}}

	for n := 1; n <= len(gens); n++ {
		sub := gens[:n]

		type coset struct {
			rep  perm.Perm
			word []int
		}
		reps := []coset{{rep: perm.Identity()}}

		// known holds every element expressible so far, keyed by the
		// canonical cycle notation.
		known := make(map[string]bool, len(elems))
		for _, e := range elems {
			known[e.String()] = true
		}

		nextElems := slices.Clone(elems)
		nextWords := slices.Clone(words)

		for qi := 0; qi < len(reps); qi++ {
			r := reps[qi]
			for si, s := range sub {
				cand := r.rep.Compose(s)
				if known[cand.String()] {
					continue
				}
				word := append(slices.Clone(r.word), si)
				reps = append(reps, coset{rep: cand, word: word})
				for ei, e := range elems {
					prod := e.Compose(cand)
					known[prod.String()] = true
					nextElems = append(nextElems, prod)
					nextWords = append(nextWords, slices.Concat(words[ei], word))
				}
			}
		}
		elems, words = nextElems, nextWords
	}

	sort.Sort(&byElement{elems: elems, words: words})
	return elems, words
}

// byElement sorts the element list by the permutation total order and keeps
// the word list aligned.
type byElement struct {
	elems []perm.Perm
	words [][]int
}

func (s *byElement) Len() int           { return len(s.elems) }
func (s *byElement) Less(i, j int) bool { return s.elems[i].Compare(s.elems[j]) < 0 }
func (s *byElement) Swap(i, j int) {
	s.elems[i], s.elems[j] = s.elems[j], s.elems[i]
	s.words[i], s.words[j] = s.words[j], s.words[i]
}

// EvalWord composes generators according to a word: indices are 0-based
// positions in gens and apply left to right. The empty word evaluates to
// the identity.
func EvalWord(gens []perm.Perm, word []int) perm.Perm {
	p := perm.Identity()
	for _, i := range word {
		p = p.Compose(gens[i])
	}
	return p
}
