package gll

import (
	"fmt"

	"github.com/nkoval/gogll/grammar"
)

// Descriptor is a unit of pending work: "resume Slot, which was called
// from position CallIndex, with the cursor now standing at Index". It is a
// plain comparable struct, directly usable as a gods set element.
type Descriptor struct {
	Slot      Slot
	CallIndex int
	Index     int
}

// CallRecord identifies "a call into Symbol starting at Index", the key
// under which the call-return forest and the contingent-return set are
// indexed.
type CallRecord struct {
	Symbol grammar.Symbol
	Index  int
}

func (r CallRecord) String() string {
	return fmt.Sprintf("%s@%d", r.Symbol, r.Index)
}

// CallReturnAddress records where control should resume once a call
// recorded under some CallRecord returns: the calling Slot and the caller's
// own CallIndex (where the caller's nonterminal was entered). The position
// at which the call itself was made is the CallRecord's Index.
type CallReturnAddress struct {
	Slot      Slot
	CallIndex int
}
