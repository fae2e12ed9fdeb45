package gll

import (
	"github.com/cnf/structhash"

	"github.com/nkoval/gogll/bsr"
)

// Snapshot is a JSON-marshalable dump of a Parser's internal state,
// intended for fixture-replay style tests: capture a Snapshot at a known
// point in a parse, and compare it (or its Hash) against a recorded
// expectation.
type Snapshot struct {
	WorkingSet          []Descriptor                    `json:"workingSet"`
	TotalSet            []Descriptor                    `json:"totalSet"`
	CallReturnForest    map[string][]CallReturnAddress  `json:"callReturnForest"`
	ContingentReturnSet map[string][]int                `json:"contingentReturnSet"`
	BSRSet              []bsr.Node                       `json:"bsrSet"`
	Hash                string                           `json:"hash"`
}

type valueser interface {
	Values() []interface{}
}

func descriptorsOf(s valueser) []Descriptor {
	vs := s.Values()
	out := make([]Descriptor, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.(Descriptor))
	}
	return out
}

// Snapshot captures the parser's current state: every pending and
// ever-seen descriptor, the call-return forest and contingent-return set
// (keyed by a stable string form of their CallRecord), and the BSR set
// accumulated so far. Hash is a lightweight fingerprint computed from the
// sizes of those five collections only, in the spirit of package earley's
// hash() helper; two snapshots with equal Hash can still differ in content.
func (p *Parser) Snapshot() Snapshot {
	snap := Snapshot{
		WorkingSet:          descriptorsOf(p.workingSet),
		TotalSet:            descriptorsOf(p.totalSet),
		CallReturnForest:    map[string][]CallReturnAddress{},
		ContingentReturnSet: map[string][]int{},
		BSRSet:              p.bsrSet.Nodes(),
	}
	for rec, rets := range p.callReturnForest {
		if rets.Size() == 0 {
			continue
		}
		vs := make([]CallReturnAddress, 0, rets.Size())
		for _, v := range rets.Values() {
			vs = append(vs, v.(CallReturnAddress))
		}
		snap.CallReturnForest[rec.String()] = vs
	}
	for rec, set := range p.contingentReturnSet {
		if set.Size() == 0 {
			continue
		}
		vs := make([]int, 0, set.Size())
		for _, v := range set.Values() {
			vs = append(vs, v.(int))
		}
		snap.ContingentReturnSet[rec.String()] = vs
	}
	sum, err := structhash.Hash(struct {
		W, T, C, R, B int
	}{len(snap.WorkingSet), len(snap.TotalSet), len(snap.CallReturnForest), len(snap.ContingentReturnSet), len(snap.BSRSet)}, 1)
	if err == nil {
		snap.Hash = sum
	}
	return snap
}
