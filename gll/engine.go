package gll

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/schuko/gconf"

	"github.com/nkoval/gogll/bsr"
	"github.com/nkoval/gogll/grammar"
	"github.com/nkoval/gogll/predictor"
)

// Parser is a Generalised LL recognizer/parser. It is driven by Parse and
// ContinueParse, and accumulates its result as a bsr.Set (the Binary
// Subtree Representation shared packed forest) rather than a single parse
// tree, since the input grammar may be ambiguous.
//
// Each call to Parse resets all parse state, so a Parser can be reused for
// successive inputs; it must not be used concurrently.
type Parser struct {
	predictor *predictor.Predictor

	input      []grammar.Symbol // tokens, with End appended exactly once
	tokenCount int              // len(input) - 1

	workingSet *linkedhashset.Set // set of Descriptor, FIFO drain order
	totalSet   *hashset.Set       // set of Descriptor, ever seen

	callReturnForest    map[CallRecord]*hashset.Set // set of CallReturnAddress
	contingentReturnSet map[CallRecord]*hashset.Set // set of int

	bsrSet *bsr.Set
}

// NewParser builds a Parser around an already-constructed Predictor.
func NewParser(p *predictor.Predictor) *Parser {
	return &Parser{predictor: p}
}

// Parse resets the parser's state and runs the GLL worklist loop over
// tokens, appending the predictor's end marker exactly once. budget caps
// the number of descriptors processed; a negative budget means unlimited.
// It returns the number of descriptors still pending (0 means the worklist
// ran dry).
func (p *Parser) Parse(tokens []grammar.Symbol, budget int) int {
	p.input = make([]grammar.Symbol, 0, len(tokens)+1)
	p.input = append(p.input, tokens...)
	p.input = append(p.input, p.predictor.End)
	p.tokenCount = len(tokens)

	p.workingSet = linkedhashset.New()
	p.totalSet = hashset.New()
	p.callReturnForest = map[CallRecord]*hashset.Set{}
	p.contingentReturnSet = map[CallRecord]*hashset.Set{}
	p.bsrSet = bsr.NewSet()

	tracer().Infof("gll: parse started, %d token(s)", len(tokens))
	p.ntAdd(p.predictor.Grammar.Start, 0)
	remaining := p.ContinueParse(budget)
	if remaining == 0 {
		tracer().Infof("gll: worklist drained, accept=%t, %d BSR node(s)", p.Accept(), p.bsrSet.Size())
	}
	return remaining
}

// ContinueParse drains the worklist for up to budget descriptors (unlimited
// if negative), returning the number still pending.
func (p *Parser) ContinueParse(budget int) int {
	for p.workingSet.Size() > 0 && budget != 0 {
		if budget > 0 {
			budget--
		}
		values := p.workingSet.Values()
		d := values[0].(Descriptor)
		p.workingSet.Remove(d)
		p.step(d)
	}
	return p.workingSet.Size()
}

// WorkRemaining reports how many descriptors are still pending.
func (p *Parser) WorkRemaining() int { return p.workingSet.Size() }

// BSR returns the shared packed forest accumulated so far.
func (p *Parser) BSR() *bsr.Set { return p.bsrSet }

// Accept reports whether the full input (all tokens, excluding the end
// marker) has an accepting derivation from the grammar's start symbol.
func (p *Parser) Accept() bool {
	return p.bsrSet.Accept(p.predictor.Grammar.Start, p.tokenCount)
}

// ntAdd explores every alternative of nonterminal nt that could possibly
// match at input position i, as judged by TestSelect. An alternative with
// an empty RHS is immediately reduced: it contributes no pending work, but
// it is an observable result (an Alt BSR node, and a call return), not a
// silently skipped case.
func (p *Parser) ntAdd(nt grammar.Symbol, i int) {
	rules := p.predictor.Grammar.RulesFor(nt)
	if rules == nil {
		return
	}
	rules.Each(func(r *grammar.Rule) {
		if !p.predictor.TestSelect(p.getInput(i, true), nt, r.RHS) {
			tracer().Debugf("ntAdd(%s, %d): %s pruned by testSelect", nt, i, r)
			return
		}
		if len(r.RHS) == 0 {
			tracer().Debugf("ntAdd(%s, %d): %s reduces immediately (epsilon)", nt, i, r)
			p.bsrAdd(Slot{Rule: r, Index: 0}, i, i, i)
			p.rtn(nt, i, i)
			return
		}
		tracer().Debugf("ntAdd(%s, %d): selecting %s", nt, i, r)
		p.addDesc(Descriptor{Slot: StartSlot(r), CallIndex: i, Index: i})
	})
}

// addDesc enqueues d unless it has already been seen.
func (p *Parser) addDesc(d Descriptor) {
	if p.totalSet.Contains(d) {
		return
	}
	p.workingSet.Add(d)
	p.totalSet.Add(d)
}

// call records that slot (whose predecessor symbol sym is being entered at
// index i) wants to resume wherever sym returns, and either kicks off
// exploring sym (first caller at this position) or, if sym already
// returned for some set of indices, replays those returns immediately.
func (p *Parser) call(slot Slot, callIndex, i int) {
	sym := slot.Predecessor()
	rec := CallRecord{Symbol: sym, Index: i}
	rets, ok := p.callReturnForest[rec]
	if !ok {
		rets = hashset.New()
		p.callReturnForest[rec] = rets
	}
	ret := CallReturnAddress{Slot: slot, CallIndex: callIndex}
	if rets.Size() == 0 {
		tracer().Debugf("call(%s, %d, %d): first call into %s at %d", slot, callIndex, i, sym, i)
		rets.Add(ret)
		p.ntAdd(sym, i)
		return
	}
	if rets.Contains(ret) {
		return
	}
	rets.Add(ret)
	crs, ok := p.contingentReturnSet[rec]
	if !ok {
		return
	}
	tracer().Debugf("call(%s, %d, %d): %s already returned at %d position(s), replaying", slot, callIndex, i, sym, crs.Size())
	for _, v := range crs.Values() {
		j := v.(int)
		p.addDesc(Descriptor{Slot: slot, CallIndex: callIndex, Index: j})
		p.bsrAdd(slot, callIndex, i, j)
	}
}

// rtn records that a call into sym starting at callIndex has returned at
// position i, and replays every caller waiting on that call record.
func (p *Parser) rtn(sym grammar.Symbol, callIndex, i int) {
	rec := CallRecord{Symbol: sym, Index: callIndex}
	crs, ok := p.contingentReturnSet[rec]
	if !ok {
		crs = hashset.New()
		p.contingentReturnSet[rec] = crs
	}
	if crs.Contains(i) {
		return
	}
	crs.Add(i)
	rets, ok := p.callReturnForest[rec]
	if !ok {
		return
	}
	tracer().Debugf("rtn(%s, %d, %d): replaying %d waiting caller(s)", sym, callIndex, i, rets.Size())
	for _, v := range rets.Values() {
		ret := v.(CallReturnAddress)
		p.addDesc(Descriptor{Slot: ret.Slot, CallIndex: ret.CallIndex, Index: i})
		p.bsrAdd(ret.Slot, ret.CallIndex, callIndex, i)
	}
}

// bsrAdd records a BSR node for slot spanning [lext, rext) with split point
// pivot: an Alt node if slot's cursor is at the rule's end, a Packed node
// if there is more than one symbol before the cursor (a single-symbol
// prefix needs no packed node, its Alt node alone determines the span).
func (p *Parser) bsrAdd(slot Slot, lext, pivot, rext int) {
	suffix := slot.Suffix()
	if len(suffix) == 0 {
		n := bsr.Alt(slot.Rule, lext, pivot, rext)
		tracer().Debugf("bsrAdd: %s", n)
		p.bsrSet.Add(n)
		return
	}
	prefix := slot.Prefix()
	if len(prefix) > 1 {
		n := bsr.Packed(slot.Rule, len(prefix), lext, pivot, rext)
		tracer().Debugf("bsrAdd: %s", n)
		p.bsrSet.Add(n)
	}
}

// getInput returns the input symbol at index, or the end marker if index
// is exactly one past the (already end-terminated) input and allowEnd is
// set. Any other out-of-range index is an internal invariant violation.
func (p *Parser) getInput(index int, allowEnd bool) grammar.Symbol {
	if index >= 0 && index < len(p.input) {
		return p.input[index]
	}
	if allowEnd && index == len(p.input) {
		return p.predictor.End
	}
	p.invariantViolation("input lookup out of range")
	return grammar.Symbol{}
}

// step processes one descriptor: it walks forward through the slot's
// suffix, consuming terminals directly and deferring to call() at the
// first nonterminal, until either the suffix is exhausted (in which case,
// if the lookahead is in FOLLOW(sym), the call returns) or the descriptor
// is pruned (a prediction or terminal mismatch) or a call is made.
func (p *Parser) step(d Descriptor) {
	slot, callIndex, index := d.Slot, d.CallIndex, d.Index
	tracer().Debugf("step: %s, call=%d, index=%d", slot, callIndex, index)
	if slot.Len() == 0 {
		p.invariantViolation("descriptor with an empty-RHS slot reached the main loop")
		return
	}
	sym := slot.Rule.LHS
	suffix := slot.Suffix()
	needSelect := slot.Index != 0

	offset := 0
	for offset < len(suffix) {
		subject := suffix[offset]
		focus := p.getInput(index+offset, true)

		if needSelect && !p.predictor.TestSelect(focus, sym, suffix[offset:]) {
			tracer().Debugf("step: %s pruned by testSelect at offset %d (focus %s)", slot, offset, focus)
			return // pruned: this branch cannot be part of any derivation
		}

		if subject.IsNonterminal() {
			next, ok := slot.Advance(offset + 1)
			if !ok {
				p.invariantViolation("slot advance out of range")
				return
			}
			p.call(next, callIndex, index+offset)
			return
		}

		if subject != focus {
			tracer().Debugf("step: %s dead end, %s != focus %s at %d", slot, subject, focus, index+offset)
			return // terminal mismatch: dead end, no derivation on this branch
		}
		next, ok := slot.Advance(offset + 1)
		if !ok {
			p.invariantViolation("slot advance out of range")
			return
		}
		p.bsrAdd(next, callIndex, index+offset, index+offset+1)
		offset++
	}

	focus := p.getInput(index+offset, true)
	if flw := p.predictor.Follow(sym); flw != nil && flw.Contains(focus) {
		p.rtn(sym, callIndex, index+offset)
	} else {
		tracer().Debugf("step: %s does not return, focus %s not in FOLLOW(%s)", slot, focus, sym)
	}
}

// invariantViolation reports a condition that should be unreachable in a
// correctly functioning engine. It always traces an error; whether it also
// panics is controlled by the "panic-on-internal-error" config flag, so
// that a test harness can turn assertions into hard failures.
func (p *Parser) invariantViolation(msg string) {
	tracer().Errorf("gll: internal invariant violated: %s", msg)
	if gconf.GetBool("panic-on-internal-error") {
		panic("gll: internal invariant violated: " + msg)
	}
}
