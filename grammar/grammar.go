package grammar

import "fmt"

// Grammar is a well-formed context-free grammar: an augmenting production
// S' -> S plus every user production, ready for FIRST/FOLLOW computation
// and LALR(1) table construction.
type Grammar struct {
	Start       Symbol
	AugStart    Symbol
	Productions *ProductionSet
}

// Builder accumulates productions before Build validates and augments
// them. Productions are supplied programmatically (LHS/RHS symbol pairs)
// rather than parsed from a textual grammar notation — parsing a grammar
// source format is a distinct concern with its own frontend, out of this
// package's scope.
type Builder struct {
	start Symbol
	prods *ProductionSet
	errs  []error
}

func NewBuilder(start Symbol) *Builder {
	return &Builder{
		start: start,
		prods: NewProductionSet(),
	}
}

// AddProduction registers one production of the grammar. Declaration order
// is preserved and later used to break reduce/reduce conflicts.
func (b *Builder) AddProduction(lhs Symbol, rhs []Symbol) *Builder {
	p, err := NewProduction(lhs, rhs)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if !b.prods.Append(p) {
		b.errs = append(b.errs, &WellFormednessError{
			Cause:  ErrDuplicateProduction,
			Detail: p.String(),
		})
	}
	return b
}

// Build validates the accumulated productions and returns the augmented
// grammar. It reports every accumulated error, not just the first, per
// spec.md §7's batch error-reporting rule for compile-time diagnostics.
func (b *Builder) Build() (*Grammar, error) {
	if len(b.errs) > 0 {
		return nil, joinErrors(b.errs)
	}
	if len(b.prods.All()) == 0 {
		return nil, &WellFormednessError{Cause: ErrNoProduction}
	}

	lhs := map[Symbol]struct{}{}
	for _, p := range b.prods.All() {
		lhs[p.LHS] = struct{}{}
	}

	reachable := map[Symbol]bool{b.start: true}
	worklist := []Symbol{b.start}
	for len(worklist) > 0 {
		sym := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, p := range b.prods.FindByLHS(sym) {
			for _, rsym := range p.RHS {
				if rsym.IsNonTerminal() && !reachable[rsym] {
					reachable[rsym] = true
					worklist = append(worklist, rsym)
				}
			}
		}
	}

	var errs []error
	for sym := range lhs {
		if !reachable[sym] {
			errs = append(errs, &WellFormednessError{
				Cause:  ErrUnusedProduction,
				Detail: sym.Name,
			})
		}
	}
	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}

	augStart := StartOf(b.start.Name)
	augmented := NewProductionSet()
	startProd, err := NewProduction(augStart, []Symbol{b.start})
	if err != nil {
		return nil, err
	}
	augmented.Append(startProd)
	for _, p := range b.prods.All() {
		augmented.Append(p)
	}

	return &Grammar{
		Start:       b.start,
		AugStart:    augStart,
		Productions: augmented,
	}, nil
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := fmt.Sprintf("%d grammar errors:", len(errs))
	for _, e := range errs {
		msg += "\n  " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
