package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
)

// ProductionID identifies a production by the structural hash of its LHS
// and RHS, so two productions built independently from equal symbols
// compare equal without either side needing to intern anything up front.
type ProductionID string

// hashableProduction exists only so structhash sees plain exported fields;
// Production itself carries a computed Num that must not affect the hash.
type hashableProduction struct {
	LHS Symbol
	RHS []Symbol
}

func genProductionID(lhs Symbol, rhs []Symbol) ProductionID {
	sum, err := structhash.Hash(hashableProduction{LHS: lhs, RHS: rhs}, 1)
	if err != nil {
		// structhash only fails on unhashable field kinds (channels,
		// funcs); Symbol is an int kind plus a string name, so this can't
		// happen.
		panic(fmt.Sprintf("grammar: hashing production: %v", err))
	}
	return ProductionID(sum)
}

// Production is one grammar rule LHS -> RHS. Num is its one-indexed
// declaration order within the ProductionSet it was last appended to; in a
// built Grammar the augmenting production is 1 and the user productions
// follow from 2. The LALR table builder uses it as the tie-breaker for
// reduce/reduce conflicts (earliest production wins).
type Production struct {
	ID  ProductionID
	Num int
	LHS Symbol
	RHS []Symbol
}

// NewProduction builds a production. Neither the LHS nor any RHS symbol may
// be the zero Symbol.
func NewProduction(lhs Symbol, rhs []Symbol) (*Production, error) {
	if lhs == (Symbol{}) {
		return nil, fmt.Errorf("grammar: production LHS must not be the empty symbol")
	}
	for _, sym := range rhs {
		if sym == (Symbol{}) {
			return nil, fmt.Errorf("grammar: production RHS must not contain the empty symbol; LHS: %v", lhs)
		}
	}
	return &Production{
		ID:  genProductionID(lhs, rhs),
		LHS: lhs,
		RHS: rhs,
	}, nil
}

func (p *Production) IsEmpty() bool { return len(p.RHS) == 0 }

func (p *Production) String() string {
	return fmt.Sprintf("%s -> %v", p.LHS, p.RHS)
}

// ProductionSet holds every production of a grammar, indexed for lookup by
// LHS and numbered in declaration order.
type ProductionSet struct {
	byLHS map[Symbol][]*Production
	byID  map[ProductionID]*Production
	order []*Production
	next  int
}

func NewProductionSet() *ProductionSet {
	return &ProductionSet{
		byLHS: map[Symbol][]*Production{},
		byID:  map[ProductionID]*Production{},
		next:  1,
	}
}

// Append adds prod to the set, assigning it the next declaration number.
// It reports false without modifying the set if an equal production (same
// LHS and RHS) was already present.
func (ps *ProductionSet) Append(prod *Production) bool {
	if _, ok := ps.byID[prod.ID]; ok {
		return false
	}
	prod.Num = ps.next
	ps.next++
	ps.byLHS[prod.LHS] = append(ps.byLHS[prod.LHS], prod)
	ps.byID[prod.ID] = prod
	ps.order = append(ps.order, prod)
	return true
}

func (ps *ProductionSet) FindByLHS(lhs Symbol) []*Production { return ps.byLHS[lhs] }

// All returns every production in declaration order.
func (ps *ProductionSet) All() []*Production {
	return ps.order
}
