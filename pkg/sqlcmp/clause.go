package sqlcmp

import (
	"github.com/pingcap/tidb/pkg/parser/ast"
)

// ClauseKind identifies one structural part of a SELECT statement.
type ClauseKind string

const (
	ClauseSelect ClauseKind = "select"
	ClauseFrom   ClauseKind = "from"
	ClauseWhere  ClauseKind = "where"
	ClauseGroup  ClauseKind = "group"
	ClauseHaving ClauseKind = "having"
	ClauseOrder  ClauseKind = "order"
	ClauseLimit  ClauseKind = "limit"
)

// ClauseMap maps a clause kind to the rendered SQL text of every occurrence
// in a query, outer query before subqueries. Kinds that do not occur are
// absent from the map.
type ClauseMap map[ClauseKind][]string

// ExtractClauses walks a parsed query and groups its sub-expressions by
// clause kind, including occurrences inside subqueries.
func ExtractClauses(stmt ast.StmtNode) ClauseMap {
	v := &clauseVisitor{clauses: ClauseMap{}}
	stmt.Accept(v)
	return v.clauses
}

type clauseVisitor struct {
	clauses ClauseMap
}

func (v *clauseVisitor) Enter(in ast.Node) (ast.Node, bool) {
	if sel, ok := in.(*ast.SelectStmt); ok {
		v.collect(sel)
	}
	return in, false
}

func (v *clauseVisitor) Leave(in ast.Node) (ast.Node, bool) {
	return in, true
}

func (v *clauseVisitor) collect(sel *ast.SelectStmt) {
	if sel.Fields != nil {
		v.add(ClauseSelect, sel.Fields)
	}
	if sel.From != nil {
		v.add(ClauseFrom, sel.From)
	}
	if sel.Where != nil {
		v.add(ClauseWhere, sel.Where)
	}
	if sel.GroupBy != nil {
		v.add(ClauseGroup, sel.GroupBy)
	}
	if sel.Having != nil {
		v.add(ClauseHaving, sel.Having)
	}
	if sel.OrderBy != nil {
		v.add(ClauseOrder, sel.OrderBy)
	}
	if sel.Limit != nil {
		v.add(ClauseLimit, sel.Limit)
	}
}

func (v *clauseVisitor) add(kind ClauseKind, node ast.Node) {
	text, err := restoreNode(node)
	if err != nil {
		return
	}
	v.clauses[kind] = append(v.clauses[kind], text)
}
