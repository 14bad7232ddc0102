package sqlcmp

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/pkg/parser/ast"
	"github.com/pmezard/go-difflib/difflib"
)

// ChangeAction is the kind of one edit in the tree-edit script.
type ChangeAction string

const (
	ActionInsert ChangeAction = "insert"
	ActionRemove ChangeAction = "remove"
	ActionUpdate ChangeAction = "update"
	ActionKeep   ChangeAction = "keep"
)

// ChangeRecord is one edit transforming a sub-expression of the expected
// query into the generated one.
type ChangeRecord struct {
	Text   string       `json:"text"`
	Action ChangeAction `json:"action"`
}

// QueryDiff is the structural comparison of two queries.
type QueryDiff struct {
	// Similarity is the order-preserving longest-common-subsequence ratio
	// over the token sequences of both queries, in [0,1].
	Similarity float64
	// Changes is the edit script between the two syntax trees, in traversal
	// order. Kept sub-expressions are not listed.
	Changes []ChangeRecord
	// DiffString is a human-readable word diff of the raw query strings. It
	// is purely presentational and never feeds the score.
	DiffString string
}

// DiffQueries parses both queries and compares their syntax trees. A parse
// failure on either side is propagated, comparison is meaningless without a
// tree. When optimize is set both queries are canonicalized before the token
// similarity is computed.
func DiffQueries(expected, generated string, optimize bool) (*QueryDiff, error) {
	expStmt, err := parseQuery(expected)
	if err != nil {
		return nil, errors.Trace(err)
	}
	genStmt, err := parseQuery(generated)
	if err != nil {
		return nil, errors.Trace(err)
	}

	expTokens := TokenizeNormalized(expected, optimize)
	genTokens := TokenizeNormalized(generated, optimize)

	return &QueryDiff{
		Similarity: difflib.NewMatcher(expTokens, genTokens).Ratio(),
		Changes:    editScript(flattenExprs(expStmt), flattenExprs(genStmt)),
		DiffString: renderDiffString(expected, generated),
	}, nil
}

// flattenExprs collects the concrete sub-expressions of a query in a fixed
// pre-order traversal: for every (sub)query its select fields, table sources,
// filter expressions, grouping and ordering items and limit, each rendered to
// SQL text. The same traversal over identical trees yields identical
// sequences, which keeps the edit script deterministic.
func flattenExprs(stmt ast.StmtNode) []string {
	v := &exprVisitor{}
	stmt.Accept(v)
	return v.texts
}

type exprVisitor struct {
	texts []string
}

func (v *exprVisitor) Enter(in ast.Node) (ast.Node, bool) {
	if sel, ok := in.(*ast.SelectStmt); ok {
		v.collect(sel)
	}
	return in, false
}

func (v *exprVisitor) Leave(in ast.Node) (ast.Node, bool) {
	return in, true
}

func (v *exprVisitor) collect(sel *ast.SelectStmt) {
	if sel.Fields != nil {
		for _, field := range sel.Fields.Fields {
			v.append(field)
		}
	}
	if sel.From != nil {
		v.append(sel.From)
	}
	if sel.Where != nil {
		v.append(sel.Where)
	}
	if sel.GroupBy != nil {
		for _, item := range sel.GroupBy.Items {
			v.append(item)
		}
	}
	if sel.Having != nil {
		v.append(sel.Having)
	}
	if sel.OrderBy != nil {
		for _, item := range sel.OrderBy.Items {
			v.append(item)
		}
	}
	if sel.Limit != nil {
		v.append(sel.Limit)
	}
}

func (v *exprVisitor) append(node ast.Node) {
	text, err := restoreNode(node)
	if err != nil {
		// container nodes without their own textual form are dropped
		return
	}
	v.texts = append(v.texts, text)
}

// editScript computes the minimal edit script between two rendered
// sub-expression sequences. Matching spans emit nothing, so diffing a query
// against itself yields a zero-length script.
func editScript(expTexts, genTexts []string) []ChangeRecord {
	changes := []ChangeRecord{}
	for _, op := range difflib.NewMatcher(expTexts, genTexts).GetOpCodes() {
		switch op.Tag {
		case 'd':
			for _, text := range expTexts[op.I1:op.I2] {
				changes = append(changes, ChangeRecord{Text: text, Action: ActionRemove})
			}
		case 'i':
			for _, text := range genTexts[op.J1:op.J2] {
				changes = append(changes, ChangeRecord{Text: text, Action: ActionInsert})
			}
		case 'r':
			// replaced sub-expressions pair up positionally as updates, the
			// unpaired tail degrades to plain removes or inserts
			exp := expTexts[op.I1:op.I2]
			gen := genTexts[op.J1:op.J2]
			n := min(len(exp), len(gen))
			for i := 0; i < n; i++ {
				changes = append(changes, ChangeRecord{Text: gen[i], Action: ActionUpdate})
			}
			for _, text := range exp[n:] {
				changes = append(changes, ChangeRecord{Text: text, Action: ActionRemove})
			}
			for _, text := range gen[n:] {
				changes = append(changes, ChangeRecord{Text: text, Action: ActionInsert})
			}
		}
	}
	return changes
}
